package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	kegbot "github.com/kegbot/client-go"
	"github.com/kegbot/client-go/internal/config"
)

// commands builds the command registry for the CLI.
func commands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	base := baseCommand{ui: ui, log: log}

	return map[string]cli.CommandFactory{
		"taps": func() (cli.Command, error) {
			return &tapsCommand{base}, nil
		},
		"drinks": func() (cli.Command, error) {
			return &drinksCommand{base}, nil
		},
		"sound-events": func() (cli.Command, error) {
			return &soundEventsCommand{base}, nil
		},
		"record-drink": func() (cli.Command, error) {
			return &recordDrinkCommand{base}, nil
		},
		"cancel-drink": func() (cli.Command, error) {
			return &cancelDrinkCommand{base}, nil
		},
		"log-temp": func() (cli.Command, error) {
			return &logTempCommand{base}, nil
		},
		"get-token": func() (cli.Command, error) {
			return &getTokenCommand{base}, nil
		},
	}
}

// baseCommand carries the dependencies shared by all commands.
type baseCommand struct {
	ui  cli.Ui
	log hclog.Logger
}

// newClient builds a Kegweb client from the environment. Configuration
// is resolved here, never inside the client library.
func (c *baseCommand) newClient() (*kegbot.Client, error) {
	if err := config.LoadEnvFile(".env"); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	c.log.Debug("creating client", "base_url", cfg.BaseURL, "timeout", cfg.Timeout)

	return kegbot.New(
		kegbot.WithBaseURL(cfg.BaseURL),
		kegbot.WithAPIKey(cfg.APIKey),
		kegbot.WithTimeout(cfg.Timeout),
	)
}

// output prints v as indented JSON.
func (c *baseCommand) output(v any) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.ui.Error(fmt.Sprintf("encode output: %v", err))
		return 1
	}
	c.ui.Output(string(data))
	return 0
}

func (c *baseCommand) fail(err error) int {
	c.ui.Error(err.Error())
	return 1
}

type tapsCommand struct {
	baseCommand
}

func (c *tapsCommand) Synopsis() string { return "Show the status of all taps" }
func (c *tapsCommand) Help() string {
	return "Usage: kegclient taps\n\n  " + c.Synopsis() + "."
}

func (c *tapsCommand) Run(args []string) int {
	client, err := c.newClient()
	if err != nil {
		return c.fail(err)
	}
	taps, err := client.TapStatus(context.Background())
	if err != nil {
		return c.fail(err)
	}
	return c.output(taps)
}

type drinksCommand struct {
	baseCommand
}

func (c *drinksCommand) Synopsis() string { return "List all recorded drinks" }
func (c *drinksCommand) Help() string {
	return "Usage: kegclient drinks\n\n  " + c.Synopsis() + "."
}

func (c *drinksCommand) Run(args []string) int {
	client, err := c.newClient()
	if err != nil {
		return c.fail(err)
	}
	drinks, err := client.AllDrinks(context.Background())
	if err != nil {
		return c.fail(err)
	}
	return c.output(drinks)
}

type soundEventsCommand struct {
	baseCommand
}

func (c *soundEventsCommand) Synopsis() string { return "List all configured sound events" }
func (c *soundEventsCommand) Help() string {
	return "Usage: kegclient sound-events\n\n  " + c.Synopsis() + "."
}

func (c *soundEventsCommand) Run(args []string) int {
	client, err := c.newClient()
	if err != nil {
		return c.fail(err)
	}
	events, err := client.AllSoundEvents(context.Background())
	if err != nil {
		return c.fail(err)
	}
	return c.output(events)
}

type recordDrinkCommand struct {
	baseCommand
}

func (c *recordDrinkCommand) Synopsis() string { return "Record a pour against a tap" }
func (c *recordDrinkCommand) Help() string {
	return `Usage: kegclient record-drink -tap <name> -ticks <n> [options]

  Records a pour against a tap.

Options:

  -tap <name>       Tap name, e.g. kegboard.flow0 (required)
  -ticks <n>        Meter ticks for the pour (required)
  -volume-ml <f>    Explicit volume override, in milliliters
  -username <name>  User to credit with the pour
  -duration <n>     Pour duration in seconds
  -auth-token <v>   Token value of the authenticating device
  -spilled          Mark the pour as spillage
  -shout <msg>      Message to attach to the pour`
}

func (c *recordDrinkCommand) Run(args []string) int {
	flags := flag.NewFlagSet("record-drink", flag.ContinueOnError)
	flags.Usage = func() { c.ui.Output(c.Help()) }

	var req kegbot.RecordDrinkRequest
	var volumeML float64
	flags.StringVar(&req.TapName, "tap", "", "")
	flags.IntVar(&req.Ticks, "ticks", 0, "")
	flags.Float64Var(&volumeML, "volume-ml", -1, "")
	flags.StringVar(&req.Username, "username", "", "")
	flags.IntVar(&req.Duration, "duration", 0, "")
	flags.StringVar(&req.AuthToken, "auth-token", "", "")
	flags.BoolVar(&req.Spilled, "spilled", false, "")
	flags.StringVar(&req.Shout, "shout", "", "")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if req.TapName == "" {
		return c.fail(fmt.Errorf("-tap is required"))
	}
	if volumeML >= 0 {
		req.VolumeML = &volumeML
	}

	client, err := c.newClient()
	if err != nil {
		return c.fail(err)
	}
	drink, err := client.RecordDrink(context.Background(), req)
	if err != nil {
		return c.fail(err)
	}
	return c.output(drink)
}

type cancelDrinkCommand struct {
	baseCommand
}

func (c *cancelDrinkCommand) Synopsis() string { return "Cancel a previously recorded drink" }
func (c *cancelDrinkCommand) Help() string {
	return `Usage: kegclient cancel-drink -id <n> [-spilled]

  Cancels a previously recorded drink by sequence number.`
}

func (c *cancelDrinkCommand) Run(args []string) int {
	flags := flag.NewFlagSet("cancel-drink", flag.ContinueOnError)
	flags.Usage = func() { c.ui.Output(c.Help()) }

	id := flags.Int("id", 0, "")
	spilled := flags.Bool("spilled", false, "")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *id <= 0 {
		return c.fail(fmt.Errorf("-id is required"))
	}

	client, err := c.newClient()
	if err != nil {
		return c.fail(err)
	}
	drink, err := client.CancelDrink(context.Background(), *id, *spilled)
	if err != nil {
		return c.fail(err)
	}
	return c.output(drink)
}

type logTempCommand struct {
	baseCommand
}

func (c *logTempCommand) Synopsis() string { return "Record a temperature sensor reading" }
func (c *logTempCommand) Help() string {
	return `Usage: kegclient log-temp -sensor <name> -temp <celsius>

  Records a temperature reading for a sensor.`
}

func (c *logTempCommand) Run(args []string) int {
	flags := flag.NewFlagSet("log-temp", flag.ContinueOnError)
	flags.Usage = func() { c.ui.Output(c.Help()) }

	sensor := flags.String("sensor", "", "")
	temp := flags.Float64("temp", 0, "")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *sensor == "" {
		return c.fail(fmt.Errorf("-sensor is required"))
	}

	client, err := c.newClient()
	if err != nil {
		return c.fail(err)
	}
	reading, err := client.LogSensorReading(context.Background(), *sensor, *temp, time.Now())
	if err != nil {
		return c.fail(err)
	}
	return c.output(reading)
}

type getTokenCommand struct {
	baseCommand
}

func (c *getTokenCommand) Synopsis() string { return "Look up an auth token" }
func (c *getTokenCommand) Help() string {
	return `Usage: kegclient get-token -device <name> -value <token>

  Looks up an auth token presented by a device.`
}

func (c *getTokenCommand) Run(args []string) int {
	flags := flag.NewFlagSet("get-token", flag.ContinueOnError)
	flags.Usage = func() { c.ui.Output(c.Help()) }

	device := flags.String("device", "", "")
	value := flags.String("value", "", "")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *device == "" || *value == "" {
		return c.fail(fmt.Errorf("-device and -value are required"))
	}

	client, err := c.newClient()
	if err != nil {
		return c.fail(err)
	}
	token, err := client.GetToken(context.Background(), *device, *value)
	if err != nil {
		return c.fail(err)
	}
	return c.output(token)
}
