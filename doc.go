// Package kegbot provides a Go client for the Kegweb HTTP API, the web
// service behind a Kegbot drink-tracking and sensor-telemetry
// installation.
//
// Basic usage:
//
//	client, err := kegbot.New(
//	    kegbot.WithBaseURL("http://kegserver:8000/api/"),
//	    kegbot.WithAPIKey("secret"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	drink, err := client.RecordDrink(ctx, kegbot.RecordDrinkRequest{
//	    TapName: "kegboard.flow0",
//	    Ticks:   2200,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Poured:", drink.VolumeML, "mL")
//
// Server-reported failures map onto a fixed error kind taxonomy and can
// be tested with errors.Is against the package sentinels:
//
//	if _, err := client.GetToken(ctx, "core.rfid", value); errors.Is(err, kegbot.ErrNotFound) {
//	    // unknown token
//	}
package kegbot
