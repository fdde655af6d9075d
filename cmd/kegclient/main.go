// kegclient is a command line interface to a Kegweb server, useful for
// poking at an installation or scripting against it.
package main

import (
	"os"

	"github.com/kegbot/client-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
