// Command wanderlust serves the wanderlust travel recommendation app.
//
// Configuration is read from the environment; cf. package ranger.
package main

import (
	"fmt"
	"os"

	"github.com/xy-planning-network/wanderlust/ranger"
)

func main() {
	rng, err := ranger.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not start wanderlust:", err)
		os.Exit(1)
	}

	if err := rng.Guide(); err != nil {
		rng.EmitLogger().Fatal(err.Error(), nil)
		os.Exit(1)
	}
}
