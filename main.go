// Worktracker - a personal work-session tracker for the command line.
package main

import (
	"os"

	"github.com/manav03panchal/worktracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
