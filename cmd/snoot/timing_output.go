package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printTimings writes the phase summary to stderr when --timings is set.
func printTimings(cmd *cobra.Command, settings runSettings) {
	if !settings.timings || settings.driver.Timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), settings.driver.Timer.Summary())
}
