package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version info, set with -ldflags at build time
var (
	// Version is the current version of schemagen
	Version = "dev"

	// BuildTime is the time at which the binary was built
	BuildTime = "undefined"

	// GitCommit is the git commit that was compiled
	GitCommit = "undefined"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "schemagen %s (commit %s, built %s)\n", Version, GitCommit, BuildTime)
		},
	}
}
