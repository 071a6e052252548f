package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lpauloin/nameclip/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the nameclip version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		headerColor.Printf("nameclip %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Printf("  commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Printf("  built:  %s\n", version.BuildDate)
		}
	},
}
