package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lpauloin/nameclip/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "nameclip",
	Short: "3D name tag plate packer",
	Long: `nameclip arranges batches of 3D-printable name tag meshes onto
printer bed plates and exports the merged plate STLs along with
optional PDF, label, and DXF reports.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(bedsCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
