package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lpauloin/nameclip/internal/engine"
	"github.com/lpauloin/nameclip/internal/importer"
)

var compareCmd = &cobra.Command{
	Use:   "compare [dir]",
	Short: "Compare packing results across beds and spacings",
	Long: `Run the packer for the current settings, a tighter spacing, and
each built-in bed preset, then show how many plates each scenario
would need. Useful before committing to a long print.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func init() {
	addBedFlags(compareCmd)
	compareCmd.Flags().String("stl", "stl", "subdirectory containing the tag STL files")
}

func runCompare(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	stlSub, _ := cmd.Flags().GetString("stl")
	items, _, err := importer.ScanSTLDir(filepath.Join(dir, stlSub))
	if err != nil {
		return err
	}

	scenarios := engine.BuildDefaultScenarios(settings)
	results := engine.CompareScenarios(scenarios, items)

	headerColor.Printf("Comparing %d scenarios for %d tags\n\n", len(results), len(items))
	fmt.Printf("  %-28s %8s %8s %8s\n", "Scenario", "Plates", "Tags", "Waste")

	best := -1
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		if best == -1 || r.PlatesUsed < results[best].PlatesUsed {
			best = i
		}
	}

	for i, r := range results {
		if r.Err != nil {
			errorColor.Printf("  %-28s does not fit: %v\n", r.Scenario.Name, r.Err)
			continue
		}
		line := fmt.Sprintf("  %-28s %8d %8d %7.1f%%",
			r.Scenario.Name, r.PlatesUsed, r.TagsPlaced, r.WastePercent)
		if i == best {
			successColor.Printf("%s  <- best\n", line)
		} else {
			fmt.Println(line)
		}
	}

	return nil
}
