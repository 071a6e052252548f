package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lpauloin/nameclip/internal/engine"
	"github.com/lpauloin/nameclip/internal/export"
	"github.com/lpauloin/nameclip/internal/importer"
	"github.com/lpauloin/nameclip/internal/model"
	"github.com/lpauloin/nameclip/internal/project"
)

var packCmd = &cobra.Command{
	Use:   "pack [dir]",
	Short: "Pack STL name tags onto printer bed plates",
	Long: `Scan a directory of tag STL files, arrange them onto as few bed
plates as possible, and write one merged STL per plate.

By default tags are read from <dir>/stl and plates are written to
<dir>/plate. Bed dimensions come from your config, an optional
preset, or explicit flags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPack,
}

func init() {
	addBedFlags(packCmd)
	packCmd.Flags().String("stl", "stl", "subdirectory containing the tag STL files")
	packCmd.Flags().String("out", "plate", "subdirectory for the merged plate STL files")
	packCmd.Flags().Bool("pdf", false, "also write a plate layout report (plates.pdf)")
	packCmd.Flags().Bool("labels", false, "also write QR sorting labels (labels.pdf)")
	packCmd.Flags().Bool("dxf", false, "also write 2D layout drawings (dxf/)")
	packCmd.Flags().String("save", "", "save the run as a project file")
}

func runPack(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	stlSub, _ := cmd.Flags().GetString("stl")
	outSub, _ := cmd.Flags().GetString("out")

	stlDir := filepath.Join(dir, stlSub)
	items, meshes, err := importer.ScanSTLDir(stlDir)
	if err != nil {
		return err
	}
	fmt.Printf("Found %s in %s\n", successColor.Sprintf("%d tags", len(items)), stlDir)
	fmt.Printf("Bed: %.0f x %.0f mm, spacing %.1f mm\n",
		settings.BedWidth, settings.BedHeight, settings.Spacing)

	result, err := engine.New(settings).Pack(items)
	if err != nil {
		var tooLarge *engine.ItemTooLargeError
		if errors.As(err, &tooLarge) {
			errorColor.Printf("Tag %q does not fit on the bed (%.1f x %.1f mm, even rotated)\n",
				tooLarge.Item.Name, tooLarge.Item.Width, tooLarge.Item.Height)
		}
		return err
	}

	printPackSummary(result)

	plateDir := filepath.Join(dir, outSub)
	paths, err := export.ExportPlates(plateDir, result, meshes)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s to %s\n", successColor.Sprintf("%d plate STLs", len(paths)), plateDir)

	if wantPDF, _ := cmd.Flags().GetBool("pdf"); wantPDF {
		path := filepath.Join(dir, "plates.pdf")
		if err := export.ExportPDF(path, result); err != nil {
			return err
		}
		fmt.Printf("Wrote layout report to %s\n", path)
	}
	if wantLabels, _ := cmd.Flags().GetBool("labels"); wantLabels {
		path := filepath.Join(dir, "labels.pdf")
		if err := export.ExportLabels(path, result); err != nil {
			return err
		}
		fmt.Printf("Wrote sorting labels to %s\n", path)
	}
	if wantDXF, _ := cmd.Flags().GetBool("dxf"); wantDXF {
		dxfPaths, err := export.ExportDXF(filepath.Join(dir, "dxf"), result)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d layout drawings to %s\n", len(dxfPaths), filepath.Join(dir, "dxf"))
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := saveRunAsProject(savePath, dir, items, settings, result); err != nil {
			return err
		}
		fmt.Printf("Saved project to %s\n", savePath)
	}

	return nil
}

// printPackSummary prints the per-plate breakdown of a packing run.
func printPackSummary(result model.PackResult) {
	headerColor.Printf("\nPacked %d tags onto %d plates (%.1f%% efficiency)\n",
		result.PlacementCount(), len(result.Plates), result.TotalEfficiency())

	for _, plate := range result.Plates {
		fmt.Printf("  Plate %02d: %d tags, %.1f%% used\n",
			plate.Index, len(plate.Placements), plate.Efficiency())
		for _, p := range plate.Placements {
			rotated := ""
			if p.Rotated {
				rotated = " (rotated)"
			}
			dimColor.Printf("    %-20s %6.1f x %5.1f mm at (%.1f, %.1f)%s\n",
				p.Item.Name, p.Item.Width, p.Item.Height, p.X, p.Y, rotated)
		}
	}
	fmt.Println()
}

// saveRunAsProject persists the run as a project file and records it in the
// recent projects list.
func saveRunAsProject(path, dir string, items []model.Item, settings model.BedSettings, result model.PackResult) error {
	proj := model.NewProject()
	proj.Name = filepath.Base(dir)
	if abs, err := filepath.Abs(dir); err == nil {
		proj.Name = filepath.Base(abs)
	}
	proj.Settings = settings
	proj.Result = &result
	for _, item := range items {
		proj.Names = append(proj.Names, item.Name)
	}

	if err := project.SaveProject(path, proj); err != nil {
		return err
	}

	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		return err
	}
	project.AddRecentProject(&config, path)
	return project.SaveAppConfig(configPath, config)
}
