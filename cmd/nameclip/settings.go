package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lpauloin/nameclip/internal/model"
	"github.com/lpauloin/nameclip/internal/project"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.Faint)
)

// addBedFlags registers the bed geometry flags shared by pack and compare.
func addBedFlags(cmd *cobra.Command) {
	cmd.Flags().String("bed", "", "bed preset ID or name (see 'nameclip beds')")
	cmd.Flags().Float64("bed-w", 0, "bed width in mm (overrides preset and config)")
	cmd.Flags().Float64("bed-h", 0, "bed height in mm (overrides preset and config)")
	cmd.Flags().Float64("spacing", 0, "clearance between tags in mm")
}

// resolveSettings builds the bed settings for a run, layering the app config
// defaults, an optional preset, and explicit flag overrides in that order.
func resolveSettings(cmd *cobra.Command) (model.BedSettings, error) {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return model.BedSettings{}, fmt.Errorf("failed to load config: %w", err)
	}

	settings := model.DefaultSettings()
	config.ApplyToSettings(&settings)

	if key, _ := cmd.Flags().GetString("bed"); key != "" {
		custom, err := project.LoadCustomPresets(project.DefaultPresetsPath())
		if err != nil {
			return model.BedSettings{}, fmt.Errorf("failed to load presets: %w", err)
		}
		preset, ok := model.FindBedPreset(key, custom)
		if !ok {
			return model.BedSettings{}, fmt.Errorf("unknown bed preset %q", key)
		}
		settings = preset.ToSettings()
	}

	if cmd.Flags().Changed("bed-w") {
		settings.BedWidth, _ = cmd.Flags().GetFloat64("bed-w")
	}
	if cmd.Flags().Changed("bed-h") {
		settings.BedHeight, _ = cmd.Flags().GetFloat64("bed-h")
	}
	if cmd.Flags().Changed("spacing") {
		settings.Spacing, _ = cmd.Flags().GetFloat64("spacing")
	}

	return settings, nil
}
