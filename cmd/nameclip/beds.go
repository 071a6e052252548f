package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lpauloin/nameclip/internal/model"
	"github.com/lpauloin/nameclip/internal/project"
)

var bedsCmd = &cobra.Command{
	Use:   "beds",
	Short: "List and manage bed presets",
	RunE:  runBedsList,
}

var bedsAddCmd = &cobra.Command{
	Use:   "add <name> <width> <height> [spacing]",
	Short: "Add a custom bed preset",
	Args:  cobra.RangeArgs(3, 4),
	RunE:  runBedsAdd,
}

var bedsRemoveCmd = &cobra.Command{
	Use:   "remove <id-or-name>",
	Short: "Remove a custom bed preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runBedsRemove,
}

func init() {
	bedsCmd.AddCommand(bedsAddCmd)
	bedsCmd.AddCommand(bedsRemoveCmd)
}

func runBedsList(cmd *cobra.Command, args []string) error {
	custom, err := project.LoadCustomPresets(project.DefaultPresetsPath())
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	headerColor.Println("Built-in beds")
	for _, p := range model.BuiltinBedPresets {
		printPreset(p)
	}

	if len(custom) > 0 {
		headerColor.Println("\nCustom beds")
		for _, p := range custom {
			printPreset(p)
		}
	} else {
		dimColor.Println("\nNo custom beds. Add one with 'nameclip beds add'.")
	}
	return nil
}

func printPreset(p model.BedPreset) {
	fmt.Printf("  %-10s %-16s %.0f x %.0f mm, spacing %.1f mm\n",
		p.ID, p.Name, p.Width, p.Height, p.Spacing)
}

func runBedsAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	width, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid width %q", args[1])
	}
	height, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid height %q", args[2])
	}
	spacing := model.DefaultSettings().Spacing
	if len(args) == 4 {
		spacing, err = strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("invalid spacing %q", args[3])
		}
	}
	if width <= 0 || height <= 0 || spacing < 0 {
		return fmt.Errorf("bed dimensions must be positive and spacing non-negative")
	}

	path := project.DefaultPresetsPath()
	presets, err := project.LoadCustomPresets(path)
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}
	if _, exists := model.FindBedPreset(name, presets); exists {
		return fmt.Errorf("a bed named %q already exists", name)
	}

	preset := model.NewBedPreset(name, width, height, spacing)
	presets = append(presets, preset)
	if err := project.SaveCustomPresets(path, presets); err != nil {
		return fmt.Errorf("failed to save presets: %w", err)
	}

	successColor.Printf("Added bed %q (%s)\n", name, preset.ID)
	return nil
}

func runBedsRemove(cmd *cobra.Command, args []string) error {
	key := args[0]

	path := project.DefaultPresetsPath()
	presets, err := project.LoadCustomPresets(path)
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	kept := presets[:0]
	removed := false
	for _, p := range presets {
		if p.ID == key || p.Name == key {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return fmt.Errorf("no custom bed matching %q", key)
	}

	if err := project.SaveCustomPresets(path, kept); err != nil {
		return fmt.Errorf("failed to save presets: %w", err)
	}
	successColor.Printf("Removed bed %q\n", key)
	return nil
}
