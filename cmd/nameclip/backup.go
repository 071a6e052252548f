package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lpauloin/nameclip/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import the full application data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export config and custom beds to a single JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import config and custom beds from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupImport,
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	presets, err := project.LoadCustomPresets(project.DefaultPresetsPath())
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	if err := project.ExportAllData(args[0], config, presets); err != nil {
		return err
	}
	successColor.Printf("Exported config and %d custom beds to %s\n", len(presets), args[0])
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	backup, err := project.ImportAllData(args[0])
	if err != nil {
		return err
	}

	if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	presetsPath := project.DefaultPresetsPath()
	existing, err := project.LoadCustomPresets(presetsPath)
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}
	merged := project.MergePresets(existing, backup.Presets)
	if err := project.SaveCustomPresets(presetsPath, merged); err != nil {
		return fmt.Errorf("failed to save presets: %w", err)
	}

	successColor.Printf("Imported backup from %s (%d custom beds)\n", args[0], len(merged))
	return nil
}
