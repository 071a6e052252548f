package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/lpauloin/nameclip/internal/model"
)

// DefaultPresetsPath returns the default file path for custom bed presets.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SaveCustomPresets saves custom bed presets to a JSON file.
func SaveCustomPresets(path string, presets []model.BedPreset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomPresets loads custom bed presets from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomPresets(path string) ([]model.BedPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.BedPreset{}, nil
		}
		return nil, err
	}

	var presets []model.BedPreset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}

	// Loaded presets are never marked as built-in
	for i := range presets {
		presets[i].Builtin = false
	}
	return presets, nil
}

// MergePresets merges imported presets into an existing list.
// Presets whose ID already exists are skipped.
func MergePresets(existing, imported []model.BedPreset) []model.BedPreset {
	ids := make(map[string]bool, len(existing))
	for _, p := range existing {
		ids[p.ID] = true
	}
	for _, p := range imported {
		if !ids[p.ID] {
			p.Builtin = false
			existing = append(existing, p)
			ids[p.ID] = true
		}
	}
	return existing
}

// ExportPreset exports a single bed preset to a JSON file (for sharing).
func ExportPreset(path string, preset model.BedPreset) error {
	preset.Builtin = false
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportPreset imports a single bed preset from a JSON file.
func ImportPreset(path string) (model.BedPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.BedPreset{}, err
	}

	var preset model.BedPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.BedPreset{}, err
	}

	preset.Builtin = false
	if preset.Name == "" {
		return model.BedPreset{}, errors.New("imported preset has no name")
	}
	if preset.Width <= 0 || preset.Height <= 0 {
		return model.BedPreset{}, errors.New("imported preset has invalid dimensions")
	}
	return preset, nil
}
