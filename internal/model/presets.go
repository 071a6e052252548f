package model

import "github.com/google/uuid"

// BedPreset represents a reusable printer bed definition.
type BedPreset struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Width   float64 `json:"width"`   // mm
	Height  float64 `json:"height"`  // mm
	Spacing float64 `json:"spacing"` // Recommended clearance, mm
	Builtin bool    `json:"builtin,omitempty"`
}

// NewBedPreset creates a new BedPreset with a generated ID.
func NewBedPreset(name string, width, height, spacing float64) BedPreset {
	return BedPreset{
		ID:      uuid.New().String()[:8],
		Name:    name,
		Width:   width,
		Height:  height,
		Spacing: spacing,
	}
}

// ToSettings converts a preset into BedSettings for a packing run.
func (bp BedPreset) ToSettings() BedSettings {
	return BedSettings{
		BedWidth:  bp.Width,
		BedHeight: bp.Height,
		Spacing:   bp.Spacing,
	}
}

// BuiltinBedPresets are the bed definitions shipped with the application.
var BuiltinBedPresets = []BedPreset{
	{ID: "ender3v2", Name: "Ender 3 V2", Width: 215, Height: 215, Spacing: 3, Builtin: true},
	{ID: "prusamk4", Name: "Prusa MK4", Width: 250, Height: 210, Spacing: 3, Builtin: true},
	{ID: "bambua1", Name: "Bambu Lab A1", Width: 256, Height: 256, Spacing: 3, Builtin: true},
	{ID: "voron24", Name: "Voron 2.4 350", Width: 350, Height: 350, Spacing: 3, Builtin: true},
}

// FindBedPreset returns the preset with the given ID or name, searching the
// provided custom presets first, then the built-in ones. The second return
// value reports whether a preset was found.
func FindBedPreset(key string, custom []BedPreset) (BedPreset, bool) {
	for _, p := range custom {
		if p.ID == key || p.Name == key {
			return p, true
		}
	}
	for _, p := range BuiltinBedPresets {
		if p.ID == key || p.Name == key {
			return p, true
		}
	}
	return BedPreset{}, false
}
