package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default bed settings applied to new projects
	DefaultBedWidth  float64 `json:"default_bed_width"`
	DefaultBedHeight float64 `json:"default_bed_height"`
	DefaultSpacing   float64 `json:"default_spacing"`
	DefaultBedPreset string  `json:"default_bed_preset"` // Preset ID, "" = explicit dimensions

	// Application preferences
	OutputDir      string   `json:"output_dir"` // Base output directory, "" = ./output
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultBedWidth:  defaults.BedWidth,
		DefaultBedHeight: defaults.BedHeight,
		DefaultSpacing:   defaults.Spacing,
		DefaultBedPreset: "ender3v2",
		OutputDir:        "",
		RecentProjects:   []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a BedSettings
// struct. This is used when creating a new project so it inherits the user's
// saved defaults.
func (c AppConfig) ApplyToSettings(s *BedSettings) {
	s.BedWidth = c.DefaultBedWidth
	s.BedHeight = c.DefaultBedHeight
	s.Spacing = c.DefaultSpacing
}
