package model

import "testing"

func TestFindBedPresetBuiltin(t *testing.T) {
	p, ok := FindBedPreset("ender3v2", nil)
	if !ok {
		t.Fatal("expected to find built-in preset")
	}
	if p.Width != 215 || p.Height != 215 {
		t.Errorf("unexpected preset dimensions: %v x %v", p.Width, p.Height)
	}
}

func TestFindBedPresetByName(t *testing.T) {
	p, ok := FindBedPreset("Prusa MK4", nil)
	if !ok {
		t.Fatal("expected to find preset by name")
	}
	if p.ID != "prusamk4" {
		t.Errorf("expected prusamk4, got %s", p.ID)
	}
}

func TestFindBedPresetCustomWins(t *testing.T) {
	custom := []BedPreset{NewBedPreset("ender3v2", 300, 300, 5)}
	custom[0].ID = "ender3v2"

	p, ok := FindBedPreset("ender3v2", custom)
	if !ok {
		t.Fatal("expected to find preset")
	}
	if p.Width != 300 {
		t.Errorf("custom preset should shadow built-in, got width %v", p.Width)
	}
}

func TestFindBedPresetNotFound(t *testing.T) {
	if _, ok := FindBedPreset("does-not-exist", nil); ok {
		t.Error("expected no preset for unknown key")
	}
}

func TestBedPresetToSettings(t *testing.T) {
	p := NewBedPreset("Test", 200, 180, 4)
	s := p.ToSettings()
	if s.BedWidth != 200 || s.BedHeight != 180 || s.Spacing != 4 {
		t.Errorf("ToSettings produced incorrect values: %+v", s)
	}
}
