package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lpauloin/nameclip/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "class-of-2026"+FileExtension)

	proj := model.NewProject()
	proj.Name = "Class of 2026"
	proj.Names = []string{"Laurent", "Margaux", "Chloé"}
	proj.Settings = model.BedSettings{BedWidth: 250, BedHeight: 210, Spacing: 4}
	proj.Result = &model.PackResult{
		Plates: []model.Plate{
			{
				Index: 1,
				Bed:   proj.Settings,
				Placements: []model.Placement{
					{
						Item: model.Item{ID: "i1", Name: "Laurent", Width: 92, Height: 28},
						X:    4, Y: 4,
					},
				},
			},
		},
	}

	if err := SaveProject(path, proj); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if loaded.Name != "Class of 2026" {
		t.Errorf("expected project name to round-trip, got %q", loaded.Name)
	}
	if len(loaded.Names) != 3 || loaded.Names[2] != "Chloé" {
		t.Errorf("names did not round-trip: %v", loaded.Names)
	}
	if loaded.Settings.BedWidth != 250 {
		t.Errorf("settings did not round-trip: %+v", loaded.Settings)
	}
	if loaded.Result == nil || len(loaded.Result.Plates) != 1 {
		t.Fatalf("result did not round-trip: %+v", loaded.Result)
	}
	if loaded.Result.Plates[0].Placements[0].Item.Name != "Laurent" {
		t.Errorf("placement did not round-trip: %+v", loaded.Result.Plates[0].Placements[0])
	}
}

func TestSaveProjectCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "proj"+FileExtension)

	if err := SaveProject(path, model.NewProject()); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("project file was not created: %v", err)
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	if _, err := LoadProject(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing project file")
	}
}

func TestLoadProjectFallbackName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summer-camp"+FileExtension)
	if err := os.WriteFile(path, []byte(`{"names": ["Zoe"]}`), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if loaded.Name != "summer-camp" {
		t.Errorf("expected name derived from file name, got %q", loaded.Name)
	}
}

func TestLoadProjectNilNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty"+FileExtension)
	if err := os.WriteFile(path, []byte(`{"name": "Empty"}`), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if loaded.Names == nil {
		t.Error("Names should never be nil after load")
	}
}
