package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lpauloin/nameclip/internal/model"
)

// buildTestResult creates a realistic two-plate packing result for testing.
func buildTestResult() model.PackResult {
	bed := model.BedSettings{BedWidth: 215, BedHeight: 215, Spacing: 3}
	return model.PackResult{
		Plates: []model.Plate{
			{
				Index: 1,
				Bed:   bed,
				Placements: []model.Placement{
					{
						Item: model.Item{ID: "i1", Name: "Laurent", Width: 92, Height: 28},
						X:    3, Y: 3, Rotated: false,
					},
					{
						Item: model.Item{ID: "i2", Name: "Margaux", Width: 88, Height: 27},
						X:    98, Y: 3, Rotated: false,
					},
					{
						Item: model.Item{ID: "i3", Name: "Zoe", Width: 41, Height: 22},
						X:    3, Y: 34, Rotated: true,
					},
				},
			},
			{
				Index: 2,
				Bed:   bed,
				Placements: []model.Placement{
					{
						Item: model.Item{ID: "i4", Name: "Jean-Baptiste", Width: 121, Height: 30},
						X:    3, Y: 3, Rotated: false,
					},
				},
			},
		},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plates.pdf")

	err := ExportPDF(path, buildTestResult())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	if err := ExportPDF(path, model.PackResult{}); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildTestResult())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	if err := ExportLabels(path, model.PackResult{}); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult())

	if len(labels) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(labels))
	}
	if labels[0].Name != "Laurent" || labels[0].PlateIndex != 1 {
		t.Errorf("unexpected first label: %+v", labels[0])
	}
	if labels[3].Name != "Jean-Baptiste" || labels[3].PlateIndex != 2 {
		t.Errorf("unexpected last label: %+v", labels[3])
	}
	if !labels[2].Rotated {
		t.Error("third label should be marked rotated")
	}

	// The QR payload round-trips through JSON.
	data, err := json.Marshal(labels[0])
	if err != nil {
		t.Fatalf("failed to marshal label: %v", err)
	}
	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal label: %v", err)
	}
	if decoded != labels[0] {
		t.Errorf("label did not round-trip: %+v != %+v", decoded, labels[0])
	}
}

func TestExportDXF_CreatesFiles(t *testing.T) {
	dir := t.TempDir()

	paths, err := ExportDXF(dir, buildTestResult())
	if err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 DXF files, got %d", len(paths))
	}
	if filepath.Base(paths[0]) != "plate_01.dxf" {
		t.Errorf("unexpected file name: %s", paths[0])
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("DXF file was not created: %v", err)
		}
		if info.Size() == 0 {
			t.Errorf("DXF file %s is empty", p)
		}
	}
}

func TestExportDXF_EmptyResult(t *testing.T) {
	if _, err := ExportDXF(t.TempDir(), model.PackResult{}); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}
