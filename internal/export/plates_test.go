package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lpauloin/nameclip/internal/mesh"
	"github.com/lpauloin/nameclip/internal/model"
)

// boxMesh builds a simple box mesh footprint for export tests.
func boxMesh(w, h, d float64) *mesh.Mesh {
	p := [8]mesh.Vertex{
		{X: 0, Y: 0, Z: 0}, {X: w, Y: 0, Z: 0}, {X: w, Y: h, Z: 0}, {X: 0, Y: h, Z: 0},
		{X: 0, Y: 0, Z: d}, {X: w, Y: 0, Z: d}, {X: w, Y: h, Z: d}, {X: 0, Y: h, Z: d},
	}
	quads := [6][4]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}
	m := &mesh.Mesh{Name: "box"}
	for _, q := range quads {
		m.Triangles = append(m.Triangles,
			mesh.Triangle{V: [3]mesh.Vertex{p[q[0]], p[q[1]], p[q[2]]}},
			mesh.Triangle{V: [3]mesh.Vertex{p[q[2]], p[q[3]], p[q[0]]}},
		)
	}
	return m
}

func TestPlacedMesh_Translation(t *testing.T) {
	m := boxMesh(40, 20, 3)
	p := model.Placement{
		Item: model.Item{ID: "i1", Name: "Tag", Width: 40, Height: 20},
		X:    50, Y: 30, Rotated: false,
	}

	placed := PlacedMesh(m, p)

	min, max := placed.Bounds()
	if min.X != 50 || min.Y != 30 {
		t.Errorf("placed mesh lower-left corner at (%v, %v), want (50, 30)", min.X, min.Y)
	}
	if max.X != 90 || max.Y != 50 {
		t.Errorf("placed mesh upper-right corner at (%v, %v), want (90, 50)", max.X, max.Y)
	}
	if min.Z != 0 {
		t.Errorf("placed mesh should sit on the bed, got z=%v", min.Z)
	}

	// The source mesh must not be modified.
	origMin, _ := m.Bounds()
	if origMin.X != 0 || origMin.Y != 0 {
		t.Error("PlacedMesh modified the source mesh")
	}
}

func TestPlacedMesh_Rotation(t *testing.T) {
	m := boxMesh(40, 20, 3)
	p := model.Placement{
		Item: model.Item{ID: "i1", Name: "Tag", Width: 40, Height: 20},
		X:    10, Y: 10, Rotated: true,
	}

	placed := PlacedMesh(m, p)

	w, h := placed.BoundsXY()
	if w != 20 || h != 40 {
		t.Errorf("rotated footprint is %v x %v, want 20 x 40", w, h)
	}
	min, _ := placed.Bounds()
	if min.X != 10 || min.Y != 10 {
		t.Errorf("rotated mesh lower-left corner at (%v, %v), want (10, 10)", min.X, min.Y)
	}
}

func TestExportPlates(t *testing.T) {
	dir := t.TempDir()

	result := buildTestResult()
	meshes := map[string]*mesh.Mesh{
		"i1": boxMesh(92, 28, 3),
		"i2": boxMesh(88, 27, 3),
		"i3": boxMesh(41, 22, 3),
		"i4": boxMesh(121, 30, 3),
	}

	paths, err := ExportPlates(dir, result, meshes)
	if err != nil {
		t.Fatalf("ExportPlates returned error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 plate files, got %d", len(paths))
	}
	if filepath.Base(paths[0]) != "plate_01.stl" || filepath.Base(paths[1]) != "plate_02.stl" {
		t.Errorf("unexpected plate file names: %v", paths)
	}

	// The first plate merges three box meshes of 12 triangles each.
	plate1, err := mesh.Load(paths[0])
	if err != nil {
		t.Fatalf("failed to reload plate STL: %v", err)
	}
	if len(plate1.Triangles) != 36 {
		t.Errorf("expected 36 triangles on plate 1, got %d", len(plate1.Triangles))
	}

	// All geometry stays inside the bed.
	min, max := plate1.Bounds()
	bed := result.Plates[0].Bed
	if min.X < bed.Spacing-1e-3 || min.Y < bed.Spacing-1e-3 {
		t.Errorf("plate geometry below the spacing inset: min (%v, %v)", min.X, min.Y)
	}
	if max.X > bed.BedWidth-bed.Spacing+1e-3 || max.Y > bed.BedHeight-bed.Spacing+1e-3 {
		t.Errorf("plate geometry exceeds the bed: max (%v, %v)", max.X, max.Y)
	}
}

func TestExportPlates_MissingMesh(t *testing.T) {
	dir := t.TempDir()

	_, err := ExportPlates(dir, buildTestResult(), map[string]*mesh.Mesh{})
	if err == nil {
		t.Fatal("expected error for missing meshes, got nil")
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Error("no plate files should be written on failure")
	}
}

func TestPlateFileName(t *testing.T) {
	if got := PlateFileName(1); got != "plate_01.stl" {
		t.Errorf("unexpected name: %s", got)
	}
	if got := PlateFileName(12); got != "plate_12.stl" {
		t.Errorf("unexpected name: %s", got)
	}
}
