// Package export consumes a packing result and produces the printable
// artifacts: merged per-plate STL files, a PDF layout report, QR part labels,
// and a DXF layout drawing.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lpauloin/nameclip/internal/mesh"
	"github.com/lpauloin/nameclip/internal/model"
)

// PlacedMesh returns a copy of the item's mesh transformed into its placed
// position: rotated 90° if the placement says so, dropped onto z=0, then
// translated so the footprint's lower-left corner lands at (x, y) in bed
// coordinates.
func PlacedMesh(m *mesh.Mesh, p model.Placement) *mesh.Mesh {
	out := m.Clone()
	if p.Rotated {
		out.Rotate90()
	}
	out.DropToBed()
	min, _ := out.Bounds()
	out.Translate(p.X-min.X, p.Y-min.Y, 0)
	return out
}

// PlateFileName returns the deterministic artifact name for a plate index
// (1-based, zero-padded).
func PlateFileName(index int) string {
	return fmt.Sprintf("plate_%02d.stl", index)
}

// ExportPlates merges the placed meshes of each plate and writes one binary
// STL per plate into dir. The meshes map is keyed by item ID. Returns the
// written file paths in plate order.
func ExportPlates(dir string, result model.PackResult, meshes map[string]*mesh.Mesh) ([]string, error) {
	if len(result.Plates) == 0 {
		return nil, fmt.Errorf("no plates to export")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create plate directory: %w", err)
	}

	var outputs []string
	for _, plate := range result.Plates {
		placed := make([]*mesh.Mesh, 0, len(plate.Placements))
		for _, p := range plate.Placements {
			m, ok := meshes[p.Item.ID]
			if !ok {
				return nil, fmt.Errorf("no mesh for item %q (%s)", p.Item.Name, p.Item.ID)
			}
			placed = append(placed, PlacedMesh(m, p))
		}

		name := PlateFileName(plate.Index)
		combined := mesh.Merge(name, placed...)
		path := filepath.Join(dir, name)
		if err := mesh.Save(path, combined); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
		outputs = append(outputs, path)
	}
	return outputs, nil
}
