package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/lpauloin/nameclip/internal/model"
)

// ExportDXF writes one 2D layout drawing per plate into dir, named
// plate_NN.dxf. The bed outline and the spacing inset go on the BED layer,
// the placed tag rectangles on the TAGS layer. The drawings are meant as a
// reference for laser engravers or for checking a layout in CAD.
func ExportDXF(dir string, result model.PackResult) ([]string, error) {
	if len(result.Plates) == 0 {
		return nil, fmt.Errorf("no plates to export")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create DXF directory: %w", err)
	}

	var outputs []string
	for _, plate := range result.Plates {
		path := filepath.Join(dir, fmt.Sprintf("plate_%02d.dxf", plate.Index))
		if err := writePlateDXF(path, plate); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
		}
		outputs = append(outputs, path)
	}
	return outputs, nil
}

func writePlateDXF(path string, plate model.Plate) error {
	d := dxf.NewDrawing()
	bed := plate.Bed

	if _, err := d.AddLayer("BED", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	drawRect(d, 0, 0, bed.BedWidth, bed.BedHeight)
	if bed.Spacing > 0 {
		drawRect(d, bed.Spacing, bed.Spacing, bed.BedWidth-2*bed.Spacing, bed.BedHeight-2*bed.Spacing)
	}

	if _, err := d.AddLayer("TAGS", color.Red, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, p := range plate.Placements {
		drawRect(d, p.X, p.Y, p.PlacedWidth(), p.PlacedHeight())
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four LINE entities.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
