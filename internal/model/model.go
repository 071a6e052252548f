package model

import "github.com/google/uuid"

// Item represents one generated name-tag mesh footprint to be placed on a
// print bed. Width and Height are the axis-aligned bounding box of the mesh
// projected onto the bed plane, in mm. The mesh itself is owned by the
// caller; the packer only reads the footprint and echoes the ID.
type Item struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`             // Tag text, also used as label in reports
	Width  float64 `json:"width"`            // mm
	Height float64 `json:"height"`           // mm
	Source string  `json:"source,omitempty"` // Path of the STL the footprint came from
}

// NewItem creates an Item with a generated ID.
func NewItem(name string, w, h float64) Item {
	return Item{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  w,
		Height: h,
	}
}

// Area returns the footprint area in square mm.
func (i Item) Area() float64 {
	return i.Width * i.Height
}

// BedSettings holds the print bed geometry and packing clearance.
type BedSettings struct {
	BedWidth  float64 `json:"bed_width"`  // mm
	BedHeight float64 `json:"bed_height"` // mm
	Spacing   float64 `json:"spacing"`    // Minimum clearance between tags and bed edge, mm
}

// DefaultSettings returns bed settings for an Ender 3 V2.
func DefaultSettings() BedSettings {
	return BedSettings{
		BedWidth:  215.0,
		BedHeight: 215.0,
		Spacing:   3.0,
	}
}

// Placement represents a single item placed on a plate. X and Y are the
// footprint's lower-left corner in bed coordinates, with the spacing inset
// already applied.
type Placement struct {
	Item    Item    `json:"item"`
	X       float64 `json:"x"`       // mm from bed left edge
	Y       float64 `json:"y"`       // mm from bed bottom edge
	Rotated bool    `json:"rotated"` // Whether the item was rotated 90°
}

// PlacedWidth returns the effective width considering rotation.
func (p Placement) PlacedWidth() float64 {
	if p.Rotated {
		return p.Item.Height
	}
	return p.Item.Width
}

// PlacedHeight returns the effective height considering rotation.
func (p Placement) PlacedHeight() float64 {
	if p.Rotated {
		return p.Item.Width
	}
	return p.Item.Height
}

// Plate represents one bed-sized packing solution.
type Plate struct {
	Index      int         `json:"index"` // 1-based creation order
	Bed        BedSettings `json:"bed"`
	Placements []Placement `json:"placements"`
}

// UsedArea returns the total footprint area of the placed items.
func (pl Plate) UsedArea() float64 {
	var total float64
	for _, p := range pl.Placements {
		total += p.PlacedWidth() * p.PlacedHeight()
	}
	return total
}

// TotalArea returns the bed area.
func (pl Plate) TotalArea() float64 {
	return pl.Bed.BedWidth * pl.Bed.BedHeight
}

// Efficiency returns the bed usage percentage.
func (pl Plate) Efficiency() float64 {
	ta := pl.TotalArea()
	if ta == 0 {
		return 0
	}
	return (pl.UsedArea() / ta) * 100.0
}

// PackResult holds the full multi-plate solution. Every input item appears
// in exactly one placement across all plates.
type PackResult struct {
	Plates []Plate `json:"plates"`
}

// PlacementCount returns the total number of placed items across all plates.
func (pr PackResult) PlacementCount() int {
	total := 0
	for _, pl := range pr.Plates {
		total += len(pl.Placements)
	}
	return total
}

// TotalEfficiency returns overall bed usage percentage.
func (pr PackResult) TotalEfficiency() float64 {
	var usedArea, totalArea float64
	for _, pl := range pr.Plates {
		usedArea += pl.UsedArea()
		totalArea += pl.TotalArea()
	}
	if totalArea == 0 {
		return 0
	}
	return (usedArea / totalArea) * 100.0
}

// Project ties everything together for save/load.
type Project struct {
	Name     string      `json:"name"`
	Names    []string    `json:"names"` // Tag texts to generate and pack
	Settings BedSettings `json:"settings"`
	Result   *PackResult `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Names:    []string{},
		Settings: DefaultSettings(),
	}
}
