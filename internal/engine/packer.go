package engine

import (
	"fmt"
	"sort"

	"github.com/lpauloin/nameclip/internal/model"
)

// ItemTooLargeError is returned when an item's footprint cannot fit on an
// empty bed in either orientation, accounting for spacing. The packing run
// is aborted as a whole; no partial result is produced.
type ItemTooLargeError struct {
	Item model.Item
	Bed  model.BedSettings
}

func (e *ItemTooLargeError) Error() string {
	return fmt.Sprintf("item %q (%.1f x %.1f mm) is too large for the %.0f x %.0f mm bed with %.1f mm spacing",
		e.Item.Name, e.Item.Width, e.Item.Height, e.Bed.BedWidth, e.Bed.BedHeight, e.Bed.Spacing)
}

// Packer runs the multi-plate shelf-packing algorithm.
//
// Items are sorted by descending footprint area (stable, so equal-area items
// keep their input order), then placed greedily left-to-right in rows. An item
// that does not fit in the current row in either orientation forces a new row;
// if it does not fit there either it is deferred to the next plate. The packer
// is a single-pass heuristic: it never back-fills a later item into an earlier
// row, trading density for speed and reproducibility.
type Packer struct {
	Settings model.BedSettings
}

func New(settings model.BedSettings) *Packer {
	return &Packer{Settings: settings}
}

// Pack places every item onto as many plates as needed and returns the
// complete placement plan. The result is deterministic for identical input.
// It returns an *ItemTooLargeError if some item cannot fit on an empty bed in
// either orientation; in that case no plates are returned.
func (p *Packer) Pack(items []model.Item) (model.PackResult, error) {
	if err := validateBed(p.Settings); err != nil {
		return model.PackResult{}, err
	}

	// Sort by area descending; large items first tends to reduce wasted
	// bed area. The sort is stable to keep output deterministic for
	// equal-area items.
	remaining := make([]model.Item, len(items))
	copy(remaining, items)
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].Area() > remaining[j].Area()
	})

	result := model.PackResult{}

	for len(remaining) > 0 {
		plate := newPlateState(p.Settings)
		var next []model.Item

		for _, item := range remaining {
			if !plate.place(item) {
				next = append(next, item)
			}
		}

		if len(plate.placements) == 0 {
			// Nothing fit on an empty plate, so the largest remaining
			// item can never fit anywhere.
			return model.PackResult{}, &ItemTooLargeError{Item: remaining[0], Bed: p.Settings}
		}

		result.Plates = append(result.Plates, model.Plate{
			Index:      len(result.Plates) + 1,
			Bed:        p.Settings,
			Placements: plate.placements,
		})
		remaining = next
	}

	return result, nil
}

func validateBed(s model.BedSettings) error {
	if s.BedWidth <= 0 || s.BedHeight <= 0 {
		return fmt.Errorf("invalid bed dimensions %.1f x %.1f mm", s.BedWidth, s.BedHeight)
	}
	if s.Spacing < 0 {
		return fmt.Errorf("invalid spacing %.1f mm", s.Spacing)
	}
	return nil
}

// plateState tracks the shelf cursor while one plate is being filled.
// The cursor starts at (spacing, spacing); rows grow upward by the height of
// the tallest item placed in the finished row.
type plateState struct {
	bed        model.BedSettings
	x, y       float64
	rowHeight  float64
	placements []model.Placement
}

func newPlateState(bed model.BedSettings) *plateState {
	return &plateState{
		bed: bed,
		x:   bed.Spacing,
		y:   bed.Spacing,
	}
}

// fits reports whether a w x h footprint fits at the current cursor,
// keeping the spacing margin to the bed edges.
func (ps *plateState) fits(w, h float64) bool {
	return ps.x+w+ps.bed.Spacing <= ps.bed.BedWidth &&
		ps.y+h+ps.bed.Spacing <= ps.bed.BedHeight
}

// tryPlace attempts the item at the current cursor, unrotated first and then
// rotated 90°. On success it records the placement and advances the cursor.
func (ps *plateState) tryPlace(item model.Item) bool {
	for _, rotated := range []bool{false, true} {
		w, h := item.Width, item.Height
		if rotated {
			w, h = h, w
		}
		if !ps.fits(w, h) {
			continue
		}
		ps.placements = append(ps.placements, model.Placement{
			Item:    item,
			X:       ps.x,
			Y:       ps.y,
			Rotated: rotated,
		})
		ps.x += w + ps.bed.Spacing
		if h > ps.rowHeight {
			ps.rowHeight = h
		}
		return true
	}
	return false
}

// newRow moves the cursor to the left edge of the next row, above the
// tallest item of the row just finished.
func (ps *plateState) newRow() {
	ps.x = ps.bed.Spacing
	ps.y += ps.rowHeight + ps.bed.Spacing
	ps.rowHeight = 0
}

// place runs the full per-item attempt: current row first, then a single
// retry at the head of a fresh row. The row advance sticks even when the
// retry fails, so later (smaller) items are tried against the new row.
func (ps *plateState) place(item model.Item) bool {
	if ps.tryPlace(item) {
		return true
	}
	ps.newRow()
	return ps.tryPlace(item)
}
