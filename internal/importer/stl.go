package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lpauloin/nameclip/internal/mesh"
	"github.com/lpauloin/nameclip/internal/model"
)

// ScanSTLDir loads every .stl file in dir, drops each mesh onto the bed
// plane, and measures its XY footprint into a packable item. Files are
// processed in name order so repeated runs produce the same item sequence.
// The returned map holds the loaded meshes keyed by item ID, ready for
// plate export.
func ScanSTLDir(dir string) ([]model.Item, map[string]*mesh.Mesh, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read STL directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".stl") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no STL files found in %s", dir)
	}

	items := make([]model.Item, 0, len(files))
	meshes := make(map[string]*mesh.Mesh, len(files))

	for _, name := range files {
		path := filepath.Join(dir, name)
		m, err := mesh.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		if len(m.Triangles) == 0 {
			return nil, nil, fmt.Errorf("%s contains no geometry", name)
		}
		m.DropToBed()

		w, h := m.BoundsXY()
		if w <= 0 || h <= 0 {
			return nil, nil, fmt.Errorf("%s has a degenerate footprint (%.2f x %.2f mm)", name, w, h)
		}

		tagName := strings.TrimSuffix(name, filepath.Ext(name))
		item := model.NewItem(tagName, w, h)
		item.Source = path

		items = append(items, item)
		meshes[item.ID] = m
	}

	return items, meshes, nil
}
