package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box builds an axis-aligned box mesh with lower corner at (x, y, z).
func box(x, y, z, w, h, d float64) *Mesh {
	p := [8]Vertex{
		{x, y, z}, {x + w, y, z}, {x + w, y + h, z}, {x, y + h, z},
		{x, y, z + d}, {x + w, y, z + d}, {x + w, y + h, z + d}, {x, y + h, z + d},
	}
	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}
	m := &Mesh{Name: "box"}
	for _, q := range quads {
		m.Triangles = append(m.Triangles,
			Triangle{V: [3]Vertex{p[q[0]], p[q[1]], p[q[2]]}},
			Triangle{V: [3]Vertex{p[q[2]], p[q[3]], p[q[0]]}},
		)
	}
	return m
}

func TestBoundsXY(t *testing.T) {
	m := box(1, 2, 3, 40, 25, 6)
	w, h := m.BoundsXY()
	assert.InDelta(t, 40.0, w, 1e-9)
	assert.InDelta(t, 25.0, h, 1e-9)
}

func TestRotate90SwapsFootprint(t *testing.T) {
	m := box(0, 0, 0, 40, 25, 3)
	m.Rotate90()

	w, h := m.BoundsXY()
	assert.InDelta(t, 25.0, w, 1e-9)
	assert.InDelta(t, 40.0, h, 1e-9)

	min, _ := m.Bounds()
	assert.InDelta(t, 0.0, min.Z, 1e-9, "rotation about Z must not move the mesh vertically")
}

func TestTranslate(t *testing.T) {
	m := box(0, 0, 0, 10, 10, 10)
	m.Translate(5, -2, 1)

	min, max := m.Bounds()
	assert.InDelta(t, 5.0, min.X, 1e-9)
	assert.InDelta(t, -2.0, min.Y, 1e-9)
	assert.InDelta(t, 11.0, max.Z, 1e-9)
}

func TestDropToBed(t *testing.T) {
	m := box(0, 0, 7.5, 10, 10, 3)
	m.DropToBed()

	min, max := m.Bounds()
	assert.InDelta(t, 0.0, min.Z, 1e-9)
	assert.InDelta(t, 3.0, max.Z, 1e-9)
}

func TestCloneIsIndependent(t *testing.T) {
	m := box(0, 0, 0, 10, 10, 10)
	c := m.Clone()
	c.Translate(100, 0, 0)

	min, _ := m.Bounds()
	assert.InDelta(t, 0.0, min.X, 1e-9, "translating the clone must not move the original")
}

func TestMerge(t *testing.T) {
	a := box(0, 0, 0, 10, 10, 10)
	b := box(50, 0, 0, 10, 10, 10)

	m := Merge("plate_01", a, b)

	assert.Len(t, m.Triangles, 24)
	w, _ := m.BoundsXY()
	assert.InDelta(t, 60.0, w, 1e-9)
}

func TestBinaryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tag.stl")

	original := box(1, 2, 0, 40, 25, 3)
	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Triangles, len(original.Triangles))

	w, h := loaded.BoundsXY()
	assert.InDelta(t, 40.0, w, 1e-4, "float32 storage keeps mm-scale precision")
	assert.InDelta(t, 25.0, h, 1e-4)
}

func TestLoadASCII(t *testing.T) {
	ascii := `solid tag
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 10 0 0
    vertex 10 5 0
  endloop
endfacet
facet normal 0 0 1
  outer loop
    vertex 10 5 0
    vertex 0 5 0
    vertex 0 0 0
  endloop
endfacet
endsolid tag
`
	dir := t.TempDir()
	path := filepath.Join(dir, "ascii.stl")
	require.NoError(t, os.WriteFile(path, []byte(ascii), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tag", m.Name)
	require.Len(t, m.Triangles, 2)

	w, h := m.BoundsXY()
	assert.InDelta(t, 10.0, w, 1e-9)
	assert.InDelta(t, 5.0, h, 1e-9)
}

func TestLoadRejectsGarbage(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.stl")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err := Load(empty)
	assert.Error(t, err)

	truncated := filepath.Join(dir, "short.stl")
	require.NoError(t, os.WriteFile(truncated, []byte("not an stl"), 0644))
	_, err = Load(truncated)
	assert.Error(t, err)
}
