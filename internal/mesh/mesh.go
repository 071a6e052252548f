// Package mesh provides the minimal triangle-mesh operations the plate
// pipeline needs: STL load/save, footprint measurement, and the rigid
// transforms applied when placing tags onto a bed.
package mesh

// Vertex is a point in 3D space, in mm.
type Vertex struct {
	X, Y, Z float64
}

// Triangle is a single mesh facet.
type Triangle struct {
	Normal Vertex
	V      [3]Vertex
}

// Mesh is a triangle soup loaded from an STL file.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// Bounds returns the axis-aligned bounding box corners of the mesh.
func (m *Mesh) Bounds() (min, max Vertex) {
	if len(m.Triangles) == 0 {
		return Vertex{}, Vertex{}
	}
	first := m.Triangles[0].V[0]
	min, max = first, first
	for _, t := range m.Triangles {
		for _, v := range t.V {
			if v.X < min.X {
				min.X = v.X
			}
			if v.Y < min.Y {
				min.Y = v.Y
			}
			if v.Z < min.Z {
				min.Z = v.Z
			}
			if v.X > max.X {
				max.X = v.X
			}
			if v.Y > max.Y {
				max.Y = v.Y
			}
			if v.Z > max.Z {
				max.Z = v.Z
			}
		}
	}
	return min, max
}

// BoundsXY returns the width and height of the mesh footprint on the bed
// plane (the XY extents of the bounding box).
func (m *Mesh) BoundsXY() (w, h float64) {
	min, max := m.Bounds()
	return max.X - min.X, max.Y - min.Y
}

// Translate shifts every vertex by (dx, dy, dz) in place.
func (m *Mesh) Translate(dx, dy, dz float64) {
	for i := range m.Triangles {
		for j := range m.Triangles[i].V {
			m.Triangles[i].V[j].X += dx
			m.Triangles[i].V[j].Y += dy
			m.Triangles[i].V[j].Z += dz
		}
	}
}

// Rotate90 rotates the mesh 90° counter-clockwise about the Z axis, in place.
// Normals are rotated with the vertices.
func (m *Mesh) Rotate90() {
	rot := func(v *Vertex) {
		v.X, v.Y = -v.Y, v.X
	}
	for i := range m.Triangles {
		rot(&m.Triangles[i].Normal)
		for j := range m.Triangles[i].V {
			rot(&m.Triangles[i].V[j])
		}
	}
}

// DropToBed translates the mesh so its lowest point sits on z=0.
func (m *Mesh) DropToBed() {
	min, _ := m.Bounds()
	if min.Z != 0 {
		m.Translate(0, 0, -min.Z)
	}
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{Name: m.Name, Triangles: make([]Triangle, len(m.Triangles))}
	copy(out.Triangles, m.Triangles)
	return out
}

// Merge concatenates multiple meshes into one.
func Merge(name string, meshes ...*Mesh) *Mesh {
	out := &Mesh{Name: name}
	for _, m := range meshes {
		out.Triangles = append(out.Triangles, m.Triangles...)
	}
	return out
}
