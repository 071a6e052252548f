package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads an STL file, detecting the binary and ASCII variants.
func Load(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty STL file %q", path)
	}

	if isASCIISTL(data) {
		return parseASCII(data)
	}
	return parseBinary(data)
}

// isASCIISTL decides the variant. A binary file may still start with the
// bytes "solid", so the header alone is not enough; require a "facet"
// keyword in the first chunk as well.
func isASCIISTL(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("solid")) && bytes.Contains(head, []byte("facet"))
}

func parseBinary(data []byte) (*Mesh, error) {
	if len(data) < 84 {
		return nil, fmt.Errorf("binary STL too short: %d bytes", len(data))
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	expected := 84 + int(count)*50
	if len(data) < expected {
		return nil, fmt.Errorf("binary STL truncated: want %d bytes, have %d", expected, len(data))
	}

	m := &Mesh{Triangles: make([]Triangle, 0, count)}
	offset := 84
	for i := uint32(0); i < count; i++ {
		var tri Triangle
		tri.Normal = readVertex32(data[offset:])
		tri.V[0] = readVertex32(data[offset+12:])
		tri.V[1] = readVertex32(data[offset+24:])
		tri.V[2] = readVertex32(data[offset+36:])
		m.Triangles = append(m.Triangles, tri)
		offset += 50 // 4 vectors of 3 float32 plus the attribute count
	}
	return m, nil
}

func readVertex32(b []byte) Vertex {
	return Vertex{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
	}
}

func parseASCII(data []byte) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var tri Triangle
	vertexIdx := 0

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if len(fields) > 1 && m.Name == "" {
				m.Name = fields[1]
			}
		case "facet":
			// "facet normal nx ny nz"
			if len(fields) == 5 {
				n, err := parseVertexFields(fields[2:])
				if err != nil {
					return nil, err
				}
				tri = Triangle{Normal: n}
				vertexIdx = 0
			}
		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("malformed vertex line: %q", scanner.Text())
			}
			v, err := parseVertexFields(fields[1:])
			if err != nil {
				return nil, err
			}
			if vertexIdx > 2 {
				return nil, fmt.Errorf("facet with more than 3 vertices")
			}
			tri.V[vertexIdx] = v
			vertexIdx++
		case "endfacet":
			if vertexIdx != 3 {
				return nil, fmt.Errorf("facet with %d vertices", vertexIdx)
			}
			m.Triangles = append(m.Triangles, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan ASCII STL: %w", err)
	}
	if len(m.Triangles) == 0 {
		return nil, fmt.Errorf("ASCII STL contains no facets")
	}
	return m, nil
}

func parseVertexFields(fields []string) (Vertex, error) {
	var coords [3]float64
	for i, f := range fields {
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vertex{}, fmt.Errorf("invalid coordinate %q: %w", f, err)
		}
		coords[i] = val
	}
	return Vertex{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// Save writes the mesh as binary STL.
func Save(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create STL file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeBinary(w, m); err != nil {
		return err
	}
	return w.Flush()
}

func writeBinary(w io.Writer, m *Mesh) error {
	header := make([]byte, 80)
	copy(header, m.Name)
	if _, err := w.Write(header); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return err
	}

	buf := make([]byte, 50)
	for _, tri := range m.Triangles {
		writeVertex32(buf[0:], tri.Normal)
		writeVertex32(buf[12:], tri.V[0])
		writeVertex32(buf[24:], tri.V[1])
		writeVertex32(buf[36:], tri.V[2])
		buf[48], buf[49] = 0, 0
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func writeVertex32(b []byte, v Vertex) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}
