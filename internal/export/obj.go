// Package export writes generated terrain to interchange formats: a
// Wavefront OBJ mesh, a grayscale heightmap PNG, and a YAML placement
// manifest.
package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alsid/clap/internal/engine/terrain"
)

// WriteOBJ writes the mesh as a Wavefront OBJ file. Faces reference
// position, UV and normal for each vertex (1-based, per the format).
func WriteOBJ(path string, m *terrain.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating obj file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "o terrain")

	for i := 0; i < m.VertexCount(); i++ {
		fmt.Fprintf(w, "v %g %g %g\n",
			m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2])
	}
	for i := 0; i < m.VertexCount(); i++ {
		fmt.Fprintf(w, "vt %g %g\n", m.UVs[i*2], m.UVs[i*2+1])
	}
	for i := 0; i < m.VertexCount(); i++ {
		fmt.Fprintf(w, "vn %g %g %g\n",
			m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2])
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Indices[i] + 1
		b := m.Indices[i+1] + 1
		c := m.Indices[i+2] + 1
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing obj file: %w", err)
	}
	return nil
}
