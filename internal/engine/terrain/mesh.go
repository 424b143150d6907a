package terrain

// Mesh holds the flat vertex attribute and index buffers for GPU
// upload: three floats per position/normal, two per UV.
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// CollisionBuffers returns the subset a collision-geometry consumer
// needs: positions and triangle indices.
func (m *Mesh) CollisionBuffers() ([]float32, []uint32) {
	return m.Positions, m.Indices
}

// BuildMesh emits the triangulated grid mesh for the terrain: one
// vertex per grid point, two triangles per cell, with a fixed winding
// and the ground texture tiled UVTiling times across the extent.
func (t *Terrain) BuildMesh() *Mesh {
	res := t.resolution
	total := res * res

	m := &Mesh{
		Positions: make([]float32, 0, total*3),
		Normals:   make([]float32, 0, total*3),
		UVs:       make([]float32, 0, total*2),
		Indices:   make([]uint32, 0, 6*(res-1)*(res-1)),
	}

	span := float32(res - 1)
	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			m.Positions = append(m.Positions,
				t.origin.X+float32(j)/span*t.side,
				t.height(j, i),
				t.origin.Z+float32(i)/span*t.side,
			)
			n := t.vertexNormal(j, i)
			m.Normals = append(m.Normals, n.X, n.Y, n.Z)
			m.UVs = append(m.UVs,
				float32(j)*UVTiling/span,
				float32(i)*UVTiling/span,
			)
		}
	}

	for i := 0; i < res-1; i++ {
		for j := 0; j < res-1; j++ {
			topLeft := uint32(i*res + j)
			topRight := topLeft + 1
			bottomLeft := uint32((i+1)*res + j)
			bottomRight := bottomLeft + 1
			m.Indices = append(m.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return m
}
