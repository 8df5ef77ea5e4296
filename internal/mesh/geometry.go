// Package mesh builds the procedural geometry consumed by the rendering
// frontend: the mountain backdrop and the glacier body. All builders are
// deterministic for identical inputs.
package mesh

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// Geometry is a triangle mesh ready for rendering. Buffers are flat:
// positions and normals carry 3 floats per vertex, uvs 2 floats per vertex,
// indices 3 uint32s per triangle.
type Geometry struct {
	Positions []float32 `json:"positions"`
	Normals   []float32 `json:"normals"`
	UVs       []float32 `json:"uvs"`
	Indices   []uint32  `json:"indices"`
}

func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

func (g *Geometry) IsEmpty() bool {
	return len(g.Positions) == 0
}

// buildGrid samples height over a res x res cell grid centered on the
// origin, covering width along X and depth along Z. It emits (res+1)^2
// vertices and 2*res^2 triangles with consistent CCW winding, then
// recomputes vertex normals from the final geometry.
func buildGrid(res int, width, depth float64, height func(x, z float64) float64) *Geometry {
	if res < 1 {
		res = 1
	}
	side := res + 1
	g := &Geometry{
		Positions: make([]float32, 0, side*side*3),
		UVs:       make([]float32, 0, side*side*2),
		Indices:   make([]uint32, 0, res*res*6),
	}

	for iz := 0; iz < side; iz++ {
		for ix := 0; ix < side; ix++ {
			u := float64(ix) / float64(res)
			v := float64(iz) / float64(res)
			x := (u - 0.5) * width
			z := (v - 0.5) * depth
			y := height(x, z)
			g.Positions = append(g.Positions, float32(x), float32(y), float32(z))
			g.UVs = append(g.UVs, float32(u), float32(v))
		}
	}

	for iz := 0; iz < res; iz++ {
		for ix := 0; ix < res; ix++ {
			a := uint32(iz*side + ix)
			b := a + 1
			c := a + uint32(side)
			d := c + 1
			g.Indices = append(g.Indices, a, c, b, b, c, d)
		}
	}

	g.Normals = computeNormals(g.Positions, g.Indices)
	return g
}

// computeNormals accumulates area-weighted face normals per vertex and
// normalizes the result.
func computeNormals(positions []float32, indices []uint32) []float32 {
	acc := make([]vec3.T, len(positions)/3)

	for i := 0; i+2 < len(indices); i += 3 {
		ia, ib, ic := indices[i], indices[i+1], indices[i+2]
		a := vertexAt(positions, ia)
		b := vertexAt(positions, ib)
		c := vertexAt(positions, ic)

		ab := vec3.Sub(&b, &a)
		ac := vec3.Sub(&c, &a)
		n := vec3.Cross(&ab, &ac)

		acc[ia].Add(&n)
		acc[ib].Add(&n)
		acc[ic].Add(&n)
	}

	out := make([]float32, len(positions))
	for i := range acc {
		n := acc[i]
		if n.LengthSqr() > 0 {
			n.Normalize()
		} else {
			n = vec3.T{0, 1, 0}
		}
		out[i*3] = float32(n[0])
		out[i*3+1] = float32(n[1])
		out[i*3+2] = float32(n[2])
	}
	return out
}

func vertexAt(positions []float32, i uint32) vec3.T {
	return vec3.T{
		float64(positions[i*3]),
		float64(positions[i*3+1]),
		float64(positions[i*3+2]),
	}
}
