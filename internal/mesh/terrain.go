package mesh

import (
	"math"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

const (
	terrainExtent    = 40.0
	terrainMinHeight = 0.15
	terrainEdgeStart = 16.0
	terrainEdgeFade  = 4.0
)

// Fixed peak bumps of the mountain backdrop: offset from center, height,
// falloff radius.
var terrainPeaks = [4]struct {
	x, z, height, radius float64
}{
	{-12, -9, 7.5, 6.0},
	{10, -13, 9.0, 5.5},
	{14, 8, 6.0, 6.5},
	{-9, 12, 8.2, 5.0},
}

// Terrain builds the mountain backdrop height field. When g is non-nil the
// whole field is scaled by the glacier's elevation range and the noise is
// seeded from its identifier, so each glacier gets a distinct but
// reproducible backdrop.
func Terrain(resolution int, g *models.Glacier) *Geometry {
	seed := glacierSeed("")
	scale := 1.0
	if g != nil {
		seed = glacierSeed(g.ID)
		scale = clamp(g.ElevationRange()/2500.0, 0.6, 1.8)
	}

	return buildGrid(resolution, terrainExtent, terrainExtent, func(x, z float64) float64 {
		h := 2.2 * noise2(seed, x*0.11, z*0.11)

		// Mountain range undulation.
		h += 1.6 * math.Sin(x*0.23+1.7) * math.Cos(z*0.18)
		h += 0.9 * math.Sin((x+z)*0.31)
		h += 0.5 * math.Cos(x*0.42-z*0.27)

		for _, p := range terrainPeaks {
			dx := x - p.x
			dz := z - p.z
			h += p.height * math.Exp(-(dx*dx+dz*dz)/(2*p.radius*p.radius))
		}

		// Central valley: dampen the field near the origin so the glacier
		// body sits in a basin.
		h *= 1.0 - 0.65*math.Exp(-(x*x+z*z)/(2*5.0*5.0))

		// Flatten toward the border of the extent.
		if d := math.Max(math.Abs(x), math.Abs(z)); d > terrainEdgeStart {
			h *= clamp(1.0-(d-terrainEdgeStart)/terrainEdgeFade, 0, 1)
		}

		h *= scale
		if h < terrainMinHeight {
			h = terrainMinHeight
		}
		return h
	})
}
