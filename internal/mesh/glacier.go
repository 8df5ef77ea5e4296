package mesh

import (
	"math"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

// Base dimensions per shape category, before real-data rescaling.
// Length runs along X, width along Z, height along Y.
type bodyDims struct {
	Length, Width, Height float64
}

var baseDims = map[models.GlacierShape]bodyDims{
	models.ShapeValley:   {Length: 22, Width: 7, Height: 2.6},
	models.ShapeMountain: {Length: 12, Width: 9, Height: 3.2},
	models.ShapePiedmont: {Length: 14, Width: 16, Height: 1.8},
}

const (
	refAreaKm2      = 100.0
	refThicknessM   = 250.0
	maxAreaScale    = 2.0
	crevasseCutoff  = 0.82
	crevasseDepth   = 0.35
	endTaperFrac    = 0.25
	ridgeAmpLong    = 0.12
	ridgeAmpAcross  = 0.08
	surfaceNoiseAmp = 0.05
)

// GlacierBody builds the glacier surface for a shape category, optionally
// scaled by real glacier metrics. The crevasse term is seeded from the
// glacier identifier, so two calls with identical inputs produce identical
// buffers.
func GlacierBody(resolution int, shape models.GlacierShape, g *models.Glacier) *Geometry {
	dims, ok := baseDims[shape]
	if !ok {
		dims = baseDims[models.ShapeValley]
	}

	seed := glacierSeed("")
	if g != nil {
		seed = glacierSeed(g.ID)

		if g.AreaKm2 > 0 {
			s := math.Sqrt(g.AreaKm2 / refAreaKm2)
			if s > maxAreaScale {
				s = maxAreaScale
			}
			dims.Length *= s
			dims.Width *= s
		}
		if g.ThicknessM > 0 {
			dims.Height *= clamp(g.ThicknessM/refThicknessM, 0.4, 2.2)
		}
	}

	halfL := dims.Length / 2
	halfW := dims.Width / 2

	return buildGrid(resolution, dims.Length, dims.Width, func(x, z float64) float64 {
		nx := x / halfL
		nz := z / halfW
		r := math.Sqrt(nx*nx + nz*nz)

		// Dome-like base taper from the centerline outward.
		h := dims.Height * math.Max(0, 1.0-0.55*r*r)

		// Longitudinal and transverse ridge lines.
		h += ridgeAmpLong * dims.Height * math.Sin(nx*math.Pi*3)
		h += ridgeAmpAcross * dims.Height * math.Sin(nz*math.Pi*5+1.3)

		// Crevasse depressions where the hash field spikes.
		if cv := noise2(seed, x*1.7, z*1.7); cv > crevasseCutoff {
			h -= dims.Height * crevasseDepth * (cv - crevasseCutoff) / (1.0 - crevasseCutoff)
		}

		// Fine surface roughness.
		h += surfaceNoiseAmp * dims.Height * (noise2(seed+1, x*3.1, z*3.1) - 0.5)

		// Taper to zero at both ends of the tongue.
		h *= clamp((1.0-math.Abs(nx))/endTaperFrac, 0, 1)

		if h < 0 {
			h = 0
		}
		return h
	})
}
