// Package simulation computes melt outcomes from a glacier's static fields
// and the user-chosen stress parameters, and drives timed simulation runs.
package simulation

import (
	"errors"
	"math"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

// ErrNoGlacier is returned when a simulation is requested without a
// selected glacier. The operation is rejected before any computation.
var ErrNoGlacier = errors.New("no glacier selected")

// Widget-enforced parameter bounds. Compute clamps to the same ranges so
// the formulas stay total over any caller input.
const (
	MinIntensity = 10.0
	MaxIntensity = 100.0
	MinTempDelta = 1.0
	MaxTempDelta = 10.0
)

const (
	riskMediumThreshold = 0.3
	riskHighThreshold   = 0.7
)

// stressWeight scales the stability ratio per stress cause. Ordering:
// seismic shaking destabilizes most, gradual warming least.
func stressWeight(s models.StressType) float64 {
	switch s {
	case models.StressSeismic:
		return 1.0
	case models.StressRockfall:
		return 0.8
	default:
		return 0.6
	}
}

// Compute derives the full simulation result. Pure: identical inputs give
// identical outputs, and every output is finite and non-negative for any
// finite input.
func Compute(g *models.Glacier, in models.SimulationInput) (models.SimulationResult, error) {
	if g == nil {
		return models.SimulationResult{}, ErrNoGlacier
	}

	intensity := clamp(in.Intensity, MinIntensity, MaxIntensity) / 100.0
	tempDelta := clamp(in.TemperatureDelta, MinTempDelta, MaxTempDelta) / 10.0

	iceLoss := g.VolumeKm3 * intensity * tempDelta * 0.1
	meltwater := iceLoss * 0.9
	crackDepth := g.ThicknessM * intensity * 0.3

	population := int64(math.Round(g.AreaKm2 / 100.0 * 50000.0 * intensity))

	return models.SimulationResult{
		IceVolumeLossKm3:   iceLoss,
		MeltwaterKm3:       meltwater,
		CrackDepthM:        crackDepth,
		StabilityRisk:      bucket(intensity * stressWeight(in.Stress)),
		FloodRisk:          bucket(intensity * tempDelta),
		PopulationRisk:     bucket(clamp(float64(population)/100000.0, 0, 1)),
		DamageMillionUSD:   iceLoss * 10,
		AffectedPopulation: population,
	}, nil
}

// bucket maps a derived ratio onto the three risk levels.
func bucket(ratio float64) models.RiskLevel {
	switch {
	case ratio < riskMediumThreshold:
		return models.RiskLow
	case ratio < riskHighThreshold:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
