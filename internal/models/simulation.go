package models

import "time"

// StressType is the categorical cause driving a melt simulation.
type StressType string

const (
	StressRockfall StressType = "rockfall"
	StressSeismic  StressType = "seismic"
	StressWarming  StressType = "warming"
)

func (s StressType) Valid() bool {
	switch s {
	case StressRockfall, StressSeismic, StressWarming:
		return true
	}
	return false
}

// SimulationInput carries the user-chosen simulation parameters.
// Intensity is a percentage in [10,100], TemperatureDelta in [1,10] degrees.
type SimulationInput struct {
	GlacierID        string     `json:"glacier_id"`
	Stress           StressType `json:"stress_type"`
	Intensity        float64    `json:"intensity"`
	TemperatureDelta float64    `json:"temperature_delta"`
}

// SimulationResult is a pure function of the input and the selected
// glacier's static fields. Nothing here is persisted state.
type SimulationResult struct {
	IceVolumeLossKm3   float64   `json:"ice_volume_loss_km3"`
	MeltwaterKm3       float64   `json:"meltwater_km3"`
	CrackDepthM        float64   `json:"crack_depth_m"`
	StabilityRisk      RiskLevel `json:"stability_risk"`
	FloodRisk          RiskLevel `json:"flood_risk"`
	PopulationRisk     RiskLevel `json:"population_risk"`
	DamageMillionUSD   float64   `json:"damage_million_usd"`
	AffectedPopulation int64     `json:"affected_population"`
}

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusCancelled RunStatus = "cancelled"
)

// SimulationRun is one recorded execution of the simulator.
type SimulationRun struct {
	ID        string           `json:"id"`
	GlacierID string           `json:"glacier_id"`
	Stress    StressType       `json:"stress_type"`
	Intensity float64          `json:"intensity"`
	TempDelta float64          `json:"temperature_delta"`
	Result    SimulationResult `json:"result"`
	Status    RunStatus        `json:"status"`
	StartedAt time.Time        `json:"started_at"`
	EndedAt   *time.Time       `json:"ended_at,omitempty"`
}

// MeltFrame is one tick of a running simulation, streamed to subscribers.
// Progress is normalized to [0,1].
type MeltFrame struct {
	RunID        string  `json:"run_id"`
	GlacierID    string  `json:"glacier_id"`
	Progress     float64 `json:"progress"`
	MeltedKm3    float64 `json:"melted_km3"`
	MeltwaterKm3 float64 `json:"meltwater_km3"`
	Done         bool    `json:"done"`
}
