package models

type GlacierStatus string

const (
	StatusStable   GlacierStatus = "stable"
	StatusMelting  GlacierStatus = "melting"
	StatusCritical GlacierStatus = "critical"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// GlacierShape selects the base dimensions of the procedural glacier body.
type GlacierShape string

const (
	ShapeValley   GlacierShape = "valley"
	ShapeMountain GlacierShape = "mountain"
	ShapePiedmont GlacierShape = "piedmont"
)

// Glacier is a static reference record for one real-world glacier.
// Records are loaded once and never mutated.
type Glacier struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	NameTajik    string        `json:"name_tj"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	AreaKm2      float64       `json:"area_km2"`
	VolumeKm3    float64       `json:"volume_km3"`
	ElevationMin float64       `json:"elevation_min_m"`
	ElevationMax float64       `json:"elevation_max_m"`
	Status       GlacierStatus `json:"status"`
	MeltRate     float64       `json:"melt_rate_m_yr"`
	MeanTemp     float64       `json:"mean_temp_c"`
	ThicknessM   float64       `json:"thickness_m"`
	Risk         RiskLevel     `json:"risk"`
	Region       string        `json:"region"`
	Shape        GlacierShape  `json:"shape"`
	Description  string        `json:"description"`
}

// ElevationRange returns max minus min elevation in meters.
func (g *Glacier) ElevationRange() float64 {
	return g.ElevationMax - g.ElevationMin
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (g *Glacier) Coordinates() Coordinates {
	return Coordinates{Latitude: g.Latitude, Longitude: g.Longitude}
}

// IceLayer is one entry of the educational layer-explainer table.
type IceLayer struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameTajik   string  `json:"name_tj"`
	DepthFromM  float64 `json:"depth_from_m"`
	DepthToM    float64 `json:"depth_to_m"`
	Density     float64 `json:"density_kg_m3"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
}
