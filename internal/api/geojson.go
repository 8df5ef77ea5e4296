package api

import (
	"github.com/pamirlabs/glacier-atlas/internal/models"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// toGeoJSON renders the catalog as point features for the map view.
func toGeoJSON(glaciers []models.Glacier) FeatureCollection {
	features := make([]Feature, 0, len(glaciers))

	for i := range glaciers {
		g := &glaciers[i]
		pos := g.Coordinates()
		f := Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				// GeoJSON positions are longitude first.
				Coordinates: []float64{pos.Longitude, pos.Latitude},
			},
			Properties: map[string]any{
				"id":          g.ID,
				"name":        g.Name,
				"name_tj":     g.NameTajik,
				"area_km2":    g.AreaKm2,
				"volume_km3":  g.VolumeKm3,
				"status":      string(g.Status),
				"risk":        string(g.Risk),
				"region":      g.Region,
				"melt_rate":   g.MeltRate,
				"description": g.Description,
			},
		}
		features = append(features, f)
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
