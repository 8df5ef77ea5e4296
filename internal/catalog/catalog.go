// Package catalog holds the static glacier reference table. The table is
// compiled in, loaded once and read-only; every lookup returns copies or
// pointers into the fixed backing slice.
package catalog

import (
	"sort"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

type Catalog struct {
	glaciers []models.Glacier
	byID     map[string]*models.Glacier
	layers   []models.IceLayer
}

// New builds the catalog from the compiled-in dataset.
func New() *Catalog {
	return newFrom(glaciers, iceLayers)
}

func newFrom(gs []models.Glacier, ls []models.IceLayer) *Catalog {
	c := &Catalog{
		glaciers: gs,
		byID:     make(map[string]*models.Glacier, len(gs)),
		layers:   ls,
	}
	for i := range c.glaciers {
		c.byID[c.glaciers[i].ID] = &c.glaciers[i]
	}
	return c
}

// All returns every glacier record, ordered by descending area.
func (c *Catalog) All() []models.Glacier {
	out := make([]models.Glacier, len(c.glaciers))
	copy(out, c.glaciers)
	sort.Slice(out, func(i, j int) bool { return out[i].AreaKm2 > out[j].AreaKm2 })
	return out
}

// ByID returns the glacier with the given id, or nil if unknown.
func (c *Catalog) ByID(id string) *models.Glacier {
	return c.byID[id]
}

func (c *Catalog) ByRegion(region string) []models.Glacier {
	return c.Filter(func(g *models.Glacier) bool { return g.Region == region })
}

func (c *Catalog) ByStatus(status models.GlacierStatus) []models.Glacier {
	return c.Filter(func(g *models.Glacier) bool { return g.Status == status })
}

// Filter returns all records matching pred, in dataset order.
func (c *Catalog) Filter(pred func(*models.Glacier) bool) []models.Glacier {
	var out []models.Glacier
	for i := range c.glaciers {
		if pred(&c.glaciers[i]) {
			out = append(out, c.glaciers[i])
		}
	}
	return out
}

// Layers returns the layer-explainer table, surface first.
func (c *Catalog) Layers() []models.IceLayer {
	out := make([]models.IceLayer, len(c.layers))
	copy(out, c.layers)
	return out
}

// Stats summarizes the dataset for the footer of the map view.
type Stats struct {
	Count          int     `json:"count"`
	TotalAreaKm2   float64 `json:"total_area_km2"`
	TotalVolumeKm3 float64 `json:"total_volume_km3"`
	Stable         int     `json:"stable"`
	Melting        int     `json:"melting"`
	Critical       int     `json:"critical"`
}

func (c *Catalog) Stats() Stats {
	var s Stats
	s.Count = len(c.glaciers)
	for i := range c.glaciers {
		g := &c.glaciers[i]
		s.TotalAreaKm2 += g.AreaKm2
		s.TotalVolumeKm3 += g.VolumeKm3
		switch g.Status {
		case models.StatusStable:
			s.Stable++
		case models.StatusMelting:
			s.Melting++
		case models.StatusCritical:
			s.Critical++
		}
	}
	return s
}
