package mesh

import (
	"sync"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

type Kind string

const (
	KindTerrain Kind = "terrain"
	KindGlacier Kind = "glacier"
)

type cacheKey struct {
	Kind       Kind
	GlacierID  string
	Resolution int
}

// Cache memoizes built geometry by (kind, glacier, resolution). Geometry is
// rebuilt only when one of those inputs changes; repeated requests share the
// same immutable buffers.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*Geometry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*Geometry)}
}

func (c *Cache) Terrain(resolution int, g *models.Glacier) *Geometry {
	return c.get(cacheKey{KindTerrain, idOf(g), resolution}, func() *Geometry {
		return Terrain(resolution, g)
	})
}

func (c *Cache) GlacierBody(resolution int, g *models.Glacier) *Geometry {
	shape := models.ShapeValley
	if g != nil {
		shape = g.Shape
	}
	return c.get(cacheKey{KindGlacier, idOf(g), resolution}, func() *Geometry {
		return GlacierBody(resolution, shape, g)
	})
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) get(key cacheKey, build func() *Geometry) *Geometry {
	c.mu.RLock()
	g, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return g
	}

	built := build()

	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.entries[key]; ok {
		// Lost the race; builds are deterministic so either copy serves.
		return g
	}
	c.entries[key] = built
	return built
}

func idOf(g *models.Glacier) string {
	if g == nil {
		return ""
	}
	return g.ID
}
