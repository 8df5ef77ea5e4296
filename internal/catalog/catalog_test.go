package catalog

import (
	"testing"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

func TestCatalog_ByID(t *testing.T) {
	c := New()

	g := c.ByID("fedchenko")
	if g == nil {
		t.Fatal("expected fedchenko in the catalog")
	}
	if g.VolumeKm3 != 144 {
		t.Errorf("expected volume 144, got %v", g.VolumeKm3)
	}
	if g.ThicknessM != 1000 {
		t.Errorf("expected thickness 1000, got %v", g.ThicknessM)
	}

	if c.ByID("no-such-glacier") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestCatalog_AllSortedByArea(t *testing.T) {
	all := New().All()
	if len(all) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	for i := 1; i < len(all); i++ {
		if all[i].AreaKm2 > all[i-1].AreaKm2 {
			t.Errorf("catalog not sorted by area at %d", i)
		}
	}
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, g := range New().All() {
		if seen[g.ID] {
			t.Errorf("duplicate glacier id %q", g.ID)
		}
		seen[g.ID] = true
		if g.ID == "" || g.Name == "" || g.NameTajik == "" {
			t.Errorf("glacier %q missing names", g.ID)
		}
		if g.AreaKm2 <= 0 || g.VolumeKm3 <= 0 || g.ThicknessM <= 0 {
			t.Errorf("glacier %q has non-positive metrics", g.ID)
		}
		if g.ElevationMax <= g.ElevationMin {
			t.Errorf("glacier %q has inverted elevation range", g.ID)
		}
	}
}

func TestCatalog_Filters(t *testing.T) {
	c := New()

	for _, g := range c.ByStatus(models.StatusCritical) {
		if g.Status != models.StatusCritical {
			t.Errorf("ByStatus returned %q with status %s", g.ID, g.Status)
		}
	}

	region := c.ByRegion("Gorno-Badakhshan")
	if len(region) == 0 {
		t.Error("expected glaciers in Gorno-Badakhshan")
	}

	big := c.Filter(func(g *models.Glacier) bool { return g.AreaKm2 > 500 })
	if len(big) != 1 || big[0].ID != "fedchenko" {
		t.Errorf("expected only fedchenko above 500 km2, got %d records", len(big))
	}
}

func TestCatalog_Stats(t *testing.T) {
	c := New()
	s := c.Stats()

	if s.Count != len(c.All()) {
		t.Errorf("stats count %d != catalog size %d", s.Count, len(c.All()))
	}
	if s.Stable+s.Melting+s.Critical != s.Count {
		t.Error("status counts do not add up")
	}
	if s.TotalVolumeKm3 <= 144 {
		t.Errorf("expected total volume above fedchenko alone, got %v", s.TotalVolumeKm3)
	}
}

func TestCatalog_LayersOrdered(t *testing.T) {
	layers := New().Layers()
	if len(layers) < 3 {
		t.Fatalf("expected a full layer table, got %d", len(layers))
	}
	if layers[0].ID != "snow" {
		t.Errorf("expected surface layer first, got %q", layers[0].ID)
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].DepthFromM != layers[i-1].DepthToM {
			t.Errorf("layer %q does not start where %q ends", layers[i].ID, layers[i-1].ID)
		}
	}
}
