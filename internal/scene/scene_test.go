package scene

import (
	"testing"

	"github.com/pamirlabs/glacier-atlas/internal/mesh"
	"github.com/pamirlabs/glacier-atlas/internal/models"
)

func testGlacier() *models.Glacier {
	return &models.Glacier{
		ID:           "fedchenko",
		AreaKm2:      700,
		VolumeKm3:    144,
		ThicknessM:   1000,
		ElevationMin: 2900,
		ElevationMax: 5400,
		Shape:        models.ShapeValley,
	}
}

func composeTest() *Scene {
	return Compose(testGlacier(), mesh.NewCache(), 12)
}

func TestCompose_Structure(t *testing.T) {
	s := composeTest()

	if s.GlacierID != "fedchenko" {
		t.Errorf("expected glacier id on scene, got %q", s.GlacierID)
	}
	if len(s.Stars) != starCount {
		t.Errorf("expected %d stars, got %d", starCount, len(s.Stars))
	}
	if len(s.Particles) != particleCount {
		t.Errorf("expected %d particles, got %d", particleCount, len(s.Particles))
	}
	if len(s.Lights) == 0 {
		t.Error("expected lights")
	}

	for _, id := range []string{"terrain", "glacier", "glow-inner", "glow-outer"} {
		if s.Node(id) == nil {
			t.Errorf("missing node %q", id)
		}
	}

	if s.Node("terrain").Geometry == nil || s.Node("glacier").Geometry == nil {
		t.Error("expected geometry on terrain and glacier nodes")
	}
	if s.Node("glow-inner").Geometry != nil {
		t.Error("glow shells should carry no geometry of their own")
	}
	if s.Node("glow-inner").Material.Opacity != 0 {
		t.Error("glow should start invisible")
	}
}

func TestCompose_Reproducible(t *testing.T) {
	a := composeTest()
	b := composeTest()

	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("starfield differs at %d", i)
		}
	}
	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("particle cloud differs at %d", i)
		}
	}
}

func TestCompose_NilGlacier(t *testing.T) {
	s := Compose(nil, mesh.NewCache(), 8)
	if s.GlacierID != "" {
		t.Errorf("expected empty glacier id, got %q", s.GlacierID)
	}
	if s.Node("glacier").Geometry == nil {
		t.Error("expected fallback geometry for nil glacier")
	}
}
