// Package scene assembles the render tree consumed by the frontend: camera,
// lights, starfield, terrain and glacier meshes, glow shells and drift
// particles. The package owns no rendering; it only emits a serializable
// graph and advances its animation state per tick.
package scene

import (
	"math/rand"

	"github.com/pamirlabs/glacier-atlas/internal/mesh"
	"github.com/pamirlabs/glacier-atlas/internal/models"
)

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HSL color; H in degrees [0,360), S and L in [0,1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type Material struct {
	Color    HSL     `json:"color"`
	Opacity  float64 `json:"opacity"`
	Emissive float64 `json:"emissive"`
}

type Transform struct {
	Position Vec3 `json:"position"`
	Scale    Vec3 `json:"scale"`
}

type NodeKind string

const (
	NodeTerrain NodeKind = "terrain"
	NodeGlacier NodeKind = "glacier"
	NodeGlow    NodeKind = "glow"
)

type Node struct {
	ID        string         `json:"id"`
	Kind      NodeKind       `json:"kind"`
	Transform Transform      `json:"transform"`
	Material  Material       `json:"material"`
	Geometry  *mesh.Geometry `json:"geometry,omitempty"`
}

type Particle struct {
	Position Vec3 `json:"position"`
	Velocity Vec3 `json:"velocity"`
}

type Camera struct {
	Position Vec3    `json:"position"`
	LookAt   Vec3    `json:"look_at"`
	FOV      float64 `json:"fov"`
}

type LightKind string

const (
	LightAmbient     LightKind = "ambient"
	LightDirectional LightKind = "directional"
)

type Light struct {
	Kind      LightKind `json:"kind"`
	Intensity float64   `json:"intensity"`
	Position  Vec3      `json:"position"`
}

// Scene is the full render tree for one glacier.
type Scene struct {
	GlacierID string     `json:"glacier_id,omitempty"`
	Camera    Camera     `json:"camera"`
	Lights    []Light    `json:"lights"`
	Stars     []Vec3     `json:"stars"`
	Nodes     []*Node    `json:"nodes"`
	Particles []Particle `json:"particles"`
}

// Node returns the node with the given id, or nil.
func (s *Scene) Node(id string) *Node {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

const (
	starCount     = 220
	particleCount = 48

	iceHue        = 205.0
	iceSaturation = 0.55
	iceLightness  = 0.78
	iceOpacity    = 0.95
)

// Compose assembles the scene for a glacier. Geometry comes from the shared
// mesh cache; the starfield and initial particle cloud are seeded from the
// glacier id so composition is reproducible.
func Compose(g *models.Glacier, meshes *mesh.Cache, resolution int) *Scene {
	rng := rand.New(rand.NewSource(seedFor(g)))

	s := &Scene{
		Camera: Camera{
			Position: Vec3{X: 0, Y: 14, Z: 26},
			LookAt:   Vec3{X: 0, Y: 2, Z: 0},
			FOV:      55,
		},
		Lights: []Light{
			{Kind: LightAmbient, Intensity: 0.45},
			{Kind: LightDirectional, Intensity: 1.1, Position: Vec3{X: -20, Y: 30, Z: 15}},
		},
	}
	if g != nil {
		s.GlacierID = g.ID
	}

	s.Stars = make([]Vec3, starCount)
	for i := range s.Stars {
		s.Stars[i] = Vec3{
			X: (rng.Float64() - 0.5) * 200,
			Y: 40 + rng.Float64()*80,
			Z: (rng.Float64() - 0.5) * 200,
		}
	}

	s.Nodes = []*Node{
		{
			ID:   "terrain",
			Kind: NodeTerrain,
			Transform: Transform{
				Scale: Vec3{X: 1, Y: 1, Z: 1},
			},
			Material: Material{
				Color:   HSL{H: 215, S: 0.18, L: 0.42},
				Opacity: 1,
			},
			Geometry: meshes.Terrain(resolution, g),
		},
		{
			ID:   "glacier",
			Kind: NodeGlacier,
			Transform: Transform{
				Position: Vec3{Y: 0.2},
				Scale:    Vec3{X: 1, Y: 1, Z: 1},
			},
			Material: Material{
				Color:   HSL{H: iceHue, S: iceSaturation, L: iceLightness},
				Opacity: iceOpacity,
			},
			Geometry: meshes.GlacierBody(resolution, g),
		},
		{
			ID:   "glow-inner",
			Kind: NodeGlow,
			Transform: Transform{
				Position: Vec3{Y: 0.2},
				Scale:    Vec3{X: 1.05, Y: 1.05, Z: 1.05},
			},
			Material: Material{
				Color:    HSL{H: 190, S: 0.9, L: 0.7},
				Opacity:  0,
				Emissive: 0.8,
			},
		},
		{
			ID:   "glow-outer",
			Kind: NodeGlow,
			Transform: Transform{
				Position: Vec3{Y: 0.2},
				Scale:    Vec3{X: 1.12, Y: 1.12, Z: 1.12},
			},
			Material: Material{
				Color:    HSL{H: 200, S: 0.85, L: 0.6},
				Opacity:  0,
				Emissive: 0.5,
			},
		},
	}

	s.Particles = make([]Particle, particleCount)
	for i := range s.Particles {
		s.Particles[i] = spawnParticle(rng)
	}

	return s
}

func spawnParticle(rng *rand.Rand) Particle {
	return Particle{
		Position: Vec3{
			X: (rng.Float64() - 0.5) * 20,
			Y: particleTop - rng.Float64()*2,
			Z: (rng.Float64() - 0.5) * 8,
		},
		Velocity: Vec3{
			X: (rng.Float64() - 0.5) * 0.6,
			Y: -0.8 - rng.Float64()*1.2,
			Z: (rng.Float64() - 0.5) * 0.6,
		},
	}
}

func seedFor(g *models.Glacier) int64 {
	if g == nil || g.ID == "" {
		return 0x51ac
	}
	var h int64
	for _, r := range g.ID {
		h = h*31 + int64(r)
	}
	return h
}
