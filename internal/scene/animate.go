package scene

import (
	"math"
	"math/rand"
)

// Per-frame constants. Glow layers pulse at fixed frequency/amplitude pairs;
// the melt interpolation targets approximate silty meltwater.
const (
	bobFrequency = 0.8
	bobAmplitude = 0.15

	glowInnerFreq = 2.1
	glowInnerBase = 0.30
	glowInnerAmp  = 0.25
	glowOuterFreq = 1.4
	glowOuterBase = 0.20
	glowOuterAmp  = 0.15

	meltHue        = 197.0
	meltSaturation = 0.85
	meltLightness  = 0.45
	meltMinOpacity = 0.35

	meltShrinkY = 0.45
	meltSpreadX = 0.18
	meltSpreadZ = 0.18

	particleTop   = 8.0
	particleFloor = -1.0
)

// State is the UI-driven input to a frame step.
type State struct {
	Selected bool
	Melting  bool
	// Progress is the melt progress in [0,1]; ignored unless Melting.
	Progress float64
}

// Animator advances a scene's materials, transforms and particles once per
// rendered frame. It snapshots the composed scene as the neutral pose, so
// every step interpolates from the same baseline instead of compounding.
type Animator struct {
	scene    *Scene
	baseline map[string]baseState
	rng      *rand.Rand
	lastTime float64
	started  bool
}

type baseState struct {
	position Vec3
	scale    Vec3
	material Material
}

func NewAnimator(s *Scene) *Animator {
	a := &Animator{
		scene:    s,
		baseline: make(map[string]baseState),
		rng:      rand.New(rand.NewSource(0x7e1c)),
	}
	if s != nil {
		for _, n := range s.Nodes {
			a.baseline[n.ID] = baseState{
				position: n.Transform.Position,
				scale:    n.Transform.Scale,
				material: n.Material,
			}
		}
	}
	return a
}

// Step applies one frame at absolute time t (seconds). It silently no-ops
// for any node the scene does not carry.
func (a *Animator) Step(t float64, st State) {
	if a.scene == nil {
		return
	}
	dt := 0.0
	if a.started {
		dt = t - a.lastTime
		if dt < 0 {
			dt = 0
		}
	}
	a.started = true
	a.lastTime = t

	a.stepGlacier(t, st)
	a.stepGlow(t, st)
	if st.Melting {
		a.stepParticles(dt, clamp01(st.Progress))
	}
}

func (a *Animator) stepGlacier(t float64, st State) {
	n := a.scene.Node("glacier")
	if n == nil {
		return
	}
	base, ok := a.baseline[n.ID]
	if !ok {
		return
	}

	// Idle floating motion.
	n.Transform.Position = base.position
	n.Transform.Position.Y = base.position.Y + math.Sin(t*bobFrequency)*bobAmplitude

	if !st.Melting {
		n.Transform.Scale = base.scale
		n.Material = base.material
		return
	}

	p := clamp01(st.Progress)

	// Shift the ice toward a meltwater appearance and thin it out.
	n.Material.Color.H = lerp(base.material.Color.H, meltHue, p)
	n.Material.Color.S = lerp(base.material.Color.S, meltSaturation, p)
	n.Material.Color.L = lerp(base.material.Color.L, meltLightness, p)
	n.Material.Opacity = lerp(base.material.Opacity, meltMinOpacity, p)

	// Shrink vertically, spread horizontally.
	n.Transform.Scale = Vec3{
		X: base.scale.X * (1 + meltSpreadX*p),
		Y: base.scale.Y * (1 - meltShrinkY*p),
		Z: base.scale.Z * (1 + meltSpreadZ*p),
	}
}

func (a *Animator) stepGlow(t float64, st State) {
	inner := a.scene.Node("glow-inner")
	outer := a.scene.Node("glow-outer")

	if !st.Selected {
		if inner != nil {
			inner.Material.Opacity = 0
		}
		if outer != nil {
			outer.Material.Opacity = 0
		}
		return
	}

	if inner != nil {
		inner.Material.Opacity = glowInnerBase + glowInnerAmp*math.Sin(t*glowInnerFreq)
	}
	if outer != nil {
		outer.Material.Opacity = glowOuterBase + glowOuterAmp*math.Sin(t*glowOuterFreq)
	}
}

func (a *Animator) stepParticles(dt, progress float64) {
	for i := range a.scene.Particles {
		p := &a.scene.Particles[i]
		p.Position.X += p.Velocity.X * dt * progress
		p.Position.Y += p.Velocity.Y * dt * progress
		p.Position.Z += p.Velocity.Z * dt * progress

		if p.Position.Y < particleFloor {
			*p = spawnParticle(a.rng)
		}
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
