package components

import "github.com/decker502/explosion/pkg/ecs"

// EmitterComponent is the per-instance emission state driven by ParticleSystem.
//
// This is a pure data component following ECS principles - it contains no methods.
type EmitterComponent struct {
	// Burst emitters fire once; Spawned is set after the burst.
	Spawned bool

	// SpawnAccum carries fractional particles between frames for rate emitters.
	SpawnAccum float64

	// Particle tracking, oldest first.
	ActiveParticles []ecs.EntityID
	TotalLaunched   int
}
