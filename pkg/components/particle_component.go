package components

import (
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/types"
)

// ParticleComponent represents a single simulated particle. Its position lives
// in the entity's TransformComponent; the owning effect instance is its parent.
//
// This is a pure data component following ECS principles - it contains no methods.
type ParticleComponent struct {
	Velocity types.Vec3 // units per second
	Accel    types.Vec3 // units per second squared

	Age      float64 // seconds alive
	Lifetime float64 // seconds before removal

	BaseColor types.Vec4
	Color     types.Vec4 // BaseColor with the lifetime gradient applied

	Emitter ecs.EntityID
}
