// Package particle describes particle effect templates: how many particles an
// effect may hold, how they are emitted, where they start, how they move and
// how their color changes over their lifetime.
//
// A template is built once (from code or from a YAML file), validated, and then
// shared read-only by every effect instance spawned from it. The simulation
// itself lives in pkg/systems.ParticleSystem.
package particle

import (
	"errors"

	"github.com/decker502/explosion/pkg/types"
)

// ErrInvalidTemplate is wrapped by every validation failure returned from Build.
var ErrInvalidTemplate = errors.New("invalid effect template")

// ShapeDimension selects whether positions are sampled on a shape's surface or
// inside its volume.
type ShapeDimension int

const (
	// DimensionSurface samples on the surface of the shape.
	DimensionSurface ShapeDimension = iota
	// DimensionVolume samples uniformly inside the shape.
	DimensionVolume
)

func (d ShapeDimension) String() string {
	if d == DimensionVolume {
		return "volume"
	}
	return "surface"
}

// BlendMode controls how the gradient color combines with a particle's base color.
type BlendMode int

const (
	// BlendModulate multiplies the base color by the gradient color.
	BlendModulate BlendMode = iota
	// BlendOverwrite replaces the base color with the gradient color.
	BlendOverwrite
	// BlendAdd adds the gradient color to the base color.
	BlendAdd
)

func (m BlendMode) String() string {
	switch m {
	case BlendOverwrite:
		return "overwrite"
	case BlendAdd:
		return "add"
	default:
		return "modulate"
	}
}

// BlendMask selects which color channels the gradient affects.
type BlendMask uint8

const (
	MaskR BlendMask = 1 << iota
	MaskG
	MaskB
	MaskA

	MaskRGB  = MaskR | MaskG | MaskB
	MaskRGBA = MaskRGB | MaskA
)

// SpawnerSettings controls particle emission for one effect instance.
//
// Once spawns Count particles in a single burst when the instance is created.
// Otherwise particles are emitted continuously at Rate per second.
type SpawnerSettings struct {
	Count float64 // Particles per burst (Once mode)
	Rate  float64 // Particles per second (continuous mode)
	Once  bool
}

// Once returns settings for a single burst of count particles.
func Once(count float64) SpawnerSettings {
	return SpawnerSettings{Count: count, Once: true}
}

// Rate returns settings for continuous emission.
func Rate(perSecond float64) SpawnerSettings {
	return SpawnerSettings{Rate: perSecond}
}

// SpherePosition initializes particle positions on (or in) a sphere.
type SpherePosition struct {
	Center    types.Vec3
	Radius    float64
	Dimension ShapeDimension
}

// RadialVelocity initializes particle velocity pointing away from Center.
type RadialVelocity struct {
	Center types.Vec3
	Speed  float64
}

// ColorOverLifetime maps a gradient across the particle's normalized age.
type ColorOverLifetime struct {
	Gradient *Gradient
	Blend    BlendMode
	Mask     BlendMask
}

// Apply combines base with the gradient sample at t according to the blend
// mode, touching only the masked channels.
func (c ColorOverLifetime) Apply(base types.Vec4, t float64) types.Vec4 {
	if c.Gradient == nil {
		return base
	}
	sample := c.Gradient.Sample(t)

	var blended types.Vec4
	switch c.Blend {
	case BlendOverwrite:
		blended = sample
	case BlendAdd:
		blended = base.Add(sample).Clamp01()
	default:
		blended = base.Mul(sample)
	}

	out := base
	if c.Mask&MaskR != 0 {
		out.X = blended.X
	}
	if c.Mask&MaskG != 0 {
		out.Y = blended.Y
	}
	if c.Mask&MaskB != 0 {
		out.Z = blended.Z
	}
	if c.Mask&MaskA != 0 {
		out.W = blended.W
	}
	return out
}

// EffectTemplate is the immutable description of a particle effect.
//
// Templates are produced by Builder.Build and must not be modified afterwards;
// every effect instance spawned from a template reads it concurrently within a
// frame without copying.
type EffectTemplate struct {
	Name string

	// Capacity is the maximum number of particles alive at once per instance.
	// When full, the oldest particle is evicted to make room.
	Capacity int

	Spawner      SpawnerSettings
	InitPosition SpherePosition
	InitVelocity RadialVelocity

	// Lifetime is the total simulated and rendered time of each particle (seconds).
	Lifetime float64

	// Accel is added to each particle's velocity every second (gravity-like).
	Accel types.Vec3

	ColorOverLifetime ColorOverLifetime

	// BaseColor is the particle color before the gradient is applied.
	BaseColor types.Vec4
}

// BurstCount returns the number of particles emitted by a Once spawner,
// rounded down and never negative.
func (t *EffectTemplate) BurstCount() int {
	if !t.Spawner.Once || t.Spawner.Count <= 0 {
		return 0
	}
	return int(t.Spawner.Count)
}
