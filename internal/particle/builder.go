package particle

import (
	"fmt"
	"math"

	"github.com/decker502/explosion/pkg/types"
)

// Builder assembles an EffectTemplate step by step.
//
// Example usage:
//
//	gradient := NewGradient().
//	    AddKey(0, types.Vec4{X: 1, W: 1}).
//	    AddKey(1, types.Vec4Splat(0))
//	tmpl, err := NewBuilder("MyEffect", 32768, Once(5)).
//	    InitPosition(SpherePosition{Radius: 2}).
//	    InitVelocity(RadialVelocity{Speed: 6}).
//	    Lifetime(1).
//	    Accel(types.Vec3{Y: -3}).
//	    ColorOverLifetime(ColorOverLifetime{Gradient: gradient, Mask: MaskRGBA}).
//	    Build()
type Builder struct {
	tmpl EffectTemplate
}

// NewBuilder starts a template with the given name, particle capacity and spawner.
func NewBuilder(name string, capacity int, spawner SpawnerSettings) *Builder {
	return &Builder{tmpl: EffectTemplate{
		Name:      name,
		Capacity:  capacity,
		Spawner:   spawner,
		Lifetime:  1,
		BaseColor: types.ColorWhite,
	}}
}

// InitPosition sets the spawn position distribution.
func (b *Builder) InitPosition(p SpherePosition) *Builder {
	b.tmpl.InitPosition = p
	return b
}

// InitVelocity sets the spawn velocity distribution.
func (b *Builder) InitVelocity(v RadialVelocity) *Builder {
	b.tmpl.InitVelocity = v
	return b
}

// Lifetime sets the per-particle lifetime in seconds.
func (b *Builder) Lifetime(seconds float64) *Builder {
	b.tmpl.Lifetime = seconds
	return b
}

// Accel sets the constant per-second acceleration.
func (b *Builder) Accel(a types.Vec3) *Builder {
	b.tmpl.Accel = a
	return b
}

// ColorOverLifetime sets the render-time color gradient.
func (b *Builder) ColorOverLifetime(c ColorOverLifetime) *Builder {
	b.tmpl.ColorOverLifetime = c
	return b
}

// BaseColor sets the color the gradient is blended onto.
func (b *Builder) BaseColor(c types.Vec4) *Builder {
	b.tmpl.BaseColor = c
	return b
}

// Build validates the configuration and returns an immutable template.
// The gradient is copied so later changes to the caller's gradient do not leak in.
func (b *Builder) Build() (*EffectTemplate, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	tmpl := b.tmpl
	if g := tmpl.ColorOverLifetime.Gradient; g != nil {
		tmpl.ColorOverLifetime.Gradient = &Gradient{keys: g.Keys(), Interpolation: g.Interpolation}
	}
	return &tmpl, nil
}

func (b *Builder) validate() error {
	t := &b.tmpl
	if t.Name == "" {
		return fieldError("name", "must not be empty")
	}
	if t.Capacity <= 0 {
		return fieldError("capacity", "must be > 0, got %d", t.Capacity)
	}
	if t.Spawner.Count < 0 || t.Spawner.Rate < 0 || math.IsNaN(t.Spawner.Count) || math.IsNaN(t.Spawner.Rate) {
		return fieldError("spawner", "count and rate must be >= 0")
	}
	if t.InitPosition.Radius < 0 || math.IsNaN(t.InitPosition.Radius) {
		return fieldError("init_position.radius", "must be >= 0, got %v", t.InitPosition.Radius)
	}
	if t.InitVelocity.Speed < 0 || math.IsNaN(t.InitVelocity.Speed) {
		return fieldError("init_velocity.speed", "must be >= 0, got %v", t.InitVelocity.Speed)
	}
	if t.Lifetime <= 0 || math.IsNaN(t.Lifetime) {
		return fieldError("lifetime", "must be > 0, got %v", t.Lifetime)
	}
	if g := t.ColorOverLifetime.Gradient; g != nil {
		if err := g.validate(); err != nil {
			return err
		}
	}
	return nil
}

// fieldError wraps ErrInvalidTemplate with the offending field.
func fieldError(field, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidTemplate, field, fmt.Sprintf(format, args...))
}

// ExplosionTemplate returns the scene's explosion effect: five particles burst
// once from the surface of a radius-2 sphere, fly outward at 6 units/s, fall
// under a (0, -3, 0) acceleration and fade from red to transparent black over
// their 1 second lifetime.
func ExplosionTemplate() *EffectTemplate {
	gradient := NewGradient().
		AddKey(0, types.Vec4{X: 1, Y: 0, Z: 0, W: 1}).
		AddKey(1, types.Vec4Splat(0))

	tmpl, err := NewBuilder("MyEffect", 32768, Once(5)).
		InitPosition(SpherePosition{Center: types.Vec3Zero, Radius: 2, Dimension: DimensionSurface}).
		InitVelocity(RadialVelocity{Center: types.Vec3Zero, Speed: 6}).
		Lifetime(1).
		Accel(types.Vec3{Y: -3}).
		ColorOverLifetime(ColorOverLifetime{
			Gradient: gradient,
			Blend:    BlendModulate,
			Mask:     MaskRGBA,
		}).
		Build()
	if err != nil {
		// literals above are valid
		panic(err)
	}
	return tmpl
}
