package particle

import (
	"math"
	"math/rand"

	"github.com/decker502/explosion/pkg/types"
)

// RandomInRange returns a random float64 in the range [min, max].
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RandomUnitVector returns a direction uniformly distributed over the unit sphere.
func RandomUnitVector(rng *rand.Rand) types.Vec3 {
	z := RandomInRange(rng, -1, 1)
	phi := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(math.Max(0, 1-z*z))
	return types.Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// Sample returns a position relative to the effect origin.
func (p SpherePosition) Sample(rng *rand.Rand) types.Vec3 {
	dir := RandomUnitVector(rng)
	radius := p.Radius
	if p.Dimension == DimensionVolume {
		// 体积均匀分布：半径按立方根缩放
		radius *= math.Cbrt(rng.Float64())
	}
	return p.Center.Add(dir.Scale(radius))
}

// VelocityAt returns the velocity of a particle spawned at pos (relative to the
// effect origin). A particle exactly at the center gets a random direction.
func (v RadialVelocity) VelocityAt(pos types.Vec3, rng *rand.Rand) types.Vec3 {
	dir := pos.Sub(v.Center)
	if dir.Length() == 0 {
		dir = RandomUnitVector(rng)
	}
	return dir.Normalize().Scale(v.Speed)
}
