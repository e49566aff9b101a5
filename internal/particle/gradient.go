package particle

import (
	"math"
	"sort"

	"github.com/decker502/explosion/pkg/types"
	"github.com/decker502/explosion/pkg/utils"
)

// GradientKey is one color stop of a Gradient.
type GradientKey struct {
	Ratio float64    // Normalized position in [0, 1]
	Color types.Vec4 // Linear RGBA
}

// Gradient maps a normalized ratio in [0, 1] to a color.
//
// Keys are kept sorted by ratio. Sampling before the first key returns the
// first color and after the last key the last color.
type Gradient struct {
	keys []GradientKey

	// Interpolation between keys, by easing name: "Linear" (default), "EaseIn",
	// "EaseOut", "FastInOutWeak" or one of the cubic/expo curves.
	Interpolation string
}

// NewGradient returns an empty gradient.
func NewGradient() *Gradient {
	return &Gradient{}
}

// AddKey inserts a color stop, keeping keys ordered by ratio.
// Keys sharing a ratio keep their insertion order.
func (g *Gradient) AddKey(ratio float64, color types.Vec4) *Gradient {
	i := sort.Search(len(g.keys), func(i int) bool { return g.keys[i].Ratio > ratio })
	g.keys = append(g.keys, GradientKey{})
	copy(g.keys[i+1:], g.keys[i:])
	g.keys[i] = GradientKey{Ratio: ratio, Color: color}
	return g
}

// Keys returns a copy of the color stops.
func (g *Gradient) Keys() []GradientKey {
	out := make([]GradientKey, len(g.keys))
	copy(out, g.keys)
	return out
}

// Len returns the number of color stops.
func (g *Gradient) Len() int {
	return len(g.keys)
}

// Sample evaluates the gradient at ratio t (clamped to [0, 1]).
// An empty gradient samples opaque white so it is neutral under modulation.
func (g *Gradient) Sample(t float64) types.Vec4 {
	if len(g.keys) == 0 {
		return types.ColorWhite
	}
	if len(g.keys) == 1 {
		return g.keys[0].Color
	}

	t = math.Max(0, math.Min(1, t))

	if t <= g.keys[0].Ratio {
		return g.keys[0].Color
	}

	for i := 0; i < len(g.keys)-1; i++ {
		k0 := g.keys[i]
		k1 := g.keys[i+1]
		if t >= k0.Ratio && t <= k1.Ratio {
			span := k1.Ratio - k0.Ratio
			if span <= 0 {
				return k1.Color
			}
			return k0.Color.Lerp(k1.Color, ease((t-k0.Ratio)/span, g.Interpolation))
		}
	}

	return g.keys[len(g.keys)-1].Color
}

// ease applies the interpolation curve to a ratio in [0, 1].
// Unknown names are rejected by validate, so they never reach here.
func ease(ratio float64, interpolation string) float64 {
	if e, ok := utils.EasingByName(interpolation); ok {
		return e(ratio)
	}
	return ratio
}

// validate checks that ratios lie in [0, 1] and strictly increase.
func (g *Gradient) validate() error {
	if _, ok := utils.EasingByName(g.Interpolation); !ok {
		return fieldError("gradient", "unknown interpolation %q", g.Interpolation)
	}
	for i, k := range g.keys {
		if k.Ratio < 0 || k.Ratio > 1 || math.IsNaN(k.Ratio) {
			return fieldError("gradient", "key %d ratio %.3f outside [0, 1]", i, k.Ratio)
		}
		if i > 0 && k.Ratio <= g.keys[i-1].Ratio {
			return fieldError("gradient", "key %d ratio %.3f not greater than previous %.3f", i, k.Ratio, g.keys[i-1].Ratio)
		}
	}
	return nil
}
