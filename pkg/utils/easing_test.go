package utils

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	for name, e := range easings {
		if got := e(0); math.Abs(got) > 1e-9 {
			t.Errorf("%q(0) = %v, want 0", name, got)
		}
		if got := e(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%q(1) = %v, want 1", name, got)
		}
	}
}

func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Linear", 0.25, 0.25},
		{"EaseIn", 0.5, 0.25},
		{"EaseOut", 0.5, 0.75},
		{"FastInOutWeak", 0.5, 0.5},
		{"FastInOutWeak", 0.25, 0.15625},
		{"EaseOutCubic", 0.5, 0.875},
		{"EaseInCubic", 0.5, 0.125},
		{"EaseInOutCubic", 0.25, 0.0625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := EasingByName(tt.name)
			if !ok {
				t.Fatalf("easing %q not registered", tt.name)
			}
			if got := e(tt.input); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("%s(%v) = %v, 期望 %v", tt.name, tt.input, got, tt.expected)
			}
		})
	}
}

func TestEasingByNameUnknown(t *testing.T) {
	if _, ok := EasingByName("Bounce"); ok {
		t.Error("unknown easing should not be found")
	}
	if e, ok := EasingByName(""); !ok || e(0.3) != 0.3 {
		t.Error("empty name should fall back to linear")
	}
}
