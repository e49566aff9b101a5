package config

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/decker502/explosion/pkg/embedded"
	"github.com/decker502/explosion/pkg/types"
)

func TestDefaultSceneConfig(t *testing.T) {
	cfg := DefaultSceneConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Camera.Position != (types.Vec3{Y: 20, Z: 50}) {
		t.Errorf("camera position = %v", cfg.Camera.Position)
	}
	if !cfg.Camera.HDR {
		t.Error("HDR should be on by default")
	}
	if cfg.Spawn.Period != 1 || cfg.Spawn.Lifetime != 1 || cfg.Spawn.CatchUp {
		t.Errorf("spawn = %+v", cfg.Spawn)
	}
	if cfg.Spawn.Position != (types.Vec3{Y: 20}) {
		t.Errorf("spawn position = %v", cfg.Spawn.Position)
	}
	if cfg.Marker.Key != "space" || cfg.Marker.Radius != 4 || cfg.Marker.Lifetime != 0 || cfg.Marker.MaxActive != 0 {
		t.Errorf("marker = %+v", cfg.Marker)
	}
	if cfg.Effect.Path != "" {
		t.Errorf("effect path = %q, want built-in", cfg.Effect.Path)
	}
}

func TestParseSceneConfigOverlay(t *testing.T) {
	data := []byte(`
spawn:
  period: 0.5
  catchUp: true
marker:
  key: " Enter "
  maxActive: 10
camera:
  clearColor: [0.1, 0.1, 0.2, 1]
`)
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Spawn.Period != 0.5 || !cfg.Spawn.CatchUp {
		t.Errorf("spawn = %+v", cfg.Spawn)
	}
	// 未覆盖的字段保持默认值
	if cfg.Spawn.Lifetime != 1 {
		t.Errorf("spawn.lifetime = %v, want default 1", cfg.Spawn.Lifetime)
	}
	if cfg.Marker.Key != "enter" || cfg.Marker.MaxActive != 10 {
		t.Errorf("marker = %+v", cfg.Marker)
	}
	if cfg.Camera.ClearColor != (types.Vec4{X: 0.1, Y: 0.1, Z: 0.2, W: 1}) {
		t.Errorf("clear color = %+v", cfg.Camera.ClearColor)
	}
	if cfg.Camera.FovY != math.Pi/4 {
		t.Errorf("fovY = %v, want default", cfg.Camera.FovY)
	}
}

func TestSceneConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SceneConfig)
	}{
		{"zero period", func(c *SceneConfig) { c.Spawn.Period = 0 }},
		{"negative lifetime", func(c *SceneConfig) { c.Spawn.Lifetime = -1 }},
		{"NaN period", func(c *SceneConfig) { c.Spawn.Period = math.NaN() }},
		{"negative radius", func(c *SceneConfig) { c.Marker.Radius = -0.5 }},
		{"negative marker lifetime", func(c *SceneConfig) { c.Marker.Lifetime = -2 }},
		{"negative max active", func(c *SceneConfig) { c.Marker.MaxActive = -1 }},
		{"unknown key", func(c *SceneConfig) { c.Marker.Key = "hyper" }},
		{"zero window", func(c *SceneConfig) { c.Window.Width = 0 }},
		{"flat fov", func(c *SceneConfig) { c.Camera.FovY = 0 }},
		{"zero near", func(c *SceneConfig) { c.Camera.Near = 0 }},
		{"zero frequency", func(c *SceneConfig) { c.Sound.Frequency = 0 }},
		{"frequency above limit", func(c *SceneConfig) { c.Sound.Frequency = 30000 }},
		{"zero sound duration", func(c *SceneConfig) { c.Sound.Duration = 0 }},
		{"negative sound duration", func(c *SceneConfig) { c.Sound.Duration = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSceneConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseSceneConfigErrors(t *testing.T) {
	if _, err := ParseSceneConfig([]byte("spawn: [1, 2")); err == nil {
		t.Error("malformed YAML should fail")
	}
	if _, err := ParseSceneConfig([]byte("spawn:\n  period: -1\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative period error = %v", err)
	}
}

func TestLoadSceneConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/scene.yaml": {Data: []byte("marker:\n  key: m\n")},
	})
	t.Cleanup(embedded.Reset)

	cfg, err := LoadSceneConfig("data/scene.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Marker.Key != "m" {
		t.Errorf("marker key = %q", cfg.Marker.Key)
	}

	if _, err := LoadSceneConfig("data/nope.yaml"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestKeyNames(t *testing.T) {
	for _, k := range []string{"space", "a", "z", "0", "9", "enter"} {
		if !KeyNames[k] {
			t.Errorf("%q should be supported", k)
		}
	}
	if NormalizeKeyName("  SPACE ") != "space" {
		t.Error("NormalizeKeyName should lower-case and trim")
	}
}
