package particle

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/explosion/pkg/embedded"
	"github.com/decker502/explosion/pkg/types"
)

// EffectConfig is the YAML form of an effect template.
//
// Unset fields fall back to the explosion defaults, so a file only needs to
// list what it changes:
//
//	name: BigBang
//	spawner:
//	  once: true
//	  count: 20
//	init_velocity:
//	  speed: 12
type EffectConfig struct {
	Name     string  `yaml:"name"`
	Capacity int     `yaml:"capacity"`
	Lifetime float64 `yaml:"lifetime"`

	Spawner struct {
		Once  bool    `yaml:"once"`
		Count float64 `yaml:"count"`
		Rate  float64 `yaml:"rate"`
	} `yaml:"spawner"`

	InitPosition struct {
		Center    types.Vec3 `yaml:"center"`
		Radius    float64    `yaml:"radius"`
		Dimension string     `yaml:"dimension"` // "surface" or "volume"
	} `yaml:"init_position"`

	InitVelocity struct {
		Center types.Vec3 `yaml:"center"`
		Speed  float64    `yaml:"speed"`
	} `yaml:"init_velocity"`

	Accel     types.Vec3 `yaml:"accel"`
	BaseColor types.Vec4 `yaml:"base_color"`

	ColorOverLifetime struct {
		Blend         string              `yaml:"blend"` // "modulate", "overwrite", "add"
		Mask          string              `yaml:"mask"`  // any combination of r, g, b, a
		Interpolation string              `yaml:"interpolation"`
		Keys          []GradientKeyConfig `yaml:"keys"`
	} `yaml:"color_over_lifetime"`
}

// GradientKeyConfig is one gradient stop in YAML form.
type GradientKeyConfig struct {
	Ratio float64    `yaml:"ratio"`
	Color types.Vec4 `yaml:"color"`
}

// defaultEffectConfig mirrors ExplosionTemplate in YAML form.
func defaultEffectConfig() EffectConfig {
	tmpl := ExplosionTemplate()

	var cfg EffectConfig
	cfg.Name = tmpl.Name
	cfg.Capacity = tmpl.Capacity
	cfg.Lifetime = tmpl.Lifetime
	cfg.Spawner.Once = tmpl.Spawner.Once
	cfg.Spawner.Count = tmpl.Spawner.Count
	cfg.Spawner.Rate = tmpl.Spawner.Rate
	cfg.InitPosition.Center = tmpl.InitPosition.Center
	cfg.InitPosition.Radius = tmpl.InitPosition.Radius
	cfg.InitPosition.Dimension = tmpl.InitPosition.Dimension.String()
	cfg.InitVelocity.Center = tmpl.InitVelocity.Center
	cfg.InitVelocity.Speed = tmpl.InitVelocity.Speed
	cfg.Accel = tmpl.Accel
	cfg.BaseColor = tmpl.BaseColor
	cfg.ColorOverLifetime.Blend = tmpl.ColorOverLifetime.Blend.String()
	cfg.ColorOverLifetime.Mask = "rgba"
	for _, k := range tmpl.ColorOverLifetime.Gradient.Keys() {
		cfg.ColorOverLifetime.Keys = append(cfg.ColorOverLifetime.Keys, GradientKeyConfig{Ratio: k.Ratio, Color: k.Color})
	}
	return cfg
}

// ParseEffectYAML decodes an effect description and builds a validated template.
func ParseEffectYAML(data []byte) (*EffectTemplate, error) {
	// a keys list in the file replaces the default gradient as a whole
	cfg := defaultEffectConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effect YAML: %w", err)
	}
	return cfg.Template()
}

// LoadEffectFile reads an effect YAML file from the embedded data FS or disk.
func LoadEffectFile(path string) (*EffectTemplate, error) {
	data, err := embedded.ReadFileOrDisk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect file %s: %w", path, err)
	}
	tmpl, err := ParseEffectYAML(data)
	if err != nil {
		return nil, fmt.Errorf("effect file %s: %w", path, err)
	}
	return tmpl, nil
}

// Template converts the YAML description into a template via Builder.
func (c EffectConfig) Template() (*EffectTemplate, error) {
	dim, err := parseDimension(c.InitPosition.Dimension)
	if err != nil {
		return nil, err
	}
	blend, err := parseBlendMode(c.ColorOverLifetime.Blend)
	if err != nil {
		return nil, err
	}
	mask, err := parseBlendMask(c.ColorOverLifetime.Mask)
	if err != nil {
		return nil, err
	}

	gradient := NewGradient()
	gradient.Interpolation = c.ColorOverLifetime.Interpolation
	for _, k := range c.ColorOverLifetime.Keys {
		gradient.AddKey(k.Ratio, k.Color)
	}

	spawner := SpawnerSettings{Count: c.Spawner.Count, Rate: c.Spawner.Rate, Once: c.Spawner.Once}

	return NewBuilder(c.Name, c.Capacity, spawner).
		InitPosition(SpherePosition{Center: c.InitPosition.Center, Radius: c.InitPosition.Radius, Dimension: dim}).
		InitVelocity(RadialVelocity{Center: c.InitVelocity.Center, Speed: c.InitVelocity.Speed}).
		Lifetime(c.Lifetime).
		Accel(c.Accel).
		BaseColor(c.BaseColor).
		ColorOverLifetime(ColorOverLifetime{Gradient: gradient, Blend: blend, Mask: mask}).
		Build()
}

func parseDimension(s string) (ShapeDimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "surface":
		return DimensionSurface, nil
	case "volume":
		return DimensionVolume, nil
	}
	return 0, fieldError("init_position.dimension", "unknown value %q", s)
}

func parseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "modulate":
		return BlendModulate, nil
	case "overwrite":
		return BlendOverwrite, nil
	case "add":
		return BlendAdd, nil
	}
	return 0, fieldError("color_over_lifetime.blend", "unknown value %q", s)
}

func parseBlendMask(s string) (BlendMask, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MaskRGBA, nil
	}
	var mask BlendMask
	for _, r := range s {
		switch r {
		case 'r':
			mask |= MaskR
		case 'g':
			mask |= MaskG
		case 'b':
			mask |= MaskB
		case 'a':
			mask |= MaskA
		default:
			return 0, fieldError("color_over_lifetime.mask", "unknown channel %q in %q", r, s)
		}
	}
	return mask, nil
}
