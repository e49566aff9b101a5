package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/explosion/pkg/embedded"
	"github.com/decker502/explosion/pkg/types"
)

// ErrInvalidConfig 场景配置校验失败时包装的哨兵错误
var ErrInvalidConfig = errors.New("invalid scene config")

// SceneConfig 爆炸场景配置
// 未在 YAML 中出现的字段保留 DefaultSceneConfig 中的默认值
type SceneConfig struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Marker MarkerConfig `yaml:"marker"`
	Effect EffectConfig `yaml:"effect"`
	Sound  SoundConfig  `yaml:"sound"`
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig 相机参数
type CameraConfig struct {
	Position   types.Vec3 `yaml:"position"`   // 世界坐标
	HDR        bool       `yaml:"hdr"`        // 加色混合
	ClearColor types.Vec4 `yaml:"clearColor"` // 背景色
	FovY       float64    `yaml:"fovY"`       // 垂直视角（弧度）
	Near       float64    `yaml:"near"`       // 近裁剪面
}

// SpawnConfig 特效定时生成参数
type SpawnConfig struct {
	Period   float64    `yaml:"period"`   // 生成周期（秒）
	Lifetime float64    `yaml:"lifetime"` // 每个特效实例的寿命（秒）
	Position types.Vec3 `yaml:"position"` // 特效与标记共用的生成位置
	CatchUp  bool       `yaml:"catchUp"`  // 一帧跨越多个周期时是否补发
}

// MarkerConfig 按键标记参数
type MarkerConfig struct {
	Key       string     `yaml:"key"`       // 触发键名，见 KeyNames
	Radius    float64    `yaml:"radius"`    // 圆形网格半径
	Color     types.Vec4 `yaml:"color"`     // 材质颜色
	Lifetime  float64    `yaml:"lifetime"`  // 0 表示永久存在
	MaxActive int        `yaml:"maxActive"` // 0 表示不限数量
}

// EffectConfig 粒子特效来源
type EffectConfig struct {
	// Path 特效 YAML 路径（data/... 优先从内嵌资源读取），为空时使用内置爆炸模板
	Path string `yaml:"path"`
}

// SoundConfig 爆炸提示音参数
type SoundConfig struct {
	Frequency float64 `yaml:"frequency"` // 正弦波频率（Hz）
	Duration  float64 `yaml:"duration"`  // 时长（秒）
}

// MaxToneFrequency 提示音频率上限（Hz），低于 48kHz 采样率的奈奎斯特频率
const MaxToneFrequency = 20000

// KeyNames 支持的触发键名
var KeyNames = buildKeyNames()

func buildKeyNames() map[string]bool {
	names := map[string]bool{
		"space": true, "enter": true, "tab": true, "backspace": true,
		"up": true, "down": true, "left": true, "right": true,
	}
	for c := 'a'; c <= 'z'; c++ {
		names[string(c)] = true
	}
	for c := '0'; c <= '9'; c++ {
		names[string(c)] = true
	}
	return names
}

// NormalizeKeyName 统一键名写法（小写、去空白）
func NormalizeKeyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultSceneConfig 返回场景的默认配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Explosion"},
		Camera: CameraConfig{
			Position:   types.Vec3{X: 0, Y: 20, Z: 50},
			HDR:        true,
			ClearColor: types.ColorBlack,
			FovY:       math.Pi / 4,
			Near:       0.1,
		},
		Spawn: SpawnConfig{
			Period:   1,
			Lifetime: 1,
			Position: types.Vec3Zero.WithY(20),
		},
		Marker: MarkerConfig{
			Key:    "space",
			Radius: 4,
			Color:  types.ColorWhite,
		},
		Sound: SoundConfig{Frequency: 220, Duration: 0.12},
	}
}

// ParseSceneConfig 在默认配置之上解析 YAML 并校验
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}
	cfg.Marker.Key = NormalizeKeyName(cfg.Marker.Key)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadSceneConfig 从内嵌资源或磁盘加载场景配置
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := embedded.ReadFileOrDisk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", path, err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 检查配置的合法性
func (c *SceneConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if !(c.Camera.FovY > 0 && c.Camera.FovY < math.Pi) {
		return invalid("camera.fovY must be in (0, pi), got %v", c.Camera.FovY)
	}
	if !(c.Camera.Near > 0) {
		return invalid("camera.near must be > 0, got %v", c.Camera.Near)
	}
	if !(c.Spawn.Period > 0) {
		return invalid("spawn.period must be > 0, got %v", c.Spawn.Period)
	}
	if !(c.Spawn.Lifetime > 0) {
		return invalid("spawn.lifetime must be > 0, got %v", c.Spawn.Lifetime)
	}
	if c.Marker.Radius < 0 || math.IsNaN(c.Marker.Radius) {
		return invalid("marker.radius must be >= 0, got %v", c.Marker.Radius)
	}
	if c.Marker.Lifetime < 0 || math.IsNaN(c.Marker.Lifetime) {
		return invalid("marker.lifetime must be >= 0, got %v", c.Marker.Lifetime)
	}
	if c.Marker.MaxActive < 0 {
		return invalid("marker.maxActive must be >= 0, got %d", c.Marker.MaxActive)
	}
	if !KeyNames[NormalizeKeyName(c.Marker.Key)] {
		return invalid("marker.key %q is not supported (known: %s)", c.Marker.Key, strings.Join(knownKeys(), ", "))
	}
	if !(c.Sound.Frequency > 0 && c.Sound.Frequency <= MaxToneFrequency) {
		return invalid("sound.frequency must be in (0, %v], got %v", MaxToneFrequency, c.Sound.Frequency)
	}
	if !(c.Sound.Duration > 0) {
		return invalid("sound.duration must be > 0, got %v", c.Sound.Duration)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func knownKeys() []string {
	keys := make([]string, 0, len(KeyNames))
	for k := range KeyNames {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
