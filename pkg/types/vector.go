// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Vec3 三维向量（世界坐标，Y 轴向上）
type Vec3 struct {
	X, Y, Z float64
}

// Vec3Zero 零向量
var Vec3Zero = Vec3{}

// Splat 返回三个分量都为 v 的向量
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// WithY 返回替换了 Y 分量的副本
func (v Vec3) WithY(y float64) Vec3 {
	v.Y = y
	return v
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale 数乘
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length 向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize 返回单位向量；零向量原样返回
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// UnmarshalYAML 支持 [x, y, z] 序列写法
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var xs []float64
	if err := node.Decode(&xs); err != nil {
		return fmt.Errorf("vec3: %w", err)
	}
	if len(xs) != 3 {
		return fmt.Errorf("vec3: expected 3 components, got %d (line %d)", len(xs), node.Line)
	}
	*v = Vec3{X: xs[0], Y: xs[1], Z: xs[2]}
	return nil
}

// MarshalYAML 输出为 [x, y, z]
func (v Vec3) MarshalYAML() (interface{}, error) {
	return []float64{v.X, v.Y, v.Z}, nil
}

// Vec4 四维向量，这里用作线性 RGBA 颜色（0-1）
type Vec4 struct {
	X, Y, Z, W float64
}

// Vec4Splat 返回四个分量都为 v 的向量
func Vec4Splat(v float64) Vec4 {
	return Vec4{X: v, Y: v, Z: v, W: v}
}

// ColorWhite 不透明白色
var ColorWhite = Vec4{X: 1, Y: 1, Z: 1, W: 1}

// ColorBlack 不透明黑色
var ColorBlack = Vec4{X: 0, Y: 0, Z: 0, W: 1}

// Mul 分量乘法（颜色调制）
func (c Vec4) Mul(o Vec4) Vec4 {
	return Vec4{X: c.X * o.X, Y: c.Y * o.Y, Z: c.Z * o.Z, W: c.W * o.W}
}

// Add 分量加法
func (c Vec4) Add(o Vec4) Vec4 {
	return Vec4{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z, W: c.W + o.W}
}

// Lerp 线性插值，t 不做截断
func (c Vec4) Lerp(o Vec4, t float64) Vec4 {
	return Vec4{
		X: c.X + (o.X-c.X)*t,
		Y: c.Y + (o.Y-c.Y)*t,
		Z: c.Z + (o.Z-c.Z)*t,
		W: c.W + (o.W-c.W)*t,
	}
}

// Clamp01 将每个分量限制在 [0, 1]
func (c Vec4) Clamp01() Vec4 {
	return Vec4{X: clamp01(c.X), Y: clamp01(c.Y), Z: clamp01(c.Z), W: clamp01(c.W)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// UnmarshalYAML 支持 [r, g, b, a] 序列写法
func (c *Vec4) UnmarshalYAML(node *yaml.Node) error {
	var xs []float64
	if err := node.Decode(&xs); err != nil {
		return fmt.Errorf("vec4: %w", err)
	}
	if len(xs) != 4 {
		return fmt.Errorf("vec4: expected 4 components, got %d (line %d)", len(xs), node.Line)
	}
	*c = Vec4{X: xs[0], Y: xs[1], Z: xs[2], W: xs[3]}
	return nil
}

// MarshalYAML 输出为 [r, g, b, a]
func (c Vec4) MarshalYAML() (interface{}, error) {
	return []float64{c.X, c.Y, c.Z, c.W}, nil
}
