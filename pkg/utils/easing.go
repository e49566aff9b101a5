package utils

import "math"

// Easing 缓动曲线，输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
type Easing func(t float64) float64

// easings 渐变插值名称到曲线的映射，空名称等同于 Linear
var easings = map[string]Easing{
	"":               EaseLinear,
	"Linear":         EaseLinear,
	"EaseIn":         EaseInQuad,
	"EaseOut":        EaseOutQuad,
	"FastInOutWeak":  EaseSmoothstep,
	"EaseInCubic":    EaseInCubic,
	"EaseOutCubic":   EaseOutCubic,
	"EaseInOutCubic": EaseInOutCubic,
	"EaseOutExpo":    EaseOutExpo,
}

// EasingByName 按名称查找缓动曲线
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}

// EaseLinear 匀速
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseSmoothstep 弱化的缓入缓出：f(t) = t²(3 - 2t)
func EaseSmoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// EaseInCubic 三次方缓入：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutExpo 指数缓出：f(t) = 1 - 2^(-10t)，t >= 1 时精确返回 1
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}
