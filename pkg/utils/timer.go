package utils

import (
	"math"
	"time"
)

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 一次性计时器：到期后保持完成状态
	TimerOnce TimerMode = iota
	// TimerRepeating 循环计时器：到期后自动从余数继续计时
	TimerRepeating
)

// boundaryTolerance 帧间隔换算为纳秒时的舍入容差
//
// 例如 3 × (1/3) 秒换算后合计 999999999ns，差 1ns 也视为到达周期边界。
const boundaryTolerance = time.Microsecond

// Timer 基于帧间隔累加的计时器
//
// 内部以整数纳秒累计，浮点帧间隔只在进入 Tick 时换算一次：
//   - JustFinished 只在跨越到期边界的那一次 Tick 中为 true
//   - 循环模式下 elapsed 保留余数；提前到达边界的不足部分不计入下个周期，
//     因此舍入误差不会跨周期累积
type Timer struct {
	Duration float64 // 周期（秒）
	Mode     TimerMode

	elapsed       time.Duration
	finished      bool
	timesThisTick int
}

// NewTimer 创建计时器
func NewTimer(duration float64, mode TimerMode) *Timer {
	return &Timer{Duration: duration, Mode: mode}
}

// secondsToDuration 秒数换算为纳秒（四舍五入）
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// Tick 推进计时器 dt 秒，返回自身便于链式调用
//
// dt < 0 视为 0。Duration <= 0 的计时器在第一次 Tick 时完成。
func (t *Timer) Tick(dt float64) *Timer {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	t.timesThisTick = 0
	period := secondsToDuration(t.Duration)

	if t.Mode == TimerOnce {
		if t.finished {
			return t
		}
		t.elapsed += secondsToDuration(dt)
		if period <= 0 || t.elapsed+boundaryTolerance >= period {
			t.elapsed = max(period, 0)
			t.finished = true
			t.timesThisTick = 1
		}
		return t
	}

	// 循环模式
	t.finished = false
	if period <= 0 {
		t.elapsed = 0
		t.finished = true
		t.timesThisTick = 1
		return t
	}
	t.elapsed += secondsToDuration(dt)
	if t.elapsed+boundaryTolerance >= period {
		times := (t.elapsed + boundaryTolerance) / period
		t.elapsed -= times * period
		if t.elapsed < 0 {
			t.elapsed = 0
		}
		t.finished = true
		t.timesThisTick = int(times)
	}
	return t
}

// Finished 一次性计时器到期后始终为 true；循环计时器仅在本次 Tick 到期时为 true
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished 本次 Tick 是否跨越了到期边界
func (t *Timer) JustFinished() bool {
	return t.timesThisTick > 0
}

// TimesFinishedThisTick 本次 Tick 跨越的周期数（循环模式下可能大于 1）
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesThisTick
}

// Elapsed 当前周期内已累计的时间（秒）
func (t *Timer) Elapsed() float64 {
	return t.elapsed.Seconds()
}

// Remaining 距离下一次到期的剩余时间（秒）
func (t *Timer) Remaining() float64 {
	return max(secondsToDuration(t.Duration)-t.elapsed, 0).Seconds()
}

// Fraction 当前周期进度（0-1）
func (t *Timer) Fraction() float64 {
	period := secondsToDuration(t.Duration)
	if period <= 0 {
		return 1
	}
	return math.Min(float64(t.elapsed)/float64(period), 1)
}

// Reset 重置为初始状态
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesThisTick = 0
}
