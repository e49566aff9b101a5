package components

import "github.com/decker502/explosion/pkg/utils"

// LifetimeComponent 实体的剩余寿命
// 计时器为一次性模式，到期后由 CleanupSystem 请求删除实体（含子实体）
type LifetimeComponent struct {
	Timer *utils.Timer
}

// NewLifetime 创建一个 seconds 秒后到期的生命周期组件
func NewLifetime(seconds float64) *LifetimeComponent {
	return &LifetimeComponent{Timer: utils.NewTimer(seconds, utils.TimerOnce)}
}
