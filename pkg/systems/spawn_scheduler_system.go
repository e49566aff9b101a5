package systems

import (
	"log"

	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/entities"
	"github.com/decker502/explosion/pkg/types"
	"github.com/decker502/explosion/pkg/utils"
)

// SpawnSchedulerSystem 周期性生成爆炸特效实例
//
// 循环计时器每跨越一次周期边界触发一次，保留余数不漂移。
// 默认一帧最多触发一次；CatchUp 为 true 时一帧跨越几个周期就生成几个实例。
type SpawnSchedulerSystem struct {
	commands *ecs.Commands
	effect   entities.EffectAssets
	timer    *utils.Timer

	Position types.Vec3
	Lifetime float64
	CatchUp  bool

	// OnSpawn 每生成一个实例调用一次（例如播放音效）
	OnSpawn func()

	spawned int
}

// NewSpawnSchedulerSystem 创建生成调度系统
func NewSpawnSchedulerSystem(cmds *ecs.Commands, fx entities.EffectAssets, period, lifetime float64, position types.Vec3) *SpawnSchedulerSystem {
	return &SpawnSchedulerSystem{
		commands: cmds,
		effect:   fx,
		timer:    utils.NewTimer(period, utils.TimerRepeating),
		Position: position,
		Lifetime: lifetime,
	}
}

// Update 推进计时器并在到期时生成特效
func (s *SpawnSchedulerSystem) Update(deltaTime float64) {
	if !s.timer.Tick(deltaTime).JustFinished() {
		return
	}

	fires := 1
	if s.CatchUp {
		fires = s.timer.TimesFinishedThisTick()
	} else if n := s.timer.TimesFinishedThisTick(); n > 1 {
		log.Printf("[SpawnScheduler] Frame spanned %d periods, firing once", n)
	}

	for i := 0; i < fires; i++ {
		entities.SpawnEffectInstance(s.commands, s.effect, s.Position, s.Lifetime)
		s.spawned++
		if s.OnSpawn != nil {
			s.OnSpawn()
		}
	}
}

// Spawned 累计生成的特效实例数
func (s *SpawnSchedulerSystem) Spawned() int {
	return s.spawned
}

// Timer 返回内部计时器（只读用途）
func (s *SpawnSchedulerSystem) Timer() *utils.Timer {
	return s.timer
}
