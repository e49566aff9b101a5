package systems

import (
	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/entities"
	"github.com/decker502/explosion/pkg/types"
)

// HeldInput 报告触发键当前是否处于按下状态
type HeldInput interface {
	IsHeld() bool
}

// HeldInputFunc 函数适配器
type HeldInputFunc func() bool

// IsHeld implements HeldInput.
func (f HeldInputFunc) IsHeld() bool { return f() }

// InputTriggerSystem 按住触发键期间每帧生成一个标记
//
// 不是边沿触发：按住 N 帧就生成 N 个标记。
// MaxActive > 0 时超出上限的最早标记会被删除；Lifetime > 0 时标记到期后由 CleanupSystem 删除。
type InputTriggerSystem struct {
	entityManager *ecs.EntityManager
	commands      *ecs.Commands
	input         HeldInput
	assets        entities.MarkerAssets

	Position  types.Vec3
	Lifetime  float64
	MaxActive int

	seq     uint64
	spawned int
}

// NewInputTriggerSystem 创建输入触发系统
func NewInputTriggerSystem(em *ecs.EntityManager, cmds *ecs.Commands, input HeldInput, assets entities.MarkerAssets, position types.Vec3) *InputTriggerSystem {
	return &InputTriggerSystem{
		entityManager: em,
		commands:      cmds,
		input:         input,
		assets:        assets,
		Position:      position,
	}
}

// Update 每帧检查触发键
func (s *InputTriggerSystem) Update(deltaTime float64) {
	if s.input == nil || !s.input.IsHeld() {
		return
	}
	if s.MaxActive > 0 {
		s.evictOldest(s.MaxActive - 1)
	}
	s.seq++
	entities.SpawnMarker(s.commands, s.assets, s.Position, s.Lifetime, s.seq)
	s.spawned++
}

// evictOldest 请求删除最早的标记，只保留 keep 个
func (s *InputTriggerSystem) evictOldest(keep int) {
	live := make([]ecs.EntityID, 0)
	// 按 ID 升序即按生成顺序
	for _, id := range ecs.GetEntitiesWith1[*components.MarkerComponent](s.entityManager) {
		if !s.entityManager.IsMarkedForDestroy(id) {
			live = append(live, id)
		}
	}
	for i := 0; i < len(live)-keep; i++ {
		s.commands.Despawn(live[i])
	}
}

// Spawned 累计请求生成的标记数
func (s *InputTriggerSystem) Spawned() int {
	return s.spawned
}
