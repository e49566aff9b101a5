package systems

import (
	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/ecs"
)

// CleanupSystem 推进所有生命周期计时器，到期的实体连同子实体一起删除
type CleanupSystem struct {
	entityManager *ecs.EntityManager
	removed       int
}

// NewCleanupSystem 创建清理系统
func NewCleanupSystem(em *ecs.EntityManager) *CleanupSystem {
	return &CleanupSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
//
// 只在计时器到期的那一帧请求删除；实体已不存在或已被标记时静默跳过，
// 因此同一实体最多被请求删除一次。
func (s *CleanupSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.Timer == nil {
			continue
		}

		if !lifetime.Timer.Tick(deltaTime).JustFinished() {
			continue
		}

		if !s.entityManager.EntityExists(id) || s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		if s.entityManager.DestroyEntityRecursive(id) {
			s.removed++
		}
	}
}

// Removed 累计请求删除的实体数（不含级联的子实体）
func (s *CleanupSystem) Removed() int {
	return s.removed
}
