package systems

import (
	"testing"

	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/entities"
	"github.com/decker502/explosion/pkg/types"
)

func TestCleanupRemovesExpired(t *testing.T) {
	w := newTestWorld(t)
	cleanup := NewCleanupSystem(w.em)

	entities.SpawnEffectInstance(w.cmds, w.effect, types.Vec3Zero, 1)
	id := w.apply()[0]

	cleanup.Update(0.9)
	if w.em.IsMarkedForDestroy(id) {
		t.Fatal("marked before the lifetime elapsed")
	}
	cleanup.Update(0.2)
	if !w.em.IsMarkedForDestroy(id) {
		t.Fatal("not marked after the lifetime elapsed")
	}
	w.apply()
	if w.em.EntityExists(id) {
		t.Error("expired instance still exists")
	}
	if cleanup.Removed() != 1 {
		t.Errorf("Removed() = %d, want 1", cleanup.Removed())
	}
}

// 同一实体只请求删除一次
func TestCleanupRequestsRemovalOnce(t *testing.T) {
	w := newTestWorld(t)
	cleanup := NewCleanupSystem(w.em)

	id := w.em.CreateEntity()
	w.em.AddComponent(id, components.NewLifetime(0.1))

	cleanup.Update(0.2)
	cleanup.Update(0.2) // 计时器已完成，不会再次触发
	if w.em.PendingDestroyCount() != 1 {
		t.Errorf("PendingDestroyCount() = %d, want 1", w.em.PendingDestroyCount())
	}

	// 已被其它系统标记的实体静默跳过
	other := w.em.CreateEntity()
	w.em.AddComponent(other, components.NewLifetime(0.1))
	w.em.DestroyEntity(other)
	cleanup.Update(0.2)
	if cleanup.Removed() != 1 {
		t.Errorf("Removed() = %d, want 1", cleanup.Removed())
	}
	if removed := w.em.RemoveMarkedEntities(); removed != 2 {
		t.Errorf("RemoveMarkedEntities() = %d, want 2", removed)
	}
}

func TestCleanupCascadesToChildren(t *testing.T) {
	w := newTestWorld(t)
	cleanup := NewCleanupSystem(w.em)

	parent := w.em.CreateEntity()
	w.em.AddComponent(parent, components.NewLifetime(0.5))
	child := w.em.CreateEntity()
	w.em.SetParent(child, parent)
	grandchild := w.em.CreateEntity()
	w.em.SetParent(grandchild, child)

	cleanup.Update(0.5)
	w.apply()

	for _, id := range []ecs.EntityID{parent, child, grandchild} {
		if w.em.EntityExists(id) {
			t.Errorf("entity %d survived the recursive removal", id)
		}
	}
}

func TestCleanupSkipsNilTimer(t *testing.T) {
	w := newTestWorld(t)
	id := w.em.CreateEntity()
	w.em.AddComponent(id, &components.LifetimeComponent{})

	NewCleanupSystem(w.em).Update(10)
	if w.em.IsMarkedForDestroy(id) {
		t.Error("entity with nil timer should be ignored")
	}
}
