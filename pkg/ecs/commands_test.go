package ecs

import "testing"

func TestCommands_SpawnIsDeferred(t *testing.T) {
	em := NewEntityManager()
	cmds := NewCommands()

	cmds.Spawn(func(em *EntityManager, id EntityID) {
		em.AddComponent(id, &testPositionComponent{X: 1})
	})

	if em.EntityCount() != 0 {
		t.Fatal("spawn should not create an entity before Apply")
	}
	if cmds.PendingSpawns() != 1 {
		t.Errorf("PendingSpawns = %d, want 1", cmds.PendingSpawns())
	}

	ids := cmds.Apply(em)
	if len(ids) != 1 {
		t.Fatalf("Apply returned %d ids, want 1", len(ids))
	}
	pos, ok := GetComponent[*testPositionComponent](em, ids[0])
	if !ok || pos.X != 1 {
		t.Error("spawned entity should carry its components")
	}
	if cmds.PendingSpawns() != 0 {
		t.Error("queue should be empty after Apply")
	}
}

func TestCommands_DespawnMarksOnly(t *testing.T) {
	em := NewEntityManager()
	cmds := NewCommands()
	parent := em.CreateEntity()
	child := em.CreateEntity()
	em.SetParent(child, parent)

	cmds.DespawnRecursive(parent)
	cmds.Despawn(parent) // 重复请求
	cmds.Apply(em)

	if !em.EntityExists(parent) {
		t.Fatal("despawn should only mark the entity")
	}
	if em.PendingDestroyCount() != 2 {
		t.Errorf("PendingDestroyCount = %d, want 2 (parent + child, no duplicates)", em.PendingDestroyCount())
	}

	em.RemoveMarkedEntities()
	if em.EntityExists(parent) || em.EntityExists(child) {
		t.Error("entities should be removed after cleanup")
	}
}

func TestCommands_ApplyOrder(t *testing.T) {
	em := NewEntityManager()
	cmds := NewCommands()
	var order []int
	for i := 0; i < 3; i++ {
		n := i
		cmds.Spawn(func(em *EntityManager, id EntityID) { order = append(order, n) })
	}

	ids := cmds.Apply(em)
	for i, n := range order {
		if n != i {
			t.Fatalf("spawn order = %v, want [0 1 2]", order)
		}
	}
	if ids[0] >= ids[1] || ids[1] >= ids[2] {
		t.Errorf("ids should be increasing, got %v", ids)
	}
}
