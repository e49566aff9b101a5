package systems

import (
	"testing"

	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/config"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/entities"
	"github.com/decker502/explosion/pkg/game"
)

// testWorld 测试用的最小场景：实体管理器、命令缓冲区和已注册的资源
type testWorld struct {
	em      *ecs.EntityManager
	cmds    *ecs.Commands
	store   *game.AssetStore
	effect  entities.EffectAssets
	markers entities.MarkerAssets
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	store := game.NewAssetStore()
	fx, err := entities.SetupExplosionEffect(store, config.EffectConfig{})
	if err != nil {
		t.Fatalf("SetupExplosionEffect: %v", err)
	}
	return &testWorld{
		em:      ecs.NewEntityManager(),
		cmds:    ecs.NewCommands(),
		store:   store,
		effect:  fx,
		markers: entities.SetupMarkerAssets(store, config.DefaultSceneConfig().Marker),
	}
}

// apply 模拟调度器的帧末提交
func (w *testWorld) apply() []ecs.EntityID {
	ids := w.cmds.Apply(w.em)
	w.em.RemoveMarkedEntities()
	return ids
}

func (w *testWorld) count(t *testing.T, what string) int {
	t.Helper()
	switch what {
	case "effects":
		return len(ecs.GetEntitiesWith1[*components.EffectComponent](w.em))
	case "markers":
		return len(ecs.GetEntitiesWith1[*components.MarkerComponent](w.em))
	case "particles":
		return len(ecs.GetEntitiesWith1[*components.ParticleComponent](w.em))
	}
	t.Fatalf("unknown entity kind %q", what)
	return 0
}

// heldFrames 前 n 次查询返回 true
type heldFrames struct {
	remaining int
}

func (h *heldFrames) IsHeld() bool {
	if h.remaining > 0 {
		h.remaining--
		return true
	}
	return false
}
