package entities

import (
	"fmt"
	"log"

	"github.com/decker502/explosion/internal/particle"
	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/config"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/game"
	"github.com/decker502/explosion/pkg/types"
)

// EffectAssets 已注册的特效模板
// 启动时创建一次，之后只读地传给需要生成特效的系统
type EffectAssets struct {
	Handle   types.EffectHandle
	Template *particle.EffectTemplate
}

// SetupExplosionEffect 构建爆炸特效模板并注册到资源仓库
//
// cfg.Path 非空时从 YAML 文件加载模板，否则使用内置的爆炸模板。
func SetupExplosionEffect(store *game.AssetStore, cfg config.EffectConfig) (EffectAssets, error) {
	var (
		tmpl *particle.EffectTemplate
		err  error
	)
	if cfg.Path != "" {
		tmpl, err = particle.LoadEffectFile(cfg.Path)
		if err != nil {
			return EffectAssets{}, fmt.Errorf("failed to load effect: %w", err)
		}
	} else {
		tmpl = particle.ExplosionTemplate()
	}

	handle := store.AddEffect(tmpl)
	log.Printf("[EffectFactory] Registered effect %q (handle %d, capacity %d, burst %d)",
		tmpl.Name, handle, tmpl.Capacity, tmpl.BurstCount())
	return EffectAssets{Handle: handle, Template: tmpl}, nil
}

// SpawnEffectInstance 请求在 position 处生成一个特效实例
//
// 实体在 Commands.Apply 时才真正创建，挂载：
//   - TransformComponent
//   - EffectComponent（共享模板）
//   - EmitterComponent（发射状态）
//   - LifetimeComponent（一次性计时器，到期后由 CleanupSystem 删除）
func SpawnEffectInstance(cmds *ecs.Commands, fx EffectAssets, position types.Vec3, lifetime float64) {
	cmds.Spawn(func(em *ecs.EntityManager, id ecs.EntityID) {
		em.AddComponent(id, &components.TransformComponent{Position: position})
		em.AddComponent(id, &components.EffectComponent{Handle: fx.Handle, Template: fx.Template})
		em.AddComponent(id, &components.EmitterComponent{})
		em.AddComponent(id, components.NewLifetime(lifetime))
	})
}
