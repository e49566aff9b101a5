package entities

import (
	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/config"
	"github.com/decker502/explosion/pkg/ecs"
)

// SpawnCamera 在启动阶段立即创建相机实体
func SpawnCamera(em *ecs.EntityManager, cfg config.CameraConfig) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Position: cfg.Position})
	em.AddComponent(id, &components.CameraComponent{
		HDR:        cfg.HDR,
		ClearColor: cfg.ClearColor,
		FovY:       cfg.FovY,
		Near:       cfg.Near,
	})
	return id
}
