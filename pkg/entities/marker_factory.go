package entities

import (
	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/config"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/game"
	"github.com/decker502/explosion/pkg/types"
)

// MarkerAssets 所有标记共用的网格和材质
type MarkerAssets struct {
	Mesh     types.MeshHandle
	Material types.MaterialHandle
}

// SetupMarkerAssets 注册圆形网格和纯色材质，每个场景只调用一次
func SetupMarkerAssets(store *game.AssetStore, cfg config.MarkerConfig) MarkerAssets {
	return MarkerAssets{
		Mesh:     store.AddMesh(types.Circle{Radius: cfg.Radius}),
		Material: store.AddMaterial(types.Material{Color: cfg.Color}),
	}
}

// SpawnMarker 请求在 position 处生成一个标记
// lifetime <= 0 时标记永久存在
func SpawnMarker(cmds *ecs.Commands, assets MarkerAssets, position types.Vec3, lifetime float64, seq uint64) {
	cmds.Spawn(func(em *ecs.EntityManager, id ecs.EntityID) {
		em.AddComponent(id, &components.TransformComponent{Position: position})
		em.AddComponent(id, &components.MarkerComponent{Mesh: assets.Mesh, Material: assets.Material, Seq: seq})
		if lifetime > 0 {
			em.AddComponent(id, components.NewLifetime(lifetime))
		}
	})
}
