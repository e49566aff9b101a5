package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/config"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/entities"
	"github.com/decker502/explosion/pkg/game"
	"github.com/decker502/explosion/pkg/systems"
)

// Options 创建爆炸场景所需的外部依赖
type Options struct {
	Config *config.SceneConfig // nil 时使用默认配置
	Input  systems.HeldInput   // 触发键状态，可为 nil（永不触发）

	// OnExplosion 每生成一个特效实例调用一次
	OnExplosion func()

	// Seed 粒子随机数种子
	Seed int64
}

// Stats 场景统计信息
type Stats struct {
	Frame     uint64
	Instances int // 存活的特效实例
	Markers   int
	Particles int
	Spawned   int // 累计生成的特效实例
	Removed   int // 累计被清理的实体
}

func (s Stats) String() string {
	return fmt.Sprintf("frame %d  effects %d  markers %d  particles %d  spawned %d  removed %d",
		s.Frame, s.Instances, s.Markers, s.Particles, s.Spawned, s.Removed)
}

// ExplosionScene 相机 + 定时爆炸 + 按键标记的固定场景
//
// 启动阶段：注册爆炸特效模板、注册标记网格与材质、创建相机。
// 每帧顺序：输入触发 -> 定时生成 -> 生命周期清理 -> 粒子模拟。
type ExplosionScene struct {
	cfg *config.SceneConfig

	entityManager *ecs.EntityManager
	commands      *ecs.Commands
	assets        *game.AssetStore
	scheduler     *systems.Scheduler

	effect  entities.EffectAssets
	markers entities.MarkerAssets

	inputSystem    *systems.InputTriggerSystem
	spawnSystem    *systems.SpawnSchedulerSystem
	cleanupSystem  *systems.CleanupSystem
	particleSystem *systems.ParticleSystem
	renderSystem   *systems.RenderSystem

	// ShowStats 在画面左上角显示统计信息
	ShowStats bool
}

// NewExplosionScene 创建场景并完成启动阶段
func NewExplosionScene(opts Options) (*ExplosionScene, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultSceneConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &ExplosionScene{
		cfg:           cfg,
		entityManager: ecs.NewEntityManager(),
		commands:      ecs.NewCommands(),
		assets:        game.NewAssetStore(),
	}
	s.scheduler = systems.NewScheduler(s.entityManager, s.commands)

	s.scheduler.AddStartup("setup_effect", func() error {
		fx, err := entities.SetupExplosionEffect(s.assets, cfg.Effect)
		if err != nil {
			return err
		}
		s.effect = fx
		return nil
	})
	s.scheduler.AddStartup("setup_markers", func() error {
		s.markers = entities.SetupMarkerAssets(s.assets, cfg.Marker)
		return nil
	})
	s.scheduler.AddStartup("setup_camera", func() error {
		entities.SpawnCamera(s.entityManager, cfg.Camera)
		return nil
	})
	if err := s.scheduler.Startup(); err != nil {
		return nil, fmt.Errorf("failed to start explosion scene: %w", err)
	}

	s.inputSystem = systems.NewInputTriggerSystem(s.entityManager, s.commands, opts.Input, s.markers, cfg.Spawn.Position)
	s.inputSystem.Lifetime = cfg.Marker.Lifetime
	s.inputSystem.MaxActive = cfg.Marker.MaxActive

	s.spawnSystem = systems.NewSpawnSchedulerSystem(s.commands, s.effect, cfg.Spawn.Period, cfg.Spawn.Lifetime, cfg.Spawn.Position)
	s.spawnSystem.CatchUp = cfg.Spawn.CatchUp
	s.spawnSystem.OnSpawn = opts.OnExplosion

	s.cleanupSystem = systems.NewCleanupSystem(s.entityManager)
	s.particleSystem = systems.NewParticleSystem(s.entityManager, opts.Seed)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, s.assets)

	s.scheduler.AddUpdate("input_trigger", s.inputSystem)
	s.scheduler.AddUpdate("spawn_scheduler", s.spawnSystem)
	s.scheduler.AddUpdate("cleanup", s.cleanupSystem)
	s.scheduler.AddUpdate("particles", s.particleSystem)

	log.Printf("[ExplosionScene] Ready: effect %q, period %.2fs, lifetime %.2fs, systems %v",
		s.effect.Template.Name, cfg.Spawn.Period, cfg.Spawn.Lifetime, s.scheduler.Systems())
	return s, nil
}

// Update 推进一帧
func (s *ExplosionScene) Update(deltaTime float64) {
	if err := s.scheduler.Tick(deltaTime); err != nil {
		log.Printf("[ExplosionScene] Tick failed: %v", err)
	}
}

// Draw 绘制场景
func (s *ExplosionScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	if s.ShowStats {
		ebitenutil.DebugPrint(screen, s.Stats().String())
	}
}

// Stats 返回当前统计信息
func (s *ExplosionScene) Stats() Stats {
	return Stats{
		Frame:     s.scheduler.Frame(),
		Instances: len(ecs.GetEntitiesWith1[*components.EffectComponent](s.entityManager)),
		Markers:   len(ecs.GetEntitiesWith1[*components.MarkerComponent](s.entityManager)),
		Particles: s.particleSystem.ActiveParticles(),
		Spawned:   s.spawnSystem.Spawned(),
		Removed:   s.cleanupSystem.Removed(),
	}
}

// EntityManager 供其它前端（如终端渲染）读取实体
func (s *ExplosionScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Assets 场景的资源仓库
func (s *ExplosionScene) Assets() *game.AssetStore {
	return s.assets
}

// Config 场景配置
func (s *ExplosionScene) Config() *config.SceneConfig {
	return s.cfg
}
