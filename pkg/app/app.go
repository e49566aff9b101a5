// Package app 提供爆炸场景查看器的应用包装器
//
// 该包把窗口、输入、音效和设置持久化从 main 包中提取出来，
// main.go 只负责解析命令行参数与初始化嵌入资源。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/explosion/pkg/audio"
	"github.com/decker502/explosion/pkg/config"
	"github.com/decker502/explosion/pkg/game"
	"github.com/decker502/explosion/pkg/scenes"
	"github.com/decker502/explosion/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "explosion"

// TPS 固定逻辑帧率
const TPS = 60

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 场景配置文件，为空时使用内置默认值
	ConfigPath string
	// CatchUp 覆盖配置中的 spawn.catchUp
	CatchUp bool
	// ShowStats 在画面左上角显示统计信息
	ShowStats bool
	// Seed 粒子随机数种子，0 表示使用当前时间
	Seed int64
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneConfig     *config.SceneConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	soundManager    *audio.SoundManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadSceneConfig 读取场景配置并应用命令行覆盖项
func LoadSceneConfig(cfg Config) (*config.SceneConfig, error) {
	sceneConfig := config.DefaultSceneConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadSceneConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		sceneConfig = loaded
		log.Printf("[App] Loaded scene config: %s", cfg.ConfigPath)
	}
	if cfg.CatchUp {
		sceneConfig.Spawn.CatchUp = true
	}
	return sceneConfig, nil
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := LoadSceneConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}

	key, err := utils.NewKeyInput(sceneConfig.Marker.Key)
	if err != nil {
		return nil, fmt.Errorf("触发键无效: %w", err)
	}

	settingsManager := game.OpenSettingsManager(AppName)
	settings := settingsManager.GetSettings()

	duration := time.Duration(sceneConfig.Sound.Duration * float64(time.Second))
	soundManager := audio.NewSoundManager(sceneConfig.Sound.Frequency, duration)
	if err := soundManager.Initialize(); err != nil {
		log.Printf("[App] Warning: audio unavailable: %v (continuing without sound)", err)
	}
	soundManager.SetEnabled(settings.SoundEnabled)
	soundManager.SetVolume(settings.SoundVolume)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		scene, err := scenes.NewExplosionScene(scenes.Options{
			Config:      sceneConfig,
			Input:       key,
			OnExplosion: soundManager.PlayExplosion,
			Seed:        seed,
		})
		if err != nil {
			return nil, err
		}
		scene.ShowStats = cfg.ShowStats
		return scene, nil
	})
	if err := sceneManager.Restart(); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	ebiten.SetWindowSize(sceneConfig.Window.Width, sceneConfig.Window.Height)
	ebiten.SetWindowTitle(sceneConfig.Window.Title)
	ebiten.SetTPS(TPS)
	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneConfig:     sceneConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		soundManager:    soundManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新逻辑，每个 tick 调用一次
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.sceneConfig.Window.Width, a.sceneConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 静音切换
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		settings := a.settingsManager.GetSettings()
		a.settingsManager.SetSoundEnabled(!settings.SoundEnabled)
		a.soundManager.SetEnabled(settings.SoundEnabled)
		a.saveSettings()
	}

	// R 重建场景
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.sceneManager.Restart(); err != nil {
			log.Printf("[App] Restart failed: %v", err)
		}
	}

	a.sceneManager.Update(1.0 / TPS)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口，全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.sceneConfig.Window.Width, a.sceneConfig.Window.Height
}

// Close 释放音频设备并保存设置
func (a *App) Close() {
	a.soundManager.Cleanup()
	a.saveSettings()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
