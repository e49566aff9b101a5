// Command explosion 打开一个窗口，每秒在固定位置生成一次粒子爆炸。
//
// 用法:
//
//	go run . [flags]
//
// 参数:
//
//	--verbose        输出详细日志
//	--config <path>  场景配置（data/... 优先从内嵌资源读取），默认 data/scene.yaml
//	--catch-up       一帧跨越多个周期时补发爆炸
//	--stats          显示统计信息
//	--seed <n>       粒子随机数种子（0 表示使用当前时间）
//
// 按键:
//
//	Space   按住时每帧生成一个标记
//	M       音效开关
//	R       重建场景
//	F11     全屏切换
//	Escape  退出
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/explosion/pkg/app"
	"github.com/decker502/explosion/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag  = flag.String("config", "data/scene.yaml", "Scene config file (embedded data/... or disk path)")
	catchUpFlag = flag.Bool("catch-up", false, "Fire the spawn timer once per elapsed period")
	statsFlag   = flag.Bool("stats", false, "Show scene statistics")
	seedFlag    = flag.Int64("seed", 0, "Particle random seed (0 = time based)")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		CatchUp:    *catchUpFlag,
		ShowStats:  *statsFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("初始化失败: %v", err)
		os.Exit(1)
	}
	defer gameApp.Close()

	if err := ebiten.RunGame(gameApp); err != nil {
		gameApp.Close()
		log.SetOutput(os.Stderr)
		log.Printf("运行失败: %v", err)
		os.Exit(1)
	}
}
