// Command simulate runs the explosion scene headless and prints its statistics.
//
// Usage:
//
//	go run ./cmd/simulate [flags]
//
// Flags:
//
//	--frames <n>      Number of frames to run (default 300)
//	--dt <seconds>    Frame interval (default 1/60)
//	--hold <n>        Hold the trigger key for the first n frames
//	--config <path>   Scene config YAML on disk (default: built-in scene)
//	--catch-up        Fire once per elapsed spawn period
//	--seed <n>        Particle random seed
//	--verbose         Enable scene logging
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/explosion/pkg/config"
	"github.com/decker502/explosion/pkg/scenes"
	"github.com/decker502/explosion/pkg/systems"
)

var (
	framesFlag  = flag.Int("frames", 300, "Number of frames to simulate")
	dtFlag      = flag.Float64("dt", 1.0/60.0, "Frame interval in seconds")
	holdFlag    = flag.Int("hold", 0, "Hold the trigger key for the first N frames")
	configFlag  = flag.String("config", "", "Scene config YAML file")
	catchUpFlag = flag.Bool("catch-up", false, "Fire the spawn timer once per elapsed period")
	seedFlag    = flag.Int64("seed", 1, "Particle random seed")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// options 一次模拟运行的参数
type options struct {
	Frames  int
	DT      float64
	Hold    int
	Config  *config.SceneConfig
	Seed    int64
	Out     io.Writer
	Reports bool // 每模拟一秒输出一行统计
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultSceneConfig()
	if *configFlag != "" {
		loaded, err := config.LoadSceneConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *catchUpFlag {
		cfg.Spawn.CatchUp = true
	}

	_, err := simulate(options{
		Frames:  *framesFlag,
		DT:      *dtFlag,
		Hold:    *holdFlag,
		Config:  cfg,
		Seed:    *seedFlag,
		Out:     os.Stdout,
		Reports: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

// simulate 运行场景并返回最终统计
func simulate(opts options) (scenes.Stats, error) {
	if opts.Frames < 0 || opts.DT < 0 {
		return scenes.Stats{}, fmt.Errorf("frames and dt must be non-negative")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	frame := 0
	explosions := 0
	scene, err := scenes.NewExplosionScene(scenes.Options{
		Config:      opts.Config,
		Input:       systems.HeldInputFunc(func() bool { return frame < opts.Hold }),
		OnExplosion: func() { explosions++ },
		Seed:        opts.Seed,
	})
	if err != nil {
		return scenes.Stats{}, err
	}

	elapsed := 0.0
	nextReport := 1.0
	for frame = 0; frame < opts.Frames; frame++ {
		scene.Update(opts.DT)
		elapsed += opts.DT
		if opts.Reports && elapsed >= nextReport {
			fmt.Fprintf(out, "t=%6.2fs  %s\n", elapsed, scene.Stats())
			for nextReport <= elapsed {
				nextReport++
			}
		}
	}

	stats := scene.Stats()
	fmt.Fprintf(out, "done: %d frames, %.2fs simulated, %d explosions\n", opts.Frames, elapsed, explosions)
	fmt.Fprintf(out, "final: %s\n", stats)
	return stats, nil
}
