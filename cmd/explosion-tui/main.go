// Command explosion-tui renders the explosion scene in a terminal.
//
// Usage:
//
//	go run ./cmd/explosion-tui [flags]
//
// Flags:
//
//	--config <path>   Scene config YAML on disk (default: built-in scene)
//	--catch-up        Fire once per elapsed spawn period
//	--mute            Disable the explosion tone
//	--verbose         Log to stderr after the screen is closed
//
// Controls:
//
//	Space (hold)      Spawn one marker per frame (marker.key in the config)
//	Escape / Ctrl-C   Quit
//
// Terminals report key presses and auto-repeat but no releases, so Space counts
// as held for a short window after each key event.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/explosion/pkg/audio"
	"github.com/decker502/explosion/pkg/config"
	"github.com/decker502/explosion/pkg/scenes"
	"github.com/decker502/explosion/pkg/utils"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	holdWindow    = 150 * time.Millisecond
)

var (
	configFlag  = flag.String("config", "", "Scene config YAML file")
	catchUpFlag = flag.Bool("catch-up", false, "Fire the spawn timer once per elapsed period")
	muteFlag    = flag.Bool("mute", false, "Disable the explosion tone")
	verboseFlag = flag.Bool("verbose", false, "Print logs after exit")
)

func main() {
	flag.Parse()

	// 终端被 tcell 占用，日志先写入缓冲区，退出后再输出
	var logBuf bytes.Buffer
	if *verboseFlag {
		log.SetOutput(&logBuf)
	} else {
		log.SetOutput(io.Discard)
	}

	err := run()
	if *verboseFlag {
		os.Stderr.Write(logBuf.Bytes())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "explosion-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.DefaultSceneConfig()
	if *configFlag != "" {
		loaded, err := config.LoadSceneConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *catchUpFlag {
		cfg.Spawn.CatchUp = true
	}

	sound := audio.NewSoundManager(cfg.Sound.Frequency, time.Duration(cfg.Sound.Duration*float64(time.Second)))
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			log.Printf("[TUI] Audio unavailable: %v", err)
		}
	}
	defer sound.Cleanup()

	trigger, err := parseTriggerKey(cfg.Marker.Key)
	if err != nil {
		return err
	}

	key := utils.NewHoldWindow(holdWindow, nil)
	scene, err := scenes.NewExplosionScene(scenes.Options{
		Config:      cfg,
		Input:       key,
		OnExplosion: sound.PlayExplosion,
		Seed:        time.Now().UnixNano(),
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	renderer := newTermRenderer(scene.EntityManager(), scene.Assets())
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if trigger.matches(ev.Key(), ev.Rune()) {
					key.Press()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			scene.Update(dt)

			cols, rows := screen.Size()
			renderer.draw(screen, cols, rows)
			drawText(screen, 0, 0, scene.Stats().String(), statusStyle)
			screen.Show()
		}
	}
}

func drawText(w cellWriter, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		w.SetContent(x+i, y, r, nil, style)
	}
}
