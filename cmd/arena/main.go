package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/ecs"
	"github.com/milk9111/jewelwood/prefabs"
	"github.com/milk9111/jewelwood/system"
)

func main() {
	headless := flag.Bool("headless", false, "run the simulation without a window")
	frames := flag.Int("frames", 1800, "frames to simulate in headless mode")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	debug := flag.Bool("debug", false, "enable debug logging")
	watchDir := flag.String("watch", "", "prefab directory to hot reload tuning and scripts from")
	tuningFile := flag.String("tuning", prefabs.TuningFile, "tuning document, relative to the prefab directory")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	if *watchDir != "" {
		prefabs.Dir = *watchDir
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	tuning := loadTuning(*tuningFile)
	world, _ := newSession(tuning, *seed)
	slog.Info("arena: session ready", "seed", *seed, "tuning", *tuningFile)

	if *headless {
		s := runHeadless(world, *frames, headlessDelta)
		s.print(os.Stdout)
		return
	}

	var watcher *prefabs.Watcher
	if *watchDir != "" {
		w, err := prefabs.NewWatcher(*watchDir, filepath.Join(*watchDir, "scripts"))
		if err != nil {
			slog.Error("arena: watcher unavailable, hot reload disabled", "dir", *watchDir, "err", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("jewelwood arena")

	game := NewGame(world, tuning, *tuningFile, watcher, *seed)
	if err := ebiten.RunGame(game); err != nil {
		slog.Error("arena: game exited", "err", err)
		os.Exit(1)
	}
}

// loadTuning falls back to the built-in defaults when the document cannot
// be used.
func loadTuning(name string) prefabs.Tuning {
	t, err := prefabs.LoadTuningFile(name)
	if err != nil {
		slog.Error("arena: tuning rejected, using defaults", "file", name, "err", err)
		return prefabs.DefaultTuning()
	}
	return t
}

func newSession(t prefabs.Tuning, seed int64) (*ecs.World, *system.Set) {
	world := ecs.NewWorld()
	world.Player.Position = common.V3(0, 1, 0)
	set, err := system.Install(world, t, rand.New(rand.NewSource(seed)))
	if err != nil {
		slog.Error("arena: tuning partially applied", "err", err)
	}
	return world, set
}
