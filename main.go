package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/game"
	"github.com/pthm-cable/pong/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to a .yaml or .toml config file (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, bots on both paddles")
	balls := flag.Int("balls", 0, "Balls per round (0 = use config)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Match ticks per update call in headless mode")
	restore := flag.String("restore", "", "Resume from a snapshot JSON file (its ball count wins over -balls)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *balls > 0 {
		if err := cfg.SetBallCount(*balls); err != nil {
			slog.Error("invalid ball count", "error", err)
			os.Exit(1)
		}
	}

	var restored *telemetry.Snapshot
	if *restore != "" {
		snap, err := telemetry.LoadSnapshot(*restore)
		if err != nil {
			slog.Error("failed to load snapshot", "error", err)
			os.Exit(1)
		}
		if err := cfg.SetBallCount(len(snap.Balls)); err != nil {
			slog.Error("invalid snapshot", "path", *restore, "error", err)
			os.Exit(1)
		}
		restored = snap
	}

	rngSeed := *seed
	if rngSeed == 0 && restored != nil {
		rngSeed = restored.RNGSeed
	}
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	opts := game.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		SnapshotDir:    *snapshotDir,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
		Restore:        restored,
	}

	if *headless {
		runHeadless(opts, *maxTicks)
		return
	}
	runWindowed(cfg, opts, *maxTicks)
}

// runHeadless plays bot against bot with no raylib calls.
func runHeadless(opts game.Options, maxTicks int) {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting headless match",
		"seed", opts.Seed,
		"balls", config.Cfg().Match.BallCount,
		"max_ticks", maxTicks,
		"steps_per_update", opts.StepsPerUpdate,
	)

	for {
		g.UpdateHeadless()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			s := g.Snapshot()
			slog.Info("max ticks reached",
				"tick", g.Tick(),
				"left_score", s.Left.Score,
				"right_score", s.Right.Score,
			)
			return
		}
	}
}

// runWindowed opens the window and runs until it is closed.
func runWindowed(cfg *config.Config, opts game.Options, maxTicks int) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Derived.WindowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(rl.KeyNull)

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return
	}
	defer g.Unload()

	slog.Info("starting match", "seed", opts.Seed, "balls", cfg.Match.BallCount, "version", game.Version)

	for {
		res := g.Update()
		g.Draw()

		// The quitting frame is still drawn.
		if res.Quit {
			break
		}
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}
