// Package game runs a match inside a raylib window or headless: it polls
// input, plays audio, feeds telemetry and draws each frame around the match
// engine.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/match"
	"github.com/pthm-cable/pong/systems"
	"github.com/pthm-cable/pong/telemetry"
	"github.com/pthm-cable/pong/ui"
)

// Version is shown in the debug overlay.
const Version = "0.3.0a"

// Options configures a game instance.
type Options struct {
	Seed           uint64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	SnapshotDir    string
	OutputDir      string
	StepsPerUpdate int            // headless ticks per UpdateHeadless call
	Config         *config.Config // nil = config.Cfg()

	// Restore starts the match from a saved snapshot instead of a fresh serve.
	// Its ball count must match the config.
	Restore *telemetry.Snapshot

	// Optional hooks for headless runs
	StatsCallback func(telemetry.WindowStats)
	PointCallback func(telemetry.PointRecord)
}

// Game holds the match plus everything around it.
type Game struct {
	cfg     *config.Config
	match   *match.Match
	rngSeed uint64

	headless       bool
	stepsPerUpdate int
	leftBot        match.Bot
	rightBot       match.Bot

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	outputManager    *telemetry.OutputManager
	bookmarkDetector *telemetry.BookmarkDetector
	logStats         bool
	snapshotDir      string
	statsCallback    func(telemetry.WindowStats)
	pointCallback    func(telemetry.PointRecord)

	// Presentation, nil when headless
	audio        *Audio
	renderer     *ui.Renderer
	hud          *ui.HUD
	debugPanel   *ui.DebugPanel
	perfPanel    *ui.PerfPanel
	overlay      *match.DebugOverlay
	musicClicked bool // debug checkbox clicked last frame
}

// NewGameWithOptions creates a game. In windowed mode the raylib window must
// already be open; a missing audio device is an error.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		match:          match.New(cfg, systems.NewRandom(opts.Seed)),
		rngSeed:        opts.Seed,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		leftBot:        match.Bot{Side: components.SideLeft, DeadZone: cfg.Bot.DeadZone},
		rightBot:       match.Bot{Side: components.SideRight, DeadZone: cfg.Bot.DeadZone},

		collector:        telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		logStats:         opts.LogStats,
		snapshotDir:      opts.SnapshotDir,
		statsCallback:    opts.StatsCallback,
		pointCallback:    opts.PointCallback,
	}

	if opts.Restore != nil {
		if err := g.match.Restore(opts.Restore.MatchSnapshot()); err != nil {
			return nil, fmt.Errorf("restoring snapshot: %w", err)
		}
		if opts.Restore.FieldWidth != cfg.Derived.FieldWidth || opts.Restore.FieldHeight != cfg.Derived.FieldHeight {
			slog.Warn("snapshot field differs from config",
				"snapshot_width", opts.Restore.FieldWidth,
				"snapshot_height", opts.Restore.FieldHeight,
			)
		}
		g.collector.StartAt(g.match.Tick())
		slog.Info("match restored", "tick", g.match.Tick(), "active_balls", g.match.ActiveBalls())
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if om != nil {
		g.outputManager = om
		slog.Info("writing output", "dir", om.Dir())
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
	}

	if opts.Headless {
		return g, nil
	}

	// Song choice gets its own stream so it never shifts the match's serves.
	audio, err := NewAudio(cfg.Audio, systems.NewRandom(opts.Seed+1))
	if err != nil {
		g.outputManager.Close()
		return nil, err
	}
	g.audio = audio
	g.renderer = ui.NewRenderer()
	g.hud = ui.NewHUD()
	g.debugPanel = ui.NewDebugPanel(10, 50, 420)
	g.perfPanel = ui.NewPerfPanel(20, 0)
	g.overlay = match.NewDebugOverlay(cfg.Debug.RefreshFrames)

	return g, nil
}

// Update runs one windowed frame: input, match step, audio, telemetry.
func (g *Game) Update() match.StepResult {
	g.perfCollector.RecordFrame()
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	in := g.pollInput()

	g.perfCollector.StartPhase(telemetry.PhaseMatch)
	res := g.match.Step(in)

	g.perfCollector.StartPhase(telemetry.PhaseAudio)
	g.audio.Update(res)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.handleEvents(res)
	g.flushTelemetry()

	g.perfCollector.EndTick()
	return res
}

// UpdateHeadless runs stepsPerUpdate ticks with bots on both paddles.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.perfCollector.StartTick()

		g.perfCollector.StartPhase(telemetry.PhaseInput)
		in := match.BotInput(g.leftBot, g.rightBot, g.match.Snapshot())

		g.perfCollector.StartPhase(telemetry.PhaseMatch)
		res := g.match.Step(in)

		g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
		g.handleEvents(res)
		g.flushTelemetry()

		g.perfCollector.EndTick()
	}
}

// Tick returns the number of completed match ticks.
func (g *Game) Tick() int32 {
	return g.match.Tick()
}

// Score returns the current score of side.
func (g *Game) Score(side components.Side) int {
	return g.match.Score(side)
}

// Snapshot returns a copy of the current match state.
func (g *Game) Snapshot() match.Snapshot {
	return g.match.Snapshot()
}

// Unload releases audio and closes output files.
func (g *Game) Unload() {
	if g.audio != nil {
		g.audio.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
