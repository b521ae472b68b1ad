package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one stage of a frame update.
type Phase uint8

const (
	PhaseInput Phase = iota
	PhaseMatch
	PhaseAudio
	PhaseTelemetry

	phaseCount
)

var phaseNames = [phaseCount]string{"input", "match", "audio", "telemetry"}

func (p Phase) String() string {
	if p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// Phases lists every phase in update order.
func Phases() []Phase {
	return []Phase{PhaseInput, PhaseMatch, PhaseAudio, PhaseTelemetry}
}

// tickTiming is the measured cost of one match update.
type tickTiming struct {
	total  time.Duration
	phases [phaseCount]time.Duration
}

// PerfCollector times match updates phase by phase and measures the frame
// rate, both over the last windowSize updates and frames. Headless runs never
// record frames, so their FPS stays zero.
type PerfCollector struct {
	now func() time.Time

	ticks     []tickTiming
	tickNext  int
	tickCount int

	frames     []time.Duration // intervals between consecutive RecordFrame calls
	frameNext  int
	frameCount int
	lastFrame  time.Time

	current    tickTiming
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool
}

// NewPerfCollector creates a collector averaging over windowSize updates
// (60 is one second at 60 fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		now:    time.Now,
		ticks:  make([]tickTiming, windowSize),
		frames: make([]time.Duration, windowSize),
	}
}

// StartTick begins timing one match update.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.current = tickTiming{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and opens phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := p.now()
	p.closePhase(now)
	p.phase = phase
	p.phaseStart = now
	p.inPhase = true
}

// EndTick closes the running phase and stores the update's timing.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.inPhase = false
	p.current.total = now.Sub(p.tickStart)

	p.ticks[p.tickNext] = p.current
	p.tickNext = (p.tickNext + 1) % len(p.ticks)
	p.tickCount = min(p.tickCount+1, len(p.ticks))
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase && p.phase < phaseCount {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// RecordFrame marks the start of a drawn frame.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frames[p.frameNext] = now.Sub(p.lastFrame)
		p.frameNext = (p.frameNext + 1) % len(p.frames)
		p.frameCount = min(p.frameCount+1, len(p.frames))
	}
	p.lastFrame = now
}

// PerfStats summarizes the current window.
type PerfStats struct {
	Ticks    int // updates in the window
	AvgTick  time.Duration
	MaxTick  time.Duration
	PhaseAvg [phaseCount]time.Duration

	TicksPerSecond float64 // update throughput if nothing else ran

	FrameTime time.Duration // mean interval between frames
	FPS       float64
}

// PhasePct returns phase's share of the average update in percent.
func (s PerfStats) PhasePct(phase Phase) float64 {
	if s.AvgTick <= 0 || phase >= phaseCount {
		return 0
	}
	return float64(s.PhaseAvg[phase]) / float64(s.AvgTick) * 100
}

// Stats computes the window summary.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats

	if p.frameCount > 0 {
		var total time.Duration
		for _, d := range p.frames[:p.frameCount] {
			total += d
		}
		s.FrameTime = total / time.Duration(p.frameCount)
		if s.FrameTime > 0 {
			s.FPS = float64(time.Second) / float64(s.FrameTime)
		}
	}

	if p.tickCount == 0 {
		return s
	}

	var total time.Duration
	var phaseSum [phaseCount]time.Duration
	for _, t := range p.ticks[:p.tickCount] {
		total += t.total
		s.MaxTick = max(s.MaxTick, t.total)
		for i, d := range t.phases {
			phaseSum[i] += d
		}
	}

	n := time.Duration(p.tickCount)
	s.Ticks = p.tickCount
	s.AvgTick = total / n
	for i := range phaseSum {
		s.PhaseAvg[i] = phaseSum[i] / n
	}
	if s.AvgTick > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTick)
	}

	return s
}

// LogStats logs the window summary using slog.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTick.Microseconds(),
		"max_tick_us", s.MaxTick.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range Phases() {
		attrs = append(attrs, phase.String()+"_pct", int(s.PhasePct(phase)*10)/10.0)
	}

	slog.Info("perf", attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	Ticks        int     `csv:"ticks"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	InputPct     float64 `csv:"input_pct"`
	MatchPct     float64 `csv:"match_pct"`
	AudioPct     float64 `csv:"audio_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the summary for perf.csv.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		Ticks:        s.Ticks,
		AvgTickUS:    s.AvgTick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		InputPct:     s.PhasePct(PhaseInput),
		MatchPct:     s.PhasePct(PhaseMatch),
		AudioPct:     s.PhasePct(PhaseAudio),
		TelemetryPct: s.PhasePct(PhaseTelemetry),
	}
}
