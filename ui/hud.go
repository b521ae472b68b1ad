package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/telemetry"
)

// HUDData holds all the data needed to render the scoreboard.
type HUDData struct {
	LeftScore   int
	RightScore  int
	ScreenWidth int32
}

// HUD renders the scoreboard.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders both scores at the top of the field, one per half.
func (h *HUD) Draw(data HUDData) {
	theme := h.renderer.Theme
	size := theme.ScoreFontSize

	left := fmt.Sprintf("Player A: %d", data.LeftScore)
	right := fmt.Sprintf("Player B: %d", data.RightScore)

	quarter := data.ScreenWidth / 4
	rl.DrawText(left, quarter-rl.MeasureText(left, size)/2, theme.Padding, size, theme.Foreground)
	rl.DrawText(right, 3*quarter-rl.MeasureText(right, size)/2, theme.Padding, size, theme.Foreground)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the per-phase frame timing.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	phases := telemetry.Phases()

	pad := r.Theme.Padding
	rows := int32(3 + len(phases))
	r.DrawPanel(p.x-pad, p.y-pad, r.Theme.LabelWidth+150+2*pad, rows*r.Theme.LineHeight+2*pad)

	x := p.x
	y := p.y
	y = r.DrawSectionHeader(x, y, "Frame Performance")
	y = r.DrawLabelValue(x, y, "Frame", fmt.Sprintf("%s (%.0f fps)", stats.FrameTime.Round(time.Microsecond), stats.FPS), r.Theme.ValueColor)
	y = r.DrawLabelValue(x, y, "Update", stats.AvgTick.Round(time.Microsecond).String(), r.Theme.ValueColor)

	for _, phase := range phases {
		pct := stats.PhasePct(phase)

		color := r.Theme.LabelColor
		if pct > 50 {
			color = r.Theme.HotColor
		} else if pct > 25 {
			color = r.Theme.WarnColor
		}

		avg := stats.PhaseAvg[phase].Round(time.Microsecond)
		y = r.DrawLabelValue(x, y, phase.String(), fmt.Sprintf("%6s %5.1f%%", avg, pct), color)
	}
}
