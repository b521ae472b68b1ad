package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DebugPanel draws the F1 debug overlay with a music checkbox.
type DebugPanel struct {
	renderer *Renderer
	x, y     float32
	width    float32
}

// NewDebugPanel creates a debug panel anchored at (x, y).
func NewDebugPanel(x, y, width float32) *DebugPanel {
	return &DebugPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Height returns the panel height for the given number of lines.
func (d *DebugPanel) Height(lines int) float32 {
	theme := d.renderer.Theme
	// Title bar, lines, checkbox row
	return float32(24 + (lines+1)*int(theme.LineHeight) + 2*int(theme.Padding))
}

// Draw renders lines inside a panel and returns the new checkbox state.
// musicOn is the current playing state; a different return value means the
// user clicked the checkbox.
func (d *DebugPanel) Draw(lines []string, musicOn bool) bool {
	theme := d.renderer.Theme
	lineHeight := float32(theme.LineHeight)
	pad := float32(theme.Padding)

	bounds := rl.Rectangle{X: d.x, Y: d.y, Width: d.width, Height: d.Height(len(lines))}
	gui.Panel(bounds, "Debug")

	y := d.y + 24 + pad
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: d.x + pad, Y: y, Width: d.width - 2*pad, Height: lineHeight}, line)
		y += lineHeight
	}

	return gui.CheckBox(rl.Rectangle{X: d.x + pad, Y: y + 2, Width: 14, Height: 14}, "Background music", musicOn)
}

// Bottom returns the y coordinate just below the panel.
func (d *DebugPanel) Bottom(lines int) int32 {
	return int32(d.y + d.Height(lines))
}
