// Package ui draws the scoreboard, debug panel and performance readout.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	Background    rl.Color
	Foreground    rl.Color
	CenterLine    rl.Color
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	WarnColor     rl.Color
	HotColor      rl.Color
	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	FontSize      int32
	ScoreFontSize int32
}

// DefaultTheme returns the default UI theme: white on black.
func DefaultTheme() Theme {
	return Theme{
		Background:    rl.Black,
		Foreground:    rl.White,
		CenterLine:    rl.Color{R: 80, G: 80, B: 80, A: 255},
		PanelBg:       rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:   rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader: rl.Yellow,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		WarnColor:     rl.Orange,
		HotColor:      rl.Red,
		Padding:       10,
		LineHeight:    18,
		LabelWidth:    90,
		FontSize:      14,
		ScoreFontSize: 30,
	}
}
