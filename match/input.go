package match

import "github.com/pthm-cable/pong/systems"

// Input is the per-tick signal set collected by the front-end.
type Input struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool

	Quit        bool
	ToggleMusic bool
	ToggleDebug bool
}

func (in Input) paddleControls() systems.PaddleControls {
	return systems.PaddleControls{
		LeftUp:    in.LeftUp,
		LeftDown:  in.LeftDown,
		RightUp:   in.RightUp,
		RightDown: in.RightDown,
	}
}
