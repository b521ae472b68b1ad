package match

import "github.com/pthm-cable/pong/components"

// EventType identifies match events.
type EventType uint8

const (
	EventPaddleHit EventType = iota
	EventWallBounce
	EventBallOut
	EventPoint
	EventReset
	EventMusicToggled
	EventDebugToggled
)

func (t EventType) String() string {
	switch t {
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventBallOut:
		return "ball_out"
	case EventPoint:
		return "point"
	case EventReset:
		return "reset"
	case EventMusicToggled:
		return "music_toggled"
	case EventDebugToggled:
		return "debug_toggled"
	default:
		return "unknown"
	}
}

// Event is emitted by the engine and consumed by collaborators (audio,
// telemetry). Nothing flows back.
type Event struct {
	Type EventType
	Tick int32
	Ball int // ball index, -1 when not ball-related

	// Side is the scoring side for EventPoint and the exited wall's
	// opponent for EventBallOut.
	Side components.Side

	// On is the new state for toggle events.
	On bool
}
