package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/match"
	"github.com/pthm-cable/pong/systems"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the match state at one tick for later inspection.
type Snapshot struct {
	Version int    `json:"version"`
	RNGSeed uint64 `json:"rng_seed"`

	FieldWidth  float64 `json:"field_width"`
	FieldHeight float64 `json:"field_height"`

	Tick int32 `json:"tick"`

	LeftScore   int `json:"left_score"`
	RightScore  int `json:"right_score"`
	ActiveBalls int `json:"active_balls"`

	Balls   []BallState   `json:"balls"`
	Paddles []PaddleState `json:"paddles"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// BallState holds one ball's state.
type BallState struct {
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VelX   float64 `json:"vel_x"`
	VelY   float64 `json:"vel_y"`
	Active bool    `json:"active"`
}

// PaddleState holds one paddle's state.
type PaddleState struct {
	Side  string  `json:"side"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score int     `json:"score"`
}

// NewSnapshot captures a match snapshot for saving.
func NewSnapshot(s match.Snapshot, seed uint64, bm *Bookmark) *Snapshot {
	snap := &Snapshot{
		Version:     SnapshotVersion,
		RNGSeed:     seed,
		FieldWidth:  s.Field.W,
		FieldHeight: s.Field.H,
		Tick:        s.Tick,
		LeftScore:   s.Left.Score,
		RightScore:  s.Right.Score,
		ActiveBalls: s.ActiveBalls,
		Balls:       make([]BallState, len(s.Balls)),
		Bookmark:    bm,
	}

	for i, b := range s.Balls {
		snap.Balls[i] = BallState{
			Index:  b.Index,
			X:      b.Rect.X,
			Y:      b.Rect.Y,
			VelX:   b.VX,
			VelY:   b.VY,
			Active: b.Active,
		}
	}
	for _, p := range []match.PaddleView{s.Left, s.Right} {
		snap.Paddles = append(snap.Paddles, PaddleState{
			Side:  p.Side.String(),
			X:     p.Rect.X,
			Y:     p.Rect.Y,
			Score: p.Score,
		})
	}

	return snap
}

// MatchSnapshot rebuilds the match view the snapshot was taken from, for
// match.Restore. Sizes are not saved, so rects carry positions only.
func (s *Snapshot) MatchSnapshot() match.Snapshot {
	ms := match.Snapshot{
		Tick:        s.Tick,
		Field:       systems.Rect{W: s.FieldWidth, H: s.FieldHeight},
		Balls:       make([]match.BallView, len(s.Balls)),
		Left:        match.PaddleView{Side: components.SideLeft},
		Right:       match.PaddleView{Side: components.SideRight},
		ActiveBalls: s.ActiveBalls,
		MaxBalls:    len(s.Balls),
	}

	for i, b := range s.Balls {
		ms.Balls[i] = match.BallView{
			Index:  b.Index,
			Rect:   systems.Rect{X: b.X, Y: b.Y},
			VX:     b.VelX,
			VY:     b.VelY,
			Active: b.Active,
		}
	}
	for _, p := range s.Paddles {
		view := &ms.Right
		if p.Side == components.SideLeft.String() {
			view = &ms.Left
		}
		view.Rect = systems.Rect{X: p.X, Y: p.Y}
		view.Score = p.Score
	}

	return ms
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	name += ".json"

	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
