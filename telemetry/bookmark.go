package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkLongRally BookmarkType = "long_rally"
	BookmarkOneSided  BookmarkType = "one_sided"
	BookmarkStalemate BookmarkType = "stalemate"
	BookmarkComeback  BookmarkType = "comeback"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type" json:"type"`
	Tick        int32        `csv:"tick" json:"tick"`
	Description string       `csv:"description" json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments in a match.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	scorelessWindows int
	maxDeficit       int // largest lead the trailing side has faced
	trailingSide     int // -1 left trailing, +1 right trailing, 0 level
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3 // minimum for rolling rally average
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	// Long rally: longest rally > 2x rolling mean
	if b := bd.checkLongRally(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// One sided: one player took every point of a busy window
	if b := bd.checkOneSided(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Stalemate: three windows in a row without a point
	if b := bd.checkStalemate(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Comeback: trailing side drew level from 3+ behind
	if b := bd.checkComeback(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkLongRally(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	// Rolling mean over windows that had points
	var sum float64
	var n int
	for _, h := range history {
		if h.Points() > 0 {
			sum += h.RallyMean
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	if avg == 0 {
		return nil
	}

	if stats.RallyMax > avg*2.0 && stats.RallyMax >= 8 {
		return &Bookmark{
			Type:        BookmarkLongRally,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Rally of %.0f hits is %.1fx average (%.1f)", stats.RallyMax, stats.RallyMax/avg, avg),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkOneSided(stats WindowStats) *Bookmark {
	if stats.Points() < 5 {
		return nil
	}
	if stats.LeftPoints != 0 && stats.RightPoints != 0 {
		return nil
	}

	winner := "left"
	if stats.RightPoints > 0 {
		winner = "right"
	}
	return &Bookmark{
		Type:        BookmarkOneSided,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%s took all %d points in the window", winner, stats.Points()),
	}
}

func (bd *BookmarkDetector) checkStalemate(stats WindowStats) *Bookmark {
	if stats.Points() > 0 {
		bd.scorelessWindows = 0
		return nil
	}

	bd.scorelessWindows++
	if bd.scorelessWindows == 3 { // trigger exactly once per drought
		return &Bookmark{
			Type:        BookmarkStalemate,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("No points for 3 windows (%d paddle hits in the last)", stats.PaddleHits),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkComeback(stats WindowStats) *Bookmark {
	lead := stats.LeftScore - stats.RightScore

	switch {
	case lead > 0:
		// Right is trailing
		if bd.trailingSide != 1 {
			bd.trailingSide, bd.maxDeficit = 1, 0
		}
		bd.maxDeficit = max(bd.maxDeficit, lead)
	case lead < 0:
		if bd.trailingSide != -1 {
			bd.trailingSide, bd.maxDeficit = -1, 0
		}
		bd.maxDeficit = max(bd.maxDeficit, -lead)
	default:
		if bd.trailingSide == 0 || bd.maxDeficit < 3 {
			bd.trailingSide, bd.maxDeficit = 0, 0
			return nil
		}
		side := "right"
		if bd.trailingSide == -1 {
			side = "left"
		}
		deficit := bd.maxDeficit
		bd.trailingSide, bd.maxDeficit = 0, 0
		return &Bookmark{
			Type:        BookmarkComeback,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%s drew level at %d from %d behind", side, stats.LeftScore, deficit),
		}
	}

	return nil
}
