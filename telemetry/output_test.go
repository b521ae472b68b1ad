package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/pong/config"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager when output is disabled")
	}

	// Nil manager methods are no-ops
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Errorf("WriteStats on nil manager: %v", err)
	}
	if err := om.WritePoint(PointRecord{}); err != nil {
		t.Errorf("WritePoint on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir() = %q, want empty", om.Dir())
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WritePoint(PointRecord{Tick: int32(i * 100), Scorer: "left", LeftScore: i, RallyHits: i}); err != nil {
			t.Fatalf("WritePoint: %v", err)
		}
	}
	if err := om.WriteStats(WindowStats{WindowEndTick: 600, PaddleHits: 12}); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}
	if err := om.WriteStats(WindowStats{WindowEndTick: 1200, PaddleHits: 7}); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkStalemate, Tick: 1200, Description: "quiet"}); err != nil {
		t.Fatalf("WriteBookmark: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 600); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	points := readLines(t, filepath.Join(dir, "points.csv"))
	if len(points) != 4 {
		t.Fatalf("points.csv has %d lines, want header + 3", len(points))
	}
	if !strings.HasPrefix(points[0], "tick,sim_time,scorer") {
		t.Errorf("points header = %q", points[0])
	}
	if !strings.HasPrefix(points[3], "300,") {
		t.Errorf("last point row = %q", points[3])
	}

	stats := readLines(t, filepath.Join(dir, "stats.csv"))
	if len(stats) != 3 {
		t.Fatalf("stats.csv has %d lines, want header + 2", len(stats))
	}
	if strings.Contains(stats[0], "window_start") {
		t.Error("stats header should not include the skipped window_start column")
	}
	if strings.Count(strings.Join(stats, "\n"), "window_end") != 1 {
		t.Error("stats header written more than once")
	}

	if lines := readLines(t, filepath.Join(dir, "bookmarks.csv")); len(lines) != 2 {
		t.Errorf("bookmarks.csv has %d lines, want 2", len(lines))
	}
	if lines := readLines(t, filepath.Join(dir, "perf.csv")); len(lines) != 2 {
		t.Errorf("perf.csv has %d lines, want 2", len(lines))
	}
}

func TestOutputManagerWriteConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Match.BallCount = 4

	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	loaded, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if loaded.Match.BallCount != 4 {
		t.Errorf("ball_count = %d, want 4", loaded.Match.BallCount)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
