package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/telemetry"
)

func TestParamVectorNormalizeRoundtrip(t *testing.T) {
	pv := NewParamVector()
	def := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(def))
	for i := range def {
		if math.Abs(back[i]-def[i]) > 1e-9 {
			t.Errorf("%s: got %g, want %g", pv.Specs[i].Name, back[i], def[i])
		}
	}
}

func TestParamVectorClamp(t *testing.T) {
	pv := NewParamVector()
	got := pv.Clamp([]float64{-5, 100, 1.5, 4})
	want := []float64{1, 10, 1.5, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: got %g, want %g", pv.Specs[i].Name, got[i], want[i])
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	extracted := pv.ExtractFromConfig(cfg)
	def := pv.DefaultVector()
	for i := range def {
		if extracted[i] != def[i] {
			t.Errorf("%s: config %g, default %g", pv.Specs[i].Name, extracted[i], def[i])
		}
	}
}

func TestApplyToConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	pv.ApplyToConfig(cfg, []float64{2, 3, 0.5, 20})

	if cfg.Ball.ServeSigma != 2 || cfg.Ball.StrikeSigma != 3 || cfg.Ball.SpeedUp != 0.5 {
		t.Errorf("ball = %+v", cfg.Ball)
	}
	if cfg.Paddle.Speed != 14 {
		t.Errorf("paddle speed = %g, want clamped 14", cfg.Paddle.Speed)
	}
}

func TestComputeFitness(t *testing.T) {
	fe := &FitnessEvaluator{targetRally: 4}

	tests := []struct {
		name   string
		points []telemetry.PointRecord
		want   float64
	}{
		{
			name: "no points",
			want: noPointsPenalty,
		},
		{
			name: "on target and balanced",
			points: []telemetry.PointRecord{
				{Scorer: "left", RallyHits: 3},
				{Scorer: "right", RallyHits: 5},
			},
			want: 0,
		},
		{
			name: "short and one-sided",
			points: []telemetry.PointRecord{
				{Scorer: "left", RallyHits: 2},
				{Scorer: "left", RallyHits: 2},
			},
			want: 0.25 + imbalanceWeight,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := fe.computeFitness(tc.points)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("fitness = %g, want %g", got, tc.want)
			}
		})
	}
}
