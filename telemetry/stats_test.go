package telemetry

import (
	"math"
	"testing"
)

func TestComputeLengthStats(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		mean    float64
		std     float64
		max     float64
	}{
		{"empty", nil, 0, 0, 0},
		{"single", []float64{7}, 7, 0, 7},
		{"spread", []float64{3, 4, 5}, 4, 1, 5},
		{"uniform", []float64{3, 3, 3, 3}, 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, max := ComputeLengthStats(tt.lengths)
			if math.Abs(mean-tt.mean) > 1e-9 {
				t.Errorf("mean = %v, want %v", mean, tt.mean)
			}
			if math.Abs(std-tt.std) > 1e-9 {
				t.Errorf("std = %v, want %v", std, tt.std)
			}
			if max != tt.max {
				t.Errorf("max = %v, want %v", max, tt.max)
			}
		})
	}
}

func TestCollectorWindowing(t *testing.T) {
	// 1 second window at 60ms ticks: 16 ticks per window.
	c := NewCollector(1.0, 0.06)

	if c.ShouldFlush(10) {
		t.Error("flush signaled before the window filled")
	}
	if !c.ShouldFlush(16) {
		t.Error("flush not signaled at a full window")
	}

	c.Flush(16, 4, 5, nil)
	if c.ShouldFlush(20) {
		t.Error("window did not restart after flush")
	}
	if !c.ShouldFlush(32) {
		t.Error("second window never filled")
	}
}

func TestCollectorCountsAndResets(t *testing.T) {
	c := NewCollector(1.0, 0.06)

	c.RecordMove("cycle")
	c.RecordMove("cycle")
	c.RecordMove("shortcut")
	c.RecordMove("survival")
	c.RecordStarvedSurvival()
	c.RecordDeath()
	c.RecordFoodEaten()
	c.RecordPlacementFailure()

	stats := c.Flush(16, 4, 5, []float64{3, 4, 5})
	if stats.CycleMoves != 2 || stats.ShortcutMoves != 1 || stats.SurvivalMoves != 1 {
		t.Errorf("move counts = %d/%d/%d, want 2/1/1",
			stats.CycleMoves, stats.ShortcutMoves, stats.SurvivalMoves)
	}
	if stats.StarvedSurvivals != 1 || stats.Deaths != 1 || stats.FoodEaten != 1 || stats.PlacementFailures != 1 {
		t.Errorf("event counts wrong: %+v", stats)
	}
	if stats.AgentCount != 4 || stats.FoodCount != 5 {
		t.Errorf("population = %d/%d, want 4/5", stats.AgentCount, stats.FoodCount)
	}
	if stats.WindowEndTick != 16 {
		t.Errorf("window end = %d, want 16", stats.WindowEndTick)
	}

	// The next window starts clean.
	next := c.Flush(32, 4, 5, nil)
	if next.CycleMoves != 0 || next.Deaths != 0 {
		t.Errorf("counters survived a flush: %+v", next)
	}
	if next.WindowStartTick != 16 {
		t.Errorf("next window start = %d, want 16", next.WindowStartTick)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	// A window shorter than one tick clamps to one tick.
	c := NewCollector(0.01, 0.06)
	if !c.ShouldFlush(1) {
		t.Error("clamped window should flush every tick")
	}
}
