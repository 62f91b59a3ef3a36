package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population counts at window end
	AgentCount int `csv:"agents"`
	FoodCount  int `csv:"food"`

	// Events during window
	CycleMoves        int `csv:"cycle_moves"`
	ShortcutMoves     int `csv:"shortcut_moves"`
	SurvivalMoves     int `csv:"survival_moves"`
	StarvedSurvivals  int `csv:"starved_survivals"`
	Deaths            int `csv:"deaths"`
	FoodEaten         int `csv:"food_eaten"`
	PlacementFailures int `csv:"placement_failures"`

	// Body length distribution (sampled at window end)
	LengthMean float64 `csv:"length_mean"`
	LengthStd  float64 `csv:"length_std"`
	LengthMax  float64 `csv:"length_max"`
}

// ComputeLengthStats calculates mean, standard deviation and max of agent
// body lengths. Returns zeros for an empty sample.
func ComputeLengthStats(lengths []float64) (mean, std, max float64) {
	if len(lengths) == 0 {
		return 0, 0, 0
	}
	mean = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		std = stat.StdDev(lengths, nil)
	}
	for _, l := range lengths {
		if l > max {
			max = l
		}
	}
	return mean, std, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("agents", s.AgentCount),
		slog.Int("food", s.FoodCount),
		slog.Int("cycle_moves", s.CycleMoves),
		slog.Int("shortcut_moves", s.ShortcutMoves),
		slog.Int("survival_moves", s.SurvivalMoves),
		slog.Int("starved_survivals", s.StarvedSurvivals),
		slog.Int("deaths", s.Deaths),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Int("placement_failures", s.PlacementFailures),
		slog.Float64("length_mean", s.LengthMean),
		slog.Float64("length_std", s.LengthStd),
		slog.Float64("length_max", s.LengthMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
