package match

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Stats describes one metric across a batch of games.
type Stats struct {
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

func describe(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = 0 // Sample deviation is undefined for one game
	}

	return Stats{
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
	}
}

// Summary aggregates the results of many games.
type Summary struct {
	Games      int
	Reasons    map[EndReason]int
	Turns      Stats
	Score      Stats
	MaxTile    Stats
	TileSum    Stats
	FinalScore Stats
	Rollout    Stats // Peak-penalty heuristic of the final board
}

// Summarize computes per-metric statistics over results.
func Summarize(results []Result) Summary {
	n := len(results)
	turns := make([]float64, 0, n)
	score := make([]float64, 0, n)
	maxTile := make([]float64, 0, n)
	tileSum := make([]float64, 0, n)
	final := make([]float64, 0, n)
	rollout := make([]float64, 0, n)

	reasons := make(map[EndReason]int)
	for _, r := range results {
		reasons[r.Reason]++
		turns = append(turns, float64(r.Turns))
		score = append(score, float64(r.Score))
		maxTile = append(maxTile, float64(r.MaxTile))
		tileSum = append(tileSum, float64(r.TileSum))
		final = append(final, r.FinalScore)
		rollout = append(rollout, t2048.RolloutScore(r.Board))
	}

	return Summary{
		Games:      n,
		Reasons:    reasons,
		Turns:      describe(turns),
		Score:      describe(score),
		MaxTile:    describe(maxTile),
		TileSum:    describe(tileSum),
		FinalScore: describe(final),
		Rollout:    describe(rollout),
	}
}
