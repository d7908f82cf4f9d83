package lineup

import (
	"math"

	"github.com/okian/fungo/internal/domain/model"
)

// Summarize reduces a sequence of game results for one batting order to
// its score summary. Deterministic given the same multiset of results,
// independent of how or in what order the games were produced.
func Summarize(order []string, results []model.GameResult) (model.LineupScoreSummary, error) {
	if len(results) == 0 {
		return model.LineupScoreSummary{}, ErrNoData
	}

	summary := model.LineupScoreSummary{
		Order:   append([]string(nil), order...),
		Games:   len(results),
		MinRuns: results[0].Runs,
		MaxRuns: results[0].Runs,
	}

	total := 0
	for _, r := range results {
		total += r.Runs
		if r.Runs < summary.MinRuns {
			summary.MinRuns = r.Runs
		}
		if r.Runs > summary.MaxRuns {
			summary.MaxRuns = r.Runs
		}
	}
	summary.MeanRuns = float64(total) / float64(len(results))

	var sq float64
	for _, r := range results {
		d := float64(r.Runs) - summary.MeanRuns
		sq += d * d
	}
	summary.StdDev = math.Sqrt(sq / float64(len(results)))

	return summary, nil
}
