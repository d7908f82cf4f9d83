package model

// GameResult is the outcome of one simulated game: total runs scored
// across all innings, with the per-inning split retained for reporting.
type GameResult struct {
	ID         string
	Runs       int
	InningRuns []int
}

// LineupScoreSummary aggregates per-game scores for one fixed batting
// order. It is the externally visible artifact of a lineup evaluation.
type LineupScoreSummary struct {
	Order    []string
	Games    int
	MeanRuns float64
	MinRuns  int
	MaxRuns  int
	StdDev   float64
}
