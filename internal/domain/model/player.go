package model

// PlayerStats is an immutable record of one player's cumulative season
// statistics. Counting fields use plate_appearances or at_bats as their
// denominator when converted into outcome probabilities.
type PlayerStats struct {
	PlateAppearances int `koanf:"plate_appearances"`
	AtBats           int `koanf:"at_bats"`
	Hits             int `koanf:"hits"`
	Doubles          int `koanf:"doubles"`
	Triples          int `koanf:"triples"`
	HomeRuns         int `koanf:"home_runs"`
	Walks            int `koanf:"walks"`
	Strikeouts       int `koanf:"strikeouts"`
	HitByPitch       int `koanf:"hit_by_pitch"`

	// ExtraBasePercentage is the probability in [0,1] of taking an
	// additional, non-forced base on a qualifying play.
	ExtraBasePercentage float64 `koanf:"extra_base_percentage"`

	// GroundFlyRatio splits balls-in-play outs between ground outs and
	// fly outs: groundShare = ratio / (1 + ratio).
	GroundFlyRatio float64 `koanf:"gb_fb_ratio"`
}

// Singles derives the single count from hits minus extra-base hits.
func (s PlayerStats) Singles() int {
	return s.Hits - (s.Doubles + s.Triples + s.HomeRuns)
}

// Player is one roster member: a unique ID plus season statistics.
// Owned by the roster and read-only during simulation.
type Player struct {
	ID    string      `koanf:"id"`
	Name  string      `koanf:"name"`
	Stats PlayerStats `koanf:"stats"`
}
