package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
)

// Report is the full output of one lineup evaluation, written as a
// timestamped YAML file.
type Report struct {
	Order          []string
	Games          int
	InningsPerGame int
	AverageScore   float64
	Details        []GameDetail
}

// SaveYAML writes the report under dir as simulation_results_<ts>.yaml and
// returns the path written. The directory is created if missing.
func SaveYAML(dir string, rep Report) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteResults, err)
	}

	doc := map[string]interface{}{
		"simulation_summary": map[string]interface{}{
			"num_games_simulated": rep.Games,
			"innings_per_game":    rep.InningsPerGame,
			"average_score":       rep.AverageScore,
			"lineup_order":        rep.Order,
		},
		"game_details": rep.Details,
	}
	body, err := yaml.Parser().Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteResults, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("simulation_results_%s.yaml", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteResults, err)
	}
	return path, nil
}
