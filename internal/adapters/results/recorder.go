// Package results persists simulation output: play-by-play recording,
// timestamped YAML reports, and the sweep CSV summary.
package results

import (
	"fmt"
	"sync"

	"github.com/okian/fungo/internal/domain/game"
)

// GameDetail is one game's recorded trace: the final score plus a
// human-readable play log.
type GameDetail struct {
	GameID string   `yaml:"game_id"`
	Score  int      `yaml:"score"`
	Log    []string `yaml:"log"`
}

// Recorder implements game.Trace and keeps a play log per game for
// inclusion in the YAML report. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	order map[string]int
	games []GameDetail
}

// NewRecorder builds an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{order: make(map[string]int)}
}

func (r *Recorder) GameStart(gameID string, order []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order[gameID] = len(r.games)
	r.games = append(r.games, GameDetail{
		GameID: gameID,
		Log:    []string{fmt.Sprintf("Lineup: %v", order)},
	})
}

func (r *Recorder) Play(ev game.PlayEvent) {
	r.append(ev.GameID, fmt.Sprintf(
		"Inning %d, batter %d (%s): %s [%s], %d run(s), %d out(s), bases %s",
		ev.Inning, ev.Batter+1, ev.Player, ev.Outcome, ev.Kind, ev.Runs, ev.Outs, ev.Bases,
	))
}

func (r *Recorder) InningEnd(gameID string, inning, runs int) {
	r.append(gameID, fmt.Sprintf("End of inning %d: %d run(s)", inning, runs))
}

func (r *Recorder) GameEnd(gameID string, runs int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.order[gameID]; ok {
		r.games[i].Score = runs
		r.games[i].Log = append(r.games[i].Log, fmt.Sprintf("Final score: %d", runs))
	}
}

// Games returns a copy of the recorded game details in start order.
func (r *Recorder) Games() []GameDetail {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]GameDetail, len(r.games))
	copy(out, r.games)
	return out
}

func (r *Recorder) append(gameID, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.order[gameID]; ok {
		r.games[i].Log = append(r.games[i].Log, line)
	}
}
