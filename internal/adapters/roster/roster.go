// Package roster loads the player pool and default batting order from a
// YAML file.
package roster

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/fungo/internal/domain/model"
)

// Roster is the parsed roster file: the full player pool plus an optional
// default batting order referencing player IDs.
type Roster struct {
	Players []model.Player `koanf:"players"`
	Lineup  []string       `koanf:"lineup"`
}

// Load reads and validates a roster file. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use.
func Load(_ context.Context, path string) (*Roster, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadRoster, err)
	}

	var r Roster
	if err := k.UnmarshalWithConf("", &r, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadRoster, err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Pool indexes the players by ID.
func (r *Roster) Pool() map[string]model.Player {
	pool := make(map[string]model.Player, len(r.Players))
	for _, p := range r.Players {
		pool[p.ID] = p
	}
	return pool
}

func (r *Roster) validate() error {
	if len(r.Players) < model.LineupSize {
		return fmt.Errorf("%w: need at least %d players, got %d", ErrInvalidRoster, model.LineupSize, len(r.Players))
	}
	seen := make(map[string]struct{}, len(r.Players))
	for i, p := range r.Players {
		if p.ID == "" {
			return fmt.Errorf("%w: player %d has an empty id", ErrInvalidRoster, i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate player id %q", ErrInvalidRoster, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	if len(r.Lineup) == 0 {
		return nil
	}
	if len(r.Lineup) != model.LineupSize {
		return fmt.Errorf("%w: lineup must list %d player ids, got %d", ErrInvalidRoster, model.LineupSize, len(r.Lineup))
	}
	inOrder := make(map[string]struct{}, len(r.Lineup))
	for _, id := range r.Lineup {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: lineup references unknown player %q", ErrInvalidRoster, id)
		}
		if _, dup := inOrder[id]; dup {
			return fmt.Errorf("%w: lineup lists player %q twice", ErrInvalidRoster, id)
		}
		inOrder[id] = struct{}{}
	}
	return nil
}
