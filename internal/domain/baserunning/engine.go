package baserunning

import (
	"fmt"

	"github.com/okian/fungo/internal/domain/model"
	"github.com/okian/fungo/pkg/draw"
)

// PlayKind classifies how a resolution unfolded, for traces and reports.
type PlayKind int

// Play kinds.
const (
	PlainPlay PlayKind = iota
	DoublePlay
	FieldersChoice
	SacrificeFly
)

// String returns a human-readable play label.
func (k PlayKind) String() string {
	switch k {
	case DoublePlay:
		return "double play"
	case FieldersChoice:
		return "fielder's choice"
	case SacrificeFly:
		return "sacrifice fly"
	default:
		return "plain"
	}
}

// Resolution is the full effect of one plate appearance on the inning.
type Resolution struct {
	State model.BaseState
	Outs  int
	Runs  int
	Kind  PlayKind
}

// Engine resolves plate-appearance outcomes against the current base
// and out state. One engine serves one game; it holds the lineup's
// extra-base percentages and the game's random stream.
type Engine struct {
	rules Rules
	xbp   [model.LineupSize]float64
	src   draw.Source
}

// NewEngine builds an engine for a nine-player batting order.
func NewEngine(rules Rules, lineup []model.Player, src draw.Source) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if len(lineup) != model.LineupSize {
		return nil, fmt.Errorf("%w: engine requires %d lineup slots, got %d",
			ErrInvalidState, model.LineupSize, len(lineup))
	}
	e := &Engine{rules: rules, src: src}
	for i, p := range lineup {
		e.xbp[i] = p.Stats.ExtraBasePercentage
	}
	return e, nil
}

// Resolve applies one outcome to the current state and returns the new
// base state, out count, and runs scored. When the play records the
// third out, no advancement is evaluated and no runs are credited.
func (e *Engine) Resolve(o model.Outcome, state model.BaseState, outs int, batter model.Slot) (Resolution, error) {
	if err := validate(state, outs, batter); err != nil {
		return Resolution{}, err
	}

	switch o {
	case model.Walk, model.HitByPitch:
		return e.resolveForced(state, outs, batter), nil
	case model.Strikeout:
		return Resolution{State: state, Outs: outs + 1}, nil
	case model.HomeRun:
		return Resolution{Outs: outs, Runs: state.Count() + 1}, nil
	case model.Triple:
		res := Resolution{Outs: outs, Runs: state.Count()}
		res.State.Put(model.Third, batter)
		return res, nil
	case model.Single, model.Double:
		return e.resolveHit(o, state, outs, batter), nil
	case model.GroundOut:
		return e.resolveGroundOut(state, outs, batter)
	case model.FlyOut:
		return e.resolveFlyOut(state, outs), nil
	default:
		return Resolution{}, fmt.Errorf("%w: unknown outcome %d", ErrInvalidState, int(o))
	}
}

// resolveForced handles walks and hit-by-pitch: the batter takes first
// and only the contiguous forced chain starting there moves, one base
// each. Unforced runners hold. No outs change.
func (e *Engine) resolveForced(state model.BaseState, outs int, batter model.Slot) Resolution {
	res := Resolution{State: state, Outs: outs}

	if state.Occupied(model.First) {
		if state.Occupied(model.Second) {
			if state.Occupied(model.Third) {
				// Bases loaded: the runner on third is forced home.
				res.State.Take(model.Third)
				res.Runs++
			}
			r, _ := res.State.Take(model.Second)
			res.State.Put(model.Third, r)
		}
		r, _ := res.State.Take(model.First)
		res.State.Put(model.Second, r)
	}
	res.State.Put(model.First, batter)
	return res
}

// resolveHit handles singles and doubles with default advancement plus
// extra-base attempts gated by each runner's extra-base percentage.
func (e *Engine) resolveHit(o model.Outcome, state model.BaseState, outs int, batter model.Slot) Resolution {
	res := Resolution{Outs: outs}

	// Lead runner first so base traffic resolves front to back.
	if _, ok := state.Runner(model.Third); ok {
		res.Runs++ // scores on any hit
	}
	if r, ok := state.Runner(model.Second); ok {
		if o == model.Double {
			res.Runs++
		} else {
			target := model.Third
			if draw.Chance(e.src, e.xbp[r]) {
				target = model.Home
			}
			e.place(&res, model.Second, r, target)
		}
	}
	if r, ok := state.Runner(model.First); ok {
		target := model.Second
		if o == model.Double {
			target = model.Third
		}
		if draw.Chance(e.src, e.xbp[r]) {
			target++
		}
		e.place(&res, model.First, r, target)
	}

	batterTarget := model.First
	if o == model.Double {
		batterTarget = model.Second
	}
	res.State.Put(batterTarget, batter)
	return res
}

// resolveFlyOut records the out, then, if the inning continues, scores
// the runner on third (sacrifice fly) and lets trailing runners tag up
// gated by their extra-base percentages.
func (e *Engine) resolveFlyOut(state model.BaseState, outs int) Resolution {
	if outs+1 >= 3 {
		return Resolution{State: state, Outs: 3}
	}

	res := Resolution{Outs: outs + 1}
	if _, ok := state.Runner(model.Third); ok {
		res.Runs++
		res.Kind = SacrificeFly
	}
	for b := model.Second; b >= model.First; b-- {
		if r, ok := state.Runner(b); ok {
			target := b
			if draw.Chance(e.src, e.xbp[r]) {
				target++
			}
			e.place(&res, b, r, target)
		}
	}
	return res
}

// resolveGroundOut decides between a plain out, a double play, and a
// fielder's choice, then applies ground-ball advancement for survivors.
func (e *Engine) resolveGroundOut(state model.BaseState, outs int, batter model.Slot) (Resolution, error) {
	if state.Count() == 0 {
		return Resolution{State: state, Outs: outs + 1}, nil
	}
	if outs >= 2 {
		// With two outs there is no DP/FC decision: the batter is
		// retired and the inning ends before any advancement.
		return Resolution{State: state, Outs: 3}, nil
	}

	forced := forcedBases(state)

	if len(forced) > 0 && draw.Chance(e.src, e.rules.DPAttemptProbability) {
		return e.resolveDoublePlay(state, outs, forced)
	}
	if len(forced) > 0 {
		return e.resolveFieldersChoice(state, outs, batter, forced)
	}

	// No force: the batter is out and runners advance on contact,
	// gated by their extra-base percentages.
	res := e.groundAdvance(state, outs+1)
	return res, nil
}

// resolveDoublePlay retires the batter plus one forced runner chosen by
// the configured weights.
func (e *Engine) resolveDoublePlay(state model.BaseState, outs int, forced []model.Base) (Resolution, error) {
	candidates := make([]draw.Candidate[model.Base], len(forced))
	for i, b := range forced {
		candidates[i] = draw.Candidate[model.Base]{Value: b, Weight: e.rules.dpWeight(b)}
	}
	victim, err := draw.Weighted(e.src, candidates)
	if err != nil {
		return Resolution{}, fmt.Errorf("double-play victim draw: %w", err)
	}

	state.Take(victim)
	if outs+2 >= 3 {
		return Resolution{State: state, Outs: 3, Kind: DoublePlay}, nil
	}
	res := e.groundAdvance(state, outs+2)
	res.Kind = DoublePlay
	return res, nil
}

// resolveFieldersChoice retires either the batter or one forced runner.
// When a runner is the victim the batter reaches first, re-forming a
// forced chain for the survivors.
func (e *Engine) resolveFieldersChoice(state model.BaseState, outs int, batter model.Slot, forced []model.Base) (Resolution, error) {
	candidates := make([]draw.Candidate[int], 0, len(forced)+1)
	candidates = append(candidates, draw.Candidate[int]{Value: BatterKey, Weight: e.rules.fcWeight(BatterKey)})
	for _, b := range forced {
		candidates = append(candidates, draw.Candidate[int]{Value: int(b), Weight: e.rules.fcWeight(int(b))})
	}
	victim, err := draw.Weighted(e.src, candidates)
	if err != nil {
		return Resolution{}, fmt.Errorf("fielders-choice victim draw: %w", err)
	}

	if victim == BatterKey {
		res := e.groundAdvance(state, outs+1)
		res.Kind = FieldersChoice
		return res, nil
	}

	state.Take(model.Base(victim))
	res := Resolution{Outs: outs + 1, Kind: FieldersChoice}
	for b := model.Third; b >= model.First; b-- {
		r, ok := state.Runner(b)
		if !ok {
			continue
		}
		target := b
		if chainForced(state, b) || draw.Chance(e.src, e.xbp[r]) {
			target++
		}
		e.place(&res, b, r, target)
	}
	res.State.Put(model.First, batter)
	return res, nil
}

// groundAdvance applies post-contact advancement when the batter is out
// on a ground ball: each surviving runner, lead first, takes one base
// with probability equal to their extra-base percentage.
func (e *Engine) groundAdvance(state model.BaseState, newOuts int) Resolution {
	res := Resolution{Outs: newOuts}
	for b := model.Third; b >= model.First; b-- {
		if r, ok := state.Runner(b); ok {
			target := b
			if draw.Chance(e.src, e.xbp[r]) {
				target++
			}
			e.place(&res, b, r, target)
		}
	}
	return res
}

// place puts a runner as close to target as base traffic allows: the
// target base, else each base back down to the runner's pre-play base.
// A target of Home scores the runner.
func (e *Engine) place(res *Resolution, start model.Base, runner model.Slot, target model.Base) {
	if target >= model.Home {
		res.Runs++
		return
	}
	for b := target; b >= start; b-- {
		if !res.State.Occupied(b) {
			res.State.Put(b, runner)
			return
		}
	}
	// Unreachable for valid states: lead-first processing guarantees a
	// runner's own base stays free until they are placed.
}

// forcedBases returns the bases whose runners are forced by the batter
// becoming a runner: first when occupied, and second when both first
// and second are occupied.
func forcedBases(state model.BaseState) []model.Base {
	if !state.Occupied(model.First) {
		return nil
	}
	forced := []model.Base{model.First}
	if state.Occupied(model.Second) {
		forced = append(forced, model.Second)
	}
	return forced
}

// chainForced reports whether the runner on base b is forced given the
// batter occupies the plate: every base behind b must be occupied.
func chainForced(state model.BaseState, b model.Base) bool {
	for c := b - 1; c >= model.First; c-- {
		if !state.Occupied(c) {
			return false
		}
	}
	return true
}

// validate guards the engine's input invariants.
func validate(state model.BaseState, outs int, batter model.Slot) error {
	if outs < 0 || outs > 2 {
		return fmt.Errorf("%w: out count %d outside 0-2", ErrInvalidState, outs)
	}
	if batter < 0 || batter >= model.LineupSize {
		return fmt.Errorf("%w: batter slot %d outside lineup", ErrInvalidState, int(batter))
	}
	var seen [model.LineupSize]bool
	for b := model.First; b <= model.Third; b++ {
		r, ok := state.Runner(b)
		if !ok {
			continue
		}
		if r < 0 || r >= model.LineupSize {
			return fmt.Errorf("%w: runner slot %d on %s outside lineup", ErrInvalidState, int(r), b)
		}
		if seen[r] {
			return fmt.Errorf("%w: slot %d occupies two bases", ErrInvalidState, int(r))
		}
		seen[r] = true
	}
	return nil
}
