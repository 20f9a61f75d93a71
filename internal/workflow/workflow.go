// Package workflow sequences forecast computation behind a simulated
// analysis latency. One Workflow holds one forecast session: the two
// selected teams, the machine state, and the latest Prediction.
package workflow

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"matchup-forecast/internal/catalog"
	"matchup-forecast/internal/forecast"
)

// State is the workflow phase. Transitions:
//
//	Idle      -> Ready           both selections present and distinct
//	Ready     -> Computing       Trigger
//	Computing -> Resolved        deferred step completes with a live token
//	Resolved  -> Computing       Trigger again
//	any       -> Ready/Idle      selection change or clear
type State string

const (
	StateIdle      State = "idle"
	StateReady     State = "ready"
	StateComputing State = "computing"
	StateResolved  State = "resolved"
)

// Scheduler defers fn by d. Production workflows use time.AfterFunc; tests
// substitute a manual implementation to fire completions deterministically.
type Scheduler func(d time.Duration, fn func())

// Workflow is the per-session state machine. All mutation goes through the
// defined transitions under a single mutex; the engine itself is pure and
// runs inside the deferred step.
type Workflow struct {
	cat      *catalog.Catalog
	params   forecast.Params
	latency  time.Duration
	schedule Scheduler

	mu         sync.Mutex
	home       *catalog.Team
	away       *catalog.Team
	state      State
	prediction *forecast.Prediction

	// session increments on every selection change. A deferred completion
	// carries the token it was scheduled under and is discarded when the
	// token no longer matches, so a stale computation can never overwrite
	// a newer selection.
	session uint64
}

// New creates a workflow over the given catalog with the production
// time.AfterFunc scheduler.
func New(cat *catalog.Catalog, params forecast.Params, latency time.Duration) *Workflow {
	return NewWithScheduler(cat, params, latency, func(d time.Duration, fn func()) {
		time.AfterFunc(d, fn)
	})
}

// NewWithScheduler creates a workflow with a custom deferred-step scheduler.
func NewWithScheduler(cat *catalog.Catalog, params forecast.Params, latency time.Duration, schedule Scheduler) *Workflow {
	return &Workflow{
		cat:      cat,
		params:   params,
		latency:  latency,
		schedule: schedule,
		state:    StateIdle,
	}
}

// Select assigns the team identified by code to the given side. Selecting
// the team already held by the opposite side fails with
// ErrDuplicateSelection. Any successful change discards a stale Prediction,
// invalidates an in-flight computation, and settles on Ready or Idle.
func (w *Workflow) Select(side forecast.Side, code string) error {
	team, err := w.cat.Lookup(code)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	other := w.away
	if side == forecast.SideAway {
		other = w.home
	}
	if other != nil && other.Code == team.Code {
		return fmt.Errorf("%w: %s", forecast.ErrDuplicateSelection, team.Code)
	}

	if side == forecast.SideHome {
		w.home = &team
	} else {
		w.away = &team
	}
	w.invalidateLocked()
	return nil
}

// Clear drops the selection for one side, discarding any result.
func (w *Workflow) Clear(side forecast.Side) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if side == forecast.SideHome {
		w.home = nil
	} else {
		w.away = nil
	}
	w.invalidateLocked()
}

// invalidateLocked discards any stale result and re-derives the quiescent
// state from the current selections. Bumping the session token turns any
// in-flight completion into a no-op.
func (w *Workflow) invalidateLocked() {
	w.session++
	w.prediction = nil
	if w.home != nil && w.away != nil {
		w.state = StateReady
	} else {
		w.state = StateIdle
	}
}

// Trigger starts a forecast computation behind the analysis latency and
// reports whether one was started. While a computation is already in flight,
// or while either selection is missing, the call is a silent no-op; at most
// one computation is in flight per session.
func (w *Workflow) Trigger() bool {
	w.mu.Lock()
	if w.state == StateComputing || w.home == nil || w.away == nil {
		w.mu.Unlock()
		return false
	}

	home := w.home.Profile(forecast.SideHome)
	away := w.away.Profile(forecast.SideAway)
	if err := forecast.ValidateMatchup(home, away); err != nil {
		// Catalog validation and the duplicate guard make this unreachable
		// for selections made through Select.
		w.mu.Unlock()
		slog.Error("Matchup rejected", "home", home.Code, "away", away.Code, "err", err)
		return false
	}

	token := w.session
	w.state = StateComputing
	w.prediction = nil
	w.mu.Unlock()

	runID := uuid.NewString()
	slog.Info("Forecast queued",
		"run", runID, "home", home.Code, "away", away.Code, "latency", w.latency)

	w.schedule(w.latency, func() {
		w.complete(token, runID, home, away)
	})
	return true
}

// complete applies the engine result if the session token is still live.
func (w *Workflow) complete(token uint64, runID string, home, away forecast.TeamProfile) {
	pred := forecast.Predict(home, away, w.params)

	w.mu.Lock()
	defer w.mu.Unlock()

	if token != w.session {
		slog.Info("Stale forecast discarded", "run", runID, "home", home.Code, "away", away.Code)
		return
	}

	w.state = StateResolved
	w.prediction = &pred
	slog.Info("Forecast resolved",
		"run", runID,
		"winner", pred.WinnerName,
		"winProb", pred.WinProbability,
		"score", fmt.Sprintf("%d-%d", pred.HomeScore, pred.AwayScore))
}

// State returns the current workflow phase.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Prediction returns the resolved forecast. ok is false in every state but
// Resolved.
func (w *Workflow) Prediction() (forecast.Prediction, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateResolved || w.prediction == nil {
		return forecast.Prediction{}, false
	}
	return *w.prediction, true
}

// Snapshot is a point-in-time view of the session for the presentation
// layer.
type Snapshot struct {
	State      State                `json:"state"`
	Home       *catalog.Team        `json:"home,omitempty"`
	Away       *catalog.Team        `json:"away,omitempty"`
	Prediction *forecast.Prediction `json:"prediction,omitempty"`
}

// Snapshot returns the current state, selections, and prediction (when
// resolved) as one consistent view.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{State: w.state}
	if w.home != nil {
		home := *w.home
		snap.Home = &home
	}
	if w.away != nil {
		away := *w.away
		snap.Away = &away
	}
	if w.state == StateResolved && w.prediction != nil {
		pred := *w.prediction
		snap.Prediction = &pred
	}
	return snap
}
