// Package sequencer decides which of several in-flight location lookups may
// update the dashboard. Every lookup takes a generation-tagged Ticket; when the
// lookup settles, its result is applied only if the ticket is still current.
package sequencer

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ErrSuperseded is returned when a ticket is no longer current
var ErrSuperseded = errors.New("lookup superseded by a newer request")

// Origin says what triggered a lookup
type Origin string

const (
	OriginGeolocation Origin = "geolocation"
	OriginSearch      Origin = "search"
	OriginRestore     Origin = "restore"
)

// State of the most recent lookup
type State string

const (
	StateIdle       State = "idle"
	StateFetching   State = "fetching"
	StateRendered   State = "rendered"
	StateSuperseded State = "superseded"
	StateFailed     State = "failed"
)

// Ticket identifies one lookup. It is passed through the whole async chain and
// checked once, at the point results would be applied.
type Ticket struct {
	ID     uuid.UUID
	Epoch  uint64
	Origin Origin
}

// OutcomeAbandoned is recorded for lookups that settle with nothing to show
const OutcomeAbandoned = "abandoned"

// Recorder receives the final outcome of every lookup: a settled State or
// OutcomeAbandoned.
type Recorder interface {
	RecordLookup(origin Origin, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordLookup(Origin, string) {}

// Sequencer owns the request epoch and the geolocation cancellation mark.
// Check-and-apply happens under one lock, so an applied result can never be
// interleaved with a newer Begin.
type Sequencer struct {
	mu    sync.Mutex
	epoch uint64
	// geolocation tickets with Epoch <= geoCanceledThrough are canceled
	geoCanceledThrough uint64
	state              State
	lastSettled        State
	recorder           Recorder
	logger             *slog.Logger
}

func New(logger *slog.Logger, recorder Recorder) *Sequencer {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Sequencer{
		state:       StateIdle,
		lastSettled: StateIdle,
		recorder:    recorder,
		logger:      logger.With("component", "sequencer"),
	}
}

// Begin starts a lookup and advances the epoch. Search lookups also cancel any
// geolocation lookup that has not settled yet; geolocation lookups begun
// afterwards are unaffected.
func (s *Sequencer) Begin(origin Origin) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	if origin == OriginSearch {
		s.geoCanceledThrough = s.epoch
	}
	s.state = StateFetching

	t := Ticket{ID: uuid.New(), Epoch: s.epoch, Origin: origin}
	s.logger.Debug("lookup started", "ticket", t.ID, "epoch", t.Epoch, "origin", origin)
	return t
}

// CancelGeolocation cancels the geolocation lookups begun so far without
// starting a new lookup, e.g. when the user starts typing a city.
func (s *Sequencer) CancelGeolocation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geoCanceledThrough = s.epoch
}

// Current reports whether t may still update the view
func (s *Sequencer) Current(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked(t)
}

func (s *Sequencer) currentLocked(t Ticket) bool {
	if t.Epoch != s.epoch {
		return false
	}
	if t.Origin == OriginGeolocation && t.Epoch <= s.geoCanceledThrough {
		return false
	}
	return true
}

// Apply runs fn if t is current, without settling the lookup. It is used for
// intermediate updates such as the loading indicator.
func (s *Sequencer) Apply(t Ticket, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentLocked(t) {
		return ErrSuperseded
	}
	fn()
	return nil
}

// Resolve settles t successfully: fn runs and the state becomes Rendered, or,
// if t is stale, fn is skipped and ErrSuperseded is returned.
func (s *Sequencer) Resolve(t Ticket, fn func()) error {
	return s.settle(t, StateRendered, fn)
}

// Fail settles t as failed: fn (which reports the failure to the user) runs
// only if t is still current.
func (s *Sequencer) Fail(t Ticket, fn func()) error {
	return s.settle(t, StateFailed, fn)
}

func (s *Sequencer) settle(t Ticket, outcome State, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentLocked(t) {
		s.recorder.RecordLookup(t.Origin, string(StateSuperseded))
		s.logger.Debug("discarding stale lookup result",
			"ticket", t.ID,
			"epoch", t.Epoch,
			"current_epoch", s.epoch,
			"origin", t.Origin,
			"geolocation_canceled_through", s.geoCanceledThrough,
		)
		return ErrSuperseded
	}

	fn()
	s.state = outcome
	s.lastSettled = outcome
	s.recorder.RecordLookup(t.Origin, string(outcome))
	return nil
}

// Abandon settles t for lookups that end with nothing to show (e.g. a search
// with no match). fn, which restores whatever the view showed before, runs
// only if t is current. The state falls back to the outcome of the last
// settled lookup.
func (s *Sequencer) Abandon(t Ticket, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentLocked(t) {
		s.recorder.RecordLookup(t.Origin, string(StateSuperseded))
		return ErrSuperseded
	}
	fn()
	s.state = s.lastSettled
	s.recorder.RecordLookup(t.Origin, OutcomeAbandoned)
	return nil
}

// State returns the state of the most recent lookup
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Epoch returns the current generation
func (s *Sequencer) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}
