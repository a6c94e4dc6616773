// Package service owns the one live match and mediates every read and write to it.
// Views (terminal, HTTP, websocket feed) never touch the scoreboard engine directly.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/bjj-scoreboard/internal/model"
	"github.com/maxviazov/bjj-scoreboard/internal/scoreboard"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

var (
	// ErrMatchStarted is returned when setup is edited after the clock first ran.
	ErrMatchStarted = errors.New("match already started")
	ErrNoMatch      = errors.New("no match loaded")
)

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// ScoreboardService is the referee's command surface over the live match.
// Every mutation returns the snapshot taken right after it was applied.
type ScoreboardService interface {
	Snapshot(ctx context.Context) (scoreboard.Snapshot, error)
	// Ping reports readiness: a match is loaded.
	Ping(ctx context.Context) error

	UpdateInformation(ctx context.Context, info model.MatchInformation) (scoreboard.Snapshot, error)
	StartMatch(ctx context.Context) (scoreboard.Snapshot, error)
	ToggleClock(ctx context.Context) (scoreboard.Snapshot, error)

	AddPoints(ctx context.Context, competitor model.CompetitorNumber, points uint) (scoreboard.Snapshot, error)
	AddAdvantage(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error)
	AddPenalty(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error)
	SubtractPoint(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error)
	SubtractAdvantage(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error)
	SubtractPenalty(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error)

	// Apply dispatches an abstract action, as produced by a key press or an API call.
	Apply(ctx context.Context, action Action) (scoreboard.Snapshot, error)
}
