package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/maxviazov/bjj-scoreboard/internal/model"
	"github.com/maxviazov/bjj-scoreboard/internal/scoreboard"
)

// scoreboardService serializes all access to the match; the engine itself has no locking.
type scoreboardService struct {
	mu    sync.Mutex
	match *scoreboard.Match
	log   zerolog.Logger
}

func NewScoreboardService(match *scoreboard.Match, logger zerolog.Logger) ScoreboardService {
	l := logger.With().Str("module", "service").Str("component", "scoreboard").Logger()
	if match != nil {
		l = l.With().Str("match_id", match.ID.String()).Logger()
	}
	return &scoreboardService{match: match, log: l}
}

// do runs fn under the lock and returns the snapshot taken immediately after it.
func (s *scoreboardService) do(fn func(m *scoreboard.Match) error) (scoreboard.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.match == nil {
		return scoreboard.Snapshot{}, ErrNoMatch
	}
	if err := fn(s.match); err != nil {
		return scoreboard.Snapshot{}, err
	}
	return s.match.Snapshot(), nil
}

func (s *scoreboardService) Snapshot(ctx context.Context) (scoreboard.Snapshot, error) {
	return s.do(func(*scoreboard.Match) error { return ctx.Err() })
}

func (s *scoreboardService) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.match == nil {
		return ErrNoMatch
	}
	return nil
}

func (s *scoreboardService) UpdateInformation(ctx context.Context, info model.MatchInformation) (scoreboard.Snapshot, error) {
	info = info.Normalized()
	if err := validateInformation(info); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("match information validation failed")
		return scoreboard.Snapshot{}, err
	}

	snap, err := s.do(func(m *scoreboard.Match) error {
		if m.State() != model.NotStarted {
			return ErrMatchStarted
		}
		m.SetInformation(info)
		return nil
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("match information update rejected")
		return snap, err
	}
	s.log.Info().
		Str("competitor_one", info.CompetitorOne.FullName()).
		Str("competitor_two", info.CompetitorTwo.FullName()).
		Int("minutes", info.MatchTimeMinutes).
		Int("mat", info.MatNumber).
		Int("fight", info.FightNumber).
		Msg("match information updated")
	return snap, nil
}

func (s *scoreboardService) StartMatch(ctx context.Context) (scoreboard.Snapshot, error) {
	return s.Apply(ctx, Action{Kind: ActionStartMatch})
}

func (s *scoreboardService) ToggleClock(ctx context.Context) (scoreboard.Snapshot, error) {
	return s.Apply(ctx, Action{Kind: ActionToggleClock})
}

func (s *scoreboardService) AddPoints(ctx context.Context, competitor model.CompetitorNumber, points uint) (scoreboard.Snapshot, error) {
	return s.Apply(ctx, Action{Kind: ActionAddPoints, Competitor: competitor, Points: points})
}

func (s *scoreboardService) AddAdvantage(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error) {
	return s.Apply(ctx, Action{Kind: ActionAddAdvantage, Competitor: competitor})
}

func (s *scoreboardService) AddPenalty(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error) {
	return s.Apply(ctx, Action{Kind: ActionAddPenalty, Competitor: competitor})
}

func (s *scoreboardService) SubtractPoint(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error) {
	return s.Apply(ctx, Action{Kind: ActionSubtractPoint, Competitor: competitor})
}

func (s *scoreboardService) SubtractAdvantage(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error) {
	return s.Apply(ctx, Action{Kind: ActionSubtractAdvantage, Competitor: competitor})
}

func (s *scoreboardService) SubtractPenalty(ctx context.Context, competitor model.CompetitorNumber) (scoreboard.Snapshot, error) {
	return s.Apply(ctx, Action{Kind: ActionSubtractPenalty, Competitor: competitor})
}

// Apply never checks the match state: scoring after the buzzer is allowed for corrections.
func (s *scoreboardService) Apply(ctx context.Context, action Action) (scoreboard.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return scoreboard.Snapshot{}, err
	}
	if _, ok := actionNames[action.Kind]; !ok {
		return scoreboard.Snapshot{}, newInvalidInput([]FieldError{{Field: "kind", Message: "unknown action"}})
	}
	if action.Kind.needsCompetitor() {
		if err := competitorError(action.Competitor); err != nil {
			s.log.Debug().Str("action", action.Kind.String()).Int("competitor", int(action.Competitor)).Msg("action rejected")
			return scoreboard.Snapshot{}, err
		}
	}

	snap, err := s.do(func(m *scoreboard.Match) error {
		switch action.Kind {
		case ActionStartMatch:
			m.Start()
		case ActionToggleClock:
			m.ToggleClock()
		case ActionAddPoints:
			m.AddPoints(action.Points, action.Competitor)
		case ActionAddAdvantage:
			m.AddAdvantage(action.Competitor)
		case ActionAddPenalty:
			m.AddPenalty(action.Competitor)
		case ActionSubtractPoint:
			m.SubtractPoint(action.Competitor)
		case ActionSubtractAdvantage:
			m.SubtractAdvantage(action.Competitor)
		case ActionSubtractPenalty:
			m.SubtractPenalty(action.Competitor)
		}
		return nil
	})
	if err != nil {
		return snap, err
	}

	ev := s.log.Info().
		Str("action", action.Kind.String()).
		Str("state", snap.State.String()).
		Bool("running", snap.Running).
		Str("remaining", snap.Remaining)
	if action.Kind.needsCompetitor() {
		score := snap.ScoreFor(action.Competitor)
		ev = ev.Str("competitor", action.Competitor.String()).
			Uint("points", score.Points).
			Uint("advantages", score.Advantages).
			Uint("penalties", score.Penalties)
	}
	if action.Kind == ActionAddPoints {
		ev = ev.Uint("added", action.Points)
	}
	ev.Msg("action applied")
	return snap, nil
}
