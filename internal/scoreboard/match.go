// Package scoreboard is the match scoring and timing engine.
//
// A Match is owned by exactly one caller and is not safe for concurrent use.
// Every operation is total: double starts, double stops, subtracting from zero
// and querying before the start all resolve to a no-op or a clamped value.
package scoreboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/maxviazov/bjj-scoreboard/internal/clock"
	"github.com/maxviazov/bjj-scoreboard/internal/model"
)

type Match struct {
	ID uuid.UUID
	// Info may be edited until the match starts; Start re-reads the match length from it.
	Info model.MatchInformation

	score MatchScore
	clock *clock.Clock
}

// New builds a NotStarted match. Clock options are passed through to the match clock.
func New(one, two model.Competitor, matchTimeMinutes, matNumber, fightNumber int, opts ...clock.Option) *Match {
	return NewFromInformation(model.MatchInformation{
		CompetitorOne:    one,
		CompetitorTwo:    two,
		MatchTimeMinutes: matchTimeMinutes,
		MatNumber:        matNumber,
		FightNumber:      fightNumber,
	}, opts...)
}

func NewFromInformation(info model.MatchInformation, opts ...clock.Option) *Match {
	return &Match{
		ID:    uuid.New(),
		Info:  info,
		clock: clock.New(info.Duration(), opts...),
	}
}

// State is derived from the clock on every call rather than cached.
func (m *Match) State() model.MatchState {
	if !m.clock.Started() {
		return model.NotStarted
	}
	if m.clock.RemainingMillis() == 0 {
		return model.Finished
	}
	return model.InProgress
}

// SetInformation replaces the setup. Before the clock first runs the new length is applied at once,
// so the board shows it and a toggle starts from it.
func (m *Match) SetInformation(info model.MatchInformation) {
	m.Info = info
	if !m.clock.Started() {
		m.clock.SetTotal(info.Duration())
	}
}

// Start applies the configured match length and starts the clock.
func (m *Match) Start() {
	m.clock.SetTotal(m.Info.Duration())
	m.clock.Start()
}

// ToggleClock pauses a running match or resumes a paused one.
func (m *Match) ToggleClock() {
	m.clock.Toggle()
}

func (m *Match) Running() bool { return m.clock.Running() }

func (m *Match) RemainingTime() time.Duration { return m.clock.Remaining() }

func (m *Match) RemainingMillis() int64 { return m.clock.RemainingMillis() }

// AddPoints adds n points; there is no upper bound.
func (m *Match) AddPoints(n uint, competitor model.CompetitorNumber) {
	switch competitor {
	case model.CompetitorOne:
		m.score.CompetitorOne.Points += n
	case model.CompetitorTwo:
		m.score.CompetitorTwo.Points += n
	}
}

func (m *Match) AddAdvantage(competitor model.CompetitorNumber) {
	switch competitor {
	case model.CompetitorOne:
		m.score.CompetitorOne.Advantages++
	case model.CompetitorTwo:
		m.score.CompetitorTwo.Advantages++
	}
}

func (m *Match) AddPenalty(competitor model.CompetitorNumber) {
	switch competitor {
	case model.CompetitorOne:
		m.score.CompetitorOne.Penalties++
	case model.CompetitorTwo:
		m.score.CompetitorTwo.Penalties++
	}
}

// SubtractPoint removes a single point, for referee corrections. It stops at zero.
func (m *Match) SubtractPoint(competitor model.CompetitorNumber) {
	switch competitor {
	case model.CompetitorOne:
		m.score.CompetitorOne.subtract(fieldPoints)
	case model.CompetitorTwo:
		m.score.CompetitorTwo.subtract(fieldPoints)
	}
}

func (m *Match) SubtractAdvantage(competitor model.CompetitorNumber) {
	switch competitor {
	case model.CompetitorOne:
		m.score.CompetitorOne.subtract(fieldAdvantages)
	case model.CompetitorTwo:
		m.score.CompetitorTwo.subtract(fieldAdvantages)
	}
}

func (m *Match) SubtractPenalty(competitor model.CompetitorNumber) {
	switch competitor {
	case model.CompetitorOne:
		m.score.CompetitorOne.subtract(fieldPenalties)
	case model.CompetitorTwo:
		m.score.CompetitorTwo.subtract(fieldPenalties)
	}
}

// ScoreFor returns a copy of the competitor's counters; an unknown competitor gets zeros.
func (m *Match) ScoreFor(competitor model.CompetitorNumber) PlayerScore {
	switch competitor {
	case model.CompetitorOne:
		return m.score.CompetitorOne
	case model.CompetitorTwo:
		return m.score.CompetitorTwo
	default:
		return PlayerScore{}
	}
}

func (m *Match) Points(competitor model.CompetitorNumber) uint {
	return m.ScoreFor(competitor).Points
}

func (m *Match) Advantages(competitor model.CompetitorNumber) uint {
	return m.ScoreFor(competitor).Advantages
}

func (m *Match) Penalties(competitor model.CompetitorNumber) uint {
	return m.ScoreFor(competitor).Penalties
}

func (m *Match) Competitor(competitor model.CompetitorNumber) model.Competitor {
	switch competitor {
	case model.CompetitorOne:
		return m.Info.CompetitorOne
	case model.CompetitorTwo:
		return m.Info.CompetitorTwo
	default:
		return model.Competitor{}
	}
}
