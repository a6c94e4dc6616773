package scoreboard

import (
	"github.com/google/uuid"

	"github.com/maxviazov/bjj-scoreboard/internal/model"
)

// Snapshot is a point-in-time copy of a match for views. It is safe to hand to another goroutine.
type Snapshot struct {
	ID              uuid.UUID              `json:"id"`
	Info            model.MatchInformation `json:"info"`
	State           model.MatchState       `json:"state"`
	Running         bool                   `json:"running"`
	RemainingMillis int64                  `json:"remaining_ms"`
	Remaining       string                 `json:"remaining"`
	Score           MatchScore             `json:"score"`
}

// Snapshot reads the clock once so remaining time, state and running agree with each other.
func (m *Match) Snapshot() Snapshot {
	ms := m.clock.RemainingMillis()

	state := model.InProgress
	switch {
	case !m.clock.Started():
		state = model.NotStarted
	case ms == 0:
		state = model.Finished
	}

	return Snapshot{
		ID:              m.ID,
		Info:            m.Info,
		State:           state,
		Running:         m.clock.Running(),
		RemainingMillis: ms,
		Remaining:       FormatMillis(ms),
		Score:           m.score,
	}
}

// ScoreFor picks a competitor's counters out of the snapshot.
func (s Snapshot) ScoreFor(competitor model.CompetitorNumber) PlayerScore {
	switch competitor {
	case model.CompetitorOne:
		return s.Score.CompetitorOne
	case model.CompetitorTwo:
		return s.Score.CompetitorTwo
	default:
		return PlayerScore{}
	}
}

func (s Snapshot) Competitor(competitor model.CompetitorNumber) model.Competitor {
	switch competitor {
	case model.CompetitorOne:
		return s.Info.CompetitorOne
	case model.CompetitorTwo:
		return s.Info.CompetitorTwo
	default:
		return model.Competitor{}
	}
}
