package scoreboard_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/bjj-scoreboard/internal/clock"
	"github.com/maxviazov/bjj-scoreboard/internal/model"
	"github.com/maxviazov/bjj-scoreboard/internal/scoreboard"
)

func newMatch(t *testing.T, minutes int) (*scoreboard.Match, *clockwork.FakeClock) {
	t.Helper()
	fc := clockwork.NewFakeClock()
	shane := model.Competitor{FirstName: "Shane", LastName: "Poppleton", TeamName: "Fight Club Jiu-Jitsu", Country: model.CountryAustralia}
	ronaldo := model.Competitor{FirstName: "Ronaldo", LastName: "Mendes Dos Santos", TeamName: "Caza BJJ", Country: model.CountryBrazil}
	m := scoreboard.New(shane, ronaldo, minutes, 2, 14, clock.WithSource(fc))
	return m, fc
}

func TestMatch_NewIsNotStarted(t *testing.T) {
	m, fc := newMatch(t, 5)
	fc.Advance(time.Minute)

	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.Equal(t, model.NotStarted, m.State())
	assert.Equal(t, int64(300000), m.RemainingMillis())
	assert.False(t, m.Running())
	assert.Equal(t, 2, m.Info.MatNumber)
	assert.Equal(t, 14, m.Info.FightNumber)
	assert.Equal(t, "Ronaldo", m.Competitor(model.CompetitorTwo).FirstName)
}

func TestMatch_FiveMinuteScenario(t *testing.T) {
	m, fc := newMatch(t, 5)

	m.Start()
	require.Equal(t, model.InProgress, m.State())
	require.Equal(t, int64(300000), m.RemainingMillis())
	fc.Advance(20 * time.Millisecond)
	assert.InDelta(t, 300000, m.RemainingMillis(), 50)

	m.AddPoints(2, model.CompetitorOne)
	m.AddPoints(3, model.CompetitorTwo)
	assert.Equal(t, uint(2), m.Points(model.CompetitorOne))
	assert.Equal(t, uint(3), m.Points(model.CompetitorTwo))

	m.SubtractPoint(model.CompetitorOne)
	assert.Equal(t, uint(1), m.Points(model.CompetitorOne))
	m.SubtractPoint(model.CompetitorOne)
	assert.Equal(t, uint(0), m.Points(model.CompetitorOne))
	m.SubtractPoint(model.CompetitorOne)
	assert.Equal(t, uint(0), m.Points(model.CompetitorOne))

	assert.Equal(t, uint(3), m.Points(model.CompetitorTwo))
}

func TestMatch_AdvantagesAndPenaltiesClamp(t *testing.T) {
	m, _ := newMatch(t, 5)

	m.AddAdvantage(model.CompetitorTwo)
	m.AddPenalty(model.CompetitorTwo)
	m.AddPenalty(model.CompetitorTwo)
	for i := 0; i < 5; i++ {
		m.SubtractAdvantage(model.CompetitorTwo)
		m.SubtractPenalty(model.CompetitorOne)
	}
	m.SubtractPenalty(model.CompetitorTwo)

	assert.Equal(t, scoreboard.PlayerScore{}, m.ScoreFor(model.CompetitorOne))
	assert.Equal(t, scoreboard.PlayerScore{Advantages: 0, Penalties: 1}, m.ScoreFor(model.CompetitorTwo))
	assert.Equal(t, uint(0), m.Advantages(model.CompetitorTwo))
	assert.Equal(t, uint(1), m.Penalties(model.CompetitorTwo))
}

func TestMatch_SubtractInterleavedNeverNegative(t *testing.T) {
	m, _ := newMatch(t, 5)
	ops := []bool{true, false, false, true, true, false, false, false, true}

	var want uint
	for _, add := range ops {
		if add {
			m.AddPoints(1, model.CompetitorOne)
			want++
		} else {
			m.SubtractPoint(model.CompetitorOne)
			if want > 0 {
				want--
			}
		}
		require.Equal(t, want, m.Points(model.CompetitorOne))
	}
}

func TestMatch_InvalidCompetitorIsNoop(t *testing.T) {
	m, _ := newMatch(t, 5)
	var nobody model.CompetitorNumber

	m.AddPoints(4, nobody)
	m.AddAdvantage(nobody)
	m.AddPenalty(nobody)
	m.SubtractPoint(nobody)

	assert.Equal(t, scoreboard.MatchScore{}, m.Snapshot().Score)
	assert.Equal(t, scoreboard.PlayerScore{}, m.ScoreFor(nobody))
	assert.Equal(t, model.Competitor{}, m.Competitor(nobody))
}

func TestMatch_FinishesWithoutExplicitCall(t *testing.T) {
	m, fc := newMatch(t, 1)
	m.Start()
	fc.Advance(59 * time.Second)
	assert.Equal(t, model.InProgress, m.State())

	fc.Advance(time.Second)
	assert.Equal(t, model.Finished, m.State())
	assert.Equal(t, int64(0), m.RemainingMillis())

	fc.Advance(time.Minute)
	assert.Equal(t, model.Finished, m.State())
}

func TestMatch_BoundaryAfterStop(t *testing.T) {
	m, fc := newMatch(t, 1)
	m.Start()
	fc.Advance(time.Minute)
	m.ToggleClock()

	require.False(t, m.Running())
	assert.Equal(t, int64(0), m.RemainingMillis())
	assert.Equal(t, model.Finished, m.State())
}

func TestMatch_PauseKeepsInProgress(t *testing.T) {
	m, fc := newMatch(t, 5)
	m.Start()
	fc.Advance(10 * time.Second)
	m.ToggleClock()

	assert.False(t, m.Running())
	assert.Equal(t, model.InProgress, m.State())
	frozen := m.RemainingTime()
	fc.Advance(time.Minute)
	assert.Equal(t, frozen, m.RemainingTime())

	m.ToggleClock()
	fc.Advance(5 * time.Second)
	assert.Equal(t, 285*time.Second, m.RemainingTime())
}

func TestMatch_StartReadsDurationFromInfo(t *testing.T) {
	m, _ := newMatch(t, 5)
	m.Info.MatchTimeMinutes = 6

	assert.Equal(t, int64(300000), m.RemainingMillis(), "edits apply at start")
	m.Start()
	assert.Equal(t, int64(360000), m.RemainingMillis())
}

func TestMatch_ScoringAllowedAfterFinish(t *testing.T) {
	m, fc := newMatch(t, 1)
	m.Start()
	fc.Advance(2 * time.Minute)
	require.Equal(t, model.Finished, m.State())

	m.AddAdvantage(model.CompetitorOne)
	m.AddPoints(2, model.CompetitorTwo)
	assert.Equal(t, uint(1), m.Advantages(model.CompetitorOne))
	assert.Equal(t, uint(2), m.Points(model.CompetitorTwo))
}

func TestMatch_Snapshot(t *testing.T) {
	m, fc := newMatch(t, 5)
	m.AddPoints(4, model.CompetitorOne)

	snap := m.Snapshot()
	assert.Equal(t, model.NotStarted, snap.State)
	assert.Equal(t, "0:05:00.000", snap.Remaining)

	m.Start()
	fc.Advance(62*time.Second + 250*time.Millisecond)
	snap = m.Snapshot()
	assert.Equal(t, m.ID, snap.ID)
	assert.Equal(t, model.InProgress, snap.State)
	assert.True(t, snap.Running)
	assert.Equal(t, int64(237750), snap.RemainingMillis)
	assert.Equal(t, "0:03:57.750", snap.Remaining)
	assert.Equal(t, uint(4), snap.ScoreFor(model.CompetitorOne).Points)
	assert.Equal(t, "Shane", snap.Competitor(model.CompetitorOne).FirstName)

	// the snapshot is a copy
	m.AddPoints(2, model.CompetitorOne)
	assert.Equal(t, uint(4), snap.ScoreFor(model.CompetitorOne).Points)
}

func TestMatch_SetInformationBeforeStartAppliesLength(t *testing.T) {
	m, fc := newMatch(t, 5)

	info := m.Info
	info.MatchTimeMinutes = 6
	m.SetInformation(info)
	assert.Equal(t, int64(360000), m.RemainingMillis())

	m.ToggleClock()
	fc.Advance(time.Minute)
	assert.Equal(t, int64(300000), m.RemainingMillis())
}

func TestMatch_FinishedAgreesWithReportedMillis(t *testing.T) {
	m, fc := newMatch(t, 1)
	m.Start()

	fc.Advance(time.Minute - 500*time.Microsecond)
	assert.Equal(t, int64(1), m.RemainingMillis())
	assert.Equal(t, model.InProgress, m.State())
	assert.Equal(t, "0:00:00.001", m.Snapshot().Remaining)

	fc.Advance(500 * time.Microsecond)
	assert.Equal(t, int64(0), m.RemainingMillis())
	assert.Equal(t, model.Finished, m.State())

	snap := m.Snapshot()
	assert.Equal(t, "0:00:00.000", snap.Remaining)
	assert.Equal(t, model.Finished, snap.State)
}
