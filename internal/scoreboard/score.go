package scoreboard

// PlayerScore holds one competitor's counters. None of them ever drops below zero.
type PlayerScore struct {
	Points     uint `json:"points"`
	Advantages uint `json:"advantages"`
	Penalties  uint `json:"penalties"`
}

type scoreField int

const (
	fieldPoints scoreField = iota
	fieldAdvantages
	fieldPenalties
)

// subtract removes one unit from field; zero stays zero.
func (s *PlayerScore) subtract(field scoreField) {
	switch field {
	case fieldPoints:
		if s.Points > 0 {
			s.Points--
		}
	case fieldAdvantages:
		if s.Advantages > 0 {
			s.Advantages--
		}
	case fieldPenalties:
		if s.Penalties > 0 {
			s.Penalties--
		}
	}
}

// MatchScore is both competitors' counters.
type MatchScore struct {
	CompetitorOne PlayerScore `json:"competitor_one"`
	CompetitorTwo PlayerScore `json:"competitor_two"`
}
