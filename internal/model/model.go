// Package model contains the match metadata and the small value types shared across layers.
// I keep it lean and focused on data shapes; scoring and timing behavior lives in scoreboard.
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrUnknownCompetitor = errors.New("unknown competitor number")
	ErrUnknownMatchState = errors.New("unknown match state")
)

// CompetitorNumber selects one of the two competitors on the mat.
// The zero value selects nobody.
type CompetitorNumber int

const (
	CompetitorOne CompetitorNumber = iota + 1
	CompetitorTwo
)

func (n CompetitorNumber) Valid() bool {
	return n == CompetitorOne || n == CompetitorTwo
}

func (n CompetitorNumber) String() string {
	switch n {
	case CompetitorOne:
		return "one"
	case CompetitorTwo:
		return "two"
	default:
		return "none"
	}
}

// ParseCompetitorNumber accepts "one"/"two" as well as "1"/"2".
func ParseCompetitorNumber(s string) (CompetitorNumber, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one", "1":
		return CompetitorOne, nil
	case "two", "2":
		return CompetitorTwo, nil
	default:
		return 0, ErrUnknownCompetitor
	}
}

func (n CompetitorNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return nil, ErrUnknownCompetitor
	}
	return json.Marshal(n.String())
}

func (n *CompetitorNumber) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		parsed, err := ParseCompetitorNumber(value)
		if err != nil {
			return err
		}
		*n = parsed
		return nil
	case float64:
		parsed := CompetitorNumber(value)
		if float64(parsed) != value || !parsed.Valid() {
			return ErrUnknownCompetitor
		}
		*n = parsed
		return nil
	default:
		return ErrUnknownCompetitor
	}
}

// MatchState is the coarse, externally visible lifecycle of a match.
// Pausing the clock does not change it.
type MatchState int

const (
	NotStarted MatchState = iota
	InProgress
	Finished
)

func (s MatchState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

func ParseMatchState(s string) (MatchState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not_started":
		return NotStarted, nil
	case "in_progress":
		return InProgress, nil
	case "finished":
		return Finished, nil
	default:
		return NotStarted, ErrUnknownMatchState
	}
}

func (s MatchState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *MatchState) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseMatchState(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Competitor is display metadata for one athlete. It is edited during match setup only.
type Competitor struct {
	FirstName string  `json:"first_name" mapstructure:"first_name" validate:"required,max=64"`
	LastName  string  `json:"last_name" mapstructure:"last_name" validate:"required,max=64"`
	TeamName  string  `json:"team_name" mapstructure:"team_name" validate:"max=64"`
	Country   Country `json:"country" mapstructure:"country" validate:"required,iso3166_1_alpha2"`
}

// FullName is the "First Last" line shown above each score row.
func (c Competitor) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// DefaultCompetitor returns the placeholder athlete shown before setup.
func DefaultCompetitor() Competitor {
	return Competitor{
		FirstName: "Competitor",
		LastName:  "Name",
		TeamName:  "BJJ Team",
		Country:   CountryAustralia,
	}
}

// MatchInformation is everything an operator configures before the match starts.
type MatchInformation struct {
	CompetitorOne    Competitor `json:"competitor_one" mapstructure:"competitor_one"`
	CompetitorTwo    Competitor `json:"competitor_two" mapstructure:"competitor_two"`
	MatchTimeMinutes int        `json:"match_time_minutes" mapstructure:"match_time_minutes" validate:"min=1,max=60"`
	MatNumber        int        `json:"mat_number" mapstructure:"mat_number" validate:"min=1"`
	FightNumber      int        `json:"fight_number" mapstructure:"fight_number" validate:"min=1"`
}

// Duration converts the configured match length to a time.Duration.
func (i MatchInformation) Duration() time.Duration {
	if i.MatchTimeMinutes <= 0 {
		return 0
	}
	return time.Duration(i.MatchTimeMinutes) * time.Minute
}

// DefaultMatchInformation is a five minute fight on mat 1 between "Competitor One" and "Competitor Two".
func DefaultMatchInformation() MatchInformation {
	one := DefaultCompetitor()
	one.LastName = "One"
	two := DefaultCompetitor()
	two.LastName = "Two"

	return MatchInformation{
		CompetitorOne:    one,
		CompetitorTwo:    two,
		MatchTimeMinutes: 5,
		MatNumber:        1,
		FightNumber:      1,
	}
}

// Normalized trims names and upper-cases the country code.
func (c Competitor) Normalized() Competitor {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.TeamName = strings.TrimSpace(c.TeamName)
	c.Country = Country(strings.ToUpper(strings.TrimSpace(string(c.Country))))
	return c
}

// Normalized applies Competitor.Normalized to both competitors. Setup is validated after this.
func (i MatchInformation) Normalized() MatchInformation {
	i.CompetitorOne = i.CompetitorOne.Normalized()
	i.CompetitorTwo = i.CompetitorTwo.Normalized()
	return i
}
