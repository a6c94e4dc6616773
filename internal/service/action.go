package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/maxviazov/bjj-scoreboard/internal/model"
)

var ErrUnknownAction = errors.New("unknown action")

type ActionKind int

const (
	ActionStartMatch ActionKind = iota + 1
	ActionToggleClock
	ActionAddPoints
	ActionAddAdvantage
	ActionAddPenalty
	ActionSubtractPoint
	ActionSubtractAdvantage
	ActionSubtractPenalty
)

var actionNames = map[ActionKind]string{
	ActionStartMatch:        "start_match",
	ActionToggleClock:       "toggle_clock",
	ActionAddPoints:         "add_points",
	ActionAddAdvantage:      "add_advantage",
	ActionAddPenalty:        "add_penalty",
	ActionSubtractPoint:     "subtract_point",
	ActionSubtractAdvantage: "subtract_advantage",
	ActionSubtractPenalty:   "subtract_penalty",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "unknown"
}

func ParseActionKind(s string) (ActionKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range actionNames {
		if name == s {
			return k, nil
		}
	}
	return 0, ErrUnknownAction
}

// needsCompetitor is false only for the clock controls.
func (k ActionKind) needsCompetitor() bool {
	return k != ActionStartMatch && k != ActionToggleClock
}

func (k ActionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ActionKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseActionKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Action is one scoring or clock command. Points is only read by add_points.
type Action struct {
	Kind       ActionKind             `json:"kind"`
	Competitor model.CompetitorNumber `json:"competitor,omitempty"`
	Points     uint                   `json:"points,omitempty"`
}
