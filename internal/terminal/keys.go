package terminal

import (
	"bufio"
	"unicode"

	"github.com/maxviazov/bjj-scoreboard/internal/model"
	"github.com/maxviazov/bjj-scoreboard/internal/service"
)

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03
)

// KeyMap binds a key press to the action it triggers.
type KeyMap map[rune]service.Action

// DefaultKeyMap is the referee layout: the top keyboard row scores competitor one,
// the home row scores competitor two, space toggles the clock.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		' ': {Kind: service.ActionToggleClock},
	}
	km.bindRow([]rune("qwertyui"), model.CompetitorOne)
	km.bindRow([]rune("asdfghjk"), model.CompetitorTwo)
	return km
}

// bindRow expects eight keys: +2, +3, +4, advantage, penalty, -point, -advantage, -penalty.
func (km KeyMap) bindRow(keys []rune, competitor model.CompetitorNumber) {
	actions := []service.Action{
		{Kind: service.ActionAddPoints, Points: 2},
		{Kind: service.ActionAddPoints, Points: 3},
		{Kind: service.ActionAddPoints, Points: 4},
		{Kind: service.ActionAddAdvantage},
		{Kind: service.ActionAddPenalty},
		{Kind: service.ActionSubtractPoint},
		{Kind: service.ActionSubtractAdvantage},
		{Kind: service.ActionSubtractPenalty},
	}
	for i, a := range actions {
		a.Competitor = competitor
		km[keys[i]] = a
	}
}

// Lookup ignores case so caps lock does not lock out the referee.
func (km KeyMap) Lookup(r rune) (service.Action, bool) {
	a, ok := km[unicode.ToLower(r)]
	return a, ok
}

func isQuit(r rune) bool {
	return r == keyEscape || r == keyCtrlC
}

// skipEscapeSequence consumes the rest of an escape sequence or Alt chord that arrived
// in the same read as its ESC.
func skipEscapeSequence(br *bufio.Reader) {
	next, _, err := br.ReadRune()
	if err != nil {
		return
	}
	switch next {
	case '[':
		// parameters and intermediates up to the final byte
		for br.Buffered() > 0 {
			r, _, err := br.ReadRune()
			if err != nil || (r >= 0x40 && r <= 0x7e) {
				return
			}
		}
	case 'O':
		if br.Buffered() > 0 {
			_, _, _ = br.ReadRune()
		}
	}
}
