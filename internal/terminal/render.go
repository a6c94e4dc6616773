package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/maxviazov/bjj-scoreboard/internal/model"
	"github.com/maxviazov/bjj-scoreboard/internal/scoreboard"
)

// Screen rows, zero based.
const (
	rowCompetitorOneName  = 0
	rowCompetitorOneScore = 1
	rowCompetitorTwoName  = 3
	rowCompetitorTwoScore = 4
	rowTime               = 6
	rowStatus             = 7
)

const (
	ansiClear       = "\x1b[2J"
	ansiClearLine   = "\x1b[K"
	ansiAltScreen   = "\x1b[?1049h"
	ansiMainScreen  = "\x1b[?1049l"
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiCursorReset = "\x1b[H"
)

// Render draws one full frame of the board. The whole frame goes out in a single write.
func Render(w io.Writer, snap scoreboard.Snapshot) error {
	var b strings.Builder
	b.WriteString(ansiCursorReset)

	line := func(row int, text string) {
		// ANSI rows are one based
		fmt.Fprintf(&b, "\x1b[%d;1H%s%s", row+1, text, ansiClearLine)
	}

	line(rowCompetitorOneName, nameLine(snap.Competitor(model.CompetitorOne)))
	line(rowCompetitorOneScore, scoreLine(snap.ScoreFor(model.CompetitorOne)))
	line(rowCompetitorTwoName, nameLine(snap.Competitor(model.CompetitorTwo)))
	line(rowCompetitorTwoScore, scoreLine(snap.ScoreFor(model.CompetitorTwo)))
	line(rowTime, "Time remaining: "+snap.Remaining)
	line(rowStatus, statusLine(snap))

	_, err := io.WriteString(w, b.String())
	return err
}

func nameLine(c model.Competitor) string {
	name := c.FullName()
	if c.TeamName == "" && c.Country == "" {
		return name
	}
	return fmt.Sprintf("%s    [%s, %s]", name, c.TeamName, c.Country.DisplayName())
}

func scoreLine(s scoreboard.PlayerScore) string {
	return fmt.Sprintf("Points: %d    Advantages: %d    Penalties: %d", s.Points, s.Advantages, s.Penalties)
}

func statusLine(snap scoreboard.Snapshot) string {
	clockState := "paused"
	if snap.Running {
		clockState = "running"
	}
	return fmt.Sprintf("State: %s (%s)    Mat: %d    Fight: %d", snap.State, clockState, snap.Info.MatNumber, snap.Info.FightNumber)
}
