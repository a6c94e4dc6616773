package scoreboard

import "fmt"

// FormatMillis renders a remaining time as H:MM:SS.mmm, e.g. 3725500 -> "1:02:05.500".
// Every view prints the clock through this function; keep the layout byte-for-byte stable.
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3_600_000
	minutes := (ms % 3_600_000) / 60_000
	seconds := (ms % 60_000) / 1_000
	millis := ms % 1_000

	return fmt.Sprintf("%01d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
