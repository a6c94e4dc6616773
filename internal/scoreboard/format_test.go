package scoreboard_test

import (
	"testing"

	"github.com/maxviazov/bjj-scoreboard/internal/scoreboard"
)

func TestFormatMillis(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0:00:00.000"},
		{3_725_500, "1:02:05.500"},
		{300_000, "0:05:00.000"},
		{59_999, "0:00:59.999"},
		{1, "0:00:00.001"},
		{36_000_000, "10:00:00.000"},
		{-5, "0:00:00.000"},
	}
	for _, tc := range cases {
		if got := scoreboard.FormatMillis(tc.in); got != tc.want {
			t.Fatalf("FormatMillis(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
