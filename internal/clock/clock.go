// Package clock implements the match countdown.
//
// Remaining time is derived from wall-clock reads every time it is queried,
// never from a tick counter, so the answer does not depend on how often (or
// whether) a view polls it. There is no background goroutine.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Source supplies "now". clockwork.Clock satisfies it; tests pass a clockwork.FakeClock.
type Source interface {
	Now() time.Time
}

type Option func(*Clock)

// WithSource replaces the real wall clock.
func WithSource(src Source) Option {
	return func(c *Clock) {
		if src != nil {
			c.source = src
		}
	}
}

// Clock is a pausable countdown over a fixed total duration.
//
// It is not safe for concurrent use. (accumulated, segmentStart, running)
// must be read and written together by whoever owns the Clock.
type Clock struct {
	source Source
	total  time.Duration

	// accumulated is the time counted by finished segments. It only grows.
	accumulated  time.Duration
	segmentStart time.Time
	anchored     bool
	running      bool
}

func New(total time.Duration, opts ...Option) *Clock {
	c := &Clock{source: clockwork.NewRealClock()}
	c.SetTotal(total)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a new running segment. Calling it while running is a no-op.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.segmentStart = c.source.Now()
	c.anchored = true
}

// Stop closes the current segment and folds it into the accumulated time.
// Calling it while stopped is a no-op.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.accumulated += c.segment(c.source.Now())
	c.running = false
}

// Toggle stops a running clock and starts a stopped one.
func (c *Clock) Toggle() {
	if c.running {
		c.Stop()
	} else {
		c.Start()
	}
}

// segment is the length of the current running segment as seen at now.
// A wall clock that moved backwards counts as zero.
func (c *Clock) segment(now time.Time) time.Duration {
	if !c.anchored {
		return 0
	}
	d := now.Sub(c.segmentStart)
	if d < 0 {
		return 0
	}
	return d
}

// Elapsed is the effective elapsed time: all finished segments plus the running one.
func (c *Clock) Elapsed() time.Duration {
	if !c.running {
		return c.accumulated
	}
	return c.accumulated + c.segment(c.source.Now())
}

// Remaining never goes below zero. Elapsed time is counted in whole milliseconds,
// so a remaining time under one millisecond is reported as zero.
func (c *Clock) Remaining() time.Duration {
	elapsed := c.Elapsed().Truncate(time.Millisecond)
	if elapsed >= c.total {
		return 0
	}
	return (c.total - elapsed).Truncate(time.Millisecond)
}

// RemainingMillis truncates Remaining to whole milliseconds.
func (c *Clock) RemainingMillis() int64 {
	return c.Remaining().Milliseconds()
}

func (c *Clock) Running() bool { return c.running }

// Started reports whether the clock has ever run: a segment start was recorded
// or time has been accumulated.
func (c *Clock) Started() bool {
	return c.anchored || c.accumulated > 0
}

func (c *Clock) Total() time.Duration { return c.total }

// SetTotal changes the duration the clock counts down from. Negative values become zero.
func (c *Clock) SetTotal(total time.Duration) {
	if total < 0 {
		total = 0
	}
	c.total = total
}
