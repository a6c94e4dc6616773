// Package terminal is the keyboard-driven referee console: it reads single key presses
// in raw mode and redraws the board at a fixed frame rate.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/maxviazov/bjj-scoreboard/internal/config"
	"github.com/maxviazov/bjj-scoreboard/internal/service"
)

const defaultFrameInterval = 50 * time.Millisecond

type Terminal struct {
	svc       service.ScoreboardService
	keys      KeyMap
	in        io.Reader
	out       io.Writer
	frame     time.Duration
	autoStart bool
	log       zerolog.Logger
}

type Option func(*Terminal)

// WithIO replaces stdin/stdout. Raw mode is only entered when in is a terminal.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(t *Terminal) {
		t.in = in
		t.out = out
	}
}

func WithKeyMap(km KeyMap) Option {
	return func(t *Terminal) { t.keys = km }
}

func New(svc service.ScoreboardService, cfg config.TerminalConfig, logger zerolog.Logger, opts ...Option) *Terminal {
	t := &Terminal{
		svc:       svc,
		keys:      DefaultKeyMap(),
		in:        os.Stdin,
		out:       os.Stdout,
		frame:     cfg.FrameInterval,
		autoStart: cfg.AutoStart,
		log:       logger.With().Str("module", "terminal").Str("component", "console").Logger(),
	}
	if t.frame <= 0 {
		t.frame = defaultFrameInterval
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run blocks until the referee quits, input ends, or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	restore, err := t.enterRawMode()
	if err != nil {
		return err
	}
	defer restore()

	if t.autoStart {
		if _, err := t.svc.StartMatch(ctx); err != nil {
			return fmt.Errorf("start match: %w", err)
		}
		t.log.Info().Msg("match started")
	}

	done := make(chan struct{})
	defer close(done)
	keys := t.readKeys(done)

	frames := time.NewTicker(t.frame)
	defer frames.Stop()

	if err := t.draw(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case r, ok := <-keys:
			if !ok {
				t.log.Debug().Msg("input closed")
				return nil
			}
			if isQuit(r) {
				t.log.Info().Msg("quit requested")
				return nil
			}
			t.handleKey(ctx, r)
			if err := t.draw(ctx); err != nil {
				return err
			}
		case <-frames.C:
			if err := t.draw(ctx); err != nil {
				return err
			}
		}
	}
}

func (t *Terminal) handleKey(ctx context.Context, r rune) {
	action, ok := t.keys.Lookup(r)
	if !ok {
		t.log.Debug().Str("key", string(r)).Msg("unbound key")
		return
	}
	if _, err := t.svc.Apply(ctx, action); err != nil {
		t.log.Error().Err(err).Stringer("action", action.Kind).Msg("apply key action")
	}
}

func (t *Terminal) draw(ctx context.Context) error {
	snap, err := t.svc.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := Render(t.out, snap); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// readKeys delivers runes until the reader fails. Escape sequences are dropped,
// so only an ESC that arrives on its own reaches the loop. A read blocked on stdin is not
// interruptible, so the goroutine may outlive Run until the next key or process exit.
func (t *Terminal) readKeys(done <-chan struct{}) <-chan rune {
	out := make(chan rune)
	go func() {
		defer close(out)
		br := bufio.NewReader(t.in)
		for {
			r, _, err := br.ReadRune()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					t.log.Warn().Err(err).Msg("read key")
				}
				return
			}
			if r == keyEscape && br.Buffered() > 0 {
				skipEscapeSequence(br)
				continue
			}
			select {
			case out <- r:
			case <-done:
				return
			}
		}
	}()
	return out
}

func (t *Terminal) enterRawMode() (func(), error) {
	f, ok := t.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}, nil
	}

	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	_, _ = io.WriteString(t.out, ansiAltScreen+ansiHideCursor+ansiClear)

	return func() {
		_, _ = io.WriteString(t.out, ansiShowCursor+ansiMainScreen)
		if err := term.Restore(fd, state); err != nil {
			t.log.Warn().Err(err).Msg("restore terminal")
		}
	}, nil
}
