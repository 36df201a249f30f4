// Package prompt reads operator answers from the console without blocking the
// run forever.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const (
	// DisconnectQuestion is asked before the simulation starts.
	DisconnectQuestion = "Would you like to log disconnects? (Y/n) "

	// DisconnectTimeout bounds how long DisconnectQuestion waits for an answer.
	DisconnectTimeout = 5 * time.Second

	// CountQuestion is asked after the run when disconnects are being logged.
	CountQuestion = "How many disconnects: "

	// DefaultPollInterval is how long the timed prompt sleeps between checks
	// for a pending key.
	DefaultPollInterval = 20 * time.Millisecond
)

// ErrTimeout is returned when no complete line arrived before the deadline.
var ErrTimeout = errors.New("prompt: timed out waiting for input")

// Keyboard is a source of single keystrokes that can be checked without
// blocking.
type Keyboard interface {
	// KeyAvailable reports whether ReadKey would return without blocking.
	KeyAvailable() (bool, error)
	// ReadKey consumes one character.
	ReadKey() (rune, error)
}

// RawModer is implemented by keyboards that need the terminal switched out of
// line-buffered mode before single keys can be seen. The returned func
// restores the previous mode.
type RawModer interface {
	Raw() (restore func() error, err error)
}

// LineReader reads a whole line in the terminal's normal mode.
type LineReader interface {
	ReadLine() (string, error)
}

// Prompter asks questions on Out and reads answers from Keys.
type Prompter struct {
	Out  io.Writer
	Keys Keyboard

	// Now and Sleep default to time.Now and time.Sleep.
	Now          func() time.Time
	Sleep        func(time.Duration)
	PollInterval time.Duration

	Logger *slog.Logger
}

func (p *Prompter) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Prompter) sleep(d time.Duration) {
	if p.Sleep != nil {
		p.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (p *Prompter) pollInterval() time.Duration {
	if p.PollInterval > 0 {
		return p.PollInterval
	}
	return DefaultPollInterval
}

func (p *Prompter) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// InputWithTimeout writes question and collects keys until a line terminator
// arrives, returning the characters before it. If the terminator has not
// arrived by the time timeout has elapsed it returns ErrTimeout. Cancelling ctx
// aborts the wait with ctx.Err().
func (p *Prompter) InputWithTimeout(ctx context.Context, question string, timeout time.Duration) (string, error) {
	if _, err := io.WriteString(p.Out, question); err != nil {
		return "", fmt.Errorf("prompt: can't write question: %w", err)
	}

	if rm, ok := p.Keys.(RawModer); ok {
		restore, err := rm.Raw()
		if err != nil {
			return "", fmt.Errorf("prompt: can't switch terminal to raw mode: %w", err)
		}
		defer func() {
			if err := restore(); err != nil {
				p.logger().Error("can't restore terminal mode", "err", err)
			}
		}()
	}

	deadline := p.now().Add(timeout)
	var line []rune

	for p.now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		ok, err := p.Keys.KeyAvailable()
		if err != nil {
			return "", fmt.Errorf("prompt: can't poll keyboard: %w", err)
		}
		if !ok {
			p.sleep(p.pollInterval())
			continue
		}

		r, err := p.Keys.ReadKey()
		if err != nil {
			return "", fmt.Errorf("prompt: can't read key: %w", err)
		}
		if r == '\r' || r == '\n' {
			return string(line), nil
		}
		line = append(line, r)
	}

	return "", ErrTimeout
}

// CheckDisconnects asks whether disconnects should be logged. It returns true
// when the question times out and false when any answer arrives in time. The
// text of the answer is not looked at.
func (p *Prompter) CheckDisconnects(ctx context.Context) bool {
	answer, err := p.InputWithTimeout(ctx, DisconnectQuestion, DisconnectTimeout)
	switch {
	case errors.Is(err, ErrTimeout):
		fmt.Fprintln(p.Out)
		return true
	case err != nil:
		p.logger().Debug("disconnect question abandoned", "err", err)
		return false
	}

	p.logger().Debug("disconnect question answered", "answer", answer)
	return false
}

// ReadCount asks for the number of disconnects until it gets a non-negative
// integer.
func ReadCount(out io.Writer, in LineReader) (int, error) {
	for {
		if _, err := io.WriteString(out, CountQuestion); err != nil {
			return 0, fmt.Errorf("prompt: can't write question: %w", err)
		}

		line, err := in.ReadLine()
		line = strings.TrimSpace(line)
		if line != "" {
			n, convErr := strconv.Atoi(line)
			if convErr == nil && n >= 0 {
				return n, nil
			}
			fmt.Fprintf(out, "%q is not a number of disconnects\n", line)
		}

		if err != nil {
			return 0, fmt.Errorf("prompt: can't read disconnect count: %w", err)
		}
	}
}
