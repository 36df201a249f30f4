// Package simulate presses a key at randomized intervals until told to stop,
// which is enough to keep most desktops from blanking the screen.
package simulate

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Presser taps a named key, e.g. "shift".
type Presser interface {
	Press(key string) error
}

// Observer is told how every press went. Metrics hang off this.
type Observer interface {
	Pressed(key string, interval, active time.Duration)
	PressFailed(key string, err error)
}

// Result is what a run adds up to.
type Result struct {
	// Active is the sum of every interval that was started, including the one
	// that was interrupted.
	Active time.Duration
	// Presses counts successful key presses.
	Presses int
}

// Simulator is the press loop. Key, Presser and Screen are required.
type Simulator struct {
	Key string

	// MinMinutes and MaxMinutes bound the whole-minute interval between presses.
	MinMinutes int
	MaxMinutes int

	Presser  Presser
	Screen   *Screen
	Observer Observer
	Logger   *slog.Logger

	// Rand and Sleep are swapped out in tests.
	Rand  *rand.Rand
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run presses the key until ctx is cancelled and returns the totals. Being
// cancelled is the normal way for a run to end.
func (s *Simulator) Run(ctx context.Context) Result {
	var res Result
	lg := s.logger()

	for ctx.Err() == nil {
		interval := s.nextInterval()

		pressed := true
		if err := s.Presser.Press(s.Key); err != nil {
			pressed = false
			lg.Error("can't press key", "key", s.Key, "err", err)
			if s.Observer != nil {
				s.Observer.PressFailed(s.Key, err)
			}
		} else {
			res.Presses++
		}

		s.Screen.Status(Status{
			Key:      s.Key,
			Interval: interval,
			Presses:  res.Presses,
			Active:   res.Active,
		})

		res.Active += interval
		lg.Debug("key pressed", "key", s.Key, "presses", res.Presses, "interval", interval, "active", res.Active)
		if pressed && s.Observer != nil {
			s.Observer.Pressed(s.Key, interval, res.Active)
		}

		if err := s.countdown(ctx, interval); err != nil {
			break
		}
	}

	return res
}

func (s *Simulator) countdown(ctx context.Context, d time.Duration) error {
	for remaining := d; remaining > 0; remaining -= time.Second {
		s.Screen.Remaining(remaining)
		if err := s.sleep(ctx, time.Second); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) nextInterval() time.Duration {
	lo, hi := s.MinMinutes, s.MaxMinutes
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}

	n := lo
	if hi > lo {
		if s.Rand != nil {
			n += s.Rand.IntN(hi - lo + 1)
		} else {
			n += rand.IntN(hi - lo + 1)
		}
	}
	return time.Duration(n) * time.Minute
}

func (s *Simulator) sleep(ctx context.Context, d time.Duration) error {
	if s.Sleep != nil {
		return s.Sleep(ctx, d)
	}
	return Sleep(ctx, d)
}

func (s *Simulator) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
