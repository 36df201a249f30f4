// Package app wires syskey together: it checks the active window, asks about
// disconnects, runs the press loop and writes the run log.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"pkg.jsn.cam/syskey/internal/prompt"
	"pkg.jsn.cam/syskey/internal/runlog"
	"pkg.jsn.cam/syskey/internal/schedule"
	"pkg.jsn.cam/syskey/internal/simulate"
)

// Console is the operator's terminal.
type Console interface {
	prompt.Keyboard
	prompt.LineReader
}

// App is one run of syskey. Config, Mode, Out, Console and Presser are
// required; everything else has a default.
type App struct {
	Config  *Config
	Mode    Mode
	Logger  *slog.Logger
	Out     io.Writer
	Console Console
	Presser simulate.Presser

	Observer simulate.Observer
	Rand     *rand.Rand

	// Now, PromptSleep and Sleep stand in for the wall clock in tests.
	Now         func() time.Time
	PromptSleep func(time.Duration)
	Sleep       func(ctx context.Context, d time.Duration) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// Run does a whole run. Outside the active window it returns nil straight
// away without touching the run log. Otherwise it keeps pressing keys until
// ctx is cancelled and then appends the run's entry to the log; failing to
// write that entry is the only error.
func (a *App) Run(ctx context.Context) error {
	lg := a.logger()
	start := a.now()

	if !a.Config.Window.Contains(start) {
		lg.Debug("outside active window, nothing to do",
			"now", schedule.ClockOf(start).String(),
			"window", a.Config.Window.String())
		return nil
	}

	screen := simulate.NewScreen(a.Out, a.Mode.Name, a.Mode.Debug)

	p := &prompt.Prompter{
		Out:          a.Out,
		Keys:         a.Console,
		Now:          a.Now,
		Sleep:        a.PromptSleep,
		PollInterval: a.Config.Prompt.PollInterval(),
		Logger:       lg,
	}
	logDisconnects := p.CheckDisconnects(ctx)
	lg.Debug("disconnect logging decided", "ask_later", logDisconnects)

	sim := &simulate.Simulator{
		Key:        a.Config.Key,
		MinMinutes: a.Config.Interval.MinMinutes,
		MaxMinutes: a.Config.Interval.MaxMinutes,
		Presser:    a.Presser,
		Screen:     screen,
		Observer:   a.Observer,
		Logger:     lg,
		Rand:       a.Rand,
		Sleep:      a.Sleep,
	}
	res := sim.Run(ctx)
	screen.Clear()

	entry := runlog.Entry{
		Start:   start,
		End:     a.now(),
		Active:  res.Active,
		Presses: res.Presses,
	}

	if logDisconnects {
		n, err := prompt.ReadCount(a.Out, a.Console)
		if err != nil {
			lg.Warn("no disconnect count given", "err", err)
		} else {
			entry.Asked = true
			entry.Disconnects = n
		}
	}

	return a.writeEntry(context.WithoutCancel(ctx), entry)
}

func (a *App) writeEntry(ctx context.Context, entry runlog.Entry) error {
	lg := a.logger()

	rl, err := runlog.Open(runlog.Config{
		Path:  a.Config.Log.Path,
		Name:  a.Mode.Name,
		Level: a.Mode.Level,
	})
	if err != nil {
		lg.Error("can't open run log", "path", a.Config.Log.Path, "entry", entry.String(), "err", err)
		return err
	}
	defer rl.Close()

	if err := rl.Record(ctx, entry); err != nil {
		lg.Error("can't write run log", "path", rl.Path(), "entry", entry.String(), "err", err)
		return err
	}

	if err := rl.Close(); err != nil {
		return fmt.Errorf("can't close run log %s: %w", rl.Path(), err)
	}

	lg.Info("run logged",
		"path", rl.Path(),
		"active", schedule.FormatClock(int(entry.Active/time.Second)),
		"presses", entry.Presses)
	return nil
}
