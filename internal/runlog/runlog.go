// Package runlog appends the one-line summary each run leaves behind.
package runlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"pkg.jsn.cam/syskey/internal/schedule"
)

// StartLayout is how the run's start time is written.
const StartLayout = "2006-01-02 15:04:05"

// Config says where the run log lives and how entries are tagged.
type Config struct {
	Path string
	// Name identifies the run mode, e.g. "SysKey".
	Name  string
	Level slog.Level
}

// Logger writes run entries to an append-only file. Build one with Open and
// Close it when the run is over.
type Logger struct {
	cfg     Config
	f       *os.File
	handler slog.Handler
}

// Open opens (creating if needed) the log file for appending.
func Open(cfg Config) (*Logger, error) {
	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("runlog: can't open %s: %w", cfg.Path, err)
	}

	return &Logger{
		cfg:     cfg,
		f:       f,
		handler: slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level}),
	}, nil
}

// Path returns the file entries are written to.
func (l *Logger) Path() string { return l.cfg.Path }

// Record writes e as a single line. Unlike slog.Logger it reports write
// failures.
func (l *Logger) Record(ctx context.Context, e Entry) error {
	rec := slog.NewRecord(time.Now(), l.cfg.Level, e.String(), 0)
	rec.AddAttrs(slog.String("logger", l.cfg.Name))

	if err := l.handler.Handle(ctx, rec); err != nil {
		return fmt.Errorf("runlog: can't write to %s: %w", l.cfg.Path, err)
	}
	return nil
}

func (l *Logger) Close() error {
	return l.f.Close()
}

// Entry is the summary of one run.
type Entry struct {
	Start time.Time
	End   time.Time

	// Disconnects is only written when Asked is set.
	Disconnects int
	Asked       bool

	Active  time.Duration
	Presses int
}

// Message is the free-text part: total active time and press count.
func (e Entry) Message() string {
	return schedule.FormatClock(int(e.Active/time.Second)) + " | count: " + strconv.Itoa(e.Presses)
}

// String renders the entry as
//
//	2026-10-19 18:00:01 | 1:02:03 | 2 disconnects | 01:04 | count: 21
func (e Entry) String() string {
	disconnects := "0 disconnects logged"
	if e.Asked {
		disconnects = strconv.Itoa(e.Disconnects) + " disconnects"
	}

	return e.Start.Format(StartLayout) +
		" | " + FormatElapsed(e.End.Sub(e.Start)) +
		" | " + disconnects +
		" | " + e.Message()
}

// FormatElapsed renders d as H:MM:SS, dropping fractions of a second. Spans of
// a day or more get a "N day(s), " prefix.
func FormatElapsed(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	secs := int64(d / time.Second)
	days := secs / 86400
	secs %= 86400

	clock := fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
	switch days {
	case 0:
		return sign + clock
	case 1:
		return sign + "1 day, " + clock
	default:
		return fmt.Sprintf("%s%d days, %s", sign, days, clock)
	}
}
