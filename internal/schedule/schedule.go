// Package schedule has the time-of-day arithmetic syskey needs: the active
// window check and the HH:MM formatter used on the status screen and in the
// run log.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	secondsPerDay  = 24 * 3600
	secondsPerHour = 3600
)

// Clock is a wall-clock time of day with second precision. The zero value is
// midnight.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ClockOf returns the time of day of t in t's location, discarding the date.
func ClockOf(t time.Time) Clock {
	h, m, s := t.Clock()
	return Clock{Hour: h, Minute: m, Second: s}
}

// ParseClock parses "15:04" or "15:04:05".
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("schedule: can't parse time of day %q: %w", s, err)
	}

	return ClockOf(t), nil
}

// Seconds returns the number of seconds since midnight.
func (c Clock) Seconds() int {
	return c.Hour*secondsPerHour + c.Minute*60 + c.Second
}

// Compare returns -1, 0 or +1 depending on whether c is before, equal to or
// after o.
func (c Clock) Compare(o Clock) int {
	a, b := c.Seconds(), o.Seconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (c Clock) String() string {
	if c.Second == 0 {
		return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// UnmarshalText lets a Clock be decoded straight out of a config file.
func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// InRange reports whether point lies in the closed range [start, end]. When
// start is after end the range wraps past midnight.
func InRange(point, start, end Clock) bool {
	if start.Compare(end) <= 0 {
		return start.Compare(point) <= 0 && point.Compare(end) <= 0
	}
	return point.Compare(start) >= 0 || point.Compare(end) <= 0
}

// Window is a daily time range, possibly spanning midnight.
type Window struct {
	Start Clock `toml:"start"`
	End   Clock `toml:"end"`
}

// Contains reports whether the time of day of t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return InRange(ClockOf(t), w.Start, w.End)
}

// WrapsMidnight reports whether the window spans midnight.
func (w Window) WrapsMidnight() bool {
	return w.Start.Compare(w.End) > 0
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// FormatClock renders a number of seconds as HH:MM, taking hours modulo a day.
// 90000 seconds (25 hours) renders as "01:00".
func FormatClock(seconds int) string {
	seconds = floorMod(seconds, secondsPerDay)
	hours := seconds / secondsPerHour
	minutes := (seconds % secondsPerHour) / 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
