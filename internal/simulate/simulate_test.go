package simulate

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type fakePresser struct {
	keys []string
	err  error
}

func (p *fakePresser) Press(key string) error {
	p.keys = append(p.keys, key)
	return p.err
}

type recorder struct {
	intervals []time.Duration
	failures  int
	onPress   func(n int)
	onFail    func(n int)
}

func (r *recorder) Pressed(key string, interval, active time.Duration) {
	r.intervals = append(r.intervals, interval)
	if r.onPress != nil {
		r.onPress(len(r.intervals))
	}
}

func (r *recorder) PressFailed(key string, err error) {
	r.failures++
	if r.onFail != nil {
		r.onFail(r.failures)
	}
}

// fakeSleep never waits; it just tallies how long it was asked to sleep.
type fakeSleep struct {
	total time.Duration
}

func (f *fakeSleep) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.total += d
	return nil
}

func newSimulator(p Presser, obs Observer, sl *fakeSleep, out *bytes.Buffer) *Simulator {
	return &Simulator{
		Key:        "shift",
		MinMinutes: 1,
		MaxMinutes: 4,
		Presser:    p,
		Screen:     NewScreen(out, "SysKey", false),
		Observer:   obs,
		Rand:       rand.New(rand.NewPCG(1, 2)),
		Sleep:      sl.Sleep,
	}
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &fakePresser{}
	rec := &recorder{}
	rec.onPress = func(n int) {
		if n == 3 {
			cancel()
		}
	}
	sl := &fakeSleep{}

	res := newSimulator(p, rec, sl, &bytes.Buffer{}).Run(ctx)

	assert.Equal(t, 3, res.Presses)
	assert.Equal(t, []string{"shift", "shift", "shift"}, p.keys)
	require.Len(t, rec.intervals, 3)

	var sum time.Duration
	for _, iv := range rec.intervals {
		sum += iv
	}
	assert.Equal(t, sum, res.Active)
	// the third countdown never got to sleep
	assert.Equal(t, rec.intervals[0]+rec.intervals[1], sl.total)
}

func TestRunAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &fakePresser{}
	res := newSimulator(p, nil, &fakeSleep{}, &bytes.Buffer{}).Run(ctx)

	assert.Equal(t, Result{}, res)
	assert.Empty(t, p.keys)
}

func TestRunKeepsGoingAfterPressFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &fakePresser{err: errors.New("no display")}
	rec := &recorder{}
	rec.onFail = func(n int) {
		if n == 2 {
			cancel()
		}
	}
	sl := &fakeSleep{}

	res := newSimulator(p, rec, sl, &bytes.Buffer{}).Run(ctx)

	assert.Equal(t, 0, res.Presses)
	assert.Equal(t, 2, rec.failures)
	assert.Empty(t, rec.intervals)
	assert.Len(t, p.keys, 2)
	// one full countdown plus the interval that was cut short
	assert.Greater(t, res.Active, sl.total)
	assert.GreaterOrEqual(t, res.Active, 2*time.Minute)
}

func TestNextIntervalBounds(t *testing.T) {
	s := &Simulator{MinMinutes: 1, MaxMinutes: 4, Rand: rand.New(rand.NewPCG(7, 7))}

	seen := map[time.Duration]bool{}
	for range 1000 {
		iv := s.nextInterval()
		require.GreaterOrEqual(t, iv, time.Minute)
		require.LessOrEqual(t, iv, 4*time.Minute)
		require.Zero(t, iv%time.Minute)
		seen[iv] = true
	}
	assert.Len(t, seen, 4)

	s = &Simulator{MinMinutes: 0, MaxMinutes: 0}
	assert.Equal(t, time.Minute, s.nextInterval())

	s = &Simulator{MinMinutes: 3, MaxMinutes: 2}
	assert.Equal(t, 3*time.Minute, s.nextInterval())
}

func TestCountdownTicksEverySecond(t *testing.T) {
	out := &bytes.Buffer{}
	sl := &fakeSleep{}
	s := newSimulator(&fakePresser{}, nil, sl, out)

	require.NoError(t, s.countdown(context.Background(), 2*time.Minute))
	assert.Equal(t, 2*time.Minute, sl.total)
	assert.Equal(t, 120, strings.Count(out.String(), "currently remaining"))
	assert.Contains(t, out.String(), " 02:00 currently remaining")
	assert.Contains(t, out.String(), " 00:01 currently remaining")
	assert.NotContains(t, out.String(), " 00:00 currently remaining")
}

func TestScreenStatus(t *testing.T) {
	out := &bytes.Buffer{}
	NewScreen(out, "UserSimulation", true).Status(Status{
		Key:      "shift",
		Interval: 3 * time.Minute,
		Presses:  1,
		Active:   24 * time.Minute,
	})

	got := out.String()
	assert.Contains(t, got, "\x1b]0;UserSimulation\a")
	assert.Contains(t, got, "**-------DEBUG-------**")
	assert.Contains(t, got, "3 minute interval")
	assert.Contains(t, got, "shift has been pressed 1 time\n")
	assert.Contains(t, got, "For a total time of 00:24")

	out.Reset()
	NewScreen(out, "SysKey", false).Status(Status{Key: "shift", Interval: time.Minute, Presses: 2})
	assert.NotContains(t, out.String(), "DEBUG")
	assert.Contains(t, out.String(), "pressed 2 times")
}

func TestSleep(t *testing.T) {
	require.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
