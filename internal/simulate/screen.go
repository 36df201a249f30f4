package simulate

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"pkg.jsn.cam/syskey/internal/schedule"
)

var (
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow, color.Faint).SprintFunc()
	cyan   = color.New(color.FgCyan, color.Italic).SprintFunc()
	red    = color.New(color.FgRed, color.Italic).SprintFunc()
)

// Status is one frame of the status screen.
type Status struct {
	Key      string
	Interval time.Duration
	Presses  int
	Active   time.Duration
}

// Screen draws the status display on a terminal.
type Screen struct {
	w     io.Writer
	title string
	debug bool
}

// NewScreen draws on w. The title goes in the terminal's title bar; debug adds
// a banner so it is obvious which mode is running.
func NewScreen(w io.Writer, title string, debug bool) *Screen {
	return &Screen{w: w, title: title, debug: debug}
}

// Clear wipes the terminal.
func (s *Screen) Clear() {
	fmt.Fprint(s.w, "\x1b[H\x1b[2J")
}

// Status redraws the whole screen.
func (s *Screen) Status(st Status) {
	fmt.Fprintf(s.w, "\x1b]0;%s\a", s.title)
	s.Clear()

	if s.debug {
		fmt.Fprint(s.w, "**-------DEBUG-------**\n\n")
	}
	fmt.Fprintln(s.w, green(" ** User Input Simulation **"))
	fmt.Fprintln(s.w, yellow(" ** Press Ctrl + C to quit **"))
	fmt.Fprintln(s.w)

	minutes := int(st.Interval / time.Minute)
	fmt.Fprintf(s.w, " %s %s\n", cyan(minutes), red("minute interval"))
	fmt.Fprintf(s.w, " %s %s %s %s\n", cyan(st.Key), red("has been pressed"), cyan(st.Presses), red(tense(st.Presses)))
	fmt.Fprintf(s.w, " %s %s\n", red("For a total time of"), cyan(schedule.FormatClock(int(st.Active/time.Second))))
}

// Remaining overwrites the countdown line.
func (s *Screen) Remaining(d time.Duration) {
	secs := int(d / time.Second)
	fmt.Fprintf(s.w, "\r%s %s", cyan(fmt.Sprintf(" %02d:%02d", secs/60, secs%60)), red("currently remaining"))
}

func tense(n int) string {
	if n == 1 {
		return "time"
	}
	return "times"
}
