//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package prompt

import (
	"bufio"
	"os"
)

// Console on platforms without a pollable terminal API. KeyAvailable always
// reports true, so the timed prompt blocks until a key arrives.
type Console struct {
	r *bufio.Reader
}

// NewConsole wraps f, usually os.Stdin.
func NewConsole(f *os.File) *Console {
	return &Console{r: bufio.NewReader(f)}
}

func (c *Console) KeyAvailable() (bool, error) { return true, nil }

func (c *Console) ReadKey() (rune, error) {
	r, _, err := c.r.ReadRune()
	return r, err
}

func (c *Console) ReadLine() (string, error) {
	return readLine(c.r)
}
