//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package prompt

import (
	"bufio"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// Console reads keys from a terminal (or anything pollable) one at a time.
type Console struct {
	fd  int
	tty bool
	r   *bufio.Reader
}

// NewConsole wraps f, usually os.Stdin.
func NewConsole(f *os.File) *Console {
	return &Console{
		fd:  int(f.Fd()),
		tty: isatty.IsTerminal(f.Fd()),
		r:   bufio.NewReader(f),
	}
}

// Raw turns off canonical mode so keys arrive as they are typed. Echo and
// signal generation stay on, so typed characters are still shown and Ctrl+C
// still interrupts.
func (c *Console) Raw() (func() error, error) {
	if !c.tty {
		return func() error { return nil }, nil
	}

	old, err := unix.IoctlGetTermios(c.fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	raw := *old
	raw.Lflag &^= unix.ICANON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(c.fd, ioctlSetTermios, &raw); err != nil {
		return nil, err
	}

	return func() error {
		return unix.IoctlSetTermios(c.fd, ioctlSetTermios, old)
	}, nil
}

func (c *Console) KeyAvailable() (bool, error) {
	if c.r.Buffered() > 0 {
		return true, nil
	}

	fds := []unix.PollFd{{Fd: int32(c.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0, nil
	}
}

func (c *Console) ReadKey() (rune, error) {
	r, _, err := c.r.ReadRune()
	return r, err
}

func (c *Console) ReadLine() (string, error) {
	return readLine(c.r)
}
