//go:build windows

package prompt

import (
	"bufio"
	"os"

	"golang.org/x/sys/windows"
)

var (
	msvcrt      = windows.NewLazySystemDLL("msvcrt.dll")
	procKbhit   = msvcrt.NewProc("_kbhit")
	procGetwche = msvcrt.NewProc("_getwche")
)

// Console reads keys from the Windows console through the C runtime's
// _kbhit and _getwche, which echo as they read.
type Console struct {
	r *bufio.Reader
}

// NewConsole wraps f, usually os.Stdin.
func NewConsole(f *os.File) *Console {
	return &Console{r: bufio.NewReader(f)}
}

func (c *Console) KeyAvailable() (bool, error) {
	if err := procKbhit.Find(); err != nil {
		return false, err
	}
	hit, _, _ := procKbhit.Call()
	return hit != 0, nil
}

func (c *Console) ReadKey() (rune, error) {
	if err := procGetwche.Find(); err != nil {
		return 0, err
	}
	ch, _, _ := procGetwche.Call()
	return rune(uint16(ch)), nil
}

func (c *Console) ReadLine() (string, error) {
	return readLine(c.r)
}
