package app

import (
	"crypto/subtle"
	"log/slog"
)

// Mode decides how chatty a run is and what it calls itself in the run log
// and the terminal title.
type Mode struct {
	Name  string
	Level slog.Level
	Debug bool
}

var (
	DefaultMode = Mode{Name: "SysKey", Level: slog.LevelInfo}
	DebugMode   = Mode{Name: "UserSimulation", Level: slog.LevelDebug, Debug: true}
)

// SelectMode only returns DebugMode when debug is set and password matches
// expected. An empty expected password never matches.
func SelectMode(password, expected string, debug bool) Mode {
	if !debug || expected == "" {
		return DefaultMode
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		return DefaultMode
	}
	return DebugMode
}
