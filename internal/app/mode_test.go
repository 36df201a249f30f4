package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectMode(t *testing.T) {
	for _, tt := range []struct {
		name     string
		password string
		expected string
		debug    bool
		want     Mode
	}{
		{"match with debug", "hunter2", "hunter2", true, DebugMode},
		{"match without debug", "hunter2", "hunter2", false, DefaultMode},
		{"mismatch with debug", "letmein", "hunter2", true, DefaultMode},
		{"mismatch without debug", "letmein", "hunter2", false, DefaultMode},
		{"no password with debug", "", "hunter2", true, DefaultMode},
		{"unset expected with debug", "", "", true, DefaultMode},
		{"unset expected with password", "hunter2", "", true, DefaultMode},
		{"prefix only", "hunter", "hunter2", true, DefaultMode},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectMode(tt.password, tt.expected, tt.debug))
		})
	}
}
