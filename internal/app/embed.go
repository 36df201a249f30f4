package app

import (
	"embed"
	"io/fs"
	"os"
	"strings"
)

//go:embed config.toml
var defaults embed.FS

// DefaultConfigPath points at the config compiled into the binary.
const DefaultConfigPath = "(data)/config.toml"

// Open opens path from disk, or from the embedded defaults when it starts
// with "(data)/".
func Open(path string) (fs.File, error) {
	if strings.HasPrefix(path, "(data)/") {
		fname := strings.TrimPrefix(path, "(data)/")
		fin, err := defaults.Open(fname)
		return fin, err
	}
	return os.Open(path)
}
