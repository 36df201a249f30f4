package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"

	"pkg.jsn.cam/syskey"
)

// WriteBuildInfo dumps the module build info and version as JSON.
func WriteBuildInfo(w io.Writer) error {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return fmt.Errorf("no build info available")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		BuildInfo *debug.BuildInfo `json:"build_info"`
		Version   string           `json:"version"`
	}{bi, syskey.Version}); err != nil {
		return fmt.Errorf("can't encode build info: %w", err)
	}
	return nil
}
