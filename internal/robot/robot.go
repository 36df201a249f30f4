// Package robot presses keys on the real desktop through robotgo.
package robot

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	_ "github.com/go-vgo/robotgo/base" // Blank import for robotgo C sources
	_ "github.com/go-vgo/robotgo/key"  // Blank import for robotgo C sources
)

// Presser taps keys with robotgo. It satisfies simulate.Presser.
type Presser struct{}

func (Presser) Press(key string) error {
	if err := robotgo.KeyTap(key); err != nil {
		return fmt.Errorf("robot: can't tap %q: %w", key, err)
	}
	return nil
}
