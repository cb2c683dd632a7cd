// Package maintenance implements a file-based maintenance mode toggle.
// Creating the flag file takes the portal offline; removing it brings the
// portal back. The flag survives restarts, which is the point.
package maintenance

import (
	"fmt"
	"os"
)

type Toggle struct {
	flagFile string
}

func NewToggle(flagFile string) *Toggle {
	return &Toggle{flagFile: flagFile}
}

// Enable puts the portal into maintenance mode.
func (t *Toggle) Enable() error {
	if err := os.WriteFile(t.flagFile, []byte("maintenance_enabled"), 0644); err != nil {
		return fmt.Errorf("failed to enable maintenance mode: %w", err)
	}
	return nil
}

// Disable brings the portal back online.
func (t *Toggle) Disable() error {
	if err := os.Remove(t.flagFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to disable maintenance mode: %w", err)
	}
	return nil
}

// Enabled reports whether the flag file exists.
func (t *Toggle) Enabled() bool {
	_, err := os.Stat(t.flagFile)
	return err == nil
}
