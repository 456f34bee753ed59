// Package theme reads and sets the display preference.
package theme

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ponder/pkg/store"
)

// Theme shows the resolved theme, or stores a new explicit choice.
type Theme struct {
	// Set is "light" or "dark"; empty just prints the resolved preference.
	Set         string
	Persistence store.Persistence
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not resolve theme, no persistence")
	}

	if n.Set != "" {
		if !n.Persistence.SaveTheme(n.Set) {
			return fmt.Errorf("unknown theme %q, want light or dark", n.Set)
		}
	}

	fmt.Println(n.Persistence.Theme())
	return nil
}
