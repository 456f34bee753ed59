// Package store persists the journal aggregate as one JSON document in a
// diskv-backed key/value directory. Failures never escape this package:
// reads degrade to defaults with a stderr warning, writes report a boolean.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/ponder/pkg/state"
)

const (
	// stateKey is the single well-known key the aggregate lives under.
	stateKey = "state"
	// themeKey holds the independent light/dark preference scalar.
	themeKey = "theme"
)

// Persistence is the durable storage contract for the journal.
type Persistence interface {
	LoadState() *state.AppState
	SaveState(s *state.AppState) bool
	ClearState() bool
	Theme() string
	SaveTheme(theme string) bool
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence rooted at the configured base path.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// LoadState never fails outward. Absent, unparsable, or structurally invalid
// data downgrades to the default state with a warning on stderr.
func (p *persistence) LoadState() *state.AppState {
	data, err := p.d.Read(stateKey)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", stateKey, err)
		}
		return state.Default()
	}
	s, ok := state.Decode(data)
	if !ok {
		fmt.Fprintf(os.Stderr, "store: %s is not a valid journal document, starting fresh\n", stateKey)
		return state.Default()
	}
	return s
}

func (p *persistence) SaveState(s *state.AppState) bool {
	data, err := json.Marshal(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: encode %s: %v\n", stateKey, err)
		return false
	}
	if err := p.d.Write(stateKey, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", stateKey, err)
		return false
	}
	return true
}

func (p *persistence) ClearState() bool {
	if err := p.d.Erase(stateKey); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "store: erase %s: %v\n", stateKey, err)
		return false
	}
	return true
}

// Theme resolves the display preference: the stored choice wins, then the
// terminal's COLORFGBG convention, then light.
func (p *persistence) Theme() string {
	if data, err := p.d.Read(themeKey); err == nil {
		switch theme := strings.TrimSpace(string(data)); theme {
		case "light", "dark":
			return theme
		}
	}
	if systemPrefersDark() {
		return "dark"
	}
	return "light"
}

func (p *persistence) SaveTheme(theme string) bool {
	if theme != "light" && theme != "dark" {
		return false
	}
	if err := p.d.Write(themeKey, []byte(theme)); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", themeKey, err)
		return false
	}
	return true
}

// systemPrefersDark reads the COLORFGBG convention some terminals export:
// "foreground;background" with background 0-6 or 8 meaning a dark palette.
func systemPrefersDark() bool {
	v := os.Getenv("COLORFGBG")
	parts := strings.Split(v, ";")
	if len(parts) < 2 {
		return false
	}
	switch parts[len(parts)-1] {
	case "0", "1", "2", "3", "4", "5", "6", "8":
		return true
	}
	return false
}
