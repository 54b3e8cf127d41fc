package catalog

import (
	"embed"
	"fmt"
	"slices"
	"strings"
	"sync"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// DefaultPreset is the preset used when no catalog is configured.
const DefaultPreset = "default"

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Document)
)

// Preset loads an embedded document by name.
// The returned document is shared; callers must not modify it.
func Preset(name string) (*Document, error) {
	cacheMu.RLock()
	if d, ok := cache[name]; ok {
		cacheMu.RUnlock()
		return d, nil
	}
	cacheMu.RUnlock()

	data, err := presetFS.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("preset %q not found: %w", name, err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}

	cacheMu.Lock()
	cache[name] = d
	cacheMu.Unlock()

	return d, nil
}

// Default loads the default preset.
func Default() (*Document, error) {
	return Preset(DefaultPreset)
}

// Presets returns the names of all embedded presets, sorted.
func Presets() ([]string, error) {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}

	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}
