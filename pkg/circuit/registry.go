package circuit

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry knows how to look up component definitions by type id.
type Registry interface {
	Lookup(typeID string) (*Definition, bool)
}

// MemoryRegistry is a simple in-memory implementation preloaded with the
// built-in component set and extendable with YAML definition files.
type MemoryRegistry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{defs: make(map[string]*Definition)}
}

// Builtin returns a registry preloaded with the standard component set:
// arduino-uno, led-5mm, resistor, pushbutton, buzzer and breadboard.
func Builtin() *MemoryRegistry {
	r := NewMemoryRegistry()
	for _, def := range builtinDefinitions() {
		r.defs[def.TypeID] = def
	}
	return r
}

// Add registers a definition under its type id. Re-adding an existing type id
// replaces the previous definition.
func (r *MemoryRegistry) Add(def *Definition) error {
	if def == nil || def.TypeID == "" {
		return fmt.Errorf("circuit: definition missing type id")
	}
	if len(def.Pins) == 0 {
		return fmt.Errorf("circuit: definition %s has no pins", def.TypeID)
	}
	seen := make(map[string]bool, len(def.Pins))
	for _, p := range def.Pins {
		if p.ID == "" {
			return fmt.Errorf("circuit: definition %s has a pin without id", def.TypeID)
		}
		if seen[p.ID] {
			return fmt.Errorf("circuit: definition %s declares pin %s twice", def.TypeID, p.ID)
		}
		seen[p.ID] = true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.TypeID] = def
	return nil
}

// Lookup implements the Registry interface.
func (r *MemoryRegistry) Lookup(typeID string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[typeID]
	return def, ok
}

// LoadFile parses a YAML component definition and adds it to the registry.
func (r *MemoryRegistry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("circuit: read %s: %w", path, err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("circuit: parse %s: %w", path, err)
	}
	if err := r.Add(&def); err != nil {
		return fmt.Errorf("circuit: add %s: %w", path, err)
	}
	return nil
}

// LoadDir recursively loads all .yml/.yaml definition files from the
// provided directory.
func (r *MemoryRegistry) LoadDir(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !isDefinitionFile(path) {
			return nil
		}
		return r.LoadFile(path)
	})
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
