package engine

import (
	"log/slog"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
)

// Circuit bundles the inputs every analysis runs over: the component
// registry, the placed instances, the wires and the current button states.
// The engine only reads it; ownership stays with the application state store.
// All entry points re-traverse from scratch, so the bundle can be rebuilt (or
// reused unchanged) on every call.
type Circuit struct {
	Registry   circuit.Registry
	Components []circuit.Placement
	Wires      []circuit.Wire
	Buttons    circuit.ButtonState
}

// placement returns the placed instance with the given id, or nil. A nil
// result is treated as "no connection" by the traversal, never as an error.
func (c *Circuit) placement(instanceID string) *circuit.Placement {
	for i := range c.Components {
		if c.Components[i].InstanceID == instanceID {
			return &c.Components[i]
		}
	}
	return nil
}

// definition resolves the component definition for a placed instance. Missing
// registry entries degrade to nil.
func (c *Circuit) definition(comp *circuit.Placement) *circuit.Definition {
	if comp == nil || c.Registry == nil {
		return nil
	}
	def, ok := c.Registry.Lookup(comp.TypeID)
	if !ok {
		return nil
	}
	return def
}

// Config controls traversal limits and logging.
type Config struct {
	// MaxDepth is the recursion ceiling. The visited set already guarantees
	// termination; the ceiling is a conservative second guard against
	// pathological graphs. Hitting it logs a warning and abandons the branch.
	MaxDepth int

	// Logger receives traversal diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultMaxDepth bounds the traversal recursion.
const DefaultMaxDepth = 100

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{MaxDepth: DefaultMaxDepth}
}

func (c *Config) normalized() *Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.MaxDepth < 1 {
		out.MaxDepth = DefaultMaxDepth
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return &out
}
