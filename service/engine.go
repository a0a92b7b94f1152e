// Package service declares the capability boundary between the VCL
// compiler and the code-system execution engines that evaluate its output.
// The compiler is agnostic to which engine eventually consumes a
// composition; engines implement the fixed method set below, one variant
// per code-system family.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofhir/vcl/compose"
)

// CodeSystemEngine evaluates composition rules against one code system.
type CodeSystemEngine interface {
	// System returns the canonical URI of the code system this engine
	// serves.
	System() string

	// ExpandRule resolves a single rule into its member concepts. The rule
	// carries either an explicit code list or a filter list; value set
	// references are resolved by the caller before reaching an engine.
	ExpandRule(ctx context.Context, rule *compose.Rule) ([]compose.Concept, error)

	// Subsumes reports whether ancestor subsumes descendant within this
	// code system.
	Subsumes(ctx context.Context, ancestor, descendant string) (bool, error)
}

// EngineRegistry routes rules to the engine for their code system.
// It is safe for concurrent use.
type EngineRegistry struct {
	mu      sync.RWMutex
	engines map[string]CodeSystemEngine
}

// NewEngineRegistry creates an empty registry.
func NewEngineRegistry() *EngineRegistry {
	return &EngineRegistry{
		engines: make(map[string]CodeSystemEngine),
	}
}

// Register adds an engine, replacing any previous engine for the same
// system URI.
func (r *EngineRegistry) Register(e CodeSystemEngine) error {
	if e == nil || e.System() == "" {
		return fmt.Errorf("engine is nil or has no system URI")
	}
	r.mu.Lock()
	r.engines[e.System()] = e
	r.mu.Unlock()
	return nil
}

// Lookup returns the engine for a system URI.
func (r *EngineRegistry) Lookup(system string) (CodeSystemEngine, bool) {
	r.mu.RLock()
	e, ok := r.engines[system]
	r.mu.RUnlock()
	return e, ok
}

// Systems returns the URIs of all registered engines.
func (r *EngineRegistry) Systems() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.engines))
	for system := range r.engines {
		out = append(out, system)
	}
	return out
}
