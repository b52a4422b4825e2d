package commands

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry holds registered commands, indexed by name and alias.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Command
	ordered []Command // primary registrations, sorted by name
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, key := range keys {
		if _, exists := r.byName[key]; exists {
			return fmt.Errorf("command name already registered: %s", key)
		}
	}
	for _, key := range keys {
		r.byName[key] = c
	}

	r.ordered = append(r.ordered, c)
	slices.SortFunc(r.ordered, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byName[name]
	return cmd, ok
}

// All returns all unique commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ordered)
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
