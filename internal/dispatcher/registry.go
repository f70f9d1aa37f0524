package dispatcher

import (
	"fmt"
	"sort"
	"sync"
)

// Binding ties a key sequence in a mode to an action. Extend selects
// the anchor-preserving form of the action.
type Binding struct {
	Mode   string
	Keys   string
	Action string
	Extend bool
}

type bindingKey struct {
	mode string
	keys string
}

// Registry holds the action catalog and the key bindings.
type Registry struct {
	mu       sync.RWMutex
	actions  map[string]Spec
	bindings map[bindingKey]Binding
}

// NewRegistry creates a registry preloaded with the action catalog and
// no bindings.
func NewRegistry() *Registry {
	return &Registry{
		actions:  catalog(),
		bindings: make(map[bindingKey]Binding),
	}
}

// RegisterAction adds an action to the catalog. Built-in names cannot
// be replaced.
func (r *Registry) RegisterAction(spec Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.actions[spec.Name]; exists {
		return fmt.Errorf("action %q: %w", spec.Name, ErrDuplicateAction)
	}
	r.actions[spec.Name] = spec
	return nil
}

// Action returns the spec for an action name.
func (r *Registry) Action(name string) (Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.actions[name]
	return spec, ok
}

// Actions returns all action names, sorted.
func (r *Registry) Actions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind registers a binding. The action must exist in the catalog, an
// extend binding must have an extend form, and the key sequence must
// not already be bound in the mode.
func (r *Registry) Bind(b Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spec, ok := r.actions[b.Action]
	if !ok {
		return fmt.Errorf("binding %q in mode %q: %q: %w", b.Keys, b.Mode, b.Action, ErrUnknownAction)
	}
	if b.Extend && spec.Kind == KindRegion && spec.ExtendWith == "" {
		return fmt.Errorf("binding %q in mode %q: %q has no extend form: %w", b.Keys, b.Mode, b.Action, ErrUnknownAction)
	}

	key := bindingKey{mode: b.Mode, keys: b.Keys}
	if _, exists := r.bindings[key]; exists {
		return fmt.Errorf("binding %q in mode %q: %w", b.Keys, b.Mode, ErrDuplicateBinding)
	}
	r.bindings[key] = b
	return nil
}

// Rebind registers a binding, replacing any existing one for the same
// key sequence. Keymap files use this so user entries win over the
// defaults.
func (r *Registry) Rebind(b Binding) error {
	r.mu.Lock()
	delete(r.bindings, bindingKey{mode: b.Mode, keys: b.Keys})
	r.mu.Unlock()
	return r.Bind(b)
}

// Lookup returns the binding for a key sequence in a mode.
func (r *Registry) Lookup(mode, keys string) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[bindingKey{mode: mode, keys: keys}]
	return b, ok
}

// Bindings returns all bindings for a mode, sorted by key sequence.
func (r *Registry) Bindings(mode string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, 0, len(r.bindings))
	for key, b := range r.bindings {
		if key.mode == mode {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Keys < out[j].Keys })
	return out
}

// Unbind removes the binding for a key sequence in a mode.
func (r *Registry) Unbind(mode, keys string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bindings, bindingKey{mode: mode, keys: keys})
}
