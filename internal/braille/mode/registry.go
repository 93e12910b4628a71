package mode

import (
	"fmt"
	"sync"

	"github.com/dshills/dotwriter/internal/logging"
)

// PreferenceKey is the store key holding the last selected mode ID.
const PreferenceKey = "brailleEditorMode"

// PreferenceStore persists opaque string values by key.
type PreferenceStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// ChangeEvent is delivered to listeners after the active mode changes.
type ChangeEvent struct {
	// Previous is the mode that was active before, or nil.
	Previous *Info

	// Current is the newly active mode.
	Current Info
}

// Listener is notified of mode changes. A returned error is logged and
// does not stop delivery to other listeners.
type Listener func(ev ChangeEvent) error

// Registry holds the available modes and the active one.
type Registry struct {
	mu sync.RWMutex

	// modes holds all registered modes by ID.
	modes map[string]Mode

	// order is the registration order, used for cycling.
	order []string

	current Mode

	// listeners are notified on mode changes. Removed slots are nil.
	listeners []Listener

	store  PreferenceStore
	logger *logging.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithStore persists the selected mode in store.
func WithStore(store PreferenceStore) RegistryOption {
	return func(r *Registry) {
		r.store = store
	}
}

// WithLogger sets the logger for registrations, switches and listener
// failures.
func WithLogger(l *logging.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		modes: make(map[string]Mode),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrNull(r.logger).WithComponent("modes")
	return r
}

// Register adds a mode. It fails if the mode has no ID or name, or if the
// ID is already taken.
func (r *Registry) Register(m Mode) error {
	if m == nil {
		return ErrInvalidMode
	}
	info := m.Info()
	if info.ID == "" || info.Name == "" {
		return ErrInvalidMode
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.modes[info.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMode, info.ID)
	}

	r.modes[info.ID] = m
	r.order = append(r.order, info.ID)
	r.logger.Debug("registered mode %s (%s)", info.Name, info.ID)
	return nil
}

// Unregister removes a mode. Removing the active mode leaves no mode
// active.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.modes[id]; !ok {
		return
	}
	if r.current != nil && r.current.Info().ID == id {
		r.current = nil
	}
	delete(r.modes, id)
	for i, name := range r.order {
		if name == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// SetMode activates the mode with the given ID, persists the choice and
// notifies listeners. An unknown ID leaves the registry unchanged.
func (r *Registry) SetMode(id string) error {
	r.mu.Lock()

	next, ok := r.modes[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownMode, id)
	}

	ev, listeners := r.switchToLocked(next)
	r.mu.Unlock()

	r.savePreference(id)
	r.logger.Info("switched to mode %s", ev.Current.Name)

	// Notify outside of lock
	r.notify(listeners, ev)
	return nil
}

// switchToLocked activates next (must hold lock).
// Returns the change event and the listeners to notify.
func (r *Registry) switchToLocked(next Mode) (ChangeEvent, []Listener) {
	ev := ChangeEvent{Current: next.Info()}
	if r.current != nil {
		prev := r.current.Info()
		ev.Previous = &prev
	}
	r.current = next

	listeners := make([]Listener, len(r.listeners))
	copy(listeners, r.listeners)
	return ev, listeners
}

// notify calls every listener in registration order. Failures are logged
// and swallowed.
func (r *Registry) notify(listeners []Listener, ev ChangeEvent) {
	for i, l := range listeners {
		if l == nil {
			continue
		}
		if err := r.callListener(l, ev); err != nil {
			r.logger.Error("listener %d failed: %v", i, err)
		}
	}
}

func (r *Registry) callListener(l Listener, ev ChangeEvent) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return l(ev)
}

// Current returns the active mode, or nil.
func (r *Registry) Current() Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Get returns a mode by ID, or nil if not found.
func (r *Registry) Get(id string) Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modes[id]
}

// Has reports whether a mode is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.modes[id]
	return ok
}

// IsActive reports whether the mode with the given ID is active.
func (r *Registry) IsActive(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current != nil && r.current.Info().ID == id
}

// Modes returns the registered modes in registration order.
func (r *Registry) Modes() []Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modes := make([]Mode, 0, len(r.order))
	for _, id := range r.order {
		modes = append(modes, r.modes[id])
	}
	return modes
}

// Options returns the metadata of every registered mode, in order.
func (r *Registry) Options() []Info {
	modes := r.Modes()
	infos := make([]Info, len(modes))
	for i, m := range modes {
		infos[i] = m.Info()
	}
	return infos
}

// Len returns the number of registered modes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// CycleToNext activates the mode after the current one in registration
// order, wrapping around.
func (r *Registry) CycleToNext() (Mode, error) {
	return r.cycle(1)
}

// CycleToPrevious activates the mode before the current one in
// registration order, wrapping around.
func (r *Registry) CycleToPrevious() (Mode, error) {
	return r.cycle(-1)
}

func (r *Registry) cycle(step int) (Mode, error) {
	r.mu.RLock()
	n := len(r.order)
	if n == 0 {
		r.mu.RUnlock()
		return nil, ErrNoModes
	}

	index := -1
	if r.current != nil {
		currentID := r.current.Info().ID
		for i, id := range r.order {
			if id == currentID {
				index = i
				break
			}
		}
	}

	var next int
	if index < 0 && step < 0 {
		next = n - 1
	} else {
		next = ((index+step)%n + n) % n
	}
	id := r.order[next]
	r.mu.RUnlock()

	if err := r.SetMode(id); err != nil {
		return nil, err
	}
	return r.Current(), nil
}

// OnChange registers a listener for mode changes.
// Returns a function to unregister it.
func (r *Registry) OnChange(l Listener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = append(r.listeners, l)
	index := len(r.listeners) - 1

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		// Remove by setting to nil (preserves indices)
		if index < len(r.listeners) {
			r.listeners[index] = nil
		}
	}
}

// LoadPreference returns the persisted mode ID if it names a registered
// mode, otherwise defaultID.
func (r *Registry) LoadPreference(defaultID string) string {
	if r.store == nil {
		return defaultID
	}
	saved, err := r.store.Get(PreferenceKey)
	if err != nil {
		r.logger.Debug("no saved mode preference: %v", err)
		return defaultID
	}
	if saved != "" && r.Has(saved) {
		return saved
	}
	return defaultID
}

// ClearPreference removes the persisted mode ID.
func (r *Registry) ClearPreference() {
	if r.store == nil {
		return
	}
	if err := r.store.Delete(PreferenceKey); err != nil {
		r.logger.Warn("failed to clear mode preference: %v", err)
	}
}

func (r *Registry) savePreference(id string) {
	if r.store == nil {
		return
	}
	if err := r.store.Set(PreferenceKey, id); err != nil {
		r.logger.Warn("failed to save mode preference: %v", err)
	}
}
