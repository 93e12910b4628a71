package layout

import "fmt"

// Set is an ordered collection of layouts. The zero value is empty and
// ready to use.
type Set struct {
	layouts map[string]Layout
	order   []string
}

// NewSet creates a set holding the built-in layouts.
func NewSet() *Set {
	s := &Set{}
	for _, l := range Builtin() {
		s.put(l)
	}
	return s
}

// Add registers a layout. A layout whose id is already registered is
// rejected unless replace is true, in which case it keeps its position.
func (s *Set) Add(l Layout, replace bool) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, exists := s.layouts[l.ID]; exists && !replace {
		return fmt.Errorf("%w: %s", ErrDuplicateLayout, l.ID)
	}
	s.put(l)
	return nil
}

func (s *Set) put(l Layout) {
	if s.layouts == nil {
		s.layouts = make(map[string]Layout)
	}
	if _, exists := s.layouts[l.ID]; !exists {
		s.order = append(s.order, l.ID)
	}
	s.layouts[l.ID] = l
}

// Get returns the layout with the given id.
func (s *Set) Get(id string) (Layout, error) {
	l, ok := s.layouts[id]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %s", ErrUnknownLayout, id)
	}
	return l, nil
}

// Has reports whether id is registered.
func (s *Set) Has(id string) bool {
	_, ok := s.layouts[id]
	return ok
}

// IDs returns the layout ids in registration order.
func (s *Set) IDs() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of layouts.
func (s *Set) Len() int {
	return len(s.order)
}

// Next returns the layout after id in registration order, wrapping at the
// end. An unknown id yields the first layout.
func (s *Set) Next(id string) (Layout, error) {
	if len(s.order) == 0 {
		return Layout{}, fmt.Errorf("%w: no layouts", ErrUnknownLayout)
	}
	next := 0
	for i, v := range s.order {
		if v == id {
			next = (i + 1) % len(s.order)
			break
		}
	}
	return s.layouts[s.order[next]], nil
}
