package cell

// Dots is the set of dots being composed for a cell that has not been
// committed yet. The zero value is the empty set.
type Dots struct {
	code Code
}

// NewDots returns a set holding the given dots.
func NewDots(dots ...int) Dots {
	return Dots{code: DotsToCode(dots...)}
}

// Add raises dot d. Dots outside 1-6 are ignored.
func (s *Dots) Add(d int) {
	s.code |= DotsToCode(d)
}

// Remove lowers dot d.
func (s *Dots) Remove(d int) {
	s.code &^= DotsToCode(d)
}

// Toggle flips dot d and reports whether it is now raised.
func (s *Dots) Toggle(d int) bool {
	if s.Has(d) {
		s.Remove(d)
		return false
	}
	s.Add(d)
	return s.Has(d)
}

// Has reports whether dot d is raised.
func (s Dots) Has(d int) bool {
	return s.code.Has(d)
}

// Clear lowers every dot.
func (s *Dots) Clear() {
	s.code = Blank
}

// Len returns the number of raised dots.
func (s Dots) Len() int {
	return len(CodeToDots(s.code))
}

// Empty reports whether no dot is raised.
func (s Dots) Empty() bool {
	return s.code == Blank
}

// Code returns the cell code for the set.
func (s Dots) Code() Code {
	return s.code
}

// Slice returns the raised dots in ascending order.
func (s Dots) Slice() []int {
	return CodeToDots(s.code)
}
