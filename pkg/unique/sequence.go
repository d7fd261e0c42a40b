package unique

// Sequence hands out monotonically increasing IDs starting at a fixed value.
// IDs are never reset nor reused for the lifetime of the Sequence.
// It is NOT thread-safe.
type Sequence struct {
	next int64
}

// NewSequence returns a Sequence whose first ID is start.
// Negative starts are clamped to 0.
func NewSequence(start int64) *Sequence {
	if start < 0 {
		start = 0
	}
	return &Sequence{next: start}
}

// Generate returns the current ID and advances the sequence.
func (s *Sequence) Generate() int64 {
	id := s.next
	s.next++
	return id
}

// Peek returns the ID the next call to Generate will return.
func (s *Sequence) Peek() int64 {
	return s.next
}
