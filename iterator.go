package generator

// Iterator is a cursor over a generator. It does not own the producer; it
// refers back to the generator it was obtained from, so moving or closing
// that generator is visible through the iterator.
type Iterator[T any] struct {
	g *Generator[T]
}

// Begin resumes the producer once, unless g is empty or already finished,
// and returns an iterator positioned at the value that produced.
func (g *Generator[T]) Begin() Iterator[T] {
	if !g.Done() {
		g.Next()
	}
	return Iterator[T]{g: g}
}

// Advance resumes the producer once.
func (it Iterator[T]) Advance() {
	if it.g != nil {
		it.g.Next()
	}
}

// AtEnd reports whether the iterator has reached the end of the sequence.
func (it Iterator[T]) AtEnd() bool {
	return it.g == nil || it.g.Done()
}

// Value returns the current value. Calling it at the end of the sequence
// panics with ErrNoValue.
func (it Iterator[T]) Value() T {
	if it.g == nil {
		panic(ErrNoValue)
	}
	return it.g.Value()
}
