package generator

import (
	"fmt"
	"iter"
)

// Producer is the body of a generator. It hands values to the consumer by
// calling yield, which parks the producer until the consumer asks for the
// next value. Returning ends the sequence; a non-nil error marks it failed
// and is reported by Err.
//
// yield must only be called by the producer itself, on the goroutine that
// runs it. Calls made while the generator is parked, after Close or after
// the producer returned panic with ErrCanceled. Calling yield from another
// goroutine while the producer is running is undefined behaviour and is
// not detected.
type Producer[T any] func(yield func(T)) error

// noCopy may be embedded into structs which must not be copied after
// first use. go vet's copylocks check reports copies of values whose type
// has Lock and Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Generator is a lazy sequence of T produced on demand by a Producer. It
// is the sole owner of the suspended producer; use Take or Assign to move
// ownership and Close to tear the producer down. The zero value is an
// empty generator.
//
// A Generator must not be copied after first use.
type Generator[T any] struct {
	noCopy noCopy

	f *frame[T]
}

// New creates a generator around fn. None of fn runs until the first
// call to Next, Begin or a traversal of All.
//
// Parameters:
//   - fn: The producer body. A nil fn gives an empty generator.
//   - opts: Options controlling logging, naming and metrics.
//
// Returns:
//   - A generator that owns the suspended producer. The caller should
//     arrange for Close to be called, typically with defer.
func New[T any](fn Producer[T], opts ...Option) *Generator[T] {
	if fn == nil {
		return &Generator[T]{}
	}
	return &Generator[T]{f: newFrame(fn, newConfig(opts))}
}

// Empty returns a generator that produces nothing.
func Empty[T any]() *Generator[T] {
	return &Generator[T]{}
}

// FromSeq wraps a push iterator in a generator, so that it can be
// consumed one value at a time.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *Generator[T] {
	if seq == nil {
		return Empty[T]()
	}
	return New(func(yield func(T)) error {
		for v := range seq {
			yield(v)
		}
		return nil
	}, opts...)
}

// Take moves ownership of the producer into a new generator and leaves g
// empty. The new generator continues exactly where g left off.
func (g *Generator[T]) Take() *Generator[T] {
	h := &Generator[T]{f: g.f}
	g.f = nil
	return h
}

// Assign tears down the producer g currently owns, if any, and then takes
// ownership of src's producer, leaving src empty. Assigning a generator
// to itself does nothing.
func (g *Generator[T]) Assign(src *Generator[T]) {
	if g == src {
		return
	}
	g.Close()
	g.f, src.f = src.f, nil
}

// Close releases the producer. If it is parked at a yield, the pending
// yield panics with ErrCanceled so that the producer's deferred calls run;
// its remaining logic does not. A producer that never started is dropped
// without running. Close leaves g empty and is a no-op on an empty
// generator.
//
// If the producer panics with anything other than ErrCanceled while
// unwinding, Close re-raises that panic. Closing a generator from inside
// its own producer panics with ErrRunning.
func (g *Generator[T]) Close() {
	f := g.f
	if f == nil {
		return
	}
	if f.state == stateRunning {
		panic(ErrRunning)
	}
	g.f = nil
	f.cancel()
}

// Next resumes the producer once. It reports whether a new value is
// available through Value. It returns false once the producer has
// returned, failed or been closed, and for an empty generator.
//
// A panic raised by the producer is re-raised by Next, wrapped so that it
// carries the producer's stack; later calls raise it again.
func (g *Generator[T]) Next() bool {
	if g.f == nil {
		return false
	}
	return g.f.resume()
}

// Value returns the value produced by the most recent successful Next.
// It panics with ErrNoValue when there is none. The value is replaced on
// the next resume, so read it before advancing if it is still needed.
func (g *Generator[T]) Value() T {
	if g.f == nil || !g.f.hasValue {
		panic(ErrNoValue)
	}
	return g.f.value
}

// Done reports whether the sequence has ended: the generator is empty,
// or its producer has returned, failed or been canceled.
func (g *Generator[T]) Done() bool {
	return g.f == nil || g.f.finished()
}

// Err returns the error the producer returned, if any.
func (g *Generator[T]) Err() error {
	if g.f == nil {
		return nil
	}
	return g.f.err
}

// All returns a view of g for use with for-range. Each traversal begins
// with Begin, so it resumes the producer before the first value. Breaking
// out of the loop leaves the producer parked and owned by g.
func (g *Generator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := g.Begin(); !it.AtEnd(); it.Advance() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

func (g *Generator[T]) String() string {
	if g.f == nil {
		return "generator(empty)"
	}
	if g.f.cfg.name != "" {
		return fmt.Sprintf("generator(%s %s %s)", g.f.cfg.name, g.f.id, g.f.state)
	}
	return fmt.Sprintf("generator(%s %s)", g.f.id, g.f.state)
}
