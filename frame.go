package generator

import (
	"errors"
	"iter"

	"github.com/google/uuid"
)

var (
	// ErrCanceled is raised inside a producer when its generator is closed
	// while the producer is parked at a yield. It is also raised by a yield
	// call made while the producer is not running: after Close, after the
	// producer returned, or while it is parked.
	ErrCanceled = errors.New("generator: canceled")

	// ErrNoValue is raised by Value when the generator has no current
	// value: before the first resume, at the end of the sequence, or after
	// it was closed.
	ErrNoValue = errors.New("generator: no current value")

	// ErrRunning is raised when a generator is resumed or closed from
	// inside its own producer.
	ErrRunning = errors.New("generator: already running")
)

type state uint8

const (
	stateNew state = iota
	stateSuspended
	stateRunning
	stateCompleted
	stateFailed
	stateCanceled
)

func (s state) String() string {
	switch s {
	case stateNew:
		return "new"
	case stateSuspended:
		return "suspended"
	case stateRunning:
		return "running"
	case stateCompleted:
		return "completed"
	case stateFailed:
		return "failed"
	case stateCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// frame is the producer state owned by a Generator. The producer runs on
// a runtime coroutine obtained from iter.Pull, so control passes back and
// forth synchronously and the two sides never run at the same time.
type frame[T any] struct {
	id    uuid.UUID
	cfg   *config
	state state

	value    T
	hasValue bool

	// err is what the producer returned; perr is the panic it raised.
	err  error
	perr *panicError

	next func() (T, bool)
	stop func()
}

func newFrame[T any](fn Producer[T], cfg *config) *frame[T] {
	f := &frame[T]{id: uuid.New(), cfg: cfg}
	f.next, f.stop = iter.Pull(f.body(fn))
	return f
}

// body adapts the producer to the push iterator iter.Pull expects. A
// false result from the pull-side yield means stop was called, which is
// turned into an ErrCanceled panic so the producer unwinds through its
// deferred calls instead of carrying on.
func (f *frame[T]) body(fn Producer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if f.state == stateCanceled && isCancel(p) {
				return
			}
			f.perr = newPanicError(p)
			panic(f.perr)
		}()

		f.err = fn(func(v T) {
			if f.state != stateRunning {
				panic(ErrCanceled)
			}
			if !yield(v) {
				panic(ErrCanceled)
			}
		})
	}
}

func (f *frame[T]) finished() bool {
	return f.state >= stateCompleted
}

// resume runs the producer until its next yield or until it returns, and
// reports whether a value was produced.
func (f *frame[T]) resume() bool {
	switch f.state {
	case stateNew:
		f.cfg.onStart(f.id)
	case stateSuspended:
	case stateRunning:
		panic(ErrRunning)
	case stateFailed:
		if f.perr != nil {
			panic(f.perr)
		}
		return false
	default:
		return false
	}

	var zero T
	f.value, f.hasValue = zero, false
	f.state = stateRunning

	panicking := true
	defer func() {
		if panicking {
			f.state = stateFailed
			f.cfg.onPanic(f.id, f.perr)
		}
	}()
	v, ok := f.next()
	panicking = false

	if !ok {
		if f.err != nil {
			f.state = stateFailed
			f.cfg.onFail(f.id, f.err)
		} else {
			f.state = stateCompleted
			f.cfg.onComplete(f.id)
		}
		return false
	}
	f.value, f.hasValue = v, true
	f.state = stateSuspended
	f.cfg.onYield()
	return true
}

// cancel discards the producer. A producer parked at a yield is unwound;
// one that never started is dropped without running.
func (f *frame[T]) cancel() {
	switch f.state {
	case stateNew:
		f.state = stateCanceled
		f.stop()
	case stateSuspended:
		var zero T
		f.value, f.hasValue = zero, false
		f.state = stateCanceled

		panicking := true
		defer func() {
			if panicking {
				f.state = stateFailed
				f.cfg.onPanic(f.id, f.perr)
				return
			}
			f.cfg.onCancel(f.id)
		}()
		f.stop()
		panicking = false
	}
}
