package generator

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// panicError carries a value a producer panicked with, together with the
// producer's stack at the time of the panic. It is what a consumer sees
// when a resume re-raises the producer's panic.
type panicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *panicError {
	return &panicError{value: v, stack: debug.Stack()}
}

func (p *panicError) Error() string {
	return fmt.Sprintf("%v", p.value)
}

// ErrorWithStack returns the panic message followed by the producer's
// stack trace.
func (p *panicError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", p.value, p.stack)
}

// Unwrap exposes the panic value when it was an error, so errors.Is and
// errors.As see through the wrapper.
func (p *panicError) Unwrap() error {
	if err, ok := p.value.(error); ok {
		return err
	}
	return nil
}

// DebugString renders the whole error chain, printing the stack of every
// panicError found along the way. Nested generators produce one stack per
// level.
func (p *panicError) DebugString() string {
	var sb strings.Builder
	seen := make(map[error]bool)

	pending := []error{p}
	for len(pending) > 0 {
		e := pending[0]
		pending = pending[1:]
		if e == nil || seen[e] {
			continue
		}
		seen[e] = true

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		if pe, ok := e.(*panicError); ok {
			sb.WriteString(pe.ErrorWithStack())
		} else {
			sb.WriteString(e.Error())
		}

		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			pending = append(u.Unwrap(), pending...)
		case interface{ Unwrap() error }:
			pending = append([]error{u.Unwrap()}, pending...)
		}
	}
	return sb.String()
}

// isCancel reports whether a recovered panic value is the cancellation
// raised from yield during Close.
func isCancel(p any) bool {
	err, ok := p.(error)
	return ok && errors.Is(err, ErrCanceled)
}
