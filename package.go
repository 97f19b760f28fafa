// Package generator provides lazy, single-owner sequences backed by
// coroutines. A producer function emits values one at a time through a
// yield callback and is parked between emissions; the consumer pulls
// values on demand with Next/Value, with the Begin/Advance/AtEnd cursor,
// or with a for-range loop over All.
//
// A generator is created with New, which captures the producer without
// running any of it. The first resume runs the producer up to its first
// yield; each further resume runs it up to the next yield or until it
// returns. Sequences are not restartable: once a generator is exhausted,
// traversing it again produces nothing.
//
// A Generator owns its suspended producer exclusively. Ownership can be
// moved with Take and Assign but never shared, and the type carries a
// noCopy marker so that go vet rejects by-value copies. Close tears the
// producer down: the pending yield panics with ErrCanceled, which unwinds
// the producer through its deferred calls without running any more of its
// logic. Go has no destructors, so owners should defer Close.
//
// The producer's only way to suspend is calling yield, and yield returns
// nothing, so a producer can neither wait on other work nor receive values
// from its consumer. An error returned by the producer ends the sequence
// and is reported by Err. A panic inside the producer is wrapped with the
// producer's stack and re-raised from the resume that triggered it.
//
// Generators are not safe for concurrent use. Exactly one goroutine may
// resume a given generator at a time; callers that need to share one must
// serialize access themselves.
package generator
