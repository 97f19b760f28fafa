package generator

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	defaultLogger.Store(&nop)
}

// SetLogger replaces the logger used by generators created without
// WithLogger. The default discards everything.
func SetLogger(l zerolog.Logger) {
	defaultLogger.Store(&l)
}

// Option configures a generator created by New.
type Option func(*config)

// WithLogger sets the logger that receives the generator's lifecycle
// events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithName labels the generator in log events and metrics.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithMetrics records the generator's lifecycle in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

type config struct {
	name    string
	logger  zerolog.Logger
	metrics *Metrics

	inst *instruments
}

func newConfig(opts []Option) *config {
	c := &config{logger: *defaultLogger.Load()}
	for _, opt := range opts {
		opt(c)
	}
	if c.name != "" {
		c.logger = c.logger.With().Str("name", c.name).Logger()
	}
	c.inst = c.metrics.bind(c.name)
	return c
}

func (c *config) onStart(id uuid.UUID) {
	c.logger.Debug().Stringer("generator", id).Msg("generator started")
	c.inst.start()
}

func (c *config) onYield() {
	c.inst.yield()
}

func (c *config) onComplete(id uuid.UUID) {
	c.logger.Debug().Stringer("generator", id).Msg("generator completed")
	c.inst.finish(outcomeCompleted)
}

func (c *config) onFail(id uuid.UUID, err error) {
	c.logger.Error().Err(err).Stringer("generator", id).Msg("generator failed")
	c.inst.finish(outcomeFailed)
}

func (c *config) onPanic(id uuid.UUID, perr *panicError) {
	ev := c.logger.Error().Stringer("generator", id)
	if perr != nil {
		ev = ev.Str("panic", perr.Error())
	}
	ev.Msg("generator panicked")
	c.inst.finish(outcomePanicked)
}

func (c *config) onCancel(id uuid.UUID) {
	c.logger.Debug().Stringer("generator", id).Msg("generator canceled")
	c.inst.finish(outcomeCanceled)
}
