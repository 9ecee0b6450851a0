// Package debounce delays propagation of a rapidly changing value until it
// has stayed unchanged for a quiescence window.
package debounce

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Option configures a Debouncer.
type Option func(*options)

type options struct {
	clock clock.Clock
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// Debouncer tracks a source value and a settled value that follows it once the
// source has been stable for the configured window.
type Debouncer[T comparable] struct {
	mu        sync.Mutex
	clock     clock.Clock
	window    time.Duration
	source    T
	settled   T
	timer     *clock.Timer
	gen       uint64
	stopped   bool
	callbacks []func(T)
}

// New returns a Debouncer whose source and settled values both start at initial.
func New[T comparable](initial T, window time.Duration, opts ...Option) *Debouncer[T] {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Debouncer[T]{
		clock:   o.clock,
		window:  window,
		source:  initial,
		settled: initial,
	}
}

// Feed records a new source value and restarts the quiescence wait. Feeding the
// current source value again is not a change and leaves any pending wait alone.
func (d *Debouncer[T]) Feed(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || v == d.source {
		return
	}
	d.source = v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.window, func() { d.fire(gen) })
}

// OnSettled registers fn to run every time the settled value changes. Callbacks
// run on the timer goroutine, outside the debouncer's lock.
func (d *Debouncer[T]) OnSettled(fn func(T)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callbacks = append(d.callbacks, fn)
}

// Value returns the settled value.
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Source returns the most recently fed value.
func (d *Debouncer[T]) Source() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.source
}

// Pending reports whether a settle is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending wait. Nothing fires after Stop returns and later
// calls to Feed are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// A newer Feed or Stop has superseded this timer.
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	if d.source == d.settled {
		d.mu.Unlock()
		return
	}
	d.settled = d.source
	value := d.settled
	callbacks := make([]func(T), len(d.callbacks))
	copy(callbacks, d.callbacks)
	d.mu.Unlock()

	for _, fn := range callbacks {
		fn(value)
	}
}
