// SPDX-License-Identifier: MIT
// Package solve: functional options shared by the iterative solvers.

package solve

import "github.com/rs/zerolog"

// DefaultMaxIterations caps the rounds of the iterative methods when
// WithMaxIterations is not given.
const DefaultMaxIterations = 1000

// progressLogInterval spaces the Debug progress events of the iterative
// methods.
const progressLogInterval = 100

// Internal panic messages (no magic strings).
const panicMaxIterationsInvalid = "solve: WithMaxIterations: maxIterations must be positive"

// Option mutates internal options. Safe to apply repeatedly; last writer
// wins. Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxIterations int            // > 0; DefaultMaxIterations
	logger        zerolog.Logger // zerolog.Nop() unless WithLogger
}

// WithMaxIterations overrides the iteration cap of the iterative methods.
// Panics with a stable message when maxIterations is not positive.
func WithMaxIterations(maxIterations int) Option {
	if maxIterations <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = maxIterations }
}

// WithLogger attaches a zerolog logger for progress and diagnostics. The
// default is zerolog.Nop(), so logging costs nothing unless requested.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// gatherOptions applies user overrides on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIterations: DefaultMaxIterations,
		logger:        zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
