// SPDX-License-Identifier: MIT
// Package cluster: functional options shared by the clustering entry points.

package cluster

import (
	"math"

	"github.com/rs/zerolog"
)

// Documented defaults, applied by gatherOptions before user overrides.
const (
	// DefaultApproxEpsilon is the approximation accuracy used by
	// LocalClusterACL when WithEpsilon is not given. Smaller values push
	// more residual mass and grow the explored neighbourhood.
	DefaultApproxEpsilon = 0.001

	// DefaultKMeansSeed seeds the k-means initialisation in
	// SpectralCluster when WithSeed is not given.
	DefaultKMeansSeed int64 = 1

	// DefaultKMeansMaxIter caps the Lloyd iterations in SpectralCluster
	// when WithKMeansMaxIter is not given.
	DefaultKMeansMaxIter = 100
)

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid = "cluster: WithEpsilon: eps must be positive and finite"
	panicMaxIterInvalid = "cluster: WithKMeansMaxIter: maxIter must be positive"
)

// Option mutates internal options. Safe to apply repeatedly; last writer
// wins. Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via
// gatherOptions; the zero value is never used directly.
type Options struct {
	eps           float64        // > 0; DefaultApproxEpsilon
	seed          int64          // DefaultKMeansSeed
	kmeansMaxIter int            // > 0; DefaultKMeansMaxIter
	logger        zerolog.Logger // zerolog.Nop() unless WithLogger
}

// WithEpsilon overrides the approximation accuracy used by
// LocalClusterACL. Panics with a stable message when eps is not a positive
// finite number.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSeed fixes the random seed of the k-means initialisation in
// SpectralCluster. Any value is legal; equal seeds give equal labellings.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithKMeansMaxIter overrides the Lloyd iteration cap in SpectralCluster.
// Panics with a stable message when maxIter is not positive.
func WithKMeansMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.kmeansMaxIter = maxIter }
}

// WithLogger attaches a zerolog logger for progress and diagnostics. The
// default is zerolog.Nop(), so logging costs nothing unless requested.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// gatherOptions applies user overrides on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:           DefaultApproxEpsilon,
		seed:          DefaultKMeansSeed,
		kmeansMaxIter: DefaultKMeansMaxIter,
		logger:        zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
