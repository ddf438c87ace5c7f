// SPDX-License-Identifier: MIT

package dsm

import "math"

// Defaults of the complexity weights.
const (
	DefaultAlpha = 1.0
	DefaultBeta  = 1.0
)

const (
	panicAlphaInvalid = "dsm: WithAlpha: alpha must be finite"
	panicBetaInvalid  = "dsm: WithBeta: beta must be finite"
	panicGammaInvalid = "dsm: WithGamma: gamma must be finite"
)

// Option mutates Options.
type Option func(*Options)

// Options holds the complexity weights.
type Options struct {
	alpha    float64
	beta     float64
	gamma    float64
	gammaSet bool // false ⇒ γ = 1/n
}

// DefaultOptions returns α = 1, β = 1 and γ = 1/n.
func DefaultOptions() Options {
	return Options{alpha: DefaultAlpha, beta: DefaultBeta}
}

// WithAlpha sets the per-part weight of C1.
// Panics on NaN or ±Inf.
func WithAlpha(alpha float64) Option {
	if nonFinite(alpha) {
		panic(panicAlphaInvalid)
	}

	return func(o *Options) { o.alpha = alpha }
}

// WithBeta sets the per-connection weight of C2.
// Panics on NaN or ±Inf.
func WithBeta(beta float64) Option {
	if nonFinite(beta) {
		panic(panicBetaInvalid)
	}

	return func(o *Options) { o.beta = beta }
}

// WithGamma fixes the weight of C3 instead of the default 1/n.
// Panics on NaN or ±Inf.
func WithGamma(gamma float64) Option {
	if nonFinite(gamma) {
		panic(panicGammaInvalid)
	}

	return func(o *Options) { o.gamma, o.gammaSet = gamma, true }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// gammaFor resolves γ for an n×n matrix; 0 when n = 0.
func (o Options) gammaFor(n int) float64 {
	if o.gammaSet {
		return o.gamma
	}
	if n == 0 {
		return 0
	}

	return 1 / float64(n)
}

func nonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
