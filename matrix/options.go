// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric comparison policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - Exact equality (Equal) takes no options: it is bit-for-bit on values.
//   - Tolerance-based equality (EqualApprox) consumes ...Option. Anything that
//     went through math.Sin/math.Cos should be compared with it.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the absolute per-element tolerance used by EqualApprox.
const DefaultEpsilon = 1e-9

// Panic messages for invalid option parameters (stable, tested).
const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon reports the effective absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the absolute tolerance eps used by EqualApprox.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts on top of the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters in order; later setters win.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		if set != nil { // tolerate nil options in variadic lists
			set(&o)
		}
	}

	return o
}
