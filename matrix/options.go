// SPDX-License-Identifier: MIT

// Package matrix: numeric constants and functional configuration.
// This file defines:
//   - Epsilon, the single fixed tolerance used by Equal and Inverse,
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Epsilon is NOT an option; equality and singularity checks
//     depend on the exact 1e-6 threshold and strict-less-than comparison.
package matrix

// Epsilon is the absolute tolerance of Equal (|a-b| < Epsilon) and the
// singularity threshold of Inverse (|det| < Epsilon ⇒ ErrSingular).
const Epsilon = 1e-6

// DefaultValidateNaNInf toggles finite-only enforcement in (*Dense).Set.
// Off by default: NaN and ±Inf are ordinary IEEE-754 values for every kernel.
const DefaultValidateNaNInf = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept `...Option` and resolve them
// via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf makes Set reject NaN and ±Inf with ErrNaNInf.
// Kernel outputs are unaffected: they are built internally and may carry
// non-finite values produced by IEEE arithmetic.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default permissive policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies user options over the defaults in order (last wins).
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
