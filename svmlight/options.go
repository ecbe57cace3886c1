// SPDX-License-Identifier: MIT
// Package svmlight: functional configuration for the load entry points.
// This file defines:
//   - Option / loadOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no environment reads.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package svmlight

// IndexBase selects how stored feature indices are treated after parsing.
// The parser itself never rebases; rebasing is a post-parse pass over the
// finished buffers, mirroring what writer-side conventions require.
type IndexBase int

const (
	// BaseZero trusts the input as already zero-based: no rebase.
	BaseZero IndexBase = iota

	// BaseOne treats the input as one-based: every index is decremented.
	// A stored index 0 under BaseOne fails with ErrIndexUnderflow.
	BaseOne

	// BaseAuto decrements only when the smallest stored index is > 0,
	// i.e. when the corpus is plausibly one-based. A dataset with no
	// features is left untouched.
	BaseAuto
)

const (
	// DefaultBufferSize is the read-buffer size for file loads: 40 MiB,
	// matching the long-standing default of the upstream loaders.
	DefaultBufferSize = 40 << 20

	// MinBufferSize floors WithBufferSize at 1 MiB. The buffer is purely
	// an I/O performance hint; smaller requests are clamped up, never
	// rejected, and never limit line length.
	MinBufferSize = 1 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBufferSizeInvalid   = "svmlight: WithBufferSize: n must be positive"
	panicIndexBaseInvalid    = "svmlight: WithIndexBase: unknown IndexBase"
	panicFeatureCountInvalid = "svmlight: WithFeatureCount: n must be non-negative"
)

// Option mutates internal load options. Safe to apply repeatedly.
type Option func(*loadOptions)

// loadOptions stores the effective configuration after applying Option
// setters. Unexported to prevent external mutation; the Load entry points
// accept ...Option and resolve them via gatherOptions.
type loadOptions struct {
	comments bool      // capture trailing '#' comments per row
	queryIDs bool      // capture qid:<number> markers per row
	bufSize  int       // file read-buffer size, >= MinBufferSize
	base     IndexBase // post-parse rebase policy
	features int       // fixed column count; 0 ⇒ infer
}

// WithComments enables trailing-comment capture. Without it a mid-line
// '#' is ordinary token text and will fail feature parsing, which is the
// strict upstream behavior.
func WithComments() Option {
	return func(o *loadOptions) { o.comments = true }
}

// WithQueryIDs enables qid capture into the dataset's query-ID buffer.
// qid markers are validated (and skipped over) either way; this option
// only controls whether their values are kept.
func WithQueryIDs() Option {
	return func(o *loadOptions) { o.queryIDs = true }
}

// WithBufferSize sets the file read-buffer size in bytes. Values below
// MinBufferSize are clamped up to it. Panics on non-positive n
// (programmer error).
func WithBufferSize(n int) Option {
	if n <= 0 {
		panic(panicBufferSizeInvalid)
	}
	if n < MinBufferSize {
		n = MinBufferSize
	}

	return func(o *loadOptions) { o.bufSize = n }
}

// WithIndexBase sets the post-parse rebase policy (default BaseZero).
// Panics on an unknown IndexBase value (programmer error).
func WithIndexBase(b IndexBase) Option {
	if b != BaseZero && b != BaseOne && b != BaseAuto {
		panic(panicIndexBaseInvalid)
	}

	return func(o *loadOptions) { o.base = b }
}

// WithFeatureCount fixes the loaded dataset's column count instead of
// inferring it from the largest stored index. Useful when several slices
// of one corpus must agree on a shape. Panics on negative n.
func WithFeatureCount(n int) Option {
	if n < 0 {
		panic(panicFeatureCountInvalid)
	}

	return func(o *loadOptions) { o.features = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) loadOptions {
	o := loadOptions{bufSize: DefaultBufferSize, base: BaseZero}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
