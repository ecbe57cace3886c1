// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
// This file defines ONLY package-level sentinel errors. All public
// operations return these sentinels and tests check them via errors.Is.
// No operation panics on caller-triggered conditions; panics are reserved
// for programmer errors in option constructors.

package csr

import "errors"

var (
	// ErrShape is returned when buffer lengths or row offsets violate the
	// CSR invariants (Validate documents the exact set).
	ErrShape = errors.New("csr: buffer shape mismatch")

	// ErrReleased indicates the dataset's storage was already transferred
	// out by Take; the dataset is an empty husk from that point on.
	ErrReleased = errors.New("csr: dataset storage already released")

	// ErrBuilderSpent indicates the builder already ran Finish and moved
	// its buffers away. Builders are single-use.
	ErrBuilderSpent = errors.New("csr: builder already finished")

	// ErrNoRow indicates a per-row operation (Append, SetComment,
	// SetQueryID) was called before the first BeginRow.
	ErrNoRow = errors.New("csr: no row begun")

	// ErrNotEnabled indicates a comment or query-ID write on a builder
	// constructed without the matching option.
	ErrNotEnabled = errors.New("csr: per-row buffer not enabled")

	// ErrNotFinite signals a NaN or ±Inf label or value at ingestion.
	ErrNotFinite = errors.New("csr: NaN or Inf encountered")

	// ErrOutOfRange indicates a row index outside valid bounds.
	ErrOutOfRange = errors.New("csr: row index out of range")

	// ErrNoDatasets indicates Concat received zero parts.
	ErrNoDatasets = errors.New("csr: nothing to concatenate")
)
