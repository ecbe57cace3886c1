// SPDX-License-Identifier: MIT
// Package csr: append-only accumulation of CSR buffers.
// Builder is the single growth path for a Dataset: rows begin with
// BeginRow, pairs arrive through Append, Finish closes the offsets and
// moves every buffer into the Dataset in O(1). Builders are single-use;
// after Finish they hold no storage and every method fails with
// ErrBuilderSpent.

package csr

import (
	"fmt"
	"math"
)

// maxElements caps the flat buffers: offsets are uint32, so the element
// count must stay addressable by one.
const maxElements = math.MaxUint32

// Builder accumulates labeled sparse rows into growing CSR buffers.
//
// Memory discipline: buffers are append-only, never mutated in place, and
// move (not copy) into the Dataset on Finish. An exhausted heap surfaces
// as a runtime abort during append — Go offers no recoverable allocation
// failure — in which case no partial buffers survive the unwound call.
type Builder struct {
	data     []float64
	indices  []uint32
	offsets  []uint32
	labels   []float64
	comments []string
	qids     []float64

	withComments bool
	withQIDs     bool
	cols         int
	spent        bool
}

// BuilderOption customizes a Builder at construction time.
type BuilderOption func(*Builder)

// WithComments enables the per-row comment buffer.
func WithComments() BuilderOption {
	return func(b *Builder) { b.withComments = true }
}

// WithQueryIDs enables the per-row query-ID buffer.
func WithQueryIDs() BuilderOption {
	return func(b *Builder) { b.withQIDs = true }
}

// WithFeatureCount fixes the finished dataset's column count instead of
// inferring it. Panics on negative n (programmer error).
func WithFeatureCount(n int) BuilderOption {
	if n < 0 {
		panic("csr: WithFeatureCount: n must be non-negative")
	}

	return func(b *Builder) { b.cols = n }
}

// WithCapacityHint preallocates for an expected number of rows and stored
// elements. Purely a performance hint; zero values mean "unknown".
// Panics on negative hints (programmer error).
func WithCapacityHint(rows, elements int) BuilderOption {
	if rows < 0 || elements < 0 {
		panic("csr: WithCapacityHint: hints must be non-negative")
	}

	return func(b *Builder) {
		b.labels = make([]float64, 0, rows)
		b.offsets = make([]uint32, 0, rows+1)
		b.data = make([]float64, 0, elements)
		b.indices = make([]uint32, 0, elements)
	}
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NumRows returns the number of rows begun so far.
func (b *Builder) NumRows() int { return len(b.labels) }

// BeginRow starts a new row: the label is recorded and the current element
// count becomes the row's start offset. Comment and query-ID slots (when
// enabled) start at their zero values for the new row.
// Returns ErrBuilderSpent after Finish, ErrNotFinite for a NaN/Inf label.
func (b *Builder) BeginRow(label float64) error {
	if b.spent {
		return ErrBuilderSpent
	}
	if math.IsNaN(label) || math.IsInf(label, 0) {
		return fmt.Errorf("BeginRow: label %v: %w", label, ErrNotFinite)
	}
	b.labels = append(b.labels, label)
	b.offsets = append(b.offsets, uint32(len(b.data)))
	if b.withComments {
		b.comments = append(b.comments, "")
	}
	if b.withQIDs {
		b.qids = append(b.qids, 0)
	}

	return nil
}

// Append adds one (index, value) pair to the current row, in encounter
// order — no deduplication, no sorting, no range check against a column
// count (consumers needing sorted-unique CSR must post-process).
// Returns ErrBuilderSpent after Finish, ErrNoRow before BeginRow,
// ErrNotFinite for a NaN/Inf value, ErrShape on uint32 element overflow.
func (b *Builder) Append(index uint32, value float64) error {
	if b.spent {
		return ErrBuilderSpent
	}
	if len(b.labels) == 0 {
		return fmt.Errorf("Append: %w", ErrNoRow)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("Append: value %v: %w", value, ErrNotFinite)
	}
	if uint64(len(b.data)) >= maxElements {
		return fmt.Errorf("Append: element count overflows uint32 offsets: %w", ErrShape)
	}
	b.indices = append(b.indices, index)
	b.data = append(b.data, value)

	return nil
}

// SetComment records the current row's trailing comment.
// Returns ErrNotEnabled without WithComments, ErrNoRow before BeginRow.
func (b *Builder) SetComment(comment string) error {
	if b.spent {
		return ErrBuilderSpent
	}
	if !b.withComments {
		return fmt.Errorf("SetComment: %w", ErrNotEnabled)
	}
	if len(b.comments) == 0 {
		return fmt.Errorf("SetComment: %w", ErrNoRow)
	}
	b.comments[len(b.comments)-1] = comment

	return nil
}

// SetQueryID records the current row's qid value.
// Returns ErrNotEnabled without WithQueryIDs, ErrNoRow before BeginRow.
func (b *Builder) SetQueryID(qid float64) error {
	if b.spent {
		return ErrBuilderSpent
	}
	if !b.withQIDs {
		return fmt.Errorf("SetQueryID: %w", ErrNotEnabled)
	}
	if len(b.qids) == 0 {
		return fmt.Errorf("SetQueryID: %w", ErrNoRow)
	}
	b.qids[len(b.qids)-1] = qid

	return nil
}

// Finish closes the CSR structure and moves every buffer into a Dataset.
//
// Stage 1 (Validate): reject a spent builder.
// Stage 2 (Close): append the final offset == current element count.
// Stage 3 (Move): transfer buffers into the Dataset, nil the builder's
// references, mark it spent. The dataset is the sole owner from here.
//
// An empty builder finishes into the legal zero-row dataset
// (offsets == [0]). Complexity: O(1).
func (b *Builder) Finish() (*Dataset, error) {
	if b.spent {
		return nil, ErrBuilderSpent
	}
	b.offsets = append(b.offsets, uint32(len(b.data)))

	d := &Dataset{
		data:     b.data,
		indices:  b.indices,
		offsets:  b.offsets,
		labels:   b.labels,
		comments: b.comments,
		qids:     b.qids,
		cols:     b.cols,
	}
	if b.withComments && d.comments == nil {
		d.comments = []string{} // enabled but zero rows: present, empty
	}
	if b.withQIDs && d.qids == nil {
		d.qids = []float64{}
	}
	b.data, b.indices, b.offsets, b.labels, b.comments, b.qids = nil, nil, nil, nil, nil, nil
	b.spent = true

	return d, nil
}
