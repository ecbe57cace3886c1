package csr

import "fmt"

// Dataset is a finalized compressed-sparse-row collection of labeled rows.
//
// The storage is four parallel flat buffers (data, indices, offsets,
// labels) plus optional per-row comments and query IDs. Row i occupies the
// half-open range [offsets[i], offsets[i+1]) of data/indices; two equal
// consecutive offsets denote a legal empty row (label, no features).
//
// A Dataset is produced by Builder.Finish, by NewDataset, or by Concat,
// and owns its storage exclusively until Take moves it out. Accessors
// return views of the backing arrays, not copies; callers that mutate a
// view mutate the dataset.
type Dataset struct {
	data     []float64
	indices  []uint32
	offsets  []uint32
	labels   []float64
	comments []string  // nil when comment capture was not enabled
	qids     []float64 // nil when query-ID capture was not enabled
	cols     int       // 0 ⇒ infer from indices on demand
	released bool
}

// DatasetOption customizes NewDataset with optional per-row buffers or an
// explicit column count.
type DatasetOption func(*Dataset)

// WithRowComments attaches a per-row comment buffer (len must equal rows).
func WithRowComments(comments []string) DatasetOption {
	return func(d *Dataset) { d.comments = comments }
}

// WithRowQueryIDs attaches a per-row query-ID buffer (len must equal rows).
func WithRowQueryIDs(qids []float64) DatasetOption {
	return func(d *Dataset) { d.qids = qids }
}

// WithColumnCount fixes the column count instead of inferring it from the
// stored indices. Panics on negative n (programmer error).
func WithColumnCount(n int) DatasetOption {
	if n < 0 {
		panic("csr: WithColumnCount: n must be non-negative")
	}

	return func(d *Dataset) { d.cols = n }
}

// NewDataset assembles a Dataset from caller-provided buffers without
// copying and validates the CSR invariants. The dataset takes ownership of
// the slices; the caller must not retain them.
func NewDataset(data []float64, indices, offsets []uint32, labels []float64, opts ...DatasetOption) (*Dataset, error) {
	d := &Dataset{data: data, indices: indices, offsets: offsets, labels: labels}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("NewDataset: %w", err)
	}

	return d, nil
}

// NumRows returns the number of rows (0 after release).
func (d *Dataset) NumRows() int {
	if d.released || len(d.offsets) == 0 {
		return 0
	}

	return len(d.offsets) - 1
}

// NNZ returns the number of stored (index, value) pairs.
func (d *Dataset) NNZ() int { return len(d.data) }

// Dims returns (rows, cols). When no column count was fixed, cols is
// inferred as max stored index + 1 (0 for a dataset with no features).
// Complexity: O(1) with a fixed count, O(nnz) when inferring.
func (d *Dataset) Dims() (rows, cols int) {
	rows = d.NumRows()
	if d.cols > 0 {
		return rows, d.cols
	}
	var max uint32
	var seen bool
	for _, idx := range d.indices {
		if idx >= max {
			max = idx
			seen = true
		}
	}
	if seen {
		cols = int(max) + 1
	}

	return rows, cols
}

// SetColumns overrides the column count (0 restores inference).
// Returns ErrReleased after Take; ErrOutOfRange for negative n or an n
// smaller than an already stored index requires.
func (d *Dataset) SetColumns(n int) error {
	if d.released {
		return ErrReleased
	}
	if n < 0 {
		return fmt.Errorf("SetColumns: n=%d: %w", n, ErrOutOfRange)
	}
	if n > 0 {
		for _, idx := range d.indices {
			if int(idx) >= n {
				return fmt.Errorf("SetColumns: stored index %d exceeds n=%d: %w", idx, n, ErrOutOfRange)
			}
		}
	}
	d.cols = n

	return nil
}

// Data returns the flat feature-value buffer (a view, not a copy).
func (d *Dataset) Data() []float64 { return d.data }

// Indices returns the flat feature-index buffer (a view, not a copy).
func (d *Dataset) Indices() []uint32 { return d.indices }

// RowOffsets returns the rows+1 offset buffer (a view, not a copy).
func (d *Dataset) RowOffsets() []uint32 { return d.offsets }

// Labels returns the per-row label buffer (a view, not a copy).
func (d *Dataset) Labels() []float64 { return d.labels }

// Comments returns the per-row comment buffer, or nil when comment capture
// was not enabled. An empty string means "no comment or an explicitly
// empty one" — the distinction is not recorded, matching the text format.
func (d *Dataset) Comments() []string { return d.comments }

// QueryIDs returns the per-row qid buffer, or nil when not enabled.
func (d *Dataset) QueryIDs() []float64 { return d.qids }

// Row returns views of row i's indices and values plus its label.
// Returns ErrReleased after Take, ErrOutOfRange for a bad i.
func (d *Dataset) Row(i int) (indices []uint32, values []float64, label float64, err error) {
	if d.released {
		return nil, nil, 0, ErrReleased
	}
	if i < 0 || i >= d.NumRows() {
		return nil, nil, 0, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	lo, hi := d.offsets[i], d.offsets[i+1]

	return d.indices[lo:hi], d.data[lo:hi], d.labels[i], nil
}

// Validate checks every CSR invariant and returns ErrShape (wrapped with
// detail) on the first violation. Complexity: O(rows).
func (d *Dataset) Validate() error {
	if d.released {
		return ErrReleased
	}
	if len(d.offsets) == 0 {
		return fmt.Errorf("Validate: missing row offsets: %w", ErrShape)
	}
	if d.offsets[0] != 0 {
		return fmt.Errorf("Validate: offsets[0]=%d, want 0: %w", d.offsets[0], ErrShape)
	}
	rows := len(d.offsets) - 1
	for i := 1; i <= rows; i++ {
		if d.offsets[i] < d.offsets[i-1] {
			return fmt.Errorf("Validate: offsets decrease at %d (%d < %d): %w",
				i, d.offsets[i], d.offsets[i-1], ErrShape)
		}
	}
	if int(d.offsets[rows]) != len(d.data) {
		return fmt.Errorf("Validate: final offset %d != %d elements: %w",
			d.offsets[rows], len(d.data), ErrShape)
	}
	if len(d.indices) != len(d.data) {
		return fmt.Errorf("Validate: %d indices vs %d values: %w",
			len(d.indices), len(d.data), ErrShape)
	}
	if len(d.labels) != rows {
		return fmt.Errorf("Validate: %d labels vs %d rows: %w", len(d.labels), rows, ErrShape)
	}
	if d.comments != nil && len(d.comments) != rows {
		return fmt.Errorf("Validate: %d comments vs %d rows: %w", len(d.comments), rows, ErrShape)
	}
	if d.qids != nil && len(d.qids) != rows {
		return fmt.Errorf("Validate: %d query IDs vs %d rows: %w", len(d.qids), rows, ErrShape)
	}

	return nil
}
