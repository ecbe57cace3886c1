package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/svmio/csr"
)

func mustDataset(t *testing.T, data []float64, indices, offsets []uint32, labels []float64, opts ...csr.DatasetOption) *csr.Dataset {
	t.Helper()
	ds, err := csr.NewDataset(data, indices, offsets, labels, opts...)
	require.NoError(t, err)

	return ds
}

// TestConcat_RebasesOffsets verifies that each part's row offsets are
// shifted by the cumulative element count of the parts before it.
func TestConcat_RebasesOffsets(t *testing.T) {
	a := mustDataset(t, []float64{1, 2}, []uint32{0, 1}, []uint32{0, 2}, []float64{1})
	b := mustDataset(t, []float64{3}, []uint32{5}, []uint32{0, 0, 1}, []float64{-1, 1})

	out, err := csr.Concat(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, out.Data())
	assert.Equal(t, []uint32{0, 1, 5}, out.Indices())
	assert.Equal(t, []uint32{0, 2, 2, 3}, out.RowOffsets())
	assert.Equal(t, []float64{1, -1, 1}, out.Labels())
	assert.NoError(t, out.Validate())
}

// TestConcat_EmptyParts checks zero-row parts merge cleanly.
func TestConcat_EmptyParts(t *testing.T) {
	empty := mustDataset(t, nil, nil, []uint32{0}, nil)
	a := mustDataset(t, []float64{1}, []uint32{0}, []uint32{0, 1}, []float64{1})

	out, err := csr.Concat(empty, a, empty)
	require.NoError(t, err)
	assert.Equal(t, 1, out.NumRows())
	assert.Equal(t, []uint32{0, 1}, out.RowOffsets())
}

// TestConcat_NoParts ensures an empty argument list is rejected.
func TestConcat_NoParts(t *testing.T) {
	_, err := csr.Concat()
	assert.ErrorIs(t, err, csr.ErrNoDatasets)
}

// TestConcat_PresenceMismatch ensures comment/qid presence must agree
// across parts.
func TestConcat_PresenceMismatch(t *testing.T) {
	plain := mustDataset(t, []float64{1}, []uint32{0}, []uint32{0, 1}, []float64{1})
	commented := mustDataset(t, []float64{1}, []uint32{0}, []uint32{0, 1}, []float64{1},
		csr.WithRowComments([]string{"c"}))

	_, err := csr.Concat(plain, commented)
	assert.ErrorIs(t, err, csr.ErrShape)
}

// TestConcat_CarriesExtrasAndWidth verifies comments, query IDs and the
// widest fixed column count survive the merge.
func TestConcat_CarriesExtrasAndWidth(t *testing.T) {
	a := mustDataset(t, []float64{1}, []uint32{0}, []uint32{0, 1}, []float64{1},
		csr.WithRowComments([]string{"ca"}), csr.WithRowQueryIDs([]float64{1}), csr.WithColumnCount(4))
	b := mustDataset(t, []float64{2}, []uint32{1}, []uint32{0, 1}, []float64{2},
		csr.WithRowComments([]string{"cb"}), csr.WithRowQueryIDs([]float64{2}), csr.WithColumnCount(8))

	out, err := csr.Concat(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"ca", "cb"}, out.Comments())
	assert.Equal(t, []float64{1, 2}, out.QueryIDs())
	_, cols := out.Dims()
	assert.Equal(t, 8, cols)
}

// TestConcat_MixedFixedAndInferredWidth: a part's narrow fixed column
// count never understates another part's inferred width — the merge takes
// the maximum effective width.
func TestConcat_MixedFixedAndInferredWidth(t *testing.T) {
	fixed := mustDataset(t, []float64{1}, []uint32{0}, []uint32{0, 1}, []float64{1},
		csr.WithColumnCount(4))
	inferred := mustDataset(t, []float64{2}, []uint32{9}, []uint32{0, 1}, []float64{2})

	out, err := csr.Concat(fixed, inferred)
	require.NoError(t, err)
	_, cols := out.Dims()
	assert.Equal(t, 10, cols, "stored index 9 needs 10 columns")
	assert.NoError(t, out.Validate())
}

// TestConcat_AllInferredWidth: with no fixed counts the merged width is
// inferred across every part's indices.
func TestConcat_AllInferredWidth(t *testing.T) {
	a := mustDataset(t, []float64{1}, []uint32{1}, []uint32{0, 1}, []float64{1})
	b := mustDataset(t, []float64{2}, []uint32{9}, []uint32{0, 1}, []float64{2})

	out, err := csr.Concat(a, b)
	require.NoError(t, err)
	_, cols := out.Dims()
	assert.Equal(t, 10, cols)
}
