package csr

import "fmt"

// Concat merges independently built datasets into one, in argument order.
//
// Row offsets are running cumulative counts, so partitions parsed in
// isolation cannot simply be appended: each part's offsets are rebased by
// the total element count of the parts before it. This is the merge step
// for callers that pre-partition an input, parse partitions into local
// buffers, and combine afterwards.
//
// Stage 1 (Validate): at least one part, every part passes Validate, and
// comment/query-ID presence agrees across parts (all or none).
// Stage 2 (Prepare): size the merged buffers exactly.
// Stage 3 (Execute): copy data/indices/labels, rebase and append offsets.
// Stage 4 (Return): assemble the merged Dataset; when any part carries a
// fixed column count, the result is fixed to the maximum effective width
// (fixed or inferred) over the parts, so a narrow fixed count can never
// understate a wider part; when no part fixed one, the result stays
// inferred.
//
// The input datasets are read, not consumed; their storage is copied once.
// Complexity: O(total rows + total elements).
func Concat(parts ...*Dataset) (*Dataset, error) {
	// Stage 1: Validate
	if len(parts) == 0 {
		return nil, ErrNoDatasets
	}
	var totalRows, totalElems int
	withComments := parts[0].comments != nil
	withQIDs := parts[0].qids != nil
	for i, p := range parts {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("Concat: part %d: %w", i, err)
		}
		if (p.comments != nil) != withComments {
			return nil, fmt.Errorf("Concat: part %d comment presence differs: %w", i, ErrShape)
		}
		if (p.qids != nil) != withQIDs {
			return nil, fmt.Errorf("Concat: part %d query-ID presence differs: %w", i, ErrShape)
		}
		totalRows += p.NumRows()
		totalElems += p.NNZ()
	}
	if uint64(totalElems) > maxElements {
		return nil, fmt.Errorf("Concat: %d elements overflow uint32 offsets: %w", totalElems, ErrShape)
	}

	// Stage 2: Prepare
	out := &Dataset{
		data:    make([]float64, 0, totalElems),
		indices: make([]uint32, 0, totalElems),
		offsets: make([]uint32, 1, totalRows+1), // offsets[0] == 0
		labels:  make([]float64, 0, totalRows),
	}
	if withComments {
		out.comments = make([]string, 0, totalRows)
	}
	if withQIDs {
		out.qids = make([]float64, 0, totalRows)
	}

	// Stage 3: Execute
	var base uint32
	var width int
	anyFixed := false
	for _, p := range parts {
		out.data = append(out.data, p.data...)
		out.indices = append(out.indices, p.indices...)
		out.labels = append(out.labels, p.labels...)
		if withComments {
			out.comments = append(out.comments, p.comments...)
		}
		if withQIDs {
			out.qids = append(out.qids, p.qids...)
		}
		for _, off := range p.offsets[1:] {
			out.offsets = append(out.offsets, base+off)
		}
		base += uint32(p.NNZ())
		if p.cols > 0 {
			anyFixed = true
		}
		if _, w := p.Dims(); w > width {
			width = w
		}
	}

	// Stage 4: Return
	if anyFixed {
		out.cols = width
	}

	return out, nil
}
