// SPDX-License-Identifier: MIT
// Package csr: single-transfer ownership handoff.
// A Dataset owns its buffers exclusively; Take moves that storage out into
// a Buffers value exactly once. The move leaves the dataset released (all
// fields nil), so the Buffers value is the sole remaining owner and the
// garbage collector reclaims the storage exactly once, whenever the last
// owner drops it. A second Take fails with ErrReleased rather than
// aliasing the storage.
//
// Host-runtime bridges (exposing the buffers to a foreign memory-managed
// runtime) should Take once and register a single release callback over
// the Buffers value with the host's collector.

package csr

// Buffers is the moved-out storage of a Dataset. Comments and QueryIDs are
// nil when the corresponding capture was never enabled.
type Buffers struct {
	Data       []float64
	Indices    []uint32
	RowOffsets []uint32
	Labels     []float64
	Comments   []string
	QueryIDs   []float64
}

// Take moves the dataset's storage into a Buffers value and marks the
// dataset released. After Take, accessors return nil views, NumRows
// returns 0, and Validate (and any second Take) returns ErrReleased.
// Complexity: O(1) — pointers move, elements do not.
func (d *Dataset) Take() (Buffers, error) {
	if d.released {
		return Buffers{}, ErrReleased
	}
	b := Buffers{
		Data:       d.data,
		Indices:    d.indices,
		RowOffsets: d.offsets,
		Labels:     d.labels,
		Comments:   d.comments,
		QueryIDs:   d.qids,
	}
	d.data, d.indices, d.offsets, d.labels, d.comments, d.qids = nil, nil, nil, nil, nil, nil
	d.released = true

	return b, nil
}
