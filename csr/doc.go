// Package csr holds labeled sparse rows in compressed-sparse-row form:
// four parallel, flat buffers plus optional per-row extras.
//
// What:
//
//   - Dataset bundles data, indices, row offsets and labels (plus optional
//     per-row comments and query IDs) and exposes them as read-only views.
//   - Builder accumulates rows append-only and finalizes into a Dataset,
//     moving the buffers instead of copying them.
//   - Take transfers buffer storage out of a Dataset exactly once, so a
//     caller (or a foreign runtime bridge) becomes the sole owner.
//   - Concat merges independently built datasets, rebasing row offsets by
//     each part's cumulative element count.
//
// Why:
//
//   - Text loaders feed millions of (index, value) pairs; a single growth
//     path with one final move keeps peak memory at one copy of the data.
//   - The single-owner handoff makes deallocation exactly-once by
//     construction: after Finish the builder holds nothing, after Take the
//     dataset holds nothing.
//
// Invariants (checked by Validate):
//
//   - len(indices) == len(data)
//   - len(offsets) == rows+1, offsets[0] == 0, non-decreasing,
//     offsets[rows] == len(data)
//   - len(labels) == rows; comments/query IDs, when present, == rows
//
// Errors:
//
//   - ErrShape: buffer lengths or offsets violate the invariants above.
//   - ErrReleased: the dataset's storage was already taken.
//   - ErrBuilderSpent: the builder was already finished.
//   - ErrNoRow: Append/SetComment/SetQueryID before any BeginRow.
//   - ErrNotEnabled: comment/query-ID write without the matching option.
//   - ErrNotFinite: NaN or ±Inf value at ingestion.
//   - ErrOutOfRange: row index outside [0, rows).
//   - ErrNoDatasets: Concat called with nothing to merge.
package csr
