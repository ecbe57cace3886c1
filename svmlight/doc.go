// Package svmlight parses and writes the svmlight / libsvm text format,
// the line-oriented exchange format for labeled sparse feature vectors:
//
//	<label> [qid:<number>] <index>:<value> <index>:<value> ... [# <comment>]
//
// What:
//
//   - LoadFile / LoadString turn text into a csr.Dataset in one streaming
//     pass, with strict per-line validation and no partial results.
//   - LoadFiles loads several files independently (one goroutine each) and
//     settles them on a common feature count.
//   - Dump / DumpFile write a csr.Dataset back out row by row, with a
//     0-based or 1-based index convention.
//   - Files ending in ".gz" are read and written through gzip transparently.
//
// Why:
//
//   - The format is the lingua franca of svmlight, libsvm and their many
//     descendants; corpora are large, so the loader streams lines into
//     flat CSR buffers and never holds a second copy of the data.
//
// Grammar notes:
//
//   - Lines whose first non-blank character is '#' are whole-line comments
//     and produce no row. Empty lines are a hard error.
//   - With WithComments, text after a mid-line '#' becomes the row's
//     comment (one leading space stripped); "no '#'" and "'#' followed by
//     nothing" both record the empty string, as upstream tools do.
//   - A token right after the label may be a qid marker or the first real
//     feature pair; the qid interpretation is tried first and the feature
//     interpretation second — an ambiguity inherited from the format.
//   - Indices are not checked for order, uniqueness or bounds; the parser
//     reproduces the file, index base conventions included (WithIndexBase
//     rebases after the fact, never inside the parser).
//
// Errors:
//
//   - ErrEmptyLine, ErrInvalidLabel, ErrMalformedToken, ErrMalformedFeature:
//     syntax failures, each wrapped in a *ParseError carrying the 1-based
//     line number and the raw line. The first failure aborts the load.
//   - I/O failures wrap the underlying os / gzip error.
//   - Dump-side shape violations surface as csr.ErrShape.
package svmlight
