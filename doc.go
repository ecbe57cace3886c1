// Package svmio reads and writes labeled sparse feature vectors in the
// svmlight / libsvm text format, materializing them as compressed
// sparse row (CSR) buffers without intermediate copies.
//
// 🚀 What is svmio?
//
//	A small, strict, allocation-conscious codec split in two layers:
//		• csr/      — the CSR container: parallel data/indices/offsets/labels
//		  buffers, an append-only Builder, single-transfer ownership handoff,
//		  and offset-rebasing concatenation of independently parsed parts
//		• svmlight/ — the text codec: line tokenizer, row parser, file and
//		  in-memory loaders, and the symmetric row-by-row serializer
//
// ✨ Why choose svmio?
//
//   - Strict by default – one malformed line fails the whole load, with
//     the 1-based line number and raw text attached to the error
//   - Zero-copy discipline – buffers grow once, move once; views are
//     views, and Take() transfers storage out exactly once
//   - Faithful to the format – qid markers, trailing # comments,
//     0/1-based index conventions, gzip-compressed corpora
//   - Pure Go – no cgo, typed sentinel errors, functional options
//
// Quick example:
//
//	ds, err := svmlight.LoadString("+1 1:0.5 4:2\n-1 2:1\n")
//	if err != nil { ... }
//	rows, cols := ds.Dims() // 2, 5
//
// Dive into csr and svmlight package docs for the full contracts.
package svmio
