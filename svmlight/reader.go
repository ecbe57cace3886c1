package svmlight

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/svmio/csr"
)

// gzipSuffix triggers transparent (de)compression on file entry points.
const gzipSuffix = ".gz"

// LoadFile parses the svmlight/libsvm file at path into a csr.Dataset.
//
// The whole file is parsed in one streaming pass; the first syntax error
// aborts the load and no dataset is returned. Open/read failures wrap the
// underlying os error. Files ending in ".gz" are decompressed on the fly.
// WithBufferSize tunes the read buffer (a performance hint only).
func LoadFile(path string, opts ...Option) (*csr.Dataset, error) {
	o := gatherOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, o.bufSize)
	feed := br
	if strings.HasSuffix(path, gzipSuffix) {
		zr, zerr := gzip.NewReader(br)
		if zerr != nil {
			return nil, fmt.Errorf("LoadFile: %w", zerr)
		}
		defer zr.Close()
		feed = bufio.NewReader(zr)
	}

	ds, err := loadLines(feed, &o)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}

	return ds, nil
}

// LoadString parses in-memory content with semantics identical to
// LoadFile: same grammar, same error taxonomy, same options (the buffer
// size hint is simply irrelevant).
func LoadString(content string, opts ...Option) (*csr.Dataset, error) {
	o := gatherOptions(opts...)
	ds, err := loadLines(bufio.NewReader(strings.NewReader(content)), &o)
	if err != nil {
		return nil, fmt.Errorf("LoadString: %w", err)
	}

	return ds, nil
}

// LoadFiles loads several files, one goroutine per file. Loads share
// nothing — each owns its buffers from first byte to handoff — so they
// run fully independently; the first error (by path order) aborts the
// batch and discards every dataset.
//
// The returned datasets agree on a common column count: the explicit
// WithFeatureCount when given, otherwise the maximum inferred width over
// the batch — the multi-file contract of the upstream loaders, where
// slices of one corpus must share a feature space.
func LoadFiles(paths []string, opts ...Option) ([]*csr.Dataset, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	sets := make([]*csr.Dataset, len(paths))
	errs := make([]error, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sets[i], errs[i] = LoadFile(path, opts...)
		}(i, path)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("LoadFiles: %w", err)
		}
	}

	width := 0
	for _, ds := range sets {
		if _, cols := ds.Dims(); cols > width {
			width = cols
		}
	}
	for _, ds := range sets {
		if err := ds.SetColumns(width); err != nil {
			return nil, fmt.Errorf("LoadFiles: %w", err)
		}
	}

	return sets, nil
}

// loadLines drives the line parser over r and finalizes the builder.
//
// Line splitting matches C++ getline: a final fragment without a trailing
// newline is still a line, a trailing newline does not open an empty one,
// and a '\r' before the newline is stripped (CRLF corpora).
func loadLines(r *bufio.Reader, o *loadOptions) (*csr.Dataset, error) {
	var bopts []csr.BuilderOption
	if o.comments {
		bopts = append(bopts, csr.WithComments())
	}
	if o.queryIDs {
		bopts = append(bopts, csr.WithQueryIDs())
	}
	if o.features > 0 {
		bopts = append(bopts, csr.WithFeatureCount(o.features))
	}
	b := csr.NewBuilder(bopts...)

	lineno := 0
	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read: %w", err)
		}
		if len(line) == 0 && err == io.EOF {
			break
		}
		lineno++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if perr := parseLine(line, lineno, b, o); perr != nil {
			return nil, perr
		}
		if err == io.EOF {
			break
		}
	}

	ds, err := b.Finish()
	if err != nil {
		return nil, err
	}
	if err = rebaseIndices(ds, o.base); err != nil {
		return nil, err
	}

	return ds, nil
}

// rebaseIndices applies the post-parse index-base policy in place.
// BaseAuto decrements only when every stored index is > 0, the historical
// heuristic for "this corpus counts from one".
func rebaseIndices(ds *csr.Dataset, base IndexBase) error {
	if base == BaseZero {
		return nil
	}
	ind := ds.Indices()
	if len(ind) == 0 {
		return nil
	}
	if base == BaseAuto {
		min := ind[0]
		for _, idx := range ind[1:] {
			if idx < min {
				min = idx
			}
		}
		if min == 0 {
			return nil
		}
	}
	for i, idx := range ind {
		if idx == 0 {
			return fmt.Errorf("rebase: index 0 at element %d: %w", i, ErrIndexUnderflow)
		}
		ind[i] = idx - 1
	}

	return nil
}
