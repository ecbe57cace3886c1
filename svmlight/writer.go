package svmlight

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/svmio/csr"
)

// DumpOption customizes serialization.
type DumpOption func(*dumpOptions)

type dumpOptions struct {
	zeroBased bool
}

// WithZeroBased selects the written index base. true (the default) writes
// indices exactly as stored; false adds one to every index, the
// convention of the original svmlight tooling. The dataset itself is
// never modified — this is purely a writer-side transform.
func WithZeroBased(zero bool) DumpOption {
	return func(o *dumpOptions) { o.zeroBased = zero }
}

// Dump serializes ds to w, one row per line, in a single forward pass:
//
//	<label> [qid:<number>] <index>:<value> ... [# <comment>]
//
// Rows carry their qid marker when the dataset holds query IDs and their
// trailing comment when it holds comments. Labels and values are written
// in the shortest decimal form that round-trips through float64.
//
// The dataset's shape is validated first; a violation surfaces as
// csr.ErrShape and nothing is written. A mid-stream write failure leaves
// w partially written — callers needing atomicity should stage through a
// temporary destination.
func Dump(w io.Writer, ds *csr.Dataset, opts ...DumpOption) error {
	o := dumpOptions{zeroBased: true}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("Dump: %w", err)
	}

	var (
		bw       = bufio.NewWriter(w)
		offsets  = ds.RowOffsets()
		indices  = ds.Indices()
		data     = ds.Data()
		labels   = ds.Labels()
		comments = ds.Comments()
		qids     = ds.QueryIDs()
	)
	for i := 0; i < ds.NumRows(); i++ {
		bw.WriteString(formatValue(labels[i]))
		bw.WriteByte(' ')
		if qids != nil {
			bw.WriteString(qidPrefix)
			bw.WriteString(formatValue(qids[i]))
			bw.WriteByte(' ')
		}
		for jj := offsets[i]; jj < offsets[i+1]; jj++ {
			idx := uint64(indices[jj])
			if !o.zeroBased {
				idx++
			}
			bw.WriteString(strconv.FormatUint(idx, 10))
			bw.WriteByte(':')
			bw.WriteString(formatValue(data[jj]))
			bw.WriteByte(' ')
		}
		if comments != nil {
			bw.WriteString("# ")
			bw.WriteString(comments[i])
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("Dump: row %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Dump: %w", err)
	}

	return nil
}

// DumpFile serializes ds to the file at path, creating or truncating it.
// A ".gz" suffix compresses the output. On write failure the file is left
// partially written, not rolled back.
func DumpFile(path string, ds *csr.Dataset, opts ...DumpOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("DumpFile: %w", err)
	}

	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, gzipSuffix) {
		zw = gzip.NewWriter(f)
		w = zw
	}

	derr := Dump(w, ds, opts...)
	if zw != nil {
		if cerr := zw.Close(); derr == nil && cerr != nil {
			derr = fmt.Errorf("DumpFile: %w", cerr)
		}
	}
	if cerr := f.Close(); derr == nil && cerr != nil {
		derr = fmt.Errorf("DumpFile: %w", cerr)
	}

	return derr
}

// formatValue renders a float64 in its shortest round-trippable decimal
// form (matching strconv's 'g' with precision -1).
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
