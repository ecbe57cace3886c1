package svmlight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/svmio/csr"
)

// numberEnd returns the length of the longest prefix of s shaped like a
// decimal real: [+-]? digits ["." digits*]? ([eE] [+-]? digits)?.
// A bare sign or dot with no digits yields 0.
func numberEnd(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && '0' <= s[k] && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}

	return i
}

// parseLabel extracts the label from the leading token the way stream
// extraction does: the longest numeric prefix is the label, anything left
// over comes back as the remainder ("1:1" is label 1, remainder ":1").
// A token with no numeric prefix, or a non-finite one, is an error.
func parseLabel(tok string) (float64, string, error) {
	n := numberEnd(tok)
	if n == 0 {
		return 0, "", fmt.Errorf("no numeric label in %q", tok)
	}
	v, err := strconv.ParseFloat(tok[:n], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, "", fmt.Errorf("non-finite label %q", tok[:n])
	}

	return v, tok[n:], nil
}

// parseFinite parses a decimal real and rejects NaN / ±Inf. The format
// carries finite values only.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}

	return v, nil
}

// parseFeature splits <index>:<value>. The separator must be exactly ':';
// the index a base-10 unsigned integer fitting uint32; the value finite.
func parseFeature(tok string) (uint32, float64, error) {
	name, val, found := strings.Cut(tok, ":")
	if !found {
		return 0, 0, fmt.Errorf("missing ':' separator")
	}
	idx, err := strconv.ParseUint(name, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	v, err := parseFinite(val)
	if err != nil {
		return 0, 0, err
	}

	return uint32(idx), v, nil
}

// parseLine validates one line's tokens and appends zero or one row to b.
//
// Failure taxonomy (first failure wins, whole load aborts upstream):
//   - label not a finite real               → ErrInvalidLabel
//   - qid candidate fails both readings     → ErrMalformedToken
//   - any feature token malformed           → ErrMalformedFeature
//
// The qid candidate is tried as qid:<number> first and re-tried as
// <index>:<value> on failure — the grammar cannot distinguish the two
// roles for the token right after the label, so the fallback order is the
// contract, inherited from the upstream tooling.
func parseLine(line string, lineno int, b *csr.Builder, o *loadOptions) error {
	toks, err := splitLine(line, o.comments)
	if err != nil {
		return &ParseError{Line: lineno, Text: line, Err: err}
	}
	if toks.skip {
		return nil
	}

	label, rest, lerr := parseLabel(toks.label)
	if lerr != nil {
		return &ParseError{Line: lineno, Text: line, Err: ErrInvalidLabel}
	}
	if err = b.BeginRow(label); err != nil {
		return fmt.Errorf("parseLine: %w", err)
	}
	if rest != "" {
		// The character after the numeric prefix cannot start a pair, so
		// extraction stops for this line: the row keeps its label and no
		// features, as stream-based readers of the format behave.
		if o.comments {
			if err = b.SetComment(toks.comment); err != nil {
				return fmt.Errorf("parseLine: %w", err)
			}
		}

		return nil
	}

	if toks.qid != "" {
		q, qerr := parseFinite(toks.qid[len(qidPrefix):])
		switch {
		case qerr == nil:
			if o.queryIDs {
				if err = b.SetQueryID(q); err != nil {
					return fmt.Errorf("parseLine: %w", err)
				}
			}
		default:
			// Not a qid after all: fall back to the feature reading.
			idx, v, ferr := parseFeature(toks.qid)
			if ferr != nil {
				return &ParseError{
					Line: lineno,
					Text: line,
					Err:  fmt.Errorf("token %q: %w", toks.qid, ErrMalformedToken),
				}
			}
			if err = b.Append(idx, v); err != nil {
				return fmt.Errorf("parseLine: %w", err)
			}
		}
	}

	for _, tok := range toks.features {
		idx, v, ferr := parseFeature(tok)
		if ferr != nil {
			return &ParseError{
				Line: lineno,
				Text: line,
				Err:  fmt.Errorf("token %q: %w", tok, ErrMalformedFeature),
			}
		}
		if err = b.Append(idx, v); err != nil {
			return fmt.Errorf("parseLine: %w", err)
		}
	}

	if o.comments {
		if err = b.SetComment(toks.comment); err != nil {
			return fmt.Errorf("parseLine: %w", err)
		}
	}

	return nil
}
