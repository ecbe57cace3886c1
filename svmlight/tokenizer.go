package svmlight

import "strings"

// qidPrefix marks the optional ranking-group token after the label.
const qidPrefix = "qid:"

// lineTokens is the split of one input line before numeric validation.
type lineTokens struct {
	label      string   // first whitespace-delimited token
	qid        string   // qid-style candidate right after the label ("" = none)
	features   []string // remaining tokens, expected <index>:<value>
	comment    string   // text after the first '#', one leading space stripped
	hasComment bool     // a '#' was present (comment may still be empty)
	skip       bool     // whole-line comment: produce no row
}

// splitLine cuts one line (no trailing newline) into its token roles.
//
// The data/comment split happens only when comment capture is enabled;
// otherwise a mid-line '#' stays in the token stream and fails feature
// parsing downstream, which is the strict behavior of the upstream tools.
// Returns ErrEmptyLine for a zero-length line and ErrInvalidLabel for a
// line with no tokens at all (blank lines have no label to read).
func splitLine(line string, comments bool) (lineTokens, error) {
	var t lineTokens
	if len(line) == 0 {
		return t, ErrEmptyLine
	}
	if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
		t.skip = true

		return t, nil
	}

	data := line
	if comments {
		if cut := strings.IndexByte(line, '#'); cut >= 0 {
			t.comment = strings.TrimPrefix(line[cut+1:], " ")
			t.hasComment = true
			data = line[:cut]
		}
	}

	fields := strings.Fields(data)
	if len(fields) == 0 {
		return t, ErrInvalidLabel
	}
	t.label = fields[0]
	rest := fields[1:]
	if len(rest) > 0 && strings.HasPrefix(rest[0], qidPrefix) {
		t.qid = rest[0]
		rest = rest[1:]
	}
	t.features = rest

	return t, nil
}
