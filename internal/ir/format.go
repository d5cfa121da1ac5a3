package ir

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// colWidth is the fixed field width: every column, including the
// header, is padded to 13 characters.
const colWidth = 13

var nodeTempRe = regexp.MustCompile(`^N\d+$`)

// Format renders buf as a header row followed by one row per quad, with
// an address column and every (op, arg1, arg2, result) field padded to
// colWidth. Synthetic `N<node-number>` temporary names are renumbered
// densely in order of first appearance, so the listing stays small and
// stable across unrelated changes to node numbering.
func Format(buf *Buffer) string {
	renamed := renumberTemps(buf.Quads())

	var sb strings.Builder
	writeRow(&sb, "Addr", "Op", "Arg1", "Arg2", "Result")
	for i, q := range renamed {
		writeRow(&sb,
			strconv.Itoa(startAddress+i),
			q.Op, q.Arg1, q.Arg2, q.Result)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cols ...string) {
	for _, c := range cols {
		sb.WriteString(pad(c))
	}
	sb.WriteString("\n")
}

func pad(s string) string {
	if len(s) >= colWidth {
		return s[:colWidth]
	}
	return s + strings.Repeat(" ", colWidth-len(s))
}

func renumberTemps(quads []Quad) []Quad {
	ids := map[string]string{}
	next := 0
	rename := func(s string) string {
		if !nodeTempRe.MatchString(s) {
			return s
		}
		if r, ok := ids[s]; ok {
			return r
		}
		r := fmt.Sprintf("t%d", next)
		next++
		ids[s] = r
		return r
	}

	out := make([]Quad, len(quads))
	for i, q := range quads {
		out[i] = Quad{
			Op:     q.Op,
			Arg1:   rename(q.Arg1),
			Arg2:   rename(q.Arg2),
			Result: rename(q.Result),
		}
	}
	return out
}
