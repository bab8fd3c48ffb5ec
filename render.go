package parsec

import (
	"strconv"
	"strings"
)

// Render produces the canonical error rendering:
//
//	error at line <L>, column <C>:
//	unexpected <u>
//	expected <e₁>, <e₂>, … or <eₙ>
//
// Line/column are 1-based, derived from the message's cursor. If
// unexpected is empty, its line is omitted (but the trailing ":" and
// newline of the first line remain). Expected labels are rendered
// de-duplicated in first-seen order, joined by ", " except the last
// two joined by " or "; a single label is rendered bare; an empty
// expected-set omits that line entirely.
func Render(m Message) string {
	loc := m.Cursor.Location()

	var b strings.Builder
	b.WriteString("error at line ")
	b.WriteString(strconv.Itoa(loc.Line))
	b.WriteString(", column ")
	b.WriteString(strconv.Itoa(loc.Column))
	b.WriteString(":\n")

	if m.Unexpected != "" {
		b.WriteString("unexpected ")
		b.WriteString(m.Unexpected)
		b.WriteString("\n")
	}

	if expected := renderExpected(m.Expected()); expected != "" {
		b.WriteString("expected ")
		b.WriteString(expected)
		b.WriteString("\n")
	}

	return b.String()
}

// renderExpected joins de-duplicated, first-seen-order labels with
// ", " between all but the last two, which are joined by " or ".
func renderExpected(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + " or " + labels[len(labels)-1]
	}
}
