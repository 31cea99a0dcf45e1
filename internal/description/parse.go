package description

import (
	"regexp"
	"strconv"
)

// Shape patterns, tried in priority order. The character classes exclude the
// separator glyphs so that a description carrying both bus separators and a
// plain tag separator resolves to the more specific shape.
var (
	busPattern     = regexp.MustCompile(`^([^—→↔]*)—([^—→↔]*)—([^—→↔]*)→(.+)$`)
	tripPattern    = regexp.MustCompile(`^([^—→↔]*)—([^—→↔]*)([→↔])(.+)$`)
	generalPattern = regexp.MustCompile(`^([^—]*)—(.*)$`)

	notePattern   = regexp.MustCompile(`^(.*?)\((.+)\)$`)
	repeatPattern = regexp.MustCompile(`^(.*?)×([0-9]+)$`)
)

// Parse decomposes a description into the first shape that matches:
// recurring template, bus trip, point-to-point trip, general tag, and
// finally opaque annotation. There is no error path.
//
// The repetition/note suffix is peeled off before shape matching and
// re-attached to whichever shape wins, so annotations survive tag and trip
// edits.
func Parse(s string, recurring []ExpandedTemplate) Shape {
	base, suf := splitSuffix(s)

	// Recurring templates match by equality against the expanded text for
	// the form's date, not by pattern.
	for _, t := range recurring {
		if base == t.Text {
			return Recurring{Name: t.Name, Text: t.Text, Suffix: suf}
		}
	}

	if m := busPattern.FindStringSubmatch(base); m != nil {
		return BusTrip{Tag: m[1], Route: m[2], From: m[3], To: m[4], Suffix: suf}
	}

	if m := tripPattern.FindStringSubmatch(base); m != nil {
		return Trip{Tag: m[1], From: m[2], Direction: directionForGlyph(m[3]), To: m[4], Suffix: suf}
	}

	// An empty tag is legal here: "—text" parses as General with Tag "".
	if m := generalPattern.FindStringSubmatch(base); m != nil {
		return General{Tag: m[1], Text: m[2], Suffix: suf}
	}

	return Annotation{Text: base, Suffix: suf}
}

// splitSuffix strips a trailing parenthesized note and a trailing repetition
// count, in that order, since the note renders outermost.
func splitSuffix(s string) (string, Suffix) {
	var suf Suffix
	if m := notePattern.FindStringSubmatch(s); m != nil {
		s = m[1]
		suf.Note = m[2]
	}
	if m := repeatPattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[2]); err == nil {
			s = m[1]
			suf.Repeat = n
		}
	}
	return s, suf
}
