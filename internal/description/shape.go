package description

import (
	"strconv"
	"strings"
)

// Separator code points. They were chosen to avoid collision with ordinary
// punctuation in free-text notes; changing any of them silently misparses
// existing descriptions.
const (
	SepTag       = "—" // — em dash between tag and the rest
	SepOneWay    = "→" // → one-way trip arrow
	SepRoundTrip = "↔" // ↔ round-trip arrow
	SepRepeat    = "×" // × repetition count prefix
)

// Direction is the travel direction of a point-to-point trip.
type Direction string

const (
	DirectionOneWay    Direction = "one-way"
	DirectionRoundTrip Direction = "round-trip"
)

// Glyph returns the arrow rendered between origin and destination.
func (d Direction) Glyph() string {
	if d == DirectionRoundTrip {
		return SepRoundTrip
	}
	return SepOneWay
}

// directionForGlyph maps an arrow back to its Direction.
func directionForGlyph(glyph string) Direction {
	if glyph == SepRoundTrip {
		return DirectionRoundTrip
	}
	return DirectionOneWay
}

// Suffix holds the annotations every shape can carry: a repetition count and
// a parenthesized free note. A count of one renders nothing, so it is
// normalized away on the next parse.
type Suffix struct {
	Repeat int
	Note   string
}

func (s Suffix) render() string {
	var b strings.Builder
	if s.Repeat > 1 {
		b.WriteString(SepRepeat)
		b.WriteString(strconv.Itoa(s.Repeat))
	}
	if s.Note != "" {
		b.WriteString("(")
		b.WriteString(s.Note)
		b.WriteString(")")
	}
	return b.String()
}

// Shape is a parsed decomposition of a description. At most one shape
// matches a given description; text matching no shape is an Annotation.
type Shape interface {
	Render() string
}

// General is a plain tagged description: tag, separator, free text.
type General struct {
	Tag  string
	Text string
	Suffix
}

func (g General) Render() string {
	return g.Tag + SepTag + g.Text + g.Suffix.render()
}

// Trip is a point-to-point trip with a one-way or round-trip direction.
type Trip struct {
	Tag       string
	From      string
	Direction Direction
	To        string
	Suffix
}

func (t Trip) Render() string {
	return t.Tag + SepTag + t.From + t.Direction.Glyph() + t.To + t.Suffix.render()
}

// BusTrip is a trip on a numbered route.
type BusTrip struct {
	Tag   string
	Route string
	From  string
	To    string
	Suffix
}

func (b BusTrip) Render() string {
	return b.Tag + SepTag + b.Route + SepTag + b.From + SepOneWay + b.To + b.Suffix.render()
}

// Recurring is a description equal to a recurring-item template expanded for
// the form date.
type Recurring struct {
	Name string
	Text string
	Suffix
}

func (r Recurring) Render() string {
	return r.Text + r.Suffix.render()
}

// Annotation is opaque text matching no shape. Not a parse failure; the
// suffix pass still applies so repetitions and notes survive edits.
type Annotation struct {
	Text string
	Suffix
}

func (a Annotation) Render() string {
	return a.Text + a.Suffix.render()
}
