package format

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts with locale-aware digit grouping.
type Formatter struct {
	group string
	point string
}

// NewFormatter creates a Formatter for a BCP 47 locale string, falling back
// to English when the locale does not parse.
//
// The locale's separators are probed from one known rendering; amounts are
// then formatted from the decimal's exact digits, since float64 cannot carry
// balances beyond 2^53 cents.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	f := &Formatter{group: ",", point: "."}
	sample := message.NewPrinter(tag).Sprint(number.Decimal(1234.5,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1)))
	if group, point, ok := separators(sample); ok {
		f.group, f.point = group, point
	}
	return f
}

// separators extracts the group and decimal separators from a rendering of
// 1234.5, which contains exactly one of each.
func separators(sample string) (group, point string, ok bool) {
	var parts []string
	var cur []rune
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if len(cur) > 0 {
				parts = append(parts, string(cur))
				cur = nil
			}
			continue
		}
		cur = append(cur, r)
	}
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Amount renders d with thousands grouping and exactly two fraction digits,
// e.g. "1,234.50" under an English locale.
func (f *Formatter) Amount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	b.WriteString(f.point)
	b.WriteString(fracPart)
	return b.String()
}

// ParseAmount parses a user-entered amount, tolerating grouping separators
// and surrounding whitespace.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}
