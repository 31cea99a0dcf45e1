package description

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Template is a stored recurring-item pattern. The pattern may contain date
// placeholders substituted against the form's date each time candidates are
// matched:
//
//	{this-month-number}      8
//	{this-month-name}        August
//	{last-month-number}      7
//	{last-month-name}        July
//	{last-bimonthly-number}  6–7 (the two months before this one)
type Template struct {
	Name    string
	Pattern string
}

// ExpandedTemplate is a template rendered for a concrete date.
type ExpandedTemplate struct {
	Name string
	Text string
}

// ExpandTemplates renders every template for the given date. Matching is
// done by equality against the result, so templates must be re-expanded
// whenever the form date changes.
func ExpandTemplates(templates []Template, asOf time.Time) []ExpandedTemplate {
	out := make([]ExpandedTemplate, 0, len(templates))
	for _, t := range templates {
		out = append(out, ExpandedTemplate{Name: t.Name, Text: Expand(t.Pattern, asOf)})
	}
	return out
}

// Expand substitutes the date placeholders in a single pattern.
func Expand(pattern string, asOf time.Time) string {
	thisMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)
	twoBack := thisMonth.AddDate(0, -2, 0)

	r := strings.NewReplacer(
		"{this-month-number}", strconv.Itoa(int(thisMonth.Month())),
		"{this-month-name}", thisMonth.Month().String(),
		"{last-month-number}", strconv.Itoa(int(lastMonth.Month())),
		"{last-month-name}", lastMonth.Month().String(),
		"{last-bimonthly-number}", fmt.Sprintf("%d–%d", int(twoBack.Month()), int(lastMonth.Month())),
	)
	return r.Replace(pattern)
}
