package description

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func asOf(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
}

func TestExpand_ThisMonth(t *testing.T) {
	got := Expand("Rent for {this-month-name}", asOf(2026, time.August))
	assert.Equal(t, "Rent for August", got)

	got = Expand("Salary {this-month-number}", asOf(2026, time.August))
	assert.Equal(t, "Salary 8", got)
}

func TestExpand_LastMonth(t *testing.T) {
	got := Expand("Card bill for {last-month-name}", asOf(2026, time.August))
	assert.Equal(t, "Card bill for July", got)

	got = Expand("Card bill for {last-month-number}", asOf(2026, time.January))
	assert.Equal(t, "Card bill for 12", got)
}

func TestExpand_LastBimonthly(t *testing.T) {
	got := Expand("Electricity bill for {last-bimonthly-number}", asOf(2026, time.August))
	assert.Equal(t, "Electricity bill for 6–7", got)
}

func TestExpand_LastBimonthlyAcrossYear(t *testing.T) {
	got := Expand("Electricity bill for {last-bimonthly-number}", asOf(2026, time.January))
	assert.Equal(t, "Electricity bill for 11–12", got)
}

func TestExpand_EndOfMonthDateIsSafe(t *testing.T) {
	// March 31: naive month subtraction would land in early March instead
	// of February.
	got := Expand("{last-month-name}", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "February", got)
}

func TestExpandTemplates(t *testing.T) {
	templates := []Template{
		{Name: "rent", Pattern: "Rent for {this-month-name}"},
		{Name: "power", Pattern: "Electricity bill for {last-bimonthly-number}"},
	}

	expanded := ExpandTemplates(templates, asOf(2026, time.August))
	assert.Equal(t, []ExpandedTemplate{
		{Name: "rent", Text: "Rent for August"},
		{Name: "power", Text: "Electricity bill for 6–7"},
	}, expanded)
}
