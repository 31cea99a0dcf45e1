package voucher

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerforms/ledgerforms/internal/model"
	"github.com/ledgerforms/ledgerforms/internal/offset"
)

// ValidationError describes a single invalid field with a human-readable
// message. Validation never throws; all failures are collected so the user
// sees every invalid field at once.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AccountChecker tests whether an account code exists in the chart of accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// Validate checks a voucher against every form rule: per-row required fields
// and amount bounds, per-currency balance equality, and the date floor.
func Validate(v model.Voucher, accounts AccountChecker, originals offset.OriginalResolver) []ValidationError {
	var errs []ValidationError

	if len(v.Items) == 0 {
		return []ValidationError{{Field: "items", Message: "voucher has no line items"}}
	}

	for i, it := range v.Items {
		field := fmt.Sprintf("item[%d]", i)
		errs = append(errs, validateItem(field, it, v.Items, accounts, originals)...)
	}

	for _, g := range Group(v.Items) {
		field := fmt.Sprintf("currency[%s]", g.CurrencyCode)
		if len(g.DebitItems) == 0 {
			errs = append(errs, ValidationError{Field: field, Message: "at least one debit line item is required"})
		}
		if len(g.CreditItems) == 0 {
			errs = append(errs, ValidationError{Field: field, Message: "at least one credit line item is required"})
		}
		if !g.Balanced() {
			errs = append(errs, ValidationError{
				Field: field,
				Message: fmt.Sprintf("debit total (%s) does not equal credit total (%s)",
					g.DebitTotal().StringFixed(2), g.CreditTotal().StringFixed(2)),
			})
		}
	}

	errs = append(errs, validateOrder(v.Items)...)

	if floor, ok := DateFloor(v.Items); ok && v.Date.Before(floor) {
		errs = append(errs, ValidationError{
			Field:   "date",
			Message: fmt.Sprintf("date cannot be earlier than the latest original line item (%s)", floor.Format("2006-01-02")),
		})
	}

	return errs
}

// validateOrder checks that explicit order values number the rows 1 through
// N with no repeats, the shape Renumber leaves behind. All-zero orders mean
// the form has not been renumbered yet and are left alone.
func validateOrder(items []model.LineItem) []ValidationError {
	anySet := false
	for _, it := range items {
		if it.Order != 0 {
			anySet = true
			break
		}
	}
	if !anySet {
		return nil
	}

	seen := make(map[int]bool, len(items))
	for _, it := range items {
		if it.Order < 1 || it.Order > len(items) || seen[it.Order] {
			return []ValidationError{{
				Field:   "items",
				Message: fmt.Sprintf("line item order must number the rows 1 through %d without repeats", len(items)),
			}}
		}
		seen[it.Order] = true
	}
	return nil
}

func validateItem(field string, it model.LineItem, all []model.LineItem, accounts AccountChecker, originals offset.OriginalResolver) []ValidationError {
	var errs []ValidationError

	switch {
	case it.AccountCode == "":
		errs = append(errs, ValidationError{Field: field + ".account", Message: "account is required"})
	case !accounts.Exists(it.AccountCode):
		errs = append(errs, ValidationError{Field: field + ".account", Message: fmt.Sprintf("unknown account %s", it.AccountCode)})
	}

	if !it.Amount.Valid {
		errs = append(errs, ValidationError{Field: field + ".amount", Message: "amount is required"})
		return errs
	}

	amount := it.Amount.Decimal
	if !amount.IsPositive() {
		errs = append(errs, ValidationError{Field: field + ".amount", Message: "amount must be greater than zero"})
	}

	hundred := decimal.NewFromInt(100)
	if !amount.Mul(hundred).Equal(amount.Mul(hundred).Floor()) {
		errs = append(errs, ValidationError{Field: field + ".amount", Message: fmt.Sprintf("amount %s has more than 2 decimal places", amount)})
	}

	if it.Offsets() {
		o, ok := originals.Get(it.OriginalLineItemID)
		if !ok {
			errs = append(errs, ValidationError{Field: field + ".original", Message: fmt.Sprintf("unknown original line item %d", it.OriginalLineItemID)})
			return errs
		}
		if o.Side != it.Side.Opposite() {
			errs = append(errs, ValidationError{Field: field + ".original", Message: "original line item is not on the opposite side"})
		}
		if o.CurrencyCode != it.CurrencyCode {
			errs = append(errs, ValidationError{
				Field:   field + ".original",
				Message: fmt.Sprintf("original line item currency %s does not match %s", o.CurrencyCode, it.CurrencyCode),
			})
		}
	}

	// Bounds are enforced here, not merely hinted in the editor.
	r := offset.AmountRange(it, originals, all)
	if r.HasMax && amount.GreaterThan(r.Max) {
		errs = append(errs, ValidationError{
			Field:   field + ".amount",
			Message: fmt.Sprintf("amount %s exceeds the net balance %s of the original line item", amount.StringFixed(2), r.Max.StringFixed(2)),
		})
	}
	if r.HasMin && amount.LessThan(r.Min) {
		errs = append(errs, ValidationError{
			Field:   field + ".amount",
			Message: fmt.Sprintf("amount %s is less than the %s already offset against this line item", amount.StringFixed(2), r.Min.StringFixed(2)),
		})
	}

	return errs
}
