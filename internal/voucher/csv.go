package voucher

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerforms/ledgerforms/internal/model"
)

// Header is the CSV header for voucher.csv.
const Header = "id,date,side,currency,account,description,amount,original_line_item_id,original_line_item_date,order"

const (
	numFields       = 10
	dateFormat      = "2006-01-02"
	colID           = 0
	colDate         = 1
	colSide         = 2
	colCurrency     = 3
	colAccount      = 4
	colDescription  = 5
	colAmount       = 6
	colOriginalID   = 7
	colOriginalDate = 8
	colOrder        = 9
)

// ReadVoucher reads an in-progress voucher from a voucher.csv reader. Every
// row carries the voucher date; rows must agree on it. Each row gets a fresh
// form ID, since CSV rows have no in-form identity of their own.
func ReadVoucher(r io.Reader) (model.Voucher, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return model.Voucher{}, fmt.Errorf("reading voucher CSV: %w", err)
	}

	if len(records) == 0 {
		return model.Voucher{}, nil
	}

	var v model.Voucher
	for i, rec := range records[1:] {
		date, it, err := UnmarshalLineItem(rec)
		if err != nil {
			return model.Voucher{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		if i == 0 {
			v.Date = date
		} else if !date.Equal(v.Date) {
			return model.Voucher{}, fmt.Errorf("row %d: date %s differs from voucher date %s",
				i+2, date.Format(dateFormat), v.Date.Format(dateFormat))
		}
		v.Items = append(v.Items, it)
	}
	return v, nil
}

// WriteVoucher writes a voucher to a voucher.csv writer (including header).
func WriteVoucher(w io.Writer, v model.Voucher) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, it := range v.Items {
		if err := cw.Write(MarshalLineItem(v.Date, it)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalLineItem converts a line item to a CSV row.
func MarshalLineItem(date time.Time, it model.LineItem) []string {
	row := make([]string, numFields)
	if it.ID != 0 {
		row[colID] = strconv.FormatInt(it.ID, 10)
	}
	row[colDate] = date.Format(dateFormat)
	row[colSide] = string(it.Side)
	row[colCurrency] = it.CurrencyCode
	row[colAccount] = it.AccountCode
	row[colDescription] = it.Description

	if it.Amount.Valid {
		row[colAmount] = it.Amount.Decimal.StringFixed(2)
	}
	if it.OriginalLineItemID != 0 {
		row[colOriginalID] = strconv.FormatInt(it.OriginalLineItemID, 10)
		row[colOriginalDate] = it.OriginalLineItemDate.Format(dateFormat)
	}

	row[colOrder] = strconv.Itoa(it.Order)
	return row
}

// UnmarshalLineItem converts a CSV row to a line item plus the voucher date
// the row carries.
func UnmarshalLineItem(record []string) (time.Time, model.LineItem, error) {
	if len(record) != numFields {
		return time.Time{}, model.LineItem{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return time.Time{}, model.LineItem{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	it := model.LineItem{
		FormID:       uuid.New(),
		Side:         model.Side(record[colSide]),
		CurrencyCode: record[colCurrency],
		AccountCode:  record[colAccount],
		Description:  record[colDescription],
	}

	if it.Side != model.SideDebit && it.Side != model.SideCredit {
		return time.Time{}, model.LineItem{}, fmt.Errorf("invalid side %q", record[colSide])
	}

	if record[colID] != "" {
		it.ID, err = strconv.ParseInt(record[colID], 10, 64)
		if err != nil {
			return time.Time{}, model.LineItem{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
		}
	}

	if record[colAmount] != "" {
		d, err := decimal.NewFromString(record[colAmount])
		if err != nil {
			return time.Time{}, model.LineItem{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
		}
		it.Amount = decimal.NewNullDecimal(d)
	}

	if record[colOriginalID] != "" {
		it.OriginalLineItemID, err = strconv.ParseInt(record[colOriginalID], 10, 64)
		if err != nil {
			return time.Time{}, model.LineItem{}, fmt.Errorf("parsing original_line_item_id %q: %w", record[colOriginalID], err)
		}
		it.OriginalLineItemDate, err = time.Parse(dateFormat, record[colOriginalDate])
		if err != nil {
			return time.Time{}, model.LineItem{}, fmt.Errorf("parsing original_line_item_date %q: %w", record[colOriginalDate], err)
		}
	}

	if record[colOrder] != "" {
		it.Order, err = strconv.Atoi(record[colOrder])
		if err != nil {
			return time.Time{}, model.LineItem{}, fmt.Errorf("parsing order %q: %w", record[colOrder], err)
		}
	}

	return date, it, nil
}
