package offset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerforms/ledgerforms/internal/model"
)

// Header is the CSV header for originals.csv.
const Header = "id,date,currency,side,account,description,net_balance"

const (
	numFields      = 7
	dateFormat     = "2006-01-02"
	colID          = 0
	colDate        = 1
	colCurrency    = 2
	colSide        = 3
	colAccount     = 4
	colDescription = 5
	colNetBalance  = 6
)

// ReadOriginals reads all original line items from an originals.csv reader.
func ReadOriginals(r io.Reader) ([]model.OriginalLineItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading originals CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var originals []model.OriginalLineItem
	for i, rec := range records[1:] {
		o, err := UnmarshalOriginal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		originals = append(originals, o)
	}
	return originals, nil
}

// WriteOriginals writes original line items to a writer (including header).
func WriteOriginals(w io.Writer, originals []model.OriginalLineItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, o := range originals {
		if err := cw.Write(MarshalOriginal(o)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalOriginal converts an OriginalLineItem to a CSV row.
func MarshalOriginal(o model.OriginalLineItem) []string {
	row := make([]string, numFields)
	row[colID] = strconv.FormatInt(o.ID, 10)
	row[colDate] = o.Date.Format(dateFormat)
	row[colCurrency] = o.CurrencyCode
	row[colSide] = string(o.Side)
	row[colAccount] = o.AccountCode
	row[colDescription] = o.Description
	row[colNetBalance] = o.BareNetBalance.StringFixed(2)
	return row
}

// UnmarshalOriginal converts a CSV row to an OriginalLineItem.
func UnmarshalOriginal(record []string) (model.OriginalLineItem, error) {
	if len(record) != numFields {
		return model.OriginalLineItem{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.ParseInt(record[colID], 10, 64)
	if err != nil {
		return model.OriginalLineItem{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.OriginalLineItem{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	balance, err := decimal.NewFromString(record[colNetBalance])
	if err != nil {
		return model.OriginalLineItem{}, fmt.Errorf("parsing net_balance %q: %w", record[colNetBalance], err)
	}

	return model.OriginalLineItem{
		ID:             id,
		Date:           date,
		CurrencyCode:   record[colCurrency],
		Side:           model.Side(record[colSide]),
		AccountCode:    record[colAccount],
		Description:    record[colDescription],
		BareNetBalance: balance,
	}, nil
}
