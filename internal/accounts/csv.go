package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ledgerforms/ledgerforms/internal/model"
)

// Header is the CSV header for chart-of-accounts.csv.
const Header = "code,title,type,needs_offset,description"

const (
	numFields      = 5
	colCode        = 0
	colTitle       = 1
	colType        = 2
	colNeedsOffset = 3
	colDescription = 4
)

// ReadAccounts reads all accounts from a chart-of-accounts.csv reader.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var accts []model.Account
	for i, rec := range records[1:] {
		a, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accts = append(accts, a)
	}
	return accts, nil
}

// WriteAccounts writes accounts to a chart-of-accounts.csv writer (including header).
func WriteAccounts(w io.Writer, accts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, a := range accts {
		if err := cw.Write(MarshalAccount(a)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a model.Account) []string {
	row := make([]string, numFields)
	row[colCode] = a.Code
	row[colTitle] = a.Title
	row[colType] = string(a.Type)
	row[colNeedsOffset] = strconv.FormatBool(a.NeedsOffset)
	row[colDescription] = a.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	needsOffset, err := strconv.ParseBool(record[colNeedsOffset])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing needs_offset %q: %w", record[colNeedsOffset], err)
	}

	return model.Account{
		Code:        record[colCode],
		Title:       record[colTitle],
		Type:        model.AccountType(record[colType]),
		NeedsOffset: needsOffset,
		Description: record[colDescription],
	}, nil
}
