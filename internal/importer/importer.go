// Package importer applies repayments listed in a CSV export, one repayment
// per row.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/lendbook/internal/csvutil"
)

var ErrNoHeader = errors.New("no header row with Loan, Principal and Interest columns")

// columns lists the accepted header names per field, compared
// case-insensitively.
var columns = struct {
	Loan, Principal, Interest, Notes []string
}{
	Loan:      []string{"loan", "loan id", "loan reference", "reference"},
	Principal: []string{"principal", "principal amount"},
	Interest:  []string{"interest", "interest amount"},
	Notes:     []string{"notes", "note", "description"},
}

// Row is a parsed repayment line. Line is the 1-based line in the file.
type Row struct {
	Line      int
	Loan      string
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Notes     string
}

type Rejected struct {
	Line   int
	Loan   string
	Reason string
}

type header struct {
	loan, principal, interest, notes int
}

// findHeader scans records for the first one naming the required columns.
func findHeader(records []csvutil.Record) (header, int, bool) {
	for recIdx, rec := range records {
		h := header{loan: -1, principal: -1, interest: -1, notes: -1}

		for i, cell := range rec.Cells {
			name := strings.ToLower(strings.TrimSpace(cell))

			switch {
			case matches(columns.Loan, name):
				h.loan = i
			case matches(columns.Principal, name):
				h.principal = i
			case matches(columns.Interest, name):
				h.interest = i
			case matches(columns.Notes, name):
				h.notes = i
			}
		}

		if h.loan >= 0 && h.principal >= 0 && h.interest >= 0 {
			return h, recIdx, true
		}
	}

	return header{}, 0, false
}

func matches(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}

// Parse reads repayment rows. Malformed rows are returned as rejected and do
// not stop the parse; blank rows are skipped.
func Parse(r io.Reader) ([]Row, []Rejected, error) {
	records, err := csvutil.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	h, headerIdx, ok := findHeader(records)
	if !ok {
		return nil, nil, ErrNoHeader
	}

	var (
		parsed   []Row
		rejected []Rejected
	)

	for _, rec := range records[headerIdx+1:] {
		row, line := rec.Cells, rec.Line

		ref := csvutil.Cell(row, h.loan)
		principalStr := csvutil.Cell(row, h.principal)
		interestStr := csvutil.Cell(row, h.interest)

		if ref == "" && principalStr == "" && interestStr == "" {
			continue
		}

		if ref == "" {
			rejected = append(rejected, Rejected{Line: line, Reason: "missing loan"})
			continue
		}

		principal, err := parseOptionalAmount(principalStr)
		if err != nil {
			rejected = append(rejected, Rejected{Line: line, Loan: ref, Reason: fmt.Sprintf("principal: %v", err)})
			continue
		}

		interestAmt, err := parseOptionalAmount(interestStr)
		if err != nil {
			rejected = append(rejected, Rejected{Line: line, Loan: ref, Reason: fmt.Sprintf("interest: %v", err)})
			continue
		}

		parsed = append(parsed, Row{
			Line:      line,
			Loan:      ref,
			Principal: principal,
			Interest:  interestAmt,
			Notes:     csvutil.Cell(row, h.notes),
		})
	}

	return parsed, rejected, nil
}

// parseOptionalAmount treats an empty cell as zero.
func parseOptionalAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	return csvutil.ParseAmount(s)
}
