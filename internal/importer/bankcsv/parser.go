// Package bankcsv reads Japanese bank and card statement CSV exports.
// The format in use is auto-detected by matching column headers against
// known profiles, so the frontend never has to ask which layout a file is.
package bankcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/kakeibo-app/kakeibo/internal/encoding"
)

// Row is one statement line with the amount normalized to positive yen.
type Row struct {
	Description string
	Date        time.Time
	Amount      int64
	Withdrawal  bool
}

type Parser struct {
	profiles []Profile
}

func NewParser(profiles []Profile) *Parser {
	return &Parser{profiles: profiles}
}

func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := p.detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format found")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func (p *Parser) detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range p.profiles {
			if matchesProfile(&p.profiles[i], cols) {
				return &p.profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts statement lines from data rows using the matched
// profile. headerRowNum is the 0-based index of the header in the original
// file, used in error messages.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]Row, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	var out []Row

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, dateIdx)
		if !ok {
			// Footers and blank lines don't have a date; skip them.
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, withdrawal, ok := extractAmount(p, cols, row)
		if !ok {
			continue
		}

		out = append(out, Row{
			Description: desc,
			Date:        date,
			Amount:      amount,
			Withdrawal:  withdrawal,
		})
	}

	return out, nil
}

// dateLayouts covers the formats seen across bank portals.
var dateLayouts = []string{
	"2006/01/02",
	"2006/1/2",
	"2006-01-02",
	"2006年1月2日",
	"20060102",
}

func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// extractAmount pulls the yen amount and direction out of a row according
// to the profile's amount mode.
func extractAmount(p *Profile, cols colIndex, row []string) (amount int64, withdrawal, ok bool) {
	switch p.AmountMode {
	case amountSingle:
		amount, err := parseAmount(cellValue(row, cols[p.AmountCol]))
		if err != nil || amount == 0 {
			return 0, false, false
		}

		return amount, true, true

	case amountSplit:
		if s := cellValue(row, cols[p.WithdrawalCol]); s != "" {
			if amount, err := parseAmount(s); err == nil && amount != 0 {
				return amount, true, true
			}
		}

		if s := cellValue(row, cols[p.DepositCol]); s != "" {
			if amount, err := parseAmount(s); err == nil && amount != 0 {
				return amount, false, true
			}
		}
	}

	return 0, false, false
}
