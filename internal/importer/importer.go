// Package importer turns bank statement CSV downloads into ledger rows.
package importer

import (
	"io"

	"github.com/kakeibo-app/kakeibo/internal/importer/bankcsv"
)

// Source identifies which kind of statement a CSV came from.
type Source string

const (
	// SourceBank is an ordinary deposit account statement (入出金明細).
	SourceBank Source = "bank"
	// SourceCard is a credit card usage statement (利用明細).
	SourceCard Source = "card"
)

// Row is one statement line. Withdrawal rows become expenses, the rest
// become incomes.
type Row = bankcsv.Row

type Parser interface {
	Parse(r io.Reader) ([]Row, error)
}
