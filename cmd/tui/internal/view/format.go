package view

import (
	"context"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dbTimeout = 5 * time.Second

var yenPrinter = message.NewPrinter(language.Japanese)

// FormatYen formats an integer yen amount with digit grouping, e.g. ¥85,000.
func FormatYen(amount int64) string {
	return yenPrinter.Sprintf("¥%d", amount)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
