package bankcsv

import (
	"fmt"
	"strconv"
	"strings"
)

// amountReplacer strips the decoration bank portals put around yen
// amounts: thousands separators, currency marks and full-width variants.
var amountReplacer = strings.NewReplacer(
	",", "",
	"，", "",
	"¥", "",
	"￥", "",
	"円", "",
	" ", "",
	"　", "",
)

// parseAmount parses a yen amount. Yen has no decimal fraction, so the
// value is a plain integer once the decoration is gone.
func parseAmount(s string) (int64, error) {
	clean := amountReplacer.Replace(s)
	if clean == "" {
		return 0, fmt.Errorf("empty amount")
	}

	val, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}

	if val < 0 {
		val = -val
	}

	return val, nil
}
