// Package money parses and formats delivery fees the way operators type them:
// comma as the decimal separator, optional dot thousands separators.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"mdelivery-zones/internal/apperr"
)

// Parse accepts "12", "12,5", "12.50", "1.234,56". A lone dot followed by
// exactly three digits is read as a thousands separator.
func Parse(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", apperr.ErrInvalid)
	}

	normalized := raw
	switch {
	case strings.Contains(raw, ","):
		normalized = strings.ReplaceAll(raw, ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
	case strings.Count(raw, ".") > 1:
		normalized = strings.ReplaceAll(raw, ".", "")
	case strings.Count(raw, ".") == 1:
		if i := strings.IndexByte(raw, '.'); len(raw)-i-1 == 3 {
			normalized = strings.ReplaceAll(raw, ".", "")
		}
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q", apperr.ErrInvalid, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount %q is negative", apperr.ErrInvalid, s)
	}
	return d.Round(2), nil
}

// Format renders d with two decimals and a comma separator: "12,50".
func Format(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
