package helpers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatIDR renders a whole-rupiah amount for display, e.g. 28000 ->
// "Rp 28.000". Amounts are stored as integers in the smallest unit;
// decimal keeps the sign/rounding handling out of hand-rolled math.
func FormatIDR(amount int64) string {
	d := decimal.NewFromInt(amount)

	neg := d.IsNegative()
	digits := d.Abs().StringFixed(0)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := "Rp " + strings.Join(groups, ".")
	if neg {
		out = "-" + out
	}
	return out
}
