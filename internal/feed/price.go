package feed

import (
	"fmt"
	"math"
)

// FormatAmount renders a price with exactly two decimals, dot separator,
// no thousands separator. Rounding is half away from zero (19.999 ->
// "20.00", 0.125 -> "0.13") rather than the half-to-even of fmt's %.2f.
func FormatAmount(amount float64) string {
	neg := amount < 0
	cents := int64(math.Floor(math.Abs(amount)*100 + 0.5))

	sign := ""
	if neg && cents > 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FormatPrice renders "<amount> <CUR>", the form Merchant Center expects.
func FormatPrice(amount float64, currency string) string {
	return FormatAmount(amount) + " " + currency
}
