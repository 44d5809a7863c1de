package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount rounds x to places decimals (half away from zero) and groups the
// integer part in thousands: 1234567.891 -> "1,234,567.89".
func Amount(x float64, places int32) string {
	s := decimal.NewFromFloat(x).Round(places).StringFixed(places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(frac)
	return b.String()
}

// Signed is Amount with an explicit "+" on positive values.
func Signed(x float64, places int32) string {
	s := Amount(x, places)
	if decimal.NewFromFloat(x).Round(places).IsPositive() {
		return "+" + s
	}
	return s
}

// Round returns x rounded to places decimals as a decimal.
func Round(x float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(x).Round(places)
}
