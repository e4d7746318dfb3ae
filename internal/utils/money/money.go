// Package money normalises user-entered Rupiah amounts and formats them for display.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyAmount is returned for blank input.
	ErrEmptyAmount = errors.New("amount is empty")
	// ErrMalformedAmount is returned when the input is not a whole, non-negative number.
	ErrMalformedAmount = errors.New("amount is malformed")
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// ParseAmount turns locale input such as "Rp 1.250.000" or "1,250,000" into whole Rupiah.
// Dots, commas and spaces are all grouping separators. Once a separator appears, every group
// after the first must have exactly three digits, so decimal input like "1.000,50" or "1,5"
// is rejected instead of being read as a larger number.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.TrimPrefix(s, "rp")
	s = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(s)
	if s == "" {
		return 0, ErrEmptyAmount
	}

	groups := strings.Split(s, ".")
	for i, g := range groups {
		if !isDigits(g) {
			return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
		}
		if len(groups) > 1 && ((i == 0 && len(g) > 3) || (i > 0 && len(g) != 3)) {
			return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
		}
	}

	d, err := decimal.NewFromString(strings.Join(groups, ""))
	if err != nil || d.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	return d.IntPart(), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatRupiah renders an amount with dot grouping, e.g. 1250000 -> "Rp 1.250.000".
func FormatRupiah(amount int64) string {
	sign := ""
	u := uint64(amount)
	if amount < 0 {
		sign = "-"
		u = uint64(-(amount + 1)) + 1
	}
	digits := fmt.Sprintf("%d", u)

	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return sign + "Rp " + b.String()
}
