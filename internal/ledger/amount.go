package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent bounds the decimal exponent accepted from input. Anything past
// it is outside float64 range, and converting it would build a huge big.Int.
const maxExponent = 400

// ParseAmount turns user input into an amount. Anything that is not a finite
// decimal number is ErrParse, zero and negatives are ErrNonPositiveAmount.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return 0, fmt.Errorf("%w: %q is out of range", ErrParse, text)
	}

	amount, _ := d.Float64()
	if math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}

	return amount, nil
}

// FormatBalance writes the balance the way it has always been stored:
// shortest round-trip digits, with ".0" on whole numbers ("1000.0").
func FormatBalance(balance float64) string {
	s := strconv.FormatFloat(balance, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// ParseBalance reads a stored balance. Non-finite values are rejected.
func ParseBalance(text string) (float64, error) {
	balance, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("balance %q is not a number: %w", text, err)
	}
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		return 0, fmt.Errorf("balance %q is not finite", text)
	}
	return balance, nil
}
