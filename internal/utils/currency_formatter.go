package utils

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount with the currency's symbol and minor units,
// e.g. 1000 INR -> "₹1,000.00". Unknown codes fall back to "1000.00 XYZ".
func FormatMoney(amount float64, currencyCode string) string {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))

	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%.2f %s", amount, code)
	}

	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}
