package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹1,000.00", FormatMoney(1000, "INR"))
	assert.Equal(t, "₹400.00", FormatMoney(400, "inr"))
	assert.Equal(t, "$1,250.50", FormatMoney(1250.5, "USD"))
}

func TestFormatMoneyRoundsToMinorUnits(t *testing.T) {
	assert.Equal(t, "₹100.01", FormatMoney(100.005, "INR"))
}

func TestFormatMoneyUnknownCurrency(t *testing.T) {
	assert.Equal(t, "12.50 XYZ", FormatMoney(12.5, "xyz"))
}
