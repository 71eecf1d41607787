package validation

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/hance08/atm/internal/constants"
)

// IsDigits reports whether s is non-empty and made only of ASCII decimal digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsAccountNumber accepts any non-empty all-digit label.
func IsAccountNumber(s string) bool {
	return IsDigits(s)
}

// IsNewPin checks the shape of a proposed PIN: exactly PinLength digits.
func IsNewPin(s string) bool {
	return len(s) == constants.PinLength && IsDigits(s)
}

// ValidatePinEntry is used by login prompts, it only rejects obvious typos
func ValidatePinEntry(val string) error {
	val = strings.TrimSpace(val)
	if val == "" {
		return fmt.Errorf("PIN can't be empty")
	}
	if !IsDigits(val) {
		return fmt.Errorf("PIN must contain only digits")
	}
	return nil
}

// ValidateNewPin validates a proposed PIN before it is sent to the credential store
func ValidateNewPin(val string) error {
	if !IsNewPin(strings.TrimSpace(val)) {
		return fmt.Errorf("PIN must be a %d-digit number", constants.PinLength)
	}
	return nil
}

// ValidateAccountNumber validates a transfer destination
func ValidateAccountNumber(val string) error {
	if !IsAccountNumber(strings.TrimSpace(val)) {
		return fmt.Errorf("account number must contain only digits")
	}
	return nil
}

// IsCurrencyCode reports whether code is an ISO 4217 code known to go-money.
func IsCurrencyCode(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

// ValidateCurrencyCode is the huh validator for a typed currency code
func ValidateCurrencyCode(val string) error {
	if strings.TrimSpace(val) == "" {
		return fmt.Errorf("currency code is required")
	}
	if !IsCurrencyCode(val) {
		return fmt.Errorf("%q is not a known ISO 4217 currency code", strings.TrimSpace(val))
	}
	return nil
}
