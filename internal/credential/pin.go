package credential

import (
	"fmt"
	"strconv"

	"github.com/hance08/atm/internal/validation"
)

// Pin is compared by numeric value: "0012", "012" and "12" all match Pin(12).
type Pin int

// String returns the zero-padded form that is written to storage.
func (p Pin) String() string {
	return fmt.Sprintf("%04d", int(p))
}

// ParsePin accepts any all-digit text that fits an int.
func ParsePin(text string) (Pin, error) {
	if !validation.IsDigits(text) {
		return 0, fmt.Errorf("pin %q is not a digit string", text)
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("pin %q out of range: %w", text, err)
	}

	return Pin(n), nil
}
