package prompts

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/huh"

	"github.com/hance08/atm/internal/validation"
)

// otherCurrency is the select value that switches to a typed code.
const otherCurrency = ""

var commonCurrencies = []string{"INR", "USD", "EUR", "GBP", "JPY"}

// currencyOptions labels each code with its symbol, e.g. "INR (₹)". The
// fallback code is listed first when it is not one of the common ones.
func currencyOptions(fallback string) []huh.Option[string] {
	codes := commonCurrencies
	if !containsCode(codes, fallback) && validation.IsCurrencyCode(fallback) {
		codes = append([]string{fallback}, codes...)
	}

	options := make([]huh.Option[string], 0, len(codes)+1)
	for _, code := range codes {
		label := code
		if cur := money.GetCurrency(code); cur != nil && cur.Grapheme != "" {
			label = fmt.Sprintf("%s (%s)", code, cur.Grapheme)
		}
		options = append(options, huh.NewOption(label, code))
	}

	return append(options, huh.NewOption("Other ISO 4217 code", otherCurrency))
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// PromptInitCurrency asks for the display currency on first run. Balances are
// stored as plain numbers, so the choice only affects how amounts are shown.
func PromptInitCurrency(fallback string) (string, error) {
	selection := strings.ToUpper(fallback)
	var typed string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("First run: pick the currency used to display your balance").
				Description("Stored amounts do not change, only how they are shown").
				Options(currencyOptions(selection)...).
				Value(&selection),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency code").
				Description("3-letter ISO 4217 code, e.g. CHF").
				Value(&typed).
				Validate(validation.ValidateCurrencyCode),
		).WithHideFunc(func() bool { return selection != otherCurrency }),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	if selection == otherCurrency {
		return strings.ToUpper(strings.TrimSpace(typed)), nil
	}
	return selection, nil
}
