package errhandler

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/hance08/atm/internal/auth"
	"github.com/hance08/atm/internal/credential"
	"github.com/hance08/atm/internal/ledger"
)

// Op names the user action an error came from, so the same rule can be
// worded for withdrawals and transfers.
type Op string

const (
	OpLogin     Op = "login"
	OpBalance   Op = "balance"
	OpDeposit   Op = "deposit"
	OpWithdraw  Op = "withdrawal"
	OpTransfer  Op = "transfer"
	OpChangePin Op = "change-pin"
	OpReset     Op = "reset"
)

// Message returns the user-facing text for err. minimum is the formatted
// minimum withdrawal, e.g. "₹500.00".
func Message(op Op, err error, minimum string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, auth.ErrIncorrectPin):
		return "Incorrect PIN. Please try again."
	case errors.Is(err, ledger.ErrLocked):
		return "Please log in with your PIN first."
	case errors.Is(err, credential.ErrWrongCurrentPin):
		return "Incorrect current PIN. Please try again."
	case errors.Is(err, credential.ErrInvalidNewPin):
		return "Invalid PIN. Please enter a 4-digit number."
	case errors.Is(err, ledger.ErrParse):
		return "Invalid amount. Please enter a positive number."
	case errors.Is(err, ledger.ErrNonPositiveAmount):
		return "Invalid amount. The amount must be greater than zero."
	case errors.Is(err, ledger.ErrAmountTooLarge):
		return "Amount is too large for this account."
	case errors.Is(err, ledger.ErrInvalidDestination):
		return "Invalid account number. Please enter a valid account number."
	case errors.Is(err, ledger.ErrBelowMinimum):
		return fmt.Sprintf("Minimum %s amount is %s.", op, minimum)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return fmt.Sprintf("Insufficient funds for %s.", op)
	default:
		return capitalize(err.Error())
	}
}

// IsInterrupt reports whether err is a prompt cancelled with Ctrl+C or Esc.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

func HandleError(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(capitalize(err.Error()))
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
