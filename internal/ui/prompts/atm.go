package prompts

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/hance08/atm/internal/validation"
)

// Menu entries of the interactive session, in display order.
const (
	MenuBalance   = "Show Balance"
	MenuDeposit   = "Deposit"
	MenuWithdraw  = "Withdraw"
	MenuTransfer  = "Transfer"
	MenuChangePin = "Change PIN"
	MenuReset     = "Reset"
	MenuExit      = "Exit"
)

var MenuOptions = []string{
	MenuBalance,
	MenuDeposit,
	MenuWithdraw,
	MenuTransfer,
	MenuChangePin,
	MenuReset,
	MenuExit,
}

func PromptMenu() (string, error) {
	return PromptSelect("What would you like to do?", MenuOptions, MenuBalance)
}

func PromptPin() (string, error) {
	return PromptSecret("Enter your PIN:", validation.ValidatePinEntry)
}

func PromptCurrentPin() (string, error) {
	return PromptSecret("Enter your current PIN:", validation.ValidatePinEntry)
}

func PromptNewPin() (string, error) {
	return PromptSecret("Enter new 4-digit PIN:", validation.ValidateNewPin)
}

func PromptAccountNumber() (string, error) {
	return PromptInput("Enter the account number to transfer to:", "", validation.ValidateAccountNumber)
}

// PromptAmountFor asks for the amount of an operation ("deposit",
// "withdraw", "transfer"). Validation is left to the engine so every rule
// reports through the same messages.
func PromptAmountFor(op string, minimum string) (string, error) {
	help := ""
	if minimum != "" {
		help = fmt.Sprintf("Minimum %s", minimum)
	}
	return PromptAmount(fmt.Sprintf("Enter amount to %s:", op), help, nil)
}

// PromptResetConfirm asks before restoring the default PIN and balance.
func PromptResetConfirm() (bool, error) {
	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: "Reset PIN and balance to their defaults?",
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, iconOption()); err != nil {
		return false, err
	}
	return confirmation, nil
}

// iconOption sets the survey question icon to "-" to match the huh prompts.
func iconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
