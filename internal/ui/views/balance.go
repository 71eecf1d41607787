package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

// RenderBalance prints the current balance line shown after every action.
func RenderBalance(formatted string) {
	pterm.Info.Printf("Your current balance is: %s\n", pterm.Bold.Sprint(formatted))
}

// RenderReceipt prints the success line for a completed operation followed
// by the resulting balance.
func RenderReceipt(action string, amount string, balance string) {
	pterm.Success.Println(fmt.Sprintf("%s %s successfully.", amount, action))
	RenderBalance(balance)
}
