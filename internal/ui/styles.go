package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgBlue, pterm.FgWhite, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Println(fmt.Sprintf(" %s   ", text))
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Println(fmt.Sprintf("# %s   ", text))
}

// PrintSeparator closes a block of output in the interactive session.
func PrintSeparator() {
	pterm.Println(pterm.Blue("---------------------------------------------------------"))
}
