package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/atm/internal/errhandler"
	"github.com/hance08/atm/internal/ui"
	"github.com/hance08/atm/internal/ui/prompts"
)

type sessionRunner struct {
	d *deps
}

func NewSessionCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive terminal session",
		Long: `Log in once with the PIN, then pick operations from a menu until Exit.
Wrong PINs can be retried. Ctrl+C at the menu ends the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{d: d}
			return runner.Run()
		},
	}
}

func (r *sessionRunner) Run() error {
	ui.PrintL1Title("Welcome to Your Bank")

	if err := r.authenticate(); err != nil {
		return err
	}
	pterm.Success.Println("Authentication successful.")

	for {
		choice, err := prompts.PromptMenu()
		if err != nil {
			if errhandler.IsInterrupt(err) {
				return nil
			}
			return err
		}

		if choice == prompts.MenuExit {
			pterm.Info.Println("Goodbye.")
			return nil
		}

		if err := r.dispatch(choice); err != nil {
			if errhandler.IsInterrupt(err) {
				pterm.Warning.Println("Operation Cancelled")
			} else {
				pterm.Error.Println(err.Error())
			}
		}
		ui.PrintSeparator()
	}
}

// authenticate keeps asking until the PIN is right or the user gives up.
func (r *sessionRunner) authenticate() error {
	svc := r.d.svc()
	pin := r.d.pin

	for {
		err := login(svc, pin)
		if err == nil {
			return nil
		}
		if errhandler.IsInterrupt(err) {
			return err
		}
		if r.d.pin != "" && pin == r.d.pin {
			// a wrong --pin flag is not retried silently
			return err
		}

		pterm.Error.Println(err.Error())
		pin = ""
	}
}

func (r *sessionRunner) dispatch(choice string) error {
	svc := r.d.svc()
	minimum := svc.Format(svc.Minimum())

	switch choice {
	case prompts.MenuBalance:
		return showBalance(svc)

	case prompts.MenuDeposit:
		amount, err := prompts.PromptAmountFor("deposit", "")
		if err != nil {
			return err
		}
		return deposit(svc, amount)

	case prompts.MenuWithdraw:
		amount, err := prompts.PromptAmountFor("withdraw", minimum)
		if err != nil {
			return err
		}
		return withdraw(svc, amount)

	case prompts.MenuTransfer:
		account, err := prompts.PromptAccountNumber()
		if err != nil {
			return err
		}
		amount, err := prompts.PromptAmountFor("transfer", minimum)
		if err != nil {
			return err
		}
		return transfer(svc, account, amount)

	case prompts.MenuChangePin:
		current, err := prompts.PromptCurrentPin()
		if err != nil {
			return err
		}
		proposed, err := prompts.PromptNewPin()
		if err != nil {
			return err
		}
		if err := changePin(svc, current, proposed); err != nil {
			return err
		}
		pterm.Success.Println("PIN changed successfully.")
		return nil

	case prompts.MenuReset:
		return confirmAndReset(r.d, false)
	}

	return nil
}
