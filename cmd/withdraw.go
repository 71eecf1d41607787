package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hance08/atm/internal/ui/prompts"
)

type withdrawRunner struct {
	d      *deps
	amount string
}

func NewWithdrawCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Withdraw money from the account",
		Long: `Withdraw an amount of at least the minimum withdrawal.
The balance can not go below zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &withdrawRunner{d: d}
			if len(args) == 1 {
				runner.amount = args[0]
			}
			return runner.Run()
		},
	}
}

func (r *withdrawRunner) Run() error {
	svc := r.d.svc()

	if err := login(svc, r.d.pin); err != nil {
		return err
	}

	amount, err := promptIfEmpty(r.amount, func() (string, error) {
		return prompts.PromptAmountFor("withdraw", svc.Format(svc.Minimum()))
	})
	if err != nil {
		return err
	}

	return withdraw(svc, amount)
}
