package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hance08/atm/internal/ui/prompts"
)

type depositRunner struct {
	d      *deps
	amount string
}

func NewDepositCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit [amount]",
		Short: "Deposit money into the account",
		Long:  `Deposit a positive amount. The amount is prompted for when it is not given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &depositRunner{d: d}
			if len(args) == 1 {
				runner.amount = args[0]
			}
			return runner.Run()
		},
	}
}

func (r *depositRunner) Run() error {
	svc := r.d.svc()

	if err := login(svc, r.d.pin); err != nil {
		return err
	}

	amount, err := promptIfEmpty(r.amount, func() (string, error) {
		return prompts.PromptAmountFor("deposit", "")
	})
	if err != nil {
		return err
	}

	return deposit(svc, amount)
}
