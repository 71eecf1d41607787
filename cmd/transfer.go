package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hance08/atm/internal/ui/prompts"
)

type transferRunner struct {
	d       *deps
	account string
	amount  string
}

func NewTransferCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer [account] [amount]",
		Short: "Transfer money to another account number",
		Long: `Debit the account for a transfer to a numeric account number.
The same minimum and balance rules as a withdrawal apply.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transferRunner{d: d}
			if len(args) > 0 {
				runner.account = args[0]
			}
			if len(args) > 1 {
				runner.amount = args[1]
			}
			return runner.Run()
		},
	}
}

func (r *transferRunner) Run() error {
	svc := r.d.svc()

	if err := login(svc, r.d.pin); err != nil {
		return err
	}

	account, err := promptIfEmpty(r.account, prompts.PromptAccountNumber)
	if err != nil {
		return err
	}

	amount, err := promptIfEmpty(r.amount, func() (string, error) {
		return prompts.PromptAmountFor("transfer", svc.Format(svc.Minimum()))
	})
	if err != nil {
		return err
	}

	return transfer(svc, account, amount)
}
