package cmd

import (
	"github.com/spf13/cobra"
)

type balanceRunner struct {
	d *deps
}

func NewBalanceCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &balanceRunner{d: d}
			return runner.Run()
		},
	}
}

func (r *balanceRunner) Run() error {
	svc := r.d.svc()

	if err := login(svc, r.d.pin); err != nil {
		return err
	}
	return showBalance(svc)
}
