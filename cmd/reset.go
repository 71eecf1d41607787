package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/credential"
	"github.com/hance08/atm/internal/ui/prompts"
)

type resetRunner struct {
	d   *deps
	yes bool
}

func NewResetCmd(d *deps) *cobra.Command {
	runner := &resetRunner{d: d}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default PIN and balance",
		Long: `Restore the PIN to 1234 and the balance to 1000.0.
This does not ask for the PIN. This action cannot be undone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (r *resetRunner) Run() error {
	return confirmAndReset(r.d, r.yes)
}

func confirmAndReset(d *deps, yes bool) error {
	svc := d.svc()

	if !yes {
		pterm.Warning.Println("This action cannot be undone!")

		confirmed, err := prompts.PromptResetConfirm()
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Reset cancelled")
			return nil
		}
	}

	if err := reset(svc); err != nil {
		return err
	}

	pterm.Success.Printf("PIN reset to %s and balance reset to %s.\n",
		credential.DefaultPin, svc.Format(constants.DefaultBalance))
	return nil
}
