package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/atm/internal/ui/prompts"
)

type pinChangeFlags struct {
	Current string
	New     string
}

type pinChangeRunner struct {
	d     *deps
	flags *pinChangeFlags
}

func NewPinCmd(d *deps) *cobra.Command {
	pinCmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage the PIN",
	}

	pinCmd.AddCommand(newPinChangeCmd(d))

	return pinCmd
}

func newPinChangeCmd(d *deps) *cobra.Command {
	flags := &pinChangeFlags{}

	cmd := &cobra.Command{
		Use:   "change",
		Short: "Change the PIN",
		Long:  `Change the PIN. The current PIN is asked for again and the new PIN must be exactly 4 digits.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &pinChangeRunner{d: d, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.Current, "current", "", "current PIN (prompted when empty)")
	cmd.Flags().StringVar(&flags.New, "new", "", "new 4-digit PIN (prompted when empty)")

	return cmd
}

func (r *pinChangeRunner) Run() error {
	svc := r.d.svc()

	if err := login(svc, r.d.pin); err != nil {
		return err
	}

	current, err := promptIfEmpty(r.flags.Current, prompts.PromptCurrentPin)
	if err != nil {
		return err
	}

	proposed, err := promptIfEmpty(r.flags.New, prompts.PromptNewPin)
	if err != nil {
		return err
	}

	if err := changePin(svc, current, proposed); err != nil {
		return err
	}

	pterm.Success.Println("PIN changed successfully.")
	return nil
}
