package cmd

import (
	"fmt"

	"github.com/hance08/atm/internal/auth"
	"github.com/hance08/atm/internal/errhandler"
	"github.com/hance08/atm/internal/ledger"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/ui/prompts"
	"github.com/hance08/atm/internal/ui/views"
)

// displayError carries the user-facing message for a failed operation while
// keeping the original error reachable with errors.Is.
type displayError struct {
	msg string
	err error
}

func (e *displayError) Error() string { return e.msg }
func (e *displayError) Unwrap() error { return e.err }

func userError(svc *service.Service, op errhandler.Op, err error) error {
	if err == nil || errhandler.IsInterrupt(err) {
		return err
	}
	return &displayError{
		msg: errhandler.Message(op, err, svc.Format(svc.Minimum())),
		err: err,
	}
}

// login authenticates with pin, or prompts for it when pin is empty.
func login(svc *service.Service, pin string) error {
	if svc.Authenticated() {
		return nil
	}

	if pin == "" {
		var err error
		pin, err = prompts.PromptPin()
		if err != nil {
			return err
		}
	}

	if !svc.Authenticate(pin) {
		return userError(svc, errhandler.OpLogin, auth.ErrIncorrectPin)
	}
	return nil
}

// promptIfEmpty returns value, or asks for it with ask when value is empty.
func promptIfEmpty(value string, ask func() (string, error)) (string, error) {
	if value != "" {
		return value, nil
	}
	return ask()
}

// acceptedAmount re-parses input the service has already accepted.
func acceptedAmount(amountText string) float64 {
	amount, _ := ledger.ParseAmount(amountText)
	return amount
}

func showBalance(svc *service.Service) error {
	balance, err := svc.GetBalance()
	if err != nil {
		return userError(svc, errhandler.OpBalance, err)
	}

	views.RenderBalance(svc.Format(balance))
	return nil
}

func deposit(svc *service.Service, amountText string) error {
	balance, err := svc.Deposit(amountText)
	if err != nil {
		return userError(svc, errhandler.OpDeposit, err)
	}

	views.RenderReceipt("deposited", svc.Format(acceptedAmount(amountText)), svc.Format(balance))
	return nil
}

func withdraw(svc *service.Service, amountText string) error {
	balance, err := svc.Withdraw(amountText)
	if err != nil {
		return userError(svc, errhandler.OpWithdraw, err)
	}

	views.RenderReceipt("withdrawn", svc.Format(acceptedAmount(amountText)), svc.Format(balance))
	return nil
}

func transfer(svc *service.Service, dest, amountText string) error {
	balance, err := svc.Transfer(dest, amountText)
	if err != nil {
		return userError(svc, errhandler.OpTransfer, err)
	}

	action := fmt.Sprintf("transferred to account %s", dest)
	views.RenderReceipt(action, svc.Format(acceptedAmount(amountText)), svc.Format(balance))
	return nil
}

func changePin(svc *service.Service, current, proposed string) error {
	if err := svc.ChangePin(current, proposed); err != nil {
		return userError(svc, errhandler.OpChangePin, err)
	}
	return nil
}

func reset(svc *service.Service) error {
	if err := svc.Reset(); err != nil {
		return userError(svc, errhandler.OpReset, err)
	}
	return nil
}
