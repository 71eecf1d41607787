// Package service exposes the terminal's operations over raw user input.
// Any front end (the cobra commands, the interactive session) talks to the
// core through it.
package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/hance08/atm/internal/auth"
	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/credential"
	"github.com/hance08/atm/internal/ledger"
	"github.com/hance08/atm/internal/logging"
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/utils"
	"github.com/hance08/atm/internal/validation"
)

type Service struct {
	Credential *credential.Store
	Session    *auth.Session
	Ledger     *ledger.Engine
	Config     *config.Config
}

func NewService(port store.ValueStore, cfg *config.Config, logger *zap.Logger) *Service {
	logger = logging.OrNop(logger)

	creds := credential.New(port, logger)
	session := auth.NewSession(creds, logger)

	return &Service{
		Credential: creds,
		Session:    session,
		Ledger:     ledger.New(port, session, creds, logger),
		Config:     cfg,
	}
}

func (s *Service) Authenticate(pinText string) bool {
	return s.Session.Authenticate(strings.TrimSpace(pinText))
}

func (s *Service) Authenticated() bool {
	return s.Session.Authenticated()
}

func (s *Service) GetBalance() (float64, error) {
	return s.Ledger.Balance()
}

func (s *Service) Deposit(amountText string) (float64, error) {
	if err := s.unlocked(); err != nil {
		return 0, err
	}

	amount, err := ledger.ParseAmount(amountText)
	if err != nil {
		return 0, err
	}
	return s.Ledger.Deposit(amount)
}

func (s *Service) Withdraw(amountText string) (float64, error) {
	if err := s.unlocked(); err != nil {
		return 0, err
	}

	amount, err := ledger.ParseAmount(amountText)
	if err != nil {
		return 0, err
	}
	return s.Ledger.Withdraw(amount)
}

// Transfer validates the destination before the amount is even parsed.
func (s *Service) Transfer(destText, amountText string) (float64, error) {
	if err := s.unlocked(); err != nil {
		return 0, err
	}

	dest := strings.TrimSpace(destText)
	if !validation.IsAccountNumber(dest) {
		return 0, ledger.ErrInvalidDestination
	}

	amount, err := ledger.ParseAmount(amountText)
	if err != nil {
		return 0, err
	}
	return s.Ledger.Transfer(dest, amount)
}

func (s *Service) ChangePin(currentText, newText string) error {
	return s.Ledger.ChangePin(strings.TrimSpace(currentText), strings.TrimSpace(newText))
}

func (s *Service) Reset() error {
	return s.Ledger.Reset()
}

func (s *Service) Currency() string {
	if s.Config == nil || s.Config.Defaults.Currency == "" {
		return config.NewDefault().Defaults.Currency
	}
	return s.Config.Defaults.Currency
}

func (s *Service) Minimum() float64 {
	return s.Ledger.Minimum()
}

// Format renders an amount in the configured display currency.
func (s *Service) Format(amount float64) string {
	return utils.FormatMoney(amount, s.Currency())
}

func (s *Service) unlocked() error {
	if s.Ledger.State() != ledger.Unlocked {
		return ledger.ErrLocked
	}
	return nil
}
