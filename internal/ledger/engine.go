// Package ledger holds the account balance and every rule that guards it.
//
// Amounts are float64 end to end and are never rounded: a deposit of 100.005
// is stored as 100.005. Repeated operations can accumulate IEEE-754 error;
// that is a known limitation of the stored format, not something the engine
// corrects.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/logging"
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/validation"
)

// Gate reports whether the current run has passed PIN authentication.
type Gate interface {
	Authenticated() bool
}

// Credentials is the part of the credential store the engine drives.
type Credentials interface {
	Change(current, proposed string) error
	Reset() error
}

type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

type Engine struct {
	mu      sync.Mutex
	port    store.ValueStore
	gate    Gate
	creds   Credentials
	log     *zap.Logger
	balance float64
	minimum float64
}

// New creates the engine and loads the persisted balance.
func New(port store.ValueStore, gate Gate, creds Credentials, logger *zap.Logger) *Engine {
	e := &Engine{
		port:    port,
		gate:    gate,
		creds:   creds,
		log:     logging.OrNop(logger).With(zap.String("component", "ledger")),
		minimum: constants.MinimumWithdrawal,
	}
	e.Load()
	return e
}

// Load re-reads the persisted balance, falling back to the default balance
// when it is missing or corrupt.
func (e *Engine) Load() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.balance = e.read()
	return e.balance
}

func (e *Engine) read() float64 {
	text, err := e.port.Read(constants.KeyBalance)
	if err != nil {
		if !errors.Is(err, store.ErrRecordNotFound) {
			e.log.Warn("balance unreadable, using default", zap.Error(err))
		}
		return constants.DefaultBalance
	}

	balance, err := ParseBalance(text)
	if err != nil {
		e.log.Warn("stored balance is corrupt, using default", zap.Error(err))
		return constants.DefaultBalance
	}

	return balance
}

func (e *Engine) State() State {
	if e.gate.Authenticated() {
		return Unlocked
	}
	return Locked
}

// Minimum is the smallest amount accepted by Withdraw and Transfer.
func (e *Engine) Minimum() float64 {
	return e.minimum
}

func (e *Engine) Balance() (float64, error) {
	if e.State() != Unlocked {
		return 0, ErrLocked
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.balance, nil
}

func (e *Engine) Deposit(amount float64) (float64, error) {
	if e.State() != Unlocked {
		return 0, ErrLocked
	}
	if err := checkAmount(amount); err != nil {
		e.log.Debug("deposit rejected", zap.Float64("amount", amount), zap.Error(err))
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.balance + amount
	if math.IsInf(next, 0) {
		e.log.Debug("deposit rejected", zap.Float64("amount", amount), zap.Error(ErrAmountTooLarge))
		return 0, ErrAmountTooLarge
	}
	if err := e.persist(next); err != nil {
		return 0, err
	}

	e.log.Info("deposit", zap.Float64("amount", amount), zap.Float64("balance", e.balance))
	return e.balance, nil
}

func (e *Engine) Withdraw(amount float64) (float64, error) {
	if e.State() != Unlocked {
		return 0, ErrLocked
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkDebit(amount); err != nil {
		e.log.Debug("withdraw rejected", zap.Float64("amount", amount), zap.Error(err))
		return 0, err
	}
	if err := e.persist(e.balance - amount); err != nil {
		return 0, err
	}

	e.log.Info("withdraw", zap.Float64("amount", amount), zap.Float64("balance", e.balance))
	return e.balance, nil
}

// Transfer debits the local balance only. The destination is a label, it is
// never resolved or credited.
func (e *Engine) Transfer(destination string, amount float64) (float64, error) {
	if e.State() != Unlocked {
		return 0, ErrLocked
	}
	if !validation.IsAccountNumber(destination) {
		e.log.Debug("transfer rejected", zap.Error(ErrInvalidDestination))
		return 0, ErrInvalidDestination
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkDebit(amount); err != nil {
		e.log.Debug("transfer rejected", zap.Float64("amount", amount), zap.Error(err))
		return 0, err
	}
	if err := e.persist(e.balance - amount); err != nil {
		return 0, err
	}

	e.log.Info("transfer",
		zap.String("destination", destination),
		zap.Float64("amount", amount),
		zap.Float64("balance", e.balance),
	)
	return e.balance, nil
}

func (e *Engine) ChangePin(current, proposed string) error {
	if e.State() != Unlocked {
		return ErrLocked
	}
	return e.creds.Change(current, proposed)
}

// Reset restores the default PIN and balance. It is not gated by
// authentication. The two values are stored independently: a failed balance
// write leaves the PIN reset in place.
func (e *Engine) Reset() error {
	if e.State() != Unlocked {
		e.log.Warn("reset requested while locked")
	}

	if err := e.creds.Reset(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.persist(constants.DefaultBalance); err != nil {
		return err
	}

	e.log.Info("reset to defaults")
	return nil
}

// checkDebit applies the withdraw rules in order: positive amount, minimum,
// then sufficient funds. Callers hold e.mu.
func (e *Engine) checkDebit(amount float64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if amount < e.minimum {
		return ErrBelowMinimum
	}
	if e.balance-amount < 0 {
		return ErrInsufficientFunds
	}
	return nil
}

func checkAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrParse
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// persist writes balance and only then makes it the in-memory value.
func (e *Engine) persist(balance float64) error {
	if err := e.port.Write(constants.KeyBalance, FormatBalance(balance)); err != nil {
		e.log.Error("failed to persist balance", zap.Error(err))
		return fmt.Errorf("failed to save balance: %w", err)
	}
	e.balance = balance
	return nil
}
