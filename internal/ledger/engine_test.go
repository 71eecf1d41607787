package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/hance08/atm/internal/auth"
	"github.com/hance08/atm/internal/credential"
	"github.com/hance08/atm/internal/store"
)

type EngineSuite struct {
	suite.Suite
	port    *store.MemoryStore
	creds   *credential.Store
	session *auth.Session
	engine  *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.port = store.NewMemoryStore()
	s.build()
}

func (s *EngineSuite) build() {
	s.creds = credential.New(s.port, zap.NewNop())
	s.session = auth.NewSession(s.creds, zap.NewNop())
	s.engine = New(s.port, s.session, s.creds, zap.NewNop())
}

func (s *EngineSuite) unlock() {
	s.Require().True(s.session.Authenticate("1234"))
}

func (s *EngineSuite) storedBalance() string {
	value, err := s.port.Read("balance")
	s.Require().NoError(err)
	return value
}

// Load tests

func (s *EngineSuite) TestLoadDefaultsWhenMissing() {
	s.Equal(1000.0, s.engine.Load())
	s.Zero(s.port.Writes("balance"))
}

func (s *EngineSuite) TestLoadReadsStoredBalance() {
	s.port.Set("balance", "250.75")

	s.Equal(250.75, s.engine.Load())
}

func (s *EngineSuite) TestLoadDefaultsWhenCorrupt() {
	for _, raw := range []string{"lots", "", "nan", "inf"} {
		s.port.Set("balance", raw)
		s.Equal(1000.0, s.engine.Load(), raw)
	}
}

func (s *EngineSuite) TestLoadKeepsNegativeBalance() {
	s.port.Set("balance", "-20.0")

	s.Equal(-20.0, s.engine.Load())
}

func (s *EngineSuite) TestLoadIsIdempotent() {
	s.port.Set("balance", "812.5")

	s.Equal(s.engine.Load(), s.engine.Load())
}

// Gate tests

func (s *EngineSuite) TestLockedEngineRejectsGatedOperations() {
	s.Equal(Locked, s.engine.State())

	_, err := s.engine.Balance()
	s.ErrorIs(err, ErrLocked)
	_, err = s.engine.Deposit(100)
	s.ErrorIs(err, ErrLocked)
	_, err = s.engine.Withdraw(600)
	s.ErrorIs(err, ErrLocked)
	_, err = s.engine.Transfer("123", 600)
	s.ErrorIs(err, ErrLocked)
	s.ErrorIs(s.engine.ChangePin("1234", "5678"), ErrLocked)

	s.Zero(s.port.Writes("balance"))
	s.Zero(s.port.Writes("pin"))
}

func (s *EngineSuite) TestWrongPinKeepsEngineLocked() {
	s.False(s.session.Authenticate("4321"))

	s.Equal(Locked, s.engine.State())
}

func (s *EngineSuite) TestCorrectPinUnlocks() {
	s.unlock()

	s.Equal(Unlocked, s.engine.State())
	balance, err := s.engine.Balance()
	s.Require().NoError(err)
	s.Equal(1000.0, balance)
}

// Deposit tests

func (s *EngineSuite) TestDepositAddsAndPersists() {
	s.unlock()

	balance, err := s.engine.Deposit(250.5)
	s.Require().NoError(err)
	s.Equal(1250.5, balance)
	s.Equal("1250.5", s.storedBalance())
}

func (s *EngineSuite) TestDepositRejectsNonPositive() {
	s.unlock()

	for _, amount := range []float64{0, -1, -500} {
		_, err := s.engine.Deposit(amount)
		s.ErrorIs(err, ErrNonPositiveAmount)
	}
	s.Zero(s.port.Writes("balance"))
}

func (s *EngineSuite) TestDepositKeepsFractionVerbatim() {
	s.port.Set("balance", "0.0")
	s.engine.Load()
	s.unlock()

	balance, err := s.engine.Deposit(100.005)
	s.Require().NoError(err)
	s.Equal(100.005, balance)
	s.Equal("100.005", s.storedBalance())
}

func (s *EngineSuite) TestDepositRejectsOverflow() {
	s.unlock()

	balance, err := s.engine.Deposit(1.7e308)
	s.Require().NoError(err)
	stored := s.storedBalance()

	_, err = s.engine.Deposit(1.7e308)
	s.ErrorIs(err, ErrAmountTooLarge)
	s.Equal(stored, s.storedBalance())
	s.Equal(1, s.port.Writes("balance"))

	s.Equal(balance, s.engine.Load())
}

// Withdraw tests

func (s *EngineSuite) TestWithdrawThenInsufficientFunds() {
	s.unlock()

	balance, err := s.engine.Withdraw(600)
	s.Require().NoError(err)
	s.Equal(400.0, balance)
	s.Equal("400.0", s.storedBalance())

	_, err = s.engine.Withdraw(500)
	s.ErrorIs(err, ErrInsufficientFunds)

	balance, err = s.engine.Balance()
	s.Require().NoError(err)
	s.Equal(400.0, balance)
}

func (s *EngineSuite) TestWithdrawBelowMinimumRegardlessOfBalance() {
	s.port.Set("balance", "1000000.0")
	s.engine.Load()
	s.unlock()

	_, err := s.engine.Withdraw(499.99)
	s.ErrorIs(err, ErrBelowMinimum)

	s.port.Set("balance", "0.0")
	s.engine.Load()

	_, err = s.engine.Withdraw(499.99)
	s.ErrorIs(err, ErrBelowMinimum)
}

func (s *EngineSuite) TestWithdrawCheckOrder() {
	s.port.Set("balance", "100.0")
	s.engine.Load()
	s.unlock()

	_, err := s.engine.Withdraw(-5)
	s.ErrorIs(err, ErrNonPositiveAmount)

	_, err = s.engine.Withdraw(10)
	s.ErrorIs(err, ErrBelowMinimum)

	_, err = s.engine.Withdraw(500)
	s.ErrorIs(err, ErrInsufficientFunds)
}

func (s *EngineSuite) TestWithdrawExactBalance() {
	s.unlock()

	balance, err := s.engine.Withdraw(1000)
	s.Require().NoError(err)
	s.Zero(balance)
}

func (s *EngineSuite) TestDepositWithdrawRoundTrip() {
	s.unlock()

	for _, amount := range []float64{500, 600, 750.25, 1234.5} {
		before, err := s.engine.Balance()
		s.Require().NoError(err)

		_, err = s.engine.Deposit(amount)
		s.Require().NoError(err)
		after, err := s.engine.Withdraw(amount)
		s.Require().NoError(err)

		s.Equal(before, after, "amount %v", amount)
	}
}

func (s *EngineSuite) TestNonFiniteAmountsAreRejected() {
	s.unlock()

	_, err := s.engine.Deposit(nan())
	s.ErrorIs(err, ErrParse)
	_, err = s.engine.Withdraw(nan())
	s.ErrorIs(err, ErrParse)
}

// Transfer tests

func (s *EngineSuite) TestTransferDebitsOnly() {
	s.unlock()

	balance, err := s.engine.Transfer("00123456", 600)
	s.Require().NoError(err)
	s.Equal(400.0, balance)
	s.Equal("400.0", s.storedBalance())
}

func (s *EngineSuite) TestTransferInvalidDestinationComesFirst() {
	s.port.Set("balance", "0.0")
	s.engine.Load()
	s.unlock()

	for _, dest := range []string{"abc", "", "12-34", " 123"} {
		_, err := s.engine.Transfer(dest, 600)
		s.ErrorIs(err, ErrInvalidDestination, dest)

		_, err = s.engine.Transfer(dest, -1)
		s.ErrorIs(err, ErrInvalidDestination, dest)
	}
}

func (s *EngineSuite) TestTransferAppliesWithdrawRules() {
	s.unlock()

	_, err := s.engine.Transfer("42", 0)
	s.ErrorIs(err, ErrNonPositiveAmount)
	_, err = s.engine.Transfer("42", 499.99)
	s.ErrorIs(err, ErrBelowMinimum)
	_, err = s.engine.Transfer("42", 1000.01)
	s.ErrorIs(err, ErrInsufficientFunds)
	s.Zero(s.port.Writes("balance"))
}

// ChangePin tests

func (s *EngineSuite) TestChangePinDelegates() {
	s.unlock()

	s.ErrorIs(s.engine.ChangePin("1234", "999"), credential.ErrInvalidNewPin)
	s.ErrorIs(s.engine.ChangePin("0000", "5678"), credential.ErrWrongCurrentPin)

	s.Require().NoError(s.engine.ChangePin("1234", "5678"))
	s.True(s.creds.Verify("5678"))
	s.False(s.creds.Verify("1234"))
}

// Reset tests

func (s *EngineSuite) TestResetAfterMutations() {
	s.unlock()
	_, err := s.engine.Withdraw(600)
	s.Require().NoError(err)
	s.Require().NoError(s.engine.ChangePin("1234", "5678"))

	s.Require().NoError(s.engine.Reset())

	balance, err := s.engine.Balance()
	s.Require().NoError(err)
	s.Equal(1000.0, balance)
	s.True(s.creds.Verify("1234"))
	s.Equal("1000.0", s.storedBalance())
}

func (s *EngineSuite) TestResetWorksWhileLocked() {
	s.port.Set("balance", "3.5")
	s.port.Set("pin", "9876")
	s.build()
	s.Require().Equal(Locked, s.engine.State())

	s.Require().NoError(s.engine.Reset())

	s.Equal("1000.0", s.storedBalance())
	pin, err := s.port.Read("pin")
	s.Require().NoError(err)
	s.Equal("1234", pin)
	s.Equal(Locked, s.engine.State())
}

func (s *EngineSuite) TestResetPinFailureLeavesBalance() {
	s.port.Set("balance", "3.5")
	s.engine.Load()
	s.port.FailWrites("pin", errors.New("disk full"))

	s.Error(s.engine.Reset())
	s.Equal(3.5, s.engine.Load())
}

func (s *EngineSuite) TestResetBalanceFailureKeepsPinReset() {
	s.unlock()
	s.Require().NoError(s.engine.ChangePin("1234", "5678"))
	s.port.FailWrites("balance", errors.New("disk full"))

	s.Error(s.engine.Reset())
	s.True(s.creds.Verify("1234"))
}

// Persistence failure tests

func (s *EngineSuite) TestWriteFailureLeavesBalanceUnchanged() {
	s.unlock()
	s.port.FailWrites("balance", errors.New("disk full"))

	_, err := s.engine.Deposit(100)
	s.Error(err)
	_, err = s.engine.Withdraw(600)
	s.Error(err)
	_, err = s.engine.Transfer("42", 600)
	s.Error(err)

	balance, err := s.engine.Balance()
	s.Require().NoError(err)
	s.Equal(1000.0, balance)
}

func (s *EngineSuite) TestMutationsSurviveRestart() {
	s.unlock()
	_, err := s.engine.Deposit(500)
	s.Require().NoError(err)

	s.build()
	s.unlock()

	balance, err := s.engine.Balance()
	s.Require().NoError(err)
	s.Equal(1500.0, balance)
}

func (s *EngineSuite) TestStateString() {
	s.Equal("locked", Locked.String())
	s.Equal("unlocked", Unlocked.String())
}
