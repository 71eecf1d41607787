package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/suite"

	"github.com/hance08/atm/internal/auth"
	"github.com/hance08/atm/internal/credential"
	"github.com/hance08/atm/internal/ledger"
)

type CommandSuite struct {
	suite.Suite
	dataDir string
	cfgPath string
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}

func (s *CommandSuite) SetupSuite() {
	pterm.DisableOutput()
}

func (s *CommandSuite) TearDownSuite() {
	pterm.EnableOutput()
}

func (s *CommandSuite) SetupTest() {
	dir := s.T().TempDir()
	s.dataDir = filepath.Join(dir, "data")
	s.cfgPath = filepath.Join(dir, "config.yaml")

	cfg := fmt.Sprintf("storage:\n  backend: file\n  dir: %s\ndefaults:\n  currency: INR\n", s.dataDir)
	s.Require().NoError(os.WriteFile(s.cfgPath, []byte(cfg), 0600))
}

func (s *CommandSuite) run(args ...string) error {
	rootCmd, d := newRootCmd(os.DirFS(".."))
	defer d.close()

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", s.cfgPath}, args...))

	return rootCmd.Execute()
}

func (s *CommandSuite) stored(key string) string {
	data, err := os.ReadFile(filepath.Join(s.dataDir, key+".txt"))
	s.Require().NoError(err)
	return string(data)
}

func (s *CommandSuite) TestBalance() {
	s.NoError(s.run("--pin", "1234", "balance"))
}

func (s *CommandSuite) TestWrongPin() {
	err := s.run("--pin", "0000", "balance")

	s.ErrorIs(err, auth.ErrIncorrectPin)
	s.Equal("Incorrect PIN. Please try again.", err.Error())
}

func (s *CommandSuite) TestWithdrawScenario() {
	s.Require().NoError(s.run("--pin", "1234", "withdraw", "600"))
	s.Equal("400.0", s.stored("balance"))

	err := s.run("--pin", "1234", "withdraw", "500")
	s.ErrorIs(err, ledger.ErrInsufficientFunds)
	s.Equal("Insufficient funds for withdrawal.", err.Error())
	s.Equal("400.0", s.stored("balance"))
}

func (s *CommandSuite) TestWithdrawBelowMinimumMessage() {
	err := s.run("--pin", "1234", "withdraw", "499.99")

	s.ErrorIs(err, ledger.ErrBelowMinimum)
	s.Equal("Minimum withdrawal amount is ₹500.00.", err.Error())
}

func (s *CommandSuite) TestDeposit() {
	s.Require().NoError(s.run("--pin", "1234", "deposit", "250.5"))
	s.Equal("1250.5", s.stored("balance"))

	err := s.run("--pin", "1234", "deposit", "abc")
	s.ErrorIs(err, ledger.ErrParse)
}

func (s *CommandSuite) TestTransfer() {
	err := s.run("--pin", "1234", "transfer", "abc", "600")
	s.ErrorIs(err, ledger.ErrInvalidDestination)

	s.Require().NoError(s.run("--pin", "1234", "transfer", "98765", "600"))
	s.Equal("400.0", s.stored("balance"))

	err = s.run("--pin", "1234", "transfer", "98765", "100")
	s.Equal("Minimum transfer amount is ₹500.00.", err.Error())
}

func (s *CommandSuite) TestPinChange() {
	err := s.run("--pin", "1234", "pin", "change", "--current", "1234", "--new", "999")
	s.ErrorIs(err, credential.ErrInvalidNewPin)

	s.Require().NoError(s.run("--pin", "1234", "pin", "change", "--current", "1234", "--new", "5678"))
	s.Equal("5678", s.stored("pin"))

	s.NoError(s.run("--pin", "5678", "balance"))
	s.ErrorIs(s.run("--pin", "1234", "balance"), auth.ErrIncorrectPin)
}

func (s *CommandSuite) TestResetNeedsNoPin() {
	s.Require().NoError(s.run("--pin", "1234", "withdraw", "600"))
	s.Require().NoError(s.run("--pin", "1234", "pin", "change", "--current", "1234", "--new", "5678"))

	s.Require().NoError(s.run("reset", "--yes"))

	s.Equal("1000.0", s.stored("balance"))
	s.Equal("1234", s.stored("pin"))
}

func (s *CommandSuite) TestInfo() {
	s.NoError(s.run("info"))
}

func (s *CommandSuite) TestUnknownBackendFails() {
	cfg := "storage:\n  backend: floppy\ndefaults:\n  currency: INR\n"
	s.Require().NoError(os.WriteFile(s.cfgPath, []byte(cfg), 0600))

	s.Error(s.run("info"))
}

func (s *CommandSuite) TestEnvOverridesCurrency() {
	s.T().Setenv("ATM_DEFAULTS_CURRENCY", "USD")

	err := s.run("--pin", "1234", "withdraw", "10")
	s.Equal("Minimum withdrawal amount is $500.00.", err.Error())
}
