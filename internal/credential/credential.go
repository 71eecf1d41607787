// Package credential owns the terminal PIN and its persisted copy.
package credential

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/logging"
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/validation"
)

var (
	ErrWrongCurrentPin = errors.New("incorrect current PIN")
	ErrInvalidNewPin   = errors.New("invalid new PIN")
)

const DefaultPin = Pin(constants.DefaultPin)

type Store struct {
	mu   sync.Mutex
	port store.ValueStore
	log  *zap.Logger
	pin  Pin
}

// New creates the store and loads the persisted PIN.
func New(port store.ValueStore, logger *zap.Logger) *Store {
	s := &Store{
		port: port,
		log:  logging.OrNop(logger).With(zap.String("component", "credential")),
	}
	s.Load()
	return s
}

// Load re-reads the persisted PIN. Missing or unreadable data falls back to
// DefaultPin without touching storage.
func (s *Store) Load() Pin {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pin = s.read()
	return s.pin
}

func (s *Store) read() Pin {
	text, err := s.port.Read(constants.KeyPin)
	if err != nil {
		if !errors.Is(err, store.ErrRecordNotFound) {
			s.log.Warn("pin unreadable, using default", zap.Error(err))
		}
		return DefaultPin
	}

	pin, err := ParsePin(text)
	if err != nil {
		s.log.Warn("stored pin is corrupt, using default", zap.Error(err))
		return DefaultPin
	}

	return pin
}

func (s *Store) Verify(candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.verify(candidate)
}

func (s *Store) verify(candidate string) bool {
	pin, err := ParsePin(candidate)
	return err == nil && pin == s.pin
}

// Change replaces the PIN after checking current. The new value is persisted
// before it becomes effective.
func (s *Store) Change(current, proposed string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.verify(current) {
		s.log.Debug("pin change rejected: wrong current pin")
		return ErrWrongCurrentPin
	}
	if !validation.IsNewPin(proposed) {
		s.log.Debug("pin change rejected: invalid new pin")
		return ErrInvalidNewPin
	}

	pin, err := ParsePin(proposed)
	if err != nil {
		return ErrInvalidNewPin
	}

	if err := s.persist(pin); err != nil {
		return err
	}

	s.log.Info("pin changed")
	return nil
}

// Reset restores DefaultPin.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist(DefaultPin)
}

func (s *Store) persist(pin Pin) error {
	if err := s.port.Write(constants.KeyPin, pin.String()); err != nil {
		s.log.Error("failed to persist pin", zap.Error(err))
		return fmt.Errorf("failed to save PIN: %w", err)
	}
	s.pin = pin
	return nil
}
