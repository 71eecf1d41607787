// Package auth holds the per-run authentication gate.
package auth

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/hance08/atm/internal/logging"
)

// ErrIncorrectPin is what front ends report when Authenticate fails.
var ErrIncorrectPin = errors.New("incorrect PIN")

type Verifier interface {
	Verify(candidate string) bool
}

// Session starts locked and unlocks on the first correct PIN. It never
// locks again; the run ends with the process.
type Session struct {
	mu            sync.RWMutex
	verifier      Verifier
	log           *zap.Logger
	authenticated bool
}

func NewSession(verifier Verifier, logger *zap.Logger) *Session {
	return &Session{
		verifier: verifier,
		log:      logging.OrNop(logger).With(zap.String("component", "session")),
	}
}

func (s *Session) Authenticate(pin string) bool {
	if !s.verifier.Verify(pin) {
		s.log.Info("authentication failed")
		return false
	}

	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()

	s.log.Info("authenticated")
	return true
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.authenticated
}
