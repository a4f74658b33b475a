// Package auth gates a session behind a PIN with a bounded number of attempts.
package auth

import (
	"context"
	"log/slog"
)

// PINReader acquires one masked line of input.
type PINReader interface {
	ReadMasked() (string, error)
}

// View shows the authentication prompts.
type View interface {
	PINPrompt(attempt, maxAttempts int)
	IncorrectPIN(remaining int)
}

// Service verifies the PIN. It keeps the attempt counter for one session.
type Service struct {
	verifier    Verifier
	maxAttempts int
	input       PINReader
	view        View
	logger      *slog.Logger

	attempts int
}

// New creates an authenticator allowing maxAttempts tries.
func New(
	verifier Verifier,
	maxAttempts int,
	input PINReader,
	view View,
	logger *slog.Logger,
) *Service {
	return &Service{
		verifier:    verifier,
		maxAttempts: maxAttempts,
		input:       input,
		view:        view,
		logger:      logger,
	}
}

// Attempts returns the number of failed attempts consumed so far.
func (s *Service) Attempts() int {
	return s.attempts
}

// Remaining returns the number of attempts left.
func (s *Service) Remaining() int {
	return s.maxAttempts - s.attempts
}

// Authenticate prompts until the PIN matches or the attempt budget is spent.
// It returns true on a match. A lockout is (false, nil); an error means the
// input device failed or ctx was cancelled.
func (s *Service) Authenticate(ctx context.Context) (bool, error) {
	log := s.logger.With("context", "Authenticate")
	log.Debug("Authenticate called", "max_attempts", s.maxAttempts)

	s.attempts = 0
	for s.attempts < s.maxAttempts {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		s.view.PINPrompt(s.attempts+1, s.maxAttempts)
		pin, err := s.input.ReadMasked()
		if err != nil {
			log.Error("Reading PIN failed", "error", err)
			return false, err
		}

		if s.verifier.Verify(pin) {
			log.Info("Authentication successful", "attempt", s.attempts+1)
			return true, nil
		}

		s.attempts++
		log.Warn("Incorrect PIN", "attempt", s.attempts, "remaining", s.Remaining())
		if s.attempts < s.maxAttempts {
			s.view.IncorrectPIN(s.Remaining())
		}
	}

	log.Warn("Authentication locked", "attempts", s.attempts)
	return false, nil
}
