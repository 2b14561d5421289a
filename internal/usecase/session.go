package usecase

import (
	"payref-console/internal/pkg/clock"
	"payref-console/internal/pkg/errs"
	"payref-console/internal/pkg/token"
)

// SessionTokens is the slice of the storage layer the validator needs.
type SessionTokens interface {
	LoadToken() (string, bool)
}

// SessionValidator gates the console routes: every route except login and
// health requires a stored, non-expired session token.
type SessionValidator interface {
	Validate() error
}

type sessionValidatorImpl struct {
	tokens SessionTokens
	clock  clock.Clock
}

func NewSessionValidator(tokens SessionTokens, clk clock.Clock) SessionValidator {
	return &sessionValidatorImpl{tokens: tokens, clock: clk}
}

func (s *sessionValidatorImpl) Validate() error {
	raw, ok := s.tokens.LoadToken()
	if !ok {
		return errs.ErrSessionExpired
	}
	if token.IsExpired(raw, s.clock.Now()) {
		return errs.ErrSessionExpired
	}
	return nil
}
