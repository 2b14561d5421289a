// Package token inspects bearer tokens issued by the upstream payment API.
// The API signs its own tokens, so the signature is never verified here; only
// the expiry claim matters to decide whether a token may still be attached to
// an outbound request.
package token

import (
	"time"

	"payref-console/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errs.New("malformed bearer token")
	ErrNoExpiryClaim  = errs.New("bearer token has no expiry claim")
)

// ExpiresAt extracts the exp claim without verifying the signature.
func ExpiresAt(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, errs.Mark(err, ErrMalformedToken)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}
	return exp.Time, nil
}

// IsExpired reports whether the token must not be attached to a request.
// Undecodable tokens count as expired so they are refreshed or discarded
// instead of being sent upstream.
func IsExpired(raw string, now time.Time) bool {
	exp, err := ExpiresAt(raw)
	if err != nil {
		return true
	}
	return !now.Before(exp)
}
