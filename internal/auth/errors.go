package auth

import "errors"

var (
	// ErrEmptySigningKey is returned when the resolved secret is empty.
	ErrEmptySigningKey = errors.New("signing key is empty")
	// ErrEmptyToken is returned when Validate is called without a token.
	ErrEmptyToken = errors.New("empty token")
	// ErrInvalidToken wraps every signature, expiry or format failure.
	ErrInvalidToken = errors.New("token is expired or invalid")
	// ErrUnexpectedSigningMethod is returned for tokens not signed with HMAC.
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")
)
