package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-manager/models"
	"github.com/golang-jwt/jwt/v5"
)

// validMethods are the symmetric algorithms accepted for incoming tokens.
var validMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// Checks describes what [ValidationRules] enforces.
type Checks struct {
	Signature     bool
	Expiry        bool
	Issuer        bool
	Audience      bool
	HTTPSMetadata bool
	ClockSkew     time.Duration
}

// ValidationRules verifies bearer tokens against a symmetric key.
//
// Signature and expiry are always enforced with zero clock skew. Issuer and
// audience are not validated. Tokens are accepted over plain HTTP so the
// API can run behind proxies that do not terminate TLS; this is a known
// weakening of the transport requirement.
type ValidationRules struct {
	key    []byte
	now    func() time.Time
	parser *jwt.Parser
}

// Option customizes [NewValidationRules].
type Option func(*ValidationRules)

// WithClock replaces time.Now for expiry checks and issued tokens.
func WithClock(now func() time.Time) Option {
	return func(r *ValidationRules) {
		r.now = now
	}
}

// NewValidationRules derives the signing key from the UTF-8 bytes of secret.
func NewValidationRules(secret string, opts ...Option) (*ValidationRules, error) {
	if secret == "" {
		return nil, ErrEmptySigningKey
	}

	r := &ValidationRules{
		key: []byte(secret),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.parser = jwt.NewParser(
		jwt.WithValidMethods(validMethods),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(r.now),
	)

	return r, nil
}

// Checks reports the enforced validation checks.
func (r *ValidationRules) Checks() Checks {
	return Checks{
		Signature: true,
		Expiry:    true,
	}
}

// Validate verifies tokenString and returns the principal it carries.
// A token is rejected from the exact instant of its expiry.
func (r *ValidationRules) Validate(_ context.Context, tokenString string) (models.Principal, error) {
	if tokenString == "" {
		return models.Principal{}, ErrEmptyToken
	}

	claims := &models.Claims{}
	if _, err := r.parser.ParseWithClaims(tokenString, claims, r.keyFunc); err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims.Principal(), nil
}

// Sign serializes claims as an HS256 token signed with the rules' key.
func (r *ValidationRules) Sign(claims models.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(r.key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}
	return signed, nil
}

// Issue signs a token for principal that expires after ttl.
func (r *ValidationRules) Issue(principal models.Principal, ttl time.Duration) (string, error) {
	now := r.now()
	return r.Sign(models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  principal.Name,
		Email: principal.Email,
		Roles: principal.Roles,
	})
}

func (r *ValidationRules) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigningMethod, token.Header["alg"])
	}
	return r.key, nil
}
