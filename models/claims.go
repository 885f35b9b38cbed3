package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the bearer token payload: the registered claim set plus the
// profile claims copied into the request principal.
type Claims struct {
	jwt.RegisteredClaims

	Name  string   `json:"name,omitempty"`
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Principal builds the authenticated caller from the claims.
func (c *Claims) Principal() Principal {
	p := Principal{
		Subject: c.Subject,
		Name:    c.Name,
		Email:   c.Email,
		Roles:   c.Roles,
	}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p
}
