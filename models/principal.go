package models

import (
	"slices"
	"time"
)

// Principal is the authenticated caller attached to a request. It lives only
// for the duration of that request.
type Principal struct {
	Subject   string    `json:"subject"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Roles     []string  `json:"roles,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HasRole reports whether the principal carries role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}
