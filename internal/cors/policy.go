// Package cors builds the cross-origin policy of the API from the resolved
// origin list.
//
// A policy runs in exactly one of two modes chosen at startup: wildcard
// (any origin, method and header, no credentials) or a fixed origin list
// with credentials. The header handling is delegated to go-chi/cors.
package cors

import (
	"net/http"
	"slices"
	"strings"

	chicors "github.com/go-chi/cors"
)

// Wildcard is the single-entry origin list that selects wildcard mode.
const Wildcard = "*"

const maxAgeSeconds = 600

var allowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Mode is the policy mode.
type Mode int

const (
	ModeFixedList Mode = iota
	ModeWildcard
)

func (m Mode) String() string {
	if m == ModeWildcard {
		return "wildcard"
	}
	return "fixed-list"
}

// Policy is immutable after [NewPolicy] and safe for concurrent use.
type Policy struct {
	mode    Mode
	origins []string
	cors    *chicors.Cors
}

// NewPolicy selects wildcard mode when origins holds only "*" and the
// fixed-list mode otherwise. In fixed-list mode a stray "*" is dropped so
// credentials are never combined with a wildcard, and origins are compared
// in lower case as go-chi/cors does.
func NewPolicy(origins []string) *Policy {
	p := &Policy{mode: ModeFixedList}

	var wildcard bool
	for _, origin := range origins {
		origin = strings.ToLower(strings.TrimSpace(origin))
		switch {
		case origin == Wildcard:
			wildcard = true
		case origin == "", slices.Contains(p.origins, origin):
		default:
			p.origins = append(p.origins, origin)
		}
	}
	if wildcard && len(p.origins) == 0 {
		p.mode = ModeWildcard
		p.origins = []string{Wildcard}
	}

	p.cors = chicors.New(p.Options())
	return p
}

// Mode reports the selected mode.
func (p *Policy) Mode() Mode {
	return p.mode
}

// Origins returns a copy of the effective origin list.
func (p *Policy) Origins() []string {
	return slices.Clone(p.origins)
}

func (p *Policy) AllowsAnyOrigin() bool {
	return p.mode == ModeWildcard
}

func (p *Policy) AllowsCredentials() bool {
	return p.mode == ModeFixedList
}

// Allows reports whether a request from origin may proceed.
func (p *Policy) Allows(origin string) bool {
	if p.mode == ModeWildcard {
		return true
	}
	return slices.Contains(p.origins, strings.ToLower(origin))
}

// Options renders the policy as go-chi/cors options.
func (p *Policy) Options() chicors.Options {
	opts := chicors.Options{
		AllowedMethods: allowedMethods,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         maxAgeSeconds,
	}

	if p.mode == ModeWildcard {
		opts.AllowedOrigins = []string{Wildcard}
		return opts
	}

	opts.AllowedOrigins = slices.Clone(p.origins)
	opts.AllowCredentials = true
	return opts
}

// Handler writes the CORS response headers. Preflight requests are answered
// here and never reach next.
func (p *Policy) Handler(next http.Handler) http.Handler {
	return p.cors.Handler(next)
}
