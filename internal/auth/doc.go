// Package auth derives the bearer token validation rules from the resolved
// configuration and carries the authenticated principal through a request.
//
// The rules are built once at startup by [NewValidationRules] and are
// read-only afterwards, so a single *ValidationRules is shared by every
// concurrent request. The [AccessPolicy] route table is filled while routes
// are registered and is likewise read-only once the server is running.
package auth
