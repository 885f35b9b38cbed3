package auth

// AccessPolicy records which route patterns may be served without a
// principal. Every other matched route requires one.
type AccessPolicy struct {
	anonymous map[string]struct{}
}

func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{anonymous: make(map[string]struct{})}
}

// AllowAnonymous marks route patterns (as registered with the router, for
// example "/health" or "/api/tasks/{id}") as public.
func (p *AccessPolicy) AllowAnonymous(patterns ...string) {
	for _, pattern := range patterns {
		p.anonymous[pattern] = struct{}{}
	}
}

// RequiresPrincipal reports whether the matched route pattern is protected.
// An empty pattern means no route matched; that request is left to the
// router's not-found handling.
func (p *AccessPolicy) RequiresPrincipal(pattern string) bool {
	if pattern == "" {
		return false
	}
	_, public := p.anonymous[pattern]
	return !public
}
