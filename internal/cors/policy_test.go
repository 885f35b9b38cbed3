package cors

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy_Modes(t *testing.T) {
	tests := []struct {
		name     string
		origins  []string
		wantMode Mode
	}{
		{name: "wildcard", origins: []string{"*"}, wantMode: ModeWildcard},
		{name: "single origin", origins: []string{"https://app.example"}, wantMode: ModeFixedList},
		{name: "several origins", origins: []string{"https://a.example", "https://b.example"}, wantMode: ModeFixedList},
		{name: "wildcard among others is not wildcard mode", origins: []string{"*", "https://a.example"}, wantMode: ModeFixedList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(tt.origins)

			assert.Equal(t, tt.wantMode, p.Mode())
			assert.Equal(t, tt.wantMode == ModeWildcard, p.AllowsAnyOrigin())
			assert.False(t, p.AllowsAnyOrigin() && p.AllowsCredentials(), "wildcard and credentials are mutually exclusive")
			assert.True(t, p.AllowsAnyOrigin() || p.AllowsCredentials())

			opts := p.Options()
			assert.False(t, opts.AllowCredentials && slices.Contains(opts.AllowedOrigins, Wildcard))
		})
	}
}

func TestPolicy_Allows(t *testing.T) {
	fixed := NewPolicy([]string{"https://a.example"})
	assert.True(t, fixed.Allows("https://a.example"))
	assert.False(t, fixed.Allows("https://evil.example"))
	assert.False(t, fixed.Allows("https://a.example.evil"))

	wildcard := NewPolicy([]string{"*"})
	assert.True(t, wildcard.Allows("https://anything.example"))
}

func TestPolicy_OriginsIsACopy(t *testing.T) {
	origins := []string{"https://a.example"}
	p := NewPolicy(origins)

	origins[0] = "https://mutated.example"
	p.Origins()[0] = "https://mutated.example"

	assert.Equal(t, []string{"https://a.example"}, p.Origins())
}

func TestPolicy_Handler_FixedList(t *testing.T) {
	p := NewPolicy([]string{"https://a.example"})
	var nextCalled bool
	h := p.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Origin", "https://a.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, "https://a.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestPolicy_Handler_Wildcard(t *testing.T) {
	p := NewPolicy([]string{"*"})
	h := p.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Origin", "https://anything.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestPolicy_Handler_PreflightStopsChain(t *testing.T) {
	p := NewPolicy([]string{"https://a.example"})
	h := p.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Fail(t, "preflight must not reach the next handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "https://a.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://a.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}

func TestNewPolicy_WildcardAmongOriginsIsDropped(t *testing.T) {
	p := NewPolicy([]string{"*", "https://app.example"})

	assert.Equal(t, ModeFixedList, p.Mode())
	assert.Equal(t, []string{"https://app.example"}, p.Origins())
	assert.NotContains(t, p.Options().AllowedOrigins, Wildcard)
	assert.False(t, p.Allows("https://evil.example"))

	h := p.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for _, origin := range []string{"https://app.example", "https://evil.example"} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", origin)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.NotEqual(t, Wildcard, rr.Header().Get("Access-Control-Allow-Origin"), origin)
	}
}

func TestNewPolicy_RepeatedWildcardIsWildcardMode(t *testing.T) {
	p := NewPolicy([]string{"*", " * "})

	assert.Equal(t, ModeWildcard, p.Mode())
	assert.Equal(t, []string{Wildcard}, p.Origins())
}

func TestPolicy_AllowsIgnoresCase(t *testing.T) {
	p := NewPolicy([]string{"https://App.Example", "https://app.example"})

	assert.Equal(t, []string{"https://app.example"}, p.Origins())
	assert.True(t, p.Allows("https://app.example"))
	assert.True(t, p.Allows("https://APP.example"))

	h := p.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}
