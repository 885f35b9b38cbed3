package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "object", data: map[string]string{"status": "Healthy"}, status: http.StatusOK, wantBody: `{"status":"Healthy"}`},
		{name: "error status", data: struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		}{Status: 401, Message: "authentication required"}, status: http.StatusUnauthorized, wantBody: `{"status":401,"message":"authentication required"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "empty slice", data: []int{}, status: http.StatusOK, wantBody: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			n, err := WriteJSON(rr, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]any{"fn": func() {}}, http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotEqual(t, "application/json", rr.Header().Get("Content-Type"))
}
