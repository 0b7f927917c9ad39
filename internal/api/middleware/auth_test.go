package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	t.Run("valid header puts user id into context", func(t *testing.T) {
		var gotID int64
		var gotOK bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, gotOK = UserIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/1", nil)
		req.Header.Set("X-User-ID", "42")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(42), gotID)
	})

	t.Run("rejects missing and malformed header", func(t *testing.T) {
		tests := []struct {
			name   string
			header string
		}{
			{name: "missing header", header: ""},
			{name: "not a number", header: "abc"},
			{name: "non-positive id", header: "0"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				called := false
				next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					called = true
				})

				req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/1", nil)
				if tt.header != "" {
					req.Header.Set("X-User-ID", tt.header)
				}
				rec := httptest.NewRecorder()

				Auth(next).ServeHTTP(rec, req)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.False(t, called)
			})
		}
	})
}

func TestUserIDFromContext(t *testing.T) {
	t.Run("empty context has no user id", func(t *testing.T) {
		_, ok := UserIDFromContext(context.Background())
		assert.False(t, ok)
	})
}
