package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts the tokens it was seeded with and rejects the rest.
type stubValidator struct {
	tokens map[string]uuid.UUID
}

func (v *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	userID, ok := v.tokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return stubClaims{userID: userID}, nil
}

type stubClaims struct {
	userID uuid.UUID
}

func (c stubClaims) GetUserID() uuid.UUID { return c.userID }

// authRequest runs a request with the given Authorization header through the
// middleware and reports whether the inner handler ran plus any user ID it saw.
func authRequest(t *testing.T, validator TokenValidator, header string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()

	called := false
	var seen uuid.UUID
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if id, err := GetUserID(r); err == nil {
			seen = id
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	AuthMiddleware(validator)(inner).ServeHTTP(w, req)
	return w, called, seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{tokens: map[string]uuid.UUID{"valid-token-123": userID}}

	w, called, seen := authRequest(t, validator, "Bearer valid-token-123")

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, seen)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{tokens: map[string]uuid.UUID{"valid-token-123": userID}}

	for _, header := range []string{"bearer valid-token-123", "BEARER valid-token-123", "BeArEr valid-token-123"} {
		w, called, _ := authRequest(t, validator, header)
		assert.True(t, called, "header %q should pass", header)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAuthMiddleware_RejectsMalformedHeaders(t *testing.T) {
	validator := &stubValidator{tokens: map[string]uuid.UUID{}}

	headers := []string{
		"",                     // missing entirely
		"token-without-prefix", // no Bearer
		"Bearer",               // no token
		"Basic dXNlcjpwYXNz",   // wrong scheme
		"Bearer one two",       // too many parts
		"Bearer unknown-token", // well-formed but not issued
	}
	for _, header := range headers {
		w, called, _ := authRequest(t, validator, header)
		assert.False(t, called, "header %q should be rejected", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Unauthorized")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer  abc", "abc"}, // Fields collapses runs of spaces
		{"Bearer", ""},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		assert.Equal(t, tt.want, BearerToken(req), "header %q", tt.header)
	}
}

func TestGetUserID_Success(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, userID))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	got, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestGetUserID_WrongType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, "not-a-uuid"))

	got, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}
