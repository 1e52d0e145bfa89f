package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateUserRequest
		wantErr string
	}{
		{
			name:    "valid request",
			request: CreateUserRequest{Name: "Jeanne Martin", Email: "jeanne@example.com", Password: "password123"},
		},
		{
			name:    "missing name",
			request: CreateUserRequest{Email: "jeanne@example.com", Password: "password123"},
			wantErr: "required",
		},
		{
			name:    "invalid email",
			request: CreateUserRequest{Name: "Jeanne Martin", Email: "not-an-email", Password: "password123"},
			wantErr: "email",
		},
		{
			name:    "password too short",
			request: CreateUserRequest{Name: "Jeanne Martin", Email: "jeanne@example.com", Password: "short"},
			wantErr: "min",
		},
		{
			name:    "password exactly 8 characters",
			request: CreateUserRequest{Name: "Jeanne Martin", Email: "jeanne@example.com", Password: "12345678"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := &LoginRequest{Email: "jeanne@example.com", Password: "password123"}
	require.NoError(t, valid.Validate())

	for _, bad := range []*LoginRequest{
		{Password: "password123"},
		{Email: "not-an-email", Password: "password123"},
		{Email: "jeanne@example.com"},
	} {
		assert.Error(t, bad.Validate())
	}
}

func TestLoginResponse_Serialization(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	resp := LoginResponse{
		User: &User{
			ID:        userID,
			Name:      "Jeanne Martin",
			Email:     "jeanne@example.com",
			CreatedAt: now,
			UpdatedAt: now,
		},
		Token: "test-jwt-token-12345",
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, userID.String())
	assert.Contains(t, body, "test-jwt-token-12345")
	assert.NotContains(t, body, "password")

	var decoded LoginResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, resp.Token, decoded.Token)
	require.NotNil(t, decoded.User)
	assert.Equal(t, userID, decoded.User.ID)
	assert.Equal(t, "jeanne@example.com", decoded.User.Email)
}
