package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"smartcv/internal/docx"
	"smartcv/internal/extract"
	"smartcv/internal/schema"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound:
		return http.StatusNotFound
	}

	var malformed *schema.MalformedRecordError
	if errors.As(err, &malformed) {
		return http.StatusBadRequest
	}
	var unsupported *extract.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return http.StatusUnsupportedMediaType
	}
	var compose *docx.ComposeError
	if errors.As(err, &compose) {
		return http.StatusInternalServerError
	}
	var serialize *docx.SerializeError
	if errors.As(err, &serialize) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
