package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrDenied        = errors.New("authorization denied")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
	ErrUnavailable   = errors.New("store unavailable")
)
