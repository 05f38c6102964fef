package adapter

import "errors"

var (
	ErrNotConfigured = errors.New("remote backend not configured")
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("row not found")
	ErrConflict      = errors.New("row conflict")
	ErrRateLimited   = errors.New("rate limited")
	ErrUnavailable   = errors.New("remote backend unavailable")
)
