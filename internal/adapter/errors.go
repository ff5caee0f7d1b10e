package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes. Callers match them with
// [errors.Is] without caring about the transport.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
