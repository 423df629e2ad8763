// api/errors/access_errors.go
package errors

import "errors"

var (
	ErrMissingRequiredFields = errors.New("Missing required fields")
	ErrInvalidCheckType      = errors.New("invalid check type")
	ErrInvalidAuthMethod     = errors.New("invalid authentication method")
	ErrAccessEventNotFound   = errors.New("access event not found")
	ErrDatabaseOperation     = errors.New("database operation failed")
	ErrInternalServer        = errors.New("internal server error")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")
)
