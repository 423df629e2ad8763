// api/errors/curfew_errors.go
package errors

import "errors"

var (
	ErrCurfewSettingsNotFound = errors.New("curfew settings not found")
	ErrInvalidCurfewWindow    = errors.New("invalid curfew window")
	ErrPropertyNotFound       = errors.New("property not found")
)
