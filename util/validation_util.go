// api/util/validation_util.go

package util

import (
	"fmt"
	"strings"

	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	"github.com/dev-sahilarora/nestly/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidateAccessEventRequest checks the ingestion payload before anything is
// written. Missing fields are reported together so the terminal operator sees
// the full list at once.
func (v *ValidationUtil) ValidateAccessEventRequest(req model.RecordAccessRequest) error {
	var missing []string
	if req.UserID == "" {
		missing = append(missing, "user_id")
	}
	if req.PropertyID == "" {
		missing = append(missing, "property_id")
	}
	if req.CheckType == "" {
		missing = append(missing, "check_type")
	}
	if req.AuthenticationMethod == "" {
		missing = append(missing, "authentication_method")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", nestly_errors.ErrMissingRequiredFields, strings.Join(missing, ", "))
	}

	if !req.CheckType.Valid() {
		return fmt.Errorf("%w: %q", nestly_errors.ErrInvalidCheckType, req.CheckType)
	}
	if !req.AuthenticationMethod.Valid() {
		return fmt.Errorf("%w: %q", nestly_errors.ErrInvalidAuthMethod, req.AuthenticationMethod)
	}
	return nil
}

func (v *ValidationUtil) ValidateCurfewSettings(settings model.PropertyCurfewSettings) error {
	if settings.PropertyID == "" {
		return fmt.Errorf("property ID cannot be empty")
	}
	if _, err := model.ParseClock(settings.CurfewStartTime); err != nil {
		return fmt.Errorf("%w: %v", nestly_errors.ErrInvalidCurfewWindow, err)
	}
	if _, err := model.ParseClock(settings.CurfewEndTime); err != nil {
		return fmt.Errorf("%w: %v", nestly_errors.ErrInvalidCurfewWindow, err)
	}
	return nil
}

func (v *ValidationUtil) ValidateNotification(n model.Notification) error {
	if n.UserID == "" {
		return fmt.Errorf("notification user ID cannot be empty")
	}
	if n.Title == "" {
		return fmt.Errorf("notification title cannot be empty")
	}
	if n.Type == "" {
		return fmt.Errorf("notification type cannot be empty")
	}
	return nil
}
