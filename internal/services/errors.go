package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrReminderNotFound   = errors.New("maintenance reminder not found")
	ErrNoUsers            = errors.New("no users registered")
	ErrNoVehicles         = errors.New("no vehicles found")
	ErrNoReminders        = errors.New("no maintenance reminders found")
	ErrNoCatalogData      = errors.New("no data found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("you do not have permission to access this resource")
	ErrNoImage            = errors.New("vehicle has no image to delete")
)

// ValidationError marks missing or malformed request fields; handlers map it
// to a 400 with the message as-is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErr(msg string) error {
	return &ValidationError{Msg: msg}
}
