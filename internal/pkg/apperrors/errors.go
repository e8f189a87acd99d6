package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrTokenNotFound    = errors.New("token not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// Timetable entity errors
var (
	ErrScheduleNotFound          = errors.New("schedule not found")
	ErrSemesterNotFound          = errors.New("semester not found")
	ErrNoCurrentSemester         = errors.New("no current semester is set")
	ErrLessonNotFound            = errors.New("lesson not found")
	ErrPeriodNotFound            = errors.New("period not found")
	ErrRoomNotFound              = errors.New("room not found")
	ErrGroupNotFound             = errors.New("group not found")
	ErrTeacherNotFound           = errors.New("teacher not found")
	ErrTemporaryScheduleNotFound = errors.New("temporary schedule not found")

	// ErrScheduleConflict is returned when a proposed schedule would share
	// its (semester, day, period, group) slot with an existing active
	// schedule of intersecting parity.
	ErrScheduleConflict = errors.New("schedule conflicts with an existing one")
)

// NewNotFoundError wraps an entity not-found sentinel with a message.
func NewNotFoundError(err error, message string) error {
	return &CustomError{Err: err, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrScheduleConflict, Message: message}
}

// NewBadRequestError creates a bad request error with a message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// IsNotFound reports whether err is any of the entity not-found errors.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrResourceNotFound,
		ErrScheduleNotFound,
		ErrSemesterNotFound,
		ErrNoCurrentSemester,
		ErrLessonNotFound,
		ErrPeriodNotFound,
		ErrRoomNotFound,
		ErrGroupNotFound,
		ErrTeacherNotFound,
		ErrTemporaryScheduleNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// CustomError carries an underlying sentinel plus human-readable context.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
