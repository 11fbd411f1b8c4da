package domain

import "errors"

// ErrNotFound is returned by repositories and services on lookup misses.
// Callers treat it as a no-op signal, never as a fatal condition.
var ErrNotFound = errors.New("not found")

// Validation reason codes surfaced to the presentation layer.
const (
	CodeNameRequired     = "name_required"
	CodePointsNegative   = "points_negative"
	CodeFrequencyInvalid = "frequency_invalid"
	CodeCountInvalid     = "count_invalid"
	CodeTimeInvalid      = "time_invalid"
	CodeDurationInvalid  = "duration_invalid"
	CodeSlotMismatch     = "slot_count_mismatch"
	CodeWeekdayRequired  = "weekday_required"
	CodeWeekdayRange     = "weekday_out_of_range"
	CodeMonthDayRequired = "month_day_required"
	CodeMonthDayRange    = "month_day_out_of_range"
)

// ValidationError is a rejected operation with a machine-readable reason
// code. Validation runs before any mutation, so stored state is never
// corrupted by a rejected request.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
