package entities

import (
	"fmt"
	"unicode/utf8"
)

// ValidationKind tells apart a field of the wrong type from a field with
// a well-typed but unacceptable value.
type ValidationKind string

const (
	KindType  ValidationKind = "type"
	KindValue ValidationKind = "value"
)

// ValidationError is returned by constructors and Update methods when a
// field fails its invariant. Nothing is committed when it is returned.
type ValidationError struct {
	Field   string
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewTypeError reports a field holding a value of the wrong type.
func NewTypeError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Kind: KindType, Message: fmt.Sprintf(format, args...)}
}

// NewValueError reports a field holding an out-of-range or malformed value.
func NewValueError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Kind: KindValue, Message: fmt.Sprintf(format, args...)}
}

func validateString(field string, value string, maxLen int) error {
	if value == "" {
		return NewValueError(field, "%s is required", field)
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return NewValueError(field, "%s must be less than %d characters", field, maxLen)
	}
	return nil
}

// firstError returns the first non-nil error, so that validation of an
// update request stops before anything is applied.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
