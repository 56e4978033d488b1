package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrRequiredField   = errors.New("required field is missing")
	ErrNotAllowedValue = errors.New("value is not allowed")
	ErrTooFewItems     = errors.New("too few items")
	ErrInvalidField    = errors.New("invalid field")
)

// FieldError describes one rejected field of a validated request.
type FieldError struct {
	// Field is the json name of the field.
	Field string
	// Tag is the failed rule (required, oneof, min, ...).
	Tag string
	// Param is the rule parameter, e.g. the allowed values of oneof.
	Param string
	// Value is the rejected value.
	Value any
}

func (e *FieldError) Error() string {
	switch e.Tag {
	case "required":
		return "missing required argument: " + e.Field
	case "oneof":
		return "invalid " + e.Field + " " + quote(e.Value) + ": must be one of " + joinParam(e.Param)
	case "min":
		return e.Field + " must contain at least " + e.Param + " item(s)"
	default:
		return "invalid " + e.Field + ": failed on " + e.Tag
	}
}

func (e *FieldError) Unwrap() error {
	switch e.Tag {
	case "required":
		return ErrRequiredField
	case "oneof":
		return ErrNotAllowedValue
	case "min":
		return ErrTooFewItems
	default:
		return ErrInvalidField
	}
}
