package domain

import "errors"

// ErrorKind classifies business errors
type ErrorKind int

const (
	// KindValidation malformed input or a violated business rule, no state change
	KindValidation ErrorKind = iota + 1
	// KindConflict lost race or duplicate resource
	KindConflict
	// KindNotFound slot or token does not resolve (gone)
	KindNotFound
	// KindIntegrity persisted data violates an invariant, fatal
	KindIntegrity
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindIntegrity:
		return "integrity"
	default:
		return "unknown"
	}
}

// Error business error with a stable message key used for localisation
type Error struct {
	Kind ErrorKind
	Key  string
}

// NewError creates a business error
func NewError(kind ErrorKind, key string) *Error {
	return &Error{Kind: kind, Key: key}
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Key
}

// AsError extracts a business error from the chain
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf returns the kind of a business error, 0 for any other error
func KindOf(err error) ErrorKind {
	if de, ok := AsError(err); ok {
		return de.Kind
	}
	return 0
}

// Errors shared between the availability filter and the booking lifecycle
var (
	// ErrDateGone slot is unknown or not visible to the viewer
	ErrDateGone = NewError(KindNotFound, "date-gone")

	// ErrDateTaken slot exists but already has a booking
	ErrDateTaken = NewError(KindConflict, "date-no-longer-available")

	// ErrDateTypeNotFound date type is unknown or not enabled
	ErrDateTypeNotFound = NewError(KindNotFound, "date-type-not-found")
)
