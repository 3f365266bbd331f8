package cronphrase

import "fmt"

// ErrorKind classifies an analysis failure.
type ErrorKind int

const (
	ErrFieldCount ErrorKind = iota + 1
	ErrOutOfRange
	ErrMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case ErrFieldCount:
		return "field_count"
	case ErrOutOfRange:
		return "out_of_range"
	case ErrMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is returned for every analysis failure. Field is empty for
// ErrFieldCount.
type Error struct {
	Kind  ErrorKind
	Field string
	Input string
	msg   string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.msg
}

func fieldCountError(expr string, got int) *Error {
	return &Error{
		Kind:  ErrFieldCount,
		Input: expr,
		msg:   fmt.Sprintf("cron expression must have 6 or 7 fields, got %d", got),
	}
}

func outOfRangeError(k Kind, value uint64) *Error {
	return &Error{
		Kind:  ErrOutOfRange,
		Field: k.Name(),
		Input: fmt.Sprint(value),
		msg:   fmt.Sprintf("value %d not within %s range (%d-%d)", value, k.Name(), k.Min(), k.Max()),
	}
}

func malformedError(k Kind, section string) *Error {
	return &Error{
		Kind:  ErrMalformed,
		Field: k.Name(),
		Input: section,
		msg:   fmt.Sprintf("invalid input %q at %s field", section, k.Name()),
	}
}
