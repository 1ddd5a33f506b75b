package bookmark

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the process boundary can pick an exit code.
type Kind int

const (
	KindUnknown Kind = iota
	// KindUsage covers bad or missing arguments and unknown operations.
	KindUsage
	// KindIO covers open, read, seek, truncate and write failures.
	KindIO
	// KindParse covers store contents that are not a valid bookmark list.
	KindParse
	// KindSerialization covers failures encoding a collection for writing.
	KindSerialization
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage error"
	case KindIO:
		return "io error"
	case KindParse:
		return "parse error"
	case KindSerialization:
		return "serialization error"
	}
	return "error"
}

// Common errors.
var (
	// ErrEmptyName indicates a bookmark name was empty.
	ErrEmptyName = errors.New("bookmark name must not be empty")

	// ErrUnknownOperation indicates an operation other than add, remove or query.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingOperation indicates no operation was given.
	ErrMissingOperation = errors.New("no operation given (expected add, remove or query)")
)

// Error is a failure with a Kind. Op names what was being done.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind and operation.
func NewError(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// UsageErrorf builds a KindUsage error from a format string.
func UsageErrorf(format string, args ...any) error {
	return &Error{Kind: KindUsage, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsUsage returns true if err is a usage error.
func IsUsage(err error) bool {
	return KindOf(err) == KindUsage
}

// IsIO returns true if err is an I/O error.
func IsIO(err error) bool {
	return KindOf(err) == KindIO
}

// IsParse returns true if err is a parse error.
func IsParse(err error) bool {
	return KindOf(err) == KindParse
}

// IsSerialization returns true if err is a serialization error.
func IsSerialization(err error) bool {
	return KindOf(err) == KindSerialization
}

// ValidateName returns a usage error for an empty name.
func ValidateName(name string) error {
	if name == "" {
		return NewError(KindUsage, "validating name", ErrEmptyName)
	}
	return nil
}
