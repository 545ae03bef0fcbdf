package outcome

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// Value returns the success value; it panics on a failure
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithMessage defines an interface for types that hold either a value or a failure message
type WithMessage[T any] interface {
	ValueProvider[T]
	// ErrorMessage returns the failure message; it panics on a success
	ErrorMessage() string
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Inspectable extends WithMessage with accessors that never panic
type Inspectable[T any] interface {
	WithMessage[T]
	TryValue() (T, bool)
	TryErrorMessage() (string, bool)
	Id() uuid.UUID
}

var _ Inspectable[int] = Result[int]{}
