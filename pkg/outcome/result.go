package outcome

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is either a success holding a T or a failure holding a message.
// The zero Result is a failure with an empty message.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	message   string
	isSuccess bool
}

// Succeed returns a success holding v.
func Succeed[T any](v T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		isSuccess: true,
	}
}

// Fail returns a failure holding message. T cannot be inferred and must be
// given explicitly, e.g. Fail[int]("no data found").
func Fail[T any](message string) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		message:   message,
		isSuccess: false,
	}
}

// FailFrom returns a new failure holding message, typed like existing.
// The state of existing is ignored.
func FailFrom[T any](existing Result[T], message string) Result[T] {
	return Fail[T](message)
}

// FromTuple converts a Go (value, error) pair. A non-nil err yields a
// failure holding err.Error() and v is dropped.
func FromTuple[T any](v T, err error) Result[T] {
	if isNil(err) {
		return Succeed(v)
	}
	return Fail[T](err.Error())
}

// SetSuccess replaces the Result held by dst with a new success holding v.
func SetSuccess[T any](dst *Result[T], v T) {
	if dst == nil {
		panic(Error.New("nil destination for success %v", v))
	}
	*dst = Succeed(v)
}

// SetFailure replaces the Result held by dst with a new failure holding
// message, whatever dst held before.
func SetFailure[T any](dst *Result[T], message string) {
	if dst == nil {
		panic(Error.New("nil destination for failure %q", message))
	}
	*dst = FailFrom(*dst, message)
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value. It panics if r is a failure.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(invalidAccess("value of a failed result (%s)", r.message))
	}
	return r.value
}

// ErrorMessage returns the failure message. It panics if r is a success.
func (r Result[T]) ErrorMessage() string {
	if r.isSuccess {
		panic(invalidAccess("error message of a successful result"))
	}
	return r.message
}

func (r Result[T]) TryValue() (T, bool) {
	if !r.isSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

func (r Result[T]) TryErrorMessage() (string, bool) {
	if r.isSuccess {
		return "", false
	}
	return r.message, true
}

// Err returns nil for a success and an error whose text is the message for
// a failure.
func (r Result[T]) Err() error {
	if r.isSuccess {
		return nil
	}
	return errors.New(r.message)
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%s)", r.message)
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
