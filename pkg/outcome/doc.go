// Package outcome provides Result[T], a value that is either a success
// carrying a T or a failure carrying a human-readable message.
//
// API surface:
// - Succeed/Fail/FailFrom: construct a Result[T]
// - FromTuple: construct from a Go (T, error) pair
// - SetSuccess/SetFailure: re-seat a Result[T] variable with a new instance
// - IsSuccess/IsFailure: query the active variant
// - Value/ErrorMessage: read the active variant, panicking on the inactive one
// - TryValue/TryErrorMessage: read a variant with an ok flag instead of panicking
//
// A Result is immutable once constructed. Re-seating replaces what a variable
// holds and never changes an instance another variable already copied.
//
// Reading the value of a failure, or the message of a success, is a bug in
// the caller. Such reads panic with an error of class Error that also
// matches ErrInvalidAccess.
package outcome
