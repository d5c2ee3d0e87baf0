package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates that an expense exceeds the available
// balance of the funding source it draws from.
var ErrInsufficientFunds = errors.New("insufficient funds for source")

// ErrInvalidTransition indicates that a lifecycle operation was attempted
// from a state that does not allow it.
var ErrInvalidTransition = errors.New("invalid state transition")

// ErrSync indicates that a call to the external backend failed. The local
// snapshot has been rolled back to its pre-mutation value.
var ErrSync = errors.New("backend sync failed")
