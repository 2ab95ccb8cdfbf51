// Package errs provides standardized error types for the shipment lifecycle engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - IllegalTransitionError: For when a state machine rejects a transition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, which keeps
// the error taxonomy stable across the engine: validation failures unwrap to
// ErrValueIsInvalid/ErrValueIsRequired/ErrValueIsOutOfRange, unknown
// identifiers to ErrObjectNotFound, and rejected status changes to
// ErrIllegalTransition.
package errs
