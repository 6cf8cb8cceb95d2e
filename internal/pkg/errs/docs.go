// Package errs provides standardized error types for the recycling custody
// and transport workflow. It implements a consistent pattern for error
// creation, formatting, and unwrapping that is used throughout the subsystem.
//
// The package covers the workflow's error taxonomy:
//   - StateConflictError: a guarded state transition found its precondition
//     stale (affected rows = 0, lost race, duplicate receipt)
//   - IntegrityViolationError: an operation would break a data invariant and
//     was rejected before any write
//   - SequenceExhaustedError: the daily document-number space is used up
//   - ObjectNotFoundError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ValueIsRequiredError, VersionIsInvalidError: general validation errors
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Transient store failures are deliberately not modelled here: driver and
// transaction errors propagate wrapped, and callers decide whether to retry
// the whole operation.
package errs
