// Package errs provides standardized error types for the distribution backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels: not-found,
// invalid/required/out-of-range input, version conflicts on guarded updates,
// and forbidden operations. Domain-specific stock errors (insufficient stock,
// orphaned release) live with the product model and follow the same pattern.
package errs
