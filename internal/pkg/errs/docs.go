// Package errs provides standardized error types for the order manager.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the use cases, and the adapters.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when an object with the same identity is already stored
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions, with a cause variant for the value errors
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//   - Is() method on the value errors so errors.Is also matches the cause
package errs
