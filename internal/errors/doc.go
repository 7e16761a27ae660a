// Package errors provides error handling conventions for the skillindex CLI.
//
// It re-exports the wrapping helpers from github.com/cockroachdb/errors so
// callers import a single errors package, and defines the [ExitError] type
// that carries a process exit code and an optional suggestion.
//
// # Exit Codes
//
//   - ExitSuccess (0): the catalog was rendered and the index written
//   - ExitUser (1): invalid invocation or logging configuration
//   - ExitSystem (2): filesystem or encoding failure while scanning or writing
//
// # ExitError
//
// [ExitError] supports unwrapping via [errors.Unwrap] and [errors.As]:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
