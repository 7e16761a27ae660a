// Package logging provides structured logging for the skillindex CLI using slog.
//
// Logs are always written to stderr so stdout carries nothing but the
// rendered catalog. The text handler colorizes levels when stderr is a
// terminal; the JSON handler is the standard library's.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Debug("scanning", "root", root)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	logger := logging.ForTest(t)
package logging
