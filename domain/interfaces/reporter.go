// Package interfaces defines the contracts for domain services.
package interfaces

// RowReporter records per-row outcomes for one run. Successes reach the
// console sink only; failures reach both the console sink and the per-run
// error log file.
type RowReporter interface {
	// Success records a successful row outcome.
	Success(msg string)

	// Failure records a failed row outcome.
	Failure(msg string)

	// Path returns the error log file path, empty when no file is attached.
	Path() string

	// Close flushes and closes the error log file.
	Close() error
}
