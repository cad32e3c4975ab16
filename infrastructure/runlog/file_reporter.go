// Package runlog reports per-row run outcomes to the console and to an
// error-only log file.
package runlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"applicant-corrector/domain/entities"
	"applicant-corrector/domain/interfaces"
	"github.com/pkg/errors"
)

// Timestamp layouts for the error file name and for individual log lines.
const (
	fileTimestampLayout = "20060102_150405"
	lineTimestampLayout = "2006-01-02 15:04:05"
)

// fileReporter implements the RowReporter interface. Successes reach the
// console only; failures reach both the console and the error file.
type fileReporter struct {
	console io.Writer
	file    *os.File
	path    string
}

// NewFileReporter creates the error log file for one run and returns a
// reporter bound to it and to the console sink. The log directory is
// created when missing.
func NewFileReporter(mode entities.RunMode, logDir string, console io.Writer) (interfaces.RowReporter, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create log directory %s", logDir)
	}

	path := filepath.Join(logDir, fmt.Sprintf("%s_errors_%s.log", mode, time.Now().Format(fileTimestampLayout)))

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create error log file %s", path)
	}

	return &fileReporter{
		console: console,
		file:    file,
		path:    path,
	}, nil
}

// Success writes the row outcome to the console. Console lines carry the
// bare message; only the error file uses the timestamped template.
func (r *fileReporter) Success(msg string) {
	fmt.Fprintln(r.console, msg)
}

// Failure writes the row outcome to the console and appends it to the
// error file
func (r *fileReporter) Failure(msg string) {
	fmt.Fprintln(r.console, msg)
	fmt.Fprintf(r.file, "%s - ERROR - %s\n", time.Now().Format(lineTimestampLayout), msg)
}

// Path returns the error log file path for this run
func (r *fileReporter) Path() string {
	return r.path
}

// Close closes the error log file
func (r *fileReporter) Close() error {
	return r.file.Close()
}
