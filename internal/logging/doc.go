// Package logging provides implementations of the ddlx.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes prefixed lines to stderr or any io.Writer
//   - NullLogger: discards all messages
//   - Recorder: keeps messages in memory for assertions in tests
//
// All loggers are safe for concurrent use by multiple goroutines.
package logging
