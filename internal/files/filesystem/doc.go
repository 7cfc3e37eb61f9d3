// Package filesystem abstracts the few file operations DDL sources need, so
// dump directories can be read from disk in production and from memory in
// tests.
//
// Implementations:
//   - OSFileSystem: the operating system filesystem
//   - MemoryFileSystem: an in-memory tree for tests
//
// Missing paths produce errors that wrap fs.ErrNotExist in both
// implementations.
package filesystem
