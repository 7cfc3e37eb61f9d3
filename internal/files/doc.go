// Package files groups file-related helpers.
//
// Sub-packages:
//   - filesystem: filesystem abstraction with OS and in-memory implementations
package files
