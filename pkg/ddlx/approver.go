package ddlx

import "context"

// Approver confirms overwriting an existing output file.
//
// Implementations:
//   - ForcedApprover: approves without asking (--force)
//   - InteractiveApprover: asks on the terminal
type Approver interface {
	// RequestApproval returns true when path may be overwritten.
	RequestApproval(ctx context.Context, path string) (bool, error)
}
