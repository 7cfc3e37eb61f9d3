package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireInput validates that exactly one input argument is provided.
func RequireInput(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <file>

Usage: %s

Example:
  %s ./SALES.sql
  cat SALES.sql | %s -`, cmd.UseLine(), cmd.CommandPath(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// OptionalSource accepts zero or one source path. Without a path the
// database server from the connection settings is used.
func OptionalSource(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s`, len(args), cmd.UseLine())
	}
	return nil
}
