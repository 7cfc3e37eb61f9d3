package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var databasesFlags struct {
	source sourceFlags
}

var databasesCmd = &cobra.Command{
	Use:   "databases [path]",
	Short: "List the databases a source can extract",
	Args:  OptionalSource,
	RunE:  runDatabases,
}

func init() {
	rootCmd.AddCommand(databasesCmd)
	addSourceFlags(databasesCmd, &databasesFlags.source)
}

func runDatabases(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args, &databasesFlags.source)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(cmd)
	defer cancel()

	dbs, err := s.service.Databases(ctx)
	if err != nil {
		return err
	}
	for _, name := range dbs {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
