package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ddlx",
	Short: "Order and re-emit database DDL by dependency",
	Long: `ddlx reads the DDL of a database from a dump file or a live PostgreSQL
server, works out which objects depend on which, and prints them in an order
that can be replayed.

Sources:
  ddlx order ./dumps -d SALES          directory of <DB>.sql dumps
  ddlx order ./SALES.sql               single dump file
  ddlx order -h db.local -d shop       live server (catalog is read)

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  14 - DDL source or database not found
  15 - No CREATE statements found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	// No -h shorthand for help: -h is --host, as in psql.
	rootCmd.PersistentFlags().Bool("help", false, "Help for ddlx")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", ".", "Directory containing ddlx.yaml and .env")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
