package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ddlx/internal/splitter"
)

var splitFlags struct {
	json         bool
	taggedDollar bool
}

var splitCmd = &cobra.Command{
	Use:   "split <file|->",
	Short: "Split a DDL file into statements",
	Long: `Split a DDL file into statements on top-level semicolons.

Semicolons inside quotes, comments and $$ bodies do not end a statement.
Use - to read from stdin.`,
	Args: RequireInput,
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().BoolVar(&splitFlags.json, "json", false, "Print statements as JSON")
	splitCmd.Flags().BoolVar(&splitFlags.taggedDollar, "tagged-dollar-quotes", false, "Treat $tag$...$tag$ as an opaque body")
}

func runSplit(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	var opts []splitter.Option
	if splitFlags.taggedDollar {
		opts = append(opts, splitter.WithTaggedDollarQuotes())
	}
	stmts := splitter.New(opts...).Statements(text)

	out := cmd.OutOrStdout()
	if splitFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stmts)
	}
	for _, st := range stmts {
		fmt.Fprintf(out, "-- statement %d (line %d)\n%s;\n\n", st.Index, st.Line, st.Text)
	}
	return nil
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
