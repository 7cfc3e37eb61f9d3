package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ddlx/internal/refcheck"
	"github.com/vvka-141/ddlx/internal/services"
	"github.com/vvka-141/ddlx/internal/script"
	"github.com/vvka-141/ddlx/internal/tui"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

var scriptFlags struct {
	source            sourceFlags
	schemas           []string
	types             []string
	search            string
	includeContainers bool
	interactive       bool
	output            string
	autoName          bool
	force             bool
}

var scriptCmd = &cobra.Command{
	Use:   "script [path]",
	Short: "Write the selected objects as one ordered DDL script",
	Long: `Write the DDL of the selected objects in dependency order, separated by
blank lines and terminated with semicolons.

DATABASE and SCHEMA statements are left out unless --include-containers is
given. Objects whose DDL still names the database itself are reported on
stderr, since such a script cannot be replayed into a database of another
name.`,
	Example: `  ddlx script ./dumps -d SALES --schema MART > mart.sql
  ddlx script ./dumps -d SALES --type VIEW --search revenue
  ddlx script ./dumps -d SALES --interactive --auto-name`,
	Args: OptionalSource,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	addSourceFlags(scriptCmd, &scriptFlags.source)
	flags := scriptCmd.Flags()
	flags.StringSliceVar(&scriptFlags.schemas, "schema", nil, "Schema to include (repeatable; N/A selects objects without a schema)")
	flags.StringSliceVar(&scriptFlags.types, "type", nil, "Object type to include, e.g. TABLE or \"MATERIALIZED VIEW\" (repeatable)")
	flags.StringVar(&scriptFlags.search, "search", "", "Case-insensitive substring of the object name")
	flags.BoolVar(&scriptFlags.includeContainers, "include-containers", false, "Keep DATABASE and SCHEMA statements")
	flags.BoolVarP(&scriptFlags.interactive, "interactive", "i", false, "Pick objects in a terminal UI")
	flags.StringVarP(&scriptFlags.output, "output", "o", "", "Write to file instead of stdout")
	flags.BoolVar(&scriptFlags.autoName, "auto-name", false, "Write to <DB>_DDL_Export_<timestamp>.sql")
	flags.BoolVarP(&scriptFlags.force, "force", "f", false, "Overwrite an existing output file without asking")
	scriptCmd.MarkFlagsMutuallyExclusive("output", "auto-name")
}

func runScript(cmd *cobra.Command, args []string) error {
	if scriptFlags.interactive && !tui.IsInteractive() {
		return fmt.Errorf("--interactive needs a terminal on stdin and stderr: %w", ddlx.ErrInvalidConfig)
	}

	s, err := openSession(cmd, args, &scriptFlags.source)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(cmd)
	defer cancel()

	database, err := s.resolveDatabase(ctx, "script")
	if err != nil {
		return err
	}

	cfg := ddlx.ExportConfig{
		Database:          database,
		Schemas:           scriptFlags.schemas,
		Search:            scriptFlags.search,
		IncludeContainers: scriptFlags.includeContainers,
		Verbose:           getVerboseFlag(cmd),
	}
	if len(cfg.Schemas) == 0 {
		cfg.Schemas = s.project.Schemas
	}
	types := scriptFlags.types
	if len(types) == 0 {
		types = s.project.Types
	}
	for _, t := range types {
		cfg.Types = append(cfg.Types, ddlx.ParseObjectType(t))
	}

	var pick services.Picker
	if scriptFlags.interactive {
		pick = tui.PickObjects
	}

	export, err := s.service.Export(ctx, cfg, pick)
	if err != nil {
		return err
	}
	if len(export.Selected) == 0 {
		s.logger.Info("No objects match the selection")
		return nil
	}

	printWarnings(cmd, export.Warnings, export.Result.Database)

	path := scriptFlags.output
	if scriptFlags.autoName {
		path = script.FileName(export.Result.Database, time.Now())
	}
	err = writeOutput(cmd, s, path, scriptFlags.force, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, export.Script.Text)
		return err
	})
	if err != nil || path == "" {
		return err
	}
	s.logger.Info("Wrote %d objects to %s", len(export.Selected), path)
	return nil
}

func printWarnings(cmd *cobra.Command, warnings []refcheck.Warning, database string) {
	if len(warnings) == 0 {
		return
	}
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "Warning: %d objects still reference database %s:\n\n", len(warnings), database)
	for _, wn := range warnings {
		fmt.Fprintf(w, "%s %s (%s)\n%s\n\n", wn.ObjectType, wn.FQN, wn.Occurrences(), wn.Snippet)
	}
}
