package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/vvka-141/ddlx/internal/ident"
)

var orderFlags struct {
	source sourceFlags
	json   bool
}

var orderCmd = &cobra.Command{
	Use:   "order [path]",
	Short: "List objects in dependency order",
	Long: `List the objects of a database so that every object comes after the
objects it depends on.

Objects caught in a dependency cycle keep their input order and are marked.`,
	Args: OptionalSource,
	RunE: runOrder,
}

func init() {
	rootCmd.AddCommand(orderCmd)
	addSourceFlags(orderCmd, &orderFlags.source)
	orderCmd.Flags().BoolVar(&orderFlags.json, "json", false, "Print objects, dependency graph, cycles and skipped statements as JSON")
}

func runOrder(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args, &orderFlags.source)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(cmd)
	defer cancel()

	database, err := s.resolveDatabase(ctx, "order")
	if err != nil {
		return err
	}
	res, err := s.service.Extract(ctx, database)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if orderFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	cyclic := make(map[string]bool, len(res.Cyclic))
	for _, fqn := range res.Cyclic {
		cyclic[fqn] = true
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	style := table.StyleLight
	style.Format.Footer = text.FormatDefault
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"#", "Type", "Object", "Depends on", ""})
	for _, o := range res.Objects {
		fqn := ident.CanonicalFQN(o.Database, o.Schema, o.ObjectName)
		mark := ""
		if cyclic[fqn] {
			mark = "cycle"
		}
		tw.AppendRow(table.Row{o.Index, o.ObjectType, fqn, strings.Join(res.Graph[fqn], ", "), mark})
	}
	tw.AppendFooter(table.Row{"", "", fmt.Sprintf("%d objects", len(res.Objects)), fmt.Sprintf("%d dependencies", res.Graph.Edges()), ""})
	tw.Render()

	if len(res.Skipped) > 0 {
		s.logger.Info("%d statements were not CREATE statements and were skipped (use --verbose for details)", len(res.Skipped))
	}
	return nil
}

