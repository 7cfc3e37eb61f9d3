package cli

import (
	"io"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vvka-141/ddlx/internal/graph"
)

var graphFlags struct {
	source  sourceFlags
	schemas []string
	format  string
	output  string
	force   bool
}

var graphCmd = &cobra.Command{
	Use:   "graph [path]",
	Short: "Render the dependency graph of selected schemas",
	Long: `Render the objects of the selected schemas and the dependencies between
them as Graphviz DOT, Mermaid or JSON.

Schemas match exactly as written in the DDL. Without --schema every schema is
drawn. Edges point from an object to the object it depends on.`,
	Example: `  ddlx graph ./dumps -d SALES --schema RAW --schema MART | dot -Tsvg > sales.svg
  ddlx graph ./dumps -d SALES --format mermaid`,
	Args: OptionalSource,
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addSourceFlags(graphCmd, &graphFlags.source)
	graphCmd.Flags().StringSliceVar(&graphFlags.schemas, "schema", nil, "Schema to draw (repeatable; default: ddlx.yaml schemas, or all)")
	graphCmd.Flags().StringVar(&graphFlags.format, "format", "", "Output format: dot, mermaid or json (default: ddlx.yaml format, or dot)")
	graphCmd.Flags().StringVarP(&graphFlags.output, "output", "o", "", "Write to file instead of stdout")
	graphCmd.Flags().BoolVarP(&graphFlags.force, "force", "f", false, "Overwrite an existing output file without asking")
}

func runGraph(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args, &graphFlags.source)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(cmd)
	defer cancel()

	database, err := s.resolveDatabase(ctx, "graph")
	if err != nil {
		return err
	}
	res, err := s.service.Extract(ctx, database)
	if err != nil {
		return err
	}

	format, _ := lo.Coalesce(graph.Format(graphFlags.format), graph.Format(s.project.Format), graph.FormatDOT)

	schemas := graphFlags.schemas
	if len(schemas) == 0 {
		schemas = s.project.Schemas
	}
	if len(schemas) == 0 {
		for _, o := range res.Objects {
			if o.Schema != "" {
				schemas = append(schemas, o.Schema)
			}
		}
		schemas = lo.Uniq(schemas)
		sort.Strings(schemas)
	}

	p := graph.Project(res.Objects, res.Graph, schemas)
	s.logger.Verbose("Projected %d nodes and %d edges from schemas %v", len(p.Nodes), len(p.Edges), schemas)

	err = writeOutput(cmd, s, graphFlags.output, graphFlags.force, func(w io.Writer) error {
		return graph.Render(w, p, format)
	})
	if err != nil || graphFlags.output == "" {
		return err
	}
	s.logger.Info("Wrote %s", graphFlags.output)
	return nil
}
