package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/ddlx/internal/extractor"
	"github.com/vvka-141/ddlx/internal/pipeline"
	"github.com/vvka-141/ddlx/internal/refcheck"
	"github.com/vvka-141/ddlx/internal/script"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// Picker narrows a selection of objects, typically by asking the user.
// Returning an empty slice cancels the export.
type Picker func(ctx context.Context, objects []ddlx.ObjectMetadata) ([]ddlx.ObjectMetadata, error)

// StageLookup returns extra stages to synthesize for a database.
type StageLookup func(database string) []ddlx.StageRef

// Export is the outcome of ExportService.Export.
type Export struct {
	Result   *ddlx.Result
	Selected []ddlx.ObjectMetadata
	Script   *script.Script
	Warnings []refcheck.Warning
}

// ExportService fetches DDL from a source and turns it into an ordered result.
// Safe for concurrent use when the source is.
type ExportService struct {
	source      ddlx.Source
	logger      ddlx.Logger
	stages      StageLookup
	trimComment bool
}

// ExportOption customizes an ExportService.
type ExportOption func(*ExportService)

// WithStages adds stages from lookup to every fetched extract.
func WithStages(lookup StageLookup) ExportOption {
	return func(s *ExportService) { s.stages = lookup }
}

// WithLeadingCommentTrim drops comments in front of each CREATE header.
func WithLeadingCommentTrim(enabled bool) ExportOption {
	return func(s *ExportService) { s.trimComment = enabled }
}

// NewExportService creates an ExportService. Panics on nil dependencies.
func NewExportService(source ddlx.Source, logger ddlx.Logger, opts ...ExportOption) *ExportService {
	if source == nil {
		panic("source cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	svc := &ExportService{source: source, logger: logger}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Databases lists the databases of the source.
func (s *ExportService) Databases(ctx context.Context) ([]string, error) {
	return s.source.ListDatabases(ctx)
}

// Extract fetches database and runs the pipeline over it.
// Returns an error wrapping ddlx.ErrNoObjects when nothing was extracted.
func (s *ExportService) Extract(ctx context.Context, database string) (*ddlx.Result, error) {
	s.logger.Verbose("Fetching DDL for %s", database)
	ex, err := s.source.FetchDDL(ctx, database)
	if err != nil {
		return nil, err
	}
	if s.stages != nil {
		ex.Stages = append(ex.Stages, s.stages(ex.Database)...)
	}
	s.logger.Verbose("Fetched %d bytes of DDL and %d stages", len(ex.DDL), len(ex.Stages))

	res := pipeline.Process(pipeline.Input(ex), ex.Database, pipeline.Options{
		TaggedDollarQuotes:  ex.TaggedDollarQuotes,
		TrimLeadingComments: s.trimComment,
	})
	s.report(res)

	if len(res.Objects) == 0 {
		return res, fmt.Errorf("%w: %s", ddlx.ErrNoObjects, ex.Database)
	}
	return res, nil
}

// Export extracts cfg.Database, selects objects by cfg, optionally lets pick
// narrow the selection, and assembles the script with its reference warnings.
func (s *ExportService) Export(ctx context.Context, cfg ddlx.ExportConfig, pick Picker) (*Export, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	res, err := s.Extract(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	selected := script.Select(res.Objects, script.Filter{
		Schemas:           cfg.Schemas,
		Types:             cfg.Types,
		Search:            cfg.Search,
		IncludeContainers: cfg.IncludeContainers,
	})
	s.logger.Verbose("Selected %d of %d objects", len(selected), len(res.Objects))

	if pick != nil && len(selected) > 0 {
		if selected, err = pick(ctx, selected); err != nil {
			return nil, err
		}
	}

	sc := script.Assemble(selected)
	return &Export{
		Result:   res,
		Selected: selected,
		Script:   sc,
		Warnings: refcheck.Check(sc, res.Database),
	}, nil
}

// report logs what the pipeline could not handle cleanly.
func (s *ExportService) report(res *ddlx.Result) {
	s.logger.Verbose("Extracted %d objects with %d dependencies", res.Graph.Nodes(), res.Graph.Edges())

	for _, stmt := range res.Skipped {
		if err := extractor.Explain(stmt); err != nil {
			s.logger.Verbose("Skipped: %v", err)
		}
	}
	for _, md := range res.Unresolved {
		s.logger.Verbose("Skipped %s statement without a name at index %d", md.ObjectType, md.Index)
	}
	if len(res.Conflicts) > 0 {
		s.logger.Info("Warning: defined more than once with different DDL, last definition kept: %s",
			strings.Join(res.Conflicts, ", "))
	}
	if len(res.Cyclic) > 0 {
		s.logger.Info("Warning: circular dependencies, these objects keep their input order: %s",
			strings.Join(res.Cyclic, ", "))
	}
}
