// Package ddlx defines the public types of the DDL extraction pipeline:
// object metadata, the dependency graph, pipeline results, configuration,
// and the interfaces (Logger, Source, Connector) that collaborators implement.
//
// The pipeline itself lives in internal packages: statements are split by
// internal/splitter, parsed by internal/extractor, ordered by
// internal/resolver and orchestrated by internal/pipeline.
package ddlx
