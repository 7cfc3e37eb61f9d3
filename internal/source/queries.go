package source

// Catalog queries. Every query runs with search_path set to pg_catalog only,
// so format_type, pg_get_expr and pg_get_viewdef qualify user objects with
// their schema.

const userSchemaFilter = `n.nspname NOT IN ('information_schema') AND n.nspname NOT LIKE 'pg\_%'`

const (
	queryDatabases = `
		SELECT datname::text
		FROM pg_database
		WHERE datallowconn AND NOT datistemplate
		ORDER BY datname
	`

	querySchemas = `
		SELECT n.nspname::text
		FROM pg_namespace n
		WHERE ` + userSchemaFilter + `
		ORDER BY 1
	`

	querySequences = `
		SELECT n.nspname::text, c.relname::text, format_type(s.seqtypid, NULL),
		       s.seqstart, s.seqincrement, s.seqmin, s.seqmax, s.seqcycle
		FROM pg_sequence s
		JOIN pg_class c ON c.oid = s.seqrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE ` + userSchemaFilter + `
		  AND NOT EXISTS (
		      SELECT 1 FROM pg_depend d
		      WHERE d.objid = c.oid AND d.deptype IN ('i', 'e')
		  )
		ORDER BY 1, 2
	`

	// Columns of ordinary and partitioned tables. Tables without columns
	// yield one row with an empty column name.
	queryColumns = `
		SELECT n.nspname::text, c.relname::text,
		       coalesce(a.attname::text, ''),
		       coalesce(format_type(a.atttypid, a.atttypmod), ''),
		       coalesce(a.attnotnull, false),
		       coalesce(pg_get_expr(ad.adbin, ad.adrelid), '')
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		LEFT JOIN pg_attribute a
		       ON a.attrelid = c.oid AND a.attnum > 0 AND NOT a.attisdropped
		LEFT JOIN pg_attrdef ad ON ad.adrelid = c.oid AND ad.adnum = a.attnum
		WHERE c.relkind IN ('r', 'p') AND NOT c.relispartition
		  AND ` + userSchemaFilter + `
		ORDER BY 1, 2, a.attnum
	`

	queryViews = `
		SELECT n.nspname::text, c.relname::text, c.relkind = 'm', pg_get_viewdef(c.oid)
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relkind IN ('v', 'm')
		  AND ` + userSchemaFilter + `
		  AND NOT EXISTS (
		      SELECT 1 FROM pg_depend d
		      WHERE d.objid = c.oid AND d.deptype = 'e'
		  )
		ORDER BY 1, 2
	`

	queryRoutines = `
		SELECT n.nspname::text, p.proname::text, pg_get_functiondef(p.oid)
		FROM pg_proc p
		JOIN pg_namespace n ON n.oid = p.pronamespace
		WHERE p.prokind IN ('f', 'p')
		  AND ` + userSchemaFilter + `
		  AND NOT EXISTS (
		      SELECT 1 FROM pg_depend d
		      WHERE d.objid = p.oid AND d.deptype = 'e'
		  )
		ORDER BY 1, 2, p.oid
	`
)
