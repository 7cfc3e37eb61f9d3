package extractor

import (
	"regexp"
	"strings"

	"github.com/vvka-141/ddlx/internal/ident"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// headerID matches one name part: a double-quoted run or a bare identifier.
const headerID = `(?:"(?:[^"]|"")+"|[A-Za-z_][\w$]*)`

var createHeaderRegex = regexp.MustCompile(`(?is)\A\s*CREATE\s+(?:OR\s+REPLACE\s+)?` +
	`(?:(?:SECURE|TRANSIENT|TEMPORARY|EXTERNAL)\s+)*` +
	`(?:(?P<prefix>MATERIALIZED|DYNAMIC)\s+)?` +
	`(?P<type>FILE\s+FORMAT|MASKING\s+POLICY|ROW\s+ACCESS\s+POLICY|DATABASE|SCHEMA|TABLE|VIEW|SEQUENCE|PIPE|TASK|STAGE|STREAM|FUNCTION|PROCEDURE|TAG)\s+` +
	`(?:IF\s+NOT\s+EXISTS\s+)?` +
	`(?P<name>` + headerID + `(?:\.` + headerID + `){0,2})`)

var (
	prefixGroup = createHeaderRegex.SubexpIndex("prefix")
	typeGroup   = createHeaderRegex.SubexpIndex("type")
	nameGroup   = createHeaderRegex.SubexpIndex("name")
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Extract parses the CREATE header of a statement.
//
// Returns ErrNotCreateStatement when the header does not match. The returned
// metadata has DDL set to stmt and Index zero; callers fill in position and
// any defaulted database.
func Extract(stmt string) (*ddlx.ObjectMetadata, error) {
	m := createHeaderRegex.FindStringSubmatch(stmt)
	if m == nil {
		return nil, ErrNotCreateStatement
	}

	parts := ident.SplitQualified(m[nameGroup])

	var db, schema, obj string
	switch len(parts) {
	case 3:
		db, schema, obj = parts[0], parts[1], parts[2]
	case 2:
		schema, obj = parts[0], parts[1]
	default:
		obj = parts[0]
	}

	unquoted := make([]string, len(parts))
	for i, p := range parts {
		unquoted[i] = ident.Unquote(p)
	}

	return &ddlx.ObjectMetadata{
		ObjectType:         NormalizeType(m[prefixGroup], m[typeGroup]),
		Database:           ident.Unquote(db),
		Schema:             ident.Unquote(schema),
		ObjectName:         ident.Unquote(obj),
		FullyQualifiedName: strings.Join(unquoted, "."),
		DDL:                stmt,
	}, nil
}

// NormalizeType combines an optional MATERIALIZED/DYNAMIC prefix with a base
// type keyword. Only MATERIALIZED VIEW and DYNAMIC TABLE keep their prefix.
func NormalizeType(prefix, base string) ddlx.ObjectType {
	bt := whitespaceRegex.ReplaceAllString(strings.ToUpper(strings.TrimSpace(base)), " ")
	px := strings.ToUpper(strings.TrimSpace(prefix))

	switch {
	case px == "MATERIALIZED" && bt == "VIEW":
		return ddlx.TypeMaterializedView
	case px == "DYNAMIC" && bt == "TABLE":
		return ddlx.TypeDynamicTable
	case bt == "":
		return ddlx.TypeUnknown
	}
	return ddlx.ObjectType(bt)
}

var leadingWordsRegex = regexp.MustCompile(`(?i)\A\s*(\w+)(?:\s+(?:OR\s+REPLACE\s+)?(?:(?:SECURE|TRANSIENT|TEMPORARY|EXTERNAL|MATERIALIZED|DYNAMIC|UNIQUE)\s+)*(\w+))?`)

const previewLength = 60

var supportedTypeKeywords = map[string]bool{
	"DATABASE": true, "SCHEMA": true, "TABLE": true, "VIEW": true, "SEQUENCE": true,
	"PIPE": true, "TASK": true, "STAGE": true, "STREAM": true, "FUNCTION": true,
	"PROCEDURE": true, "TAG": true, "FILE": true, "MASKING": true, "ROW": true,
}

// TrimLeadingComments removes whitespace and any -- or /* */ comments that
// precede the first token of a statement.
func TrimLeadingComments(stmt string) string {
	s := strings.TrimSpace(stmt)
	for {
		switch {
		case strings.HasPrefix(s, "--"):
			nl := strings.IndexByte(s, '\n')
			if nl < 0 {
				return ""
			}
			s = strings.TrimSpace(s[nl+1:])
		case strings.HasPrefix(s, "/*"):
			end := strings.Index(s[2:], "*/")
			if end < 0 {
				return ""
			}
			s = strings.TrimSpace(s[end+4:])
		default:
			return s
		}
	}
}

// Explain describes why a statement was not extracted.
// Returns nil when the statement has a recognizable header.
func Explain(stmt ddlx.RawStatement) error {
	if createHeaderRegex.MatchString(stmt.Text) {
		return nil
	}

	e := &StatementError{
		Index:   stmt.Index,
		Line:    stmt.Line,
		Preview: preview(stmt.Text),
	}

	body := TrimLeadingComments(stmt.Text)
	if body == "" {
		e.Message = "statement contains only comments"
		return e
	}
	if createHeaderRegex.MatchString(body) {
		e.Message = "statement begins with a comment"
		e.Hint = "The CREATE header must be the first token. Enable leading comment trimming to extract it."
		return e
	}

	m := leadingWordsRegex.FindStringSubmatch(body)
	switch {
	case m == nil:
		e.Message = "statement does not start with a keyword"
	case !strings.EqualFold(m[1], "CREATE"):
		e.Message = "only CREATE statements are extracted, found " + strings.ToUpper(m[1])
	case m[2] == "":
		e.Message = "CREATE without an object type"
	case supportedTypeKeywords[strings.ToUpper(m[2])]:
		e.Message = "missing or malformed object name"
	default:
		e.Message = "unsupported object type " + strings.ToUpper(m[2])
		e.Hint = "Supported types: DATABASE, SCHEMA, TABLE, DYNAMIC TABLE, VIEW, MATERIALIZED VIEW, " +
			"SEQUENCE, PIPE, TASK, STAGE, STREAM, FUNCTION, PROCEDURE, TAG, FILE FORMAT, " +
			"MASKING POLICY, ROW ACCESS POLICY."
	}
	return e
}

func preview(s string) string {
	s = whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
	if r := []rune(s); len(r) > previewLength {
		return string(r[:previewLength]) + "..."
	}
	return s
}
