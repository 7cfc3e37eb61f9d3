package refcheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vvka-141/ddlx/internal/script"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// Match is one line that mentions the database.
type Match struct {
	DDLLine    int    `json:"ddl_line_number"`
	ScriptLine int    `json:"script_line_number"`
	Content    string `json:"line_content"`
}

// Warning reports an object whose DDL mentions the database.
type Warning struct {
	ObjectType ddlx.ObjectType `json:"object_type"`
	FQN        string          `json:"fully_qualified_name"`
	ObjectName string          `json:"object_name"`
	Matches    []Match         `json:"matches"`
	Snippet    string          `json:"snippet"`
}

// Occurrences describes the number of matches, e.g. "2 occurrences".
func (w Warning) Occurrences() string {
	if len(w.Matches) == 1 {
		return "1 occurrence"
	}
	return fmt.Sprintf("%d occurrences", len(w.Matches))
}

// Check returns a warning for every object of s whose lines contain the
// database name, case-insensitively, in script order.
func Check(s *script.Script, database string) []Warning {
	if database == "" {
		return nil
	}
	needle := strings.ToLower(database)
	lines := s.Lines()

	var warnings []Warning
	byOrdinal := make(map[int]int)
	hits := make(map[int][]int)

	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		n := i + 1
		obj, entry, ok := s.Object(n)
		if !ok {
			continue
		}

		wi, seen := byOrdinal[entry.Ordinal]
		if !seen {
			wi = len(warnings)
			byOrdinal[entry.Ordinal] = wi
			warnings = append(warnings, Warning{
				ObjectType: obj.ObjectType,
				FQN:        entry.FQN,
				ObjectName: obj.ObjectName,
			})
		}
		warnings[wi].Matches = append(warnings[wi].Matches, Match{
			DDLLine:    entry.Line(n),
			ScriptLine: n,
			Content:    strings.TrimSpace(line),
		})
		hits[wi] = append(hits[wi], n)
	}

	for wi := range warnings {
		_, entry, _ := s.Object(hits[wi][0])
		warnings[wi].Snippet = snippet(lines, hits[wi], entry.ScriptStart, entry.ScriptEnd)
	}
	return warnings
}

// snippet renders matched script lines with context clipped to [lo, hi].
// Runs of adjacent lines are joined by newlines; gaps become "...".
func snippet(lines []string, matched []int, lo, hi int) string {
	isMatch := make(map[int]bool, len(matched))
	shown := make(map[int]bool)
	for _, n := range matched {
		isMatch[n] = true
		for k := n - ddlx.MaxSnippetContext; k <= n+ddlx.MaxSnippetContext; k++ {
			if k >= lo && k <= hi {
				shown[k] = true
			}
		}
	}

	order := make([]int, 0, len(shown))
	for k := range shown {
		order = append(order, k)
	}
	sort.Ints(order)

	var b strings.Builder
	for i, k := range order {
		if i > 0 {
			if k == order[i-1]+1 {
				b.WriteString("\n")
			} else {
				b.WriteString("\n...\n")
			}
		}
		marker := "     "
		if isMatch[k] {
			marker = " >>> "
		}
		fmt.Fprintf(&b, "%d%s%s", k, marker, strings.TrimSpace(lines[k-1]))
	}
	return b.String()
}
