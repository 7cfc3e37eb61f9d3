// Package sourcemap maps lines of an assembled DDL script back to the
// objects they were emitted for.
package sourcemap

import "sort"

// Entry maps a range of script lines to one object.
type Entry struct {
	Ordinal     int    // Position of the object in the script (0-based)
	ScriptStart int    // First line in the script (1-based, inclusive)
	ScriptEnd   int    // Last line in the script (1-based, inclusive)
	FQN         string // Canonical fully-qualified name of the object
	ObjectType  string // Object type, e.g. "TABLE"
}

// Line converts a script line inside the entry to the 1-based line of the
// object's own DDL.
func (e Entry) Line(scriptLine int) int {
	return scriptLine - e.ScriptStart + 1
}

// SourceMap tracks which object each script line belongs to.
// Entries must be added in increasing, non-overlapping line order.
type SourceMap struct {
	entries []Entry
}

// New creates a new empty SourceMap.
func New() *SourceMap {
	return &SourceMap{
		entries: make([]Entry, 0),
	}
}

// Add records that script lines start..end (1-based, inclusive) hold the
// DDL of the named object.
func (sm *SourceMap) Add(start, end int, fqn, objectType string) {
	sm.entries = append(sm.entries, Entry{
		Ordinal:     len(sm.entries),
		ScriptStart: start,
		ScriptEnd:   end,
		FQN:         fqn,
		ObjectType:  objectType,
	})
}

// Resolve finds the object that owns a script line.
func (sm *SourceMap) Resolve(scriptLine int) (Entry, bool) {
	i := sort.Search(len(sm.entries), func(i int) bool {
		return sm.entries[i].ScriptEnd >= scriptLine
	})
	if i < len(sm.entries) && sm.entries[i].ScriptStart <= scriptLine {
		return sm.entries[i], true
	}
	return Entry{}, false
}

// Entries returns a copy of all entries.
func (sm *SourceMap) Entries() []Entry {
	result := make([]Entry, len(sm.entries))
	copy(result, sm.entries)
	return result
}

// Len returns the number of entries in the source map.
func (sm *SourceMap) Len() int {
	return len(sm.entries)
}
