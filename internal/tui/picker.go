package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/ddlx/internal/ident"
	"github.com/vvka-141/ddlx/internal/script"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// ErrCanceled is returned when the user quits the picker without confirming.
var ErrCanceled = errors.New("selection canceled")

// chromeLines is the number of lines the picker uses besides the list.
const chromeLines = 6

type rowKind int

const (
	rowSchema rowKind = iota
	rowType
	rowObject
)

// row is one line of the list. members holds the input indices the row
// toggles: every object of a schema or type group, or the object itself.
type row struct {
	kind    rowKind
	label   string
	members []int
}

// Picker is a bubbletea model for choosing objects grouped by schema and type.
// Every object starts selected.
type Picker struct {
	title    string
	objects  []ddlx.ObjectMetadata
	rows     []row
	selected map[int]bool
	cursor   int
	offset   int
	height   int
	keys     KeyMap
	help     help.Model
	done     bool
	canceled bool
}

// NewPicker builds a picker over objects.
func NewPicker(title string, objects []ddlx.ObjectMetadata) Picker {
	indexOf := make(map[string]int, len(objects))
	for i, o := range objects {
		indexOf[ident.CanonicalFQN(o.Database, o.Schema, o.ObjectName)] = i
	}
	lookup := func(o ddlx.ObjectMetadata) int {
		return indexOf[ident.CanonicalFQN(o.Database, o.Schema, o.ObjectName)]
	}

	var rows []row
	for _, sg := range script.Group(objects) {
		schemaRow := len(rows)
		rows = append(rows, row{kind: rowSchema, label: sg.Schema})
		for _, tg := range sg.Types {
			typeRow := len(rows)
			rows = append(rows, row{kind: rowType, label: string(tg.Type)})
			for _, o := range tg.Objects {
				i := lookup(o)
				rows = append(rows, row{kind: rowObject, label: o.ObjectName, members: []int{i}})
				rows[typeRow].members = append(rows[typeRow].members, i)
				rows[schemaRow].members = append(rows[schemaRow].members, i)
			}
		}
	}

	selected := make(map[int]bool, len(objects))
	for i := range objects {
		selected[i] = true
	}

	return Picker{
		title:    title,
		objects:  objects,
		rows:     rows,
		selected: selected,
		height:   20,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.height = max(msg.Height-chromeLines, 1)
		p.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.rows)-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keys.Toggle):
			if p.cursor < len(p.rows) {
				p.toggle(p.rows[p.cursor].members)
			}
		case key.Matches(msg, p.keys.All):
			for i := range p.objects {
				p.selected[i] = true
			}
		case key.Matches(msg, p.keys.None):
			clear(p.selected)
		case key.Matches(msg, p.keys.Confirm):
			p.done = true
			return p, tea.Quit
		case key.Matches(msg, p.keys.Quit):
			p.canceled = true
			return p, tea.Quit
		}
	}
	p.scroll()
	return p, nil
}

// toggle selects all members unless all are already selected, in which
// case it deselects them.
func (p *Picker) toggle(members []int) {
	all := true
	for _, i := range members {
		all = all && p.selected[i]
	}
	for _, i := range members {
		if all {
			delete(p.selected, i)
		} else {
			p.selected[i] = true
		}
	}
}

func (p *Picker) scroll() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(p.title))
	b.WriteString("\n")

	end := min(p.offset+p.height, len(p.rows))
	for i := p.offset; i < end; i++ {
		b.WriteString(p.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString(StatusStyle.Render(fmt.Sprintf("%d of %d objects selected", len(p.selected), len(p.objects))))
	b.WriteString("\n")
	b.WriteString(p.help.View(p.keys))
	return b.String()
}

func (p Picker) renderRow(i int) string {
	r := p.rows[i]
	cursor := "  "
	if i == p.cursor {
		cursor = CursorStyle.Render(SymbolCursor) + " "
	}

	n := 0
	for _, m := range r.members {
		if p.selected[m] {
			n++
		}
	}

	switch r.kind {
	case rowSchema:
		return cursor + SchemaStyle.Render(fmt.Sprintf("%s (%d/%d)", r.label, n, len(r.members)))
	case rowType:
		return cursor + TypeStyle.Render(fmt.Sprintf("%s (%d/%d)", r.label, n, len(r.members)))
	}
	if n == 1 {
		return cursor + "    " + CheckedStyle.Render(SymbolChecked+" "+r.label)
	}
	return cursor + "    " + UncheckedStyle.Render(SymbolUnchecked+" "+r.label)
}

// Selected returns the chosen objects in their input order.
func (p Picker) Selected() []ddlx.ObjectMetadata {
	out := make([]ddlx.ObjectMetadata, 0, len(p.selected))
	for i, o := range p.objects {
		if p.selected[i] {
			out = append(out, o)
		}
	}
	return out
}

// Canceled reports whether the user quit without confirming.
func (p Picker) Canceled() bool {
	return p.canceled
}

// PickObjects shows the picker on stderr and returns the confirmed selection.
// Returns ErrCanceled when the user quits.
func PickObjects(ctx context.Context, objects []ddlx.ObjectMetadata) ([]ddlx.ObjectMetadata, error) {
	title := fmt.Sprintf("Select objects to export (%d)", len(objects))
	prog := tea.NewProgram(NewPicker(title, objects),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
	)

	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("object picker failed: %w", err)
	}
	m := final.(Picker)
	if m.Canceled() {
		return nil, ErrCanceled
	}
	return m.Selected(), nil
}
