package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ddlx/pkg/ddlx"
)

func pickerObjects() []ddlx.ObjectMetadata {
	return []ddlx.ObjectMetadata{
		{ObjectType: ddlx.TypeTable, Database: "SALES", Schema: "RAW", ObjectName: "ORDERS"},
		{ObjectType: ddlx.TypeView, Database: "SALES", Schema: "MART", ObjectName: "REVENUE"},
		{ObjectType: ddlx.TypeTable, Database: "SALES", Schema: "RAW", ObjectName: "FX"},
		{ObjectType: ddlx.TypeSequence, Database: "SALES", Schema: "RAW", ObjectName: "IDS"},
	}
}

func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func names(objects []ddlx.ObjectMetadata) []string {
	out := make([]string, len(objects))
	for i, o := range objects {
		out[i] = o.ObjectName
	}
	return out
}

func TestPicker_Rows(t *testing.T) {
	p := NewPicker("pick", pickerObjects())

	var labels []string
	for _, r := range p.rows {
		labels = append(labels, r.label)
	}
	// Schemas sorted; within RAW, SEQUENCE before TABLE.
	assert.Equal(t, []string{"MART", "VIEW", "REVENUE", "RAW", "SEQUENCE", "IDS", "TABLE", "ORDERS", "FX"}, labels)
	assert.ElementsMatch(t, []int{0, 2, 3}, p.rows[3].members)
}

func TestPicker_StartsWithEverythingSelected(t *testing.T) {
	m := press(NewPicker("pick", pickerObjects()), "enter").(Picker)

	assert.False(t, m.Canceled())
	assert.Equal(t, []string{"ORDERS", "REVENUE", "FX", "IDS"}, names(m.Selected()))
}

func TestPicker_ToggleObjectAndGroup(t *testing.T) {
	// Cursor on REVENUE, toggle it off; then RAW schema header, toggle it off.
	m := press(NewPicker("pick", pickerObjects()), "down", "down", " ", "down", " ").(Picker)
	assert.Empty(t, m.Selected())

	// Toggling the partially selected TABLE group selects all of it.
	m = press(m, "down", "down", "down", " ").(Picker)
	assert.Equal(t, []string{"ORDERS", "FX"}, names(m.Selected()))
}

func TestPicker_AllNone(t *testing.T) {
	m := press(NewPicker("pick", pickerObjects()), "n").(Picker)
	assert.Empty(t, m.Selected())

	m = press(m, "a").(Picker)
	assert.Len(t, m.Selected(), 4)
}

func TestPicker_Cancel(t *testing.T) {
	m := press(NewPicker("pick", pickerObjects()), "esc").(Picker)
	assert.True(t, m.Canceled())
}

func TestPicker_CursorBoundsAndScroll(t *testing.T) {
	var m tea.Model = NewPicker("pick", pickerObjects())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: chromeLines + 3})

	m = press(m, "up", "down", "down", "down", "down", "down", "down", "down", "down", "down", "down")
	p := m.(Picker)
	require.Equal(t, len(p.rows)-1, p.cursor)
	assert.Equal(t, len(p.rows)-3, p.offset)
	assert.Contains(t, p.View(), "FX")
	assert.NotContains(t, p.View(), "REVENUE")
	assert.Contains(t, p.View(), "4 of 4 objects selected")
}
