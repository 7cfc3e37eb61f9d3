package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SchemaStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	TypeStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			PaddingLeft(2)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CheckedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	UncheckedStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

const (
	SymbolChecked   = "●"
	SymbolUnchecked = "○"
	SymbolCursor    = "›"
)
