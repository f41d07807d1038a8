package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	// Apply styling. Nothing is selectable, so the selected row looks like
	// any other cell.
	style := DefaultTableStyle()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Inherit(style.Cell)
	s.Selected = lipgloss.NewStyle()

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	// Create the table
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// FitColumns widens each column to its longest cell, title included, plus
// two cells of padding.
func FitColumns(titles []string, rows [][]string) []TableColumn {
	cols := make([]TableColumn, len(titles))
	for i, title := range titles {
		cols[i] = TableColumn{Title: title, Width: lipgloss.Width(title)}
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(cols) {
				if w := lipgloss.Width(cell); w > cols[i].Width {
					cols[i].Width = w
				}
			}
		}
	}
	for i := range cols {
		cols[i].Width += 2
	}
	return cols
}
