package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTableStyle(t *testing.T) {
	style := DefaultTableStyle()

	// We can't easily test lipgloss.Style contents, so just verify we can render with them
	testStr := "test"
	assert.NotPanics(t, func() {
		_ = style.Header.Render(testStr)
		_ = style.Cell.Render(testStr)
		_ = style.Border.Render(testStr)
	})
}

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "KEY", Width: 20},
		{Title: "VALUE", Width: 20},
	}
	rows := []table.Row{
		{"OS NAME", "Ubuntu"},
		{"NB CPUS", "8"},
	}

	tbl := NewTable(columns, rows)

	view := tbl.View()
	assert.NotEmpty(t, view)
	assert.Contains(t, view, "KEY")
	assert.Contains(t, view, "VALUE")
	assert.Contains(t, view, "Ubuntu")
	assert.Contains(t, view, "NB CPUS")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "KEY", Width: 16},
		{Title: "VALUE", Width: 16},
	}

	out := RenderSimpleTable(columns, [][]string{
		{"RAM TOTAL", "8.00 GB"},
		{"DISKS", "sda, sdb"},
	})

	assert.Contains(t, out, "RAM TOTAL")
	assert.Contains(t, out, "8.00 GB")
	assert.Contains(t, out, "sda, sdb")
}

func TestRenderSimpleTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderSimpleTable([]TableColumn{{Title: "KEY", Width: 10}}, nil))
}

func TestFitColumns(t *testing.T) {
	cols := FitColumns([]string{"KEY", "VALUE"}, [][]string{
		{"KERNEL VERSION", "6.5.0-35-generic"},
		{"NB CPUS", "8"},
	})

	assert.Equal(t, []TableColumn{
		{Title: "KEY", Width: len("KERNEL VERSION") + 2},
		{Title: "VALUE", Width: len("6.5.0-35-generic") + 2},
	}, cols)
}

func TestFitColumns_TitleWiderThanCells(t *testing.T) {
	cols := FitColumns([]string{"IDENTIFIER"}, [][]string{{"a"}})
	assert.Equal(t, len("IDENTIFIER")+2, cols[0].Width)
}
