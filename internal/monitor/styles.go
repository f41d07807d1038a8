package monitor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/sysmon/internal/ui"
)

// Dashboard color palette. ANSI indices keep the table readable on
// 16-color terminals.
const (
	ColorBorder        = ui.ColorMuted
	ColorAccent        = ui.ColorInfo
	ColorHeader        = ui.ColorWarning
	ColorTextPrimary   = lipgloss.Color("15") // Bright white
	ColorTextSecondary = ui.ColorPrimary
	ColorFooterBg      = ui.ColorSecondary
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	HeaderCellStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, 1)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorFooterBg).
			Padding(0, 1)
)
