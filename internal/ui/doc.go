// Package ui provides styled text output for sysmon's non-interactive
// commands, such as 'sysmon snapshot' and error reports, and the palette the
// dashboard styles build on. SymbolFail marks every failure line.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility and
// shared with the dashboard styles:
//
//	ColorWarning   (yellow) - Table headers
//	ColorInfo      (cyan)   - Titles
//	ColorPrimary   (white)  - Cell text
//	ColorSecondary (blue)   - Footer background
//	ColorMuted     (gray)   - Borders
//
// ApplyColorMode maps the color config key onto the lipgloss color profile,
// so the dashboard and CLI output honor --no-color the same way.
//
// # Tables
//
// RenderSimpleTable renders rows with the Bubbles table component in a
// non-focused state, and FitColumns sizes columns to their content.
package ui
