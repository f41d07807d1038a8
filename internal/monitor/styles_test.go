package monitor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/sysmon/internal/ui"
)

func TestStyles_UseSharedPalette(t *testing.T) {
	tests := []struct {
		name string
		got  lipgloss.TerminalColor
		want lipgloss.Color
	}{
		{"border", BorderStyle.GetForeground(), ui.ColorMuted},
		{"title", TitleStyle.GetForeground(), ui.ColorInfo},
		{"header", HeaderCellStyle.GetForeground(), ui.ColorWarning},
		{"label", LabelStyle.GetForeground(), ui.ColorPrimary},
		{"footer background", FooterStyle.GetBackground(), ui.ColorSecondary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
