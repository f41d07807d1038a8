package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/sysmon/internal/monitor"
)

func newSimConsole(t *testing.T, width, height int) (*Tcell, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	c := NewTcell(screen, nil)
	require.NoError(t, c.Enter())
	screen.SetSize(width, height)
	t.Cleanup(func() { _ = c.Restore() })
	return c, screen
}

// screenRow returns the text of row y with trailing spaces removed.
func screenRow(screen tcell.SimulationScreen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

func screenText(screen tcell.SimulationScreen) string {
	_, height := screen.Size()
	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		rows = append(rows, screenRow(screen, y))
	}
	return strings.Join(rows, "\n")
}

func sampleSnapshot() monitor.Snapshot {
	os, kernel := "Ubuntu", "6.5.0-35-generic"
	return monitor.Snapshot{
		TotalMemoryBytes: 8589934592,
		UsedMemoryBytes:  4294967296,
		OSName:           &os,
		KernelVersion:    &kernel,
		CPUCount:         8,
		DiskNames:        []string{"sda", "sdb"},
	}
}

func TestTcell_DrawPaintsTableAndFooter(t *testing.T) {
	c, screen := newSimConsole(t, 80, 24)
	w, h := c.Size()
	require.Equal(t, 80, w)
	require.Equal(t, 24, h)

	painted, err := c.Draw(monitor.Render(sampleSnapshot(), w, h))
	require.NoError(t, err)
	assert.Equal(t, 24, painted)

	text := screenText(screen)
	assert.Contains(t, screenRow(screen, 0), monitor.DashboardTitle)
	assert.Contains(t, text, "KEY")
	assert.Contains(t, text, monitor.LabelOSName)
	assert.Contains(t, text, "Ubuntu")
	assert.Contains(t, text, monitor.SentinelUnknown)
	assert.Contains(t, text, "sda, sdb")
	assert.Contains(t, text, "8.00 GB")
	assert.Contains(t, screenRow(screen, 23), monitor.FooterText, "footer is on the last row")
}

func TestTcell_FooterStyle(t *testing.T) {
	c, screen := newSimConsole(t, 40, 10)

	_, err := c.Draw(monitor.Render(sampleSnapshot(), 40, 10))
	require.NoError(t, err)

	_, _, style, _ := screen.GetContent(39, 9)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorNavy, bg, "footer background spans the full width")
}

func TestTcell_TableClippedToHeight(t *testing.T) {
	c, screen := newSimConsole(t, 60, 6)

	_, err := c.Draw(monitor.Render(sampleSnapshot(), 60, 6))
	require.NoError(t, err)

	text := screenText(screen)
	assert.NotContains(t, text, monitor.LabelRAMUsed)
	assert.Contains(t, screenRow(screen, 5), monitor.FooterText)
}

func TestTcell_PollInjectedKey(t *testing.T) {
	c, screen := newSimConsole(t, 80, 24)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var ev monitor.Event
	var ok bool
	require.Eventually(t, func() bool {
		var err error
		ev, ok, err = c.Poll(10 * time.Millisecond)
		return err == nil && ok && ev.Key != monitor.KeyResize
	}, time.Second, time.Millisecond)
	assert.Equal(t, "q", ev.Key)
	assert.True(t, monitor.DefaultKeyMap().IsQuit(ev))
}

func TestTcell_PollTimeout(t *testing.T) {
	c, _ := newSimConsole(t, 80, 24)

	// Drain the resize posted by SetSize and Init.
	for {
		if _, ok, _ := c.Poll(20 * time.Millisecond); !ok {
			break
		}
	}

	_, ok, err := c.Poll(10 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTcell_RestoreIdempotent(t *testing.T) {
	c := NewTcell(tcell.NewSimulationScreen("UTF-8"), nil)

	assert.NoError(t, c.Restore(), "restore before enter is a no-op")
	assert.NoError(t, c.Restore())
}

func TestTcell_SizeBeforeEnter(t *testing.T) {
	c := NewTcell(tcell.NewSimulationScreen("UTF-8"), nil)
	w, h := c.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
}

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name   string
		event  tcell.Event
		expect string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), "q"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), monitor.KeyEsc},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), monitor.KeyCtrlC},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x"},
		{"resize", tcell.NewEventResize(100, 40), monitor.KeyResize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := translateEvent(tt.event)
			require.True(t, ok)
			assert.Equal(t, tt.expect, ev.Key)
		})
	}

	_, ok := translateEvent(tcell.NewEventInterrupt(nil))
	assert.False(t, ok)
}

func TestDrawText_PadsAndClips(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 2)

	drawText(screen, 0, 0, 5, "abcdefgh", tcell.StyleDefault)
	drawText(screen, 0, 1, 5, "ab", tcell.StyleDefault)

	assert.Equal(t, "abcde", screenRow(screen, 0))
	assert.Equal(t, "ab", screenRow(screen, 1))
	ch, _, _, _ := screen.GetContent(4, 1)
	assert.Equal(t, ' ', ch)
}
