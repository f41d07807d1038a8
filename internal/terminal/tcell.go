package terminal

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

var (
	tcellTitleStyle  = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	tcellBorderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	tcellHeaderStyle = tcell.StyleDefault.Foreground(tcell.ColorOlive).Bold(true)
	tcellLabelStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	tcellValueStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	tcellFooterStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// Tcell is a console that paints frames cell by cell on a tcell screen.
type Tcell struct {
	screen tcell.Screen
	log    logger.Logger

	events chan tcell.Event
	quit   chan struct{}

	initialized bool
	restored    bool
}

// NewTcell creates a console on screen. A nil screen opens the real
// terminal on Enter.
func NewTcell(screen tcell.Screen, log logger.Logger) *Tcell {
	if log == nil {
		log = logger.Noop()
	}
	return &Tcell{
		screen: screen,
		log:    log,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
}

// Enter initializes the screen and starts forwarding its events.
func (c *Tcell) Enter() error {
	if c.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrTerminal,
				"Couldn't open the terminal screen",
				"Check that TERM is set, or try --backend ansi.")
		}
		c.screen = s
	}
	if err := c.screen.Init(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't initialize the terminal screen",
			"Check that TERM is set, or try --backend ansi.")
	}
	c.initialized = true
	c.screen.HideCursor()
	c.screen.Clear()

	go c.screen.ChannelEvents(c.events, c.quit)
	c.log.Debug("tcell console initialized")
	return nil
}

// Restore stops event forwarding and finalizes the screen. Only the first
// call does anything.
func (c *Tcell) Restore() error {
	if c.restored {
		return nil
	}
	c.restored = true
	if !c.initialized {
		return nil
	}
	close(c.quit)
	c.screen.Fini()
	c.log.Debug("tcell console restored")
	return nil
}

// Size returns the screen size, or 0, 0 before Enter.
func (c *Tcell) Size() (int, int) {
	if !c.initialized {
		return 0, 0
	}
	return c.screen.Size()
}

// Clear blanks every cell. The next Draw shows the result.
func (c *Tcell) Clear() error {
	c.screen.Clear()
	return nil
}

// Draw paints the frame's widgets and flushes changed cells.
func (c *Tcell) Draw(frame monitor.Frame) (int, error) {
	painted := paintFrame(c.screen, frame)
	c.screen.Show()
	return painted, nil
}

// Poll waits up to timeout for a key or resize. Other events are skipped
// without restarting the timeout.
func (c *Tcell) Poll(timeout time.Duration) (monitor.Event, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, open := <-c.events:
			if !open {
				return monitor.Event{}, false, nil
			}
			if out, ok := translateEvent(ev); ok {
				if out.Key == monitor.KeyResize {
					c.screen.Sync()
				}
				return out, true, nil
			}
		case <-timer.C:
			return monitor.Event{}, false, nil
		}
	}
}

// translateEvent maps tcell events onto the key names the dashboard uses.
func translateEvent(ev tcell.Event) (monitor.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			if ev.Modifiers()&tcell.ModAlt != 0 {
				return monitor.Event{Key: "alt+" + string(ev.Rune())}, true
			}
			return monitor.Event{Key: string(ev.Rune())}, true
		case tcell.KeyEscape:
			return monitor.Event{Key: monitor.KeyEsc}, true
		case tcell.KeyCtrlC:
			return monitor.Event{Key: monitor.KeyCtrlC}, true
		case tcell.KeyEnter:
			return monitor.Event{Key: "enter"}, true
		default:
			return monitor.Event{Key: strings.ToLower(ev.Name())}, true
		}
	case *tcell.EventResize:
		return monitor.Event{Key: monitor.KeyResize}, true
	}
	return monitor.Event{}, false
}

// paintFrame lays out the frame on screen and returns the number of rows
// it covers.
func paintFrame(screen tcell.Screen, f monitor.Frame) int {
	width := f.Width
	if width <= 0 {
		width, _ = screen.Size()
	}

	footerRow := 0
	if f.Table.Height > 0 || f.Height == 0 {
		footerRow = paintTable(screen, f.Table, width)
	}
	if f.Height > 0 {
		footerRow = f.Height - f.Footer.Height
	}

	drawText(screen, 0, footerRow, width, " "+f.Footer.Text, tcellFooterStyle)
	return footerRow + f.Footer.Height
}

// paintTable draws the title and bordered table from the top row, clipped to
// t.Height when set, and returns the first row below it.
func paintTable(screen tcell.Screen, t monitor.Table, width int) int {
	valueWidth := t.ValueWidth
	if valueWidth <= 0 {
		valueWidth = monitor.MinValueColumnWidth
		for _, r := range t.Rows {
			if w := runewidth.StringWidth(r.Value) + 2; w > valueWidth {
				valueWidth = w
			}
		}
	}
	labelWidth := t.LabelWidth

	var lines []func(y int)
	lines = append(lines, func(y int) {
		drawText(screen, 0, y, width, " "+t.Title, tcellTitleStyle)
	})
	lines = append(lines, func(y int) {
		drawBorder(screen, y, labelWidth, valueWidth, '╭', '┬', '╮')
	})
	lines = append(lines, func(y int) {
		drawCells(screen, y, labelWidth, valueWidth, t.Headers[0], t.Headers[1], tcellHeaderStyle, tcellHeaderStyle)
	})
	lines = append(lines, func(y int) {
		drawBorder(screen, y, labelWidth, valueWidth, '├', '┼', '┤')
	})
	for _, r := range t.Rows {
		r := r
		lines = append(lines, func(y int) {
			drawCells(screen, y, labelWidth, valueWidth, r.Label, r.Value, tcellLabelStyle, tcellValueStyle)
		})
	}
	lines = append(lines, func(y int) {
		drawBorder(screen, y, labelWidth, valueWidth, '╰', '┴', '╯')
	})

	limit := len(lines)
	if t.Height > 0 && t.Height < limit {
		limit = t.Height
	}
	for y := 0; y < limit; y++ {
		lines[y](y)
	}
	if t.Height > limit {
		for y := limit; y < t.Height; y++ {
			drawText(screen, 0, y, width, "", tcell.StyleDefault)
		}
		return t.Height
	}
	return limit
}

func drawBorder(screen tcell.Screen, y, labelWidth, valueWidth int, left, mid, right rune) {
	x := 0
	screen.SetContent(x, y, left, nil, tcellBorderStyle)
	x++
	for i := 0; i < labelWidth; i++ {
		screen.SetContent(x+i, y, '─', nil, tcellBorderStyle)
	}
	x += labelWidth
	screen.SetContent(x, y, mid, nil, tcellBorderStyle)
	x++
	for i := 0; i < valueWidth; i++ {
		screen.SetContent(x+i, y, '─', nil, tcellBorderStyle)
	}
	x += valueWidth
	screen.SetContent(x, y, right, nil, tcellBorderStyle)
}

func drawCells(screen tcell.Screen, y, labelWidth, valueWidth int, label, value string, labelStyle, valueStyle tcell.Style) {
	x := 0
	screen.SetContent(x, y, '│', nil, tcellBorderStyle)
	x++
	drawText(screen, x, y, labelWidth, " "+label, labelStyle)
	x += labelWidth
	screen.SetContent(x, y, '│', nil, tcellBorderStyle)
	x++
	drawText(screen, x, y, valueWidth, " "+value, valueStyle)
	x += valueWidth
	screen.SetContent(x, y, '│', nil, tcellBorderStyle)
}

// drawText writes text into width cells starting at x, padding with spaces.
// Wide runes take two cells and are dropped if they would overflow.
func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	if width <= 0 {
		return
	}
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		screen.SetContent(x+col, y, r, nil, style)
		col += w
	}
	for ; col < width; col++ {
		screen.SetContent(x+col, y, ' ', nil, style)
	}
}
