// Package terminal provides monitor.Console implementations for real
// terminals: an ANSI console on raw stdin/stdout and a tcell console.
package terminal

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

// Control sequences written around each frame.
var (
	seqCursorHome = termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1)
	seqEraseRight = termenv.CSI + termenv.EraseLineRightSeq
	seqEraseDown  = termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 0)
)

// ANSI is a console that puts the controlling terminal into raw mode on the
// alternate screen and paints frames with ANSI escape sequences.
type ANSI struct {
	in  *os.File
	out io.Writer
	fd  int

	output *termenv.Output
	log    logger.Logger

	// sizeFn reports the terminal size; tests replace it.
	sizeFn func() (int, int, error)

	state    *term.State
	reader   cancelreader.CancelReader
	events   chan monitor.Event
	errs     chan error
	readDone chan struct{}

	altScreen bool
	restored  bool
	mu        sync.Mutex
}

// NewANSI creates a console reading keys from in and painting to out.
// Nothing touches the terminal until Enter.
func NewANSI(in, out *os.File, log logger.Logger) *ANSI {
	if log == nil {
		log = logger.Noop()
	}
	c := &ANSI{
		in:     in,
		out:    out,
		fd:     int(in.Fd()),
		output: termenv.NewOutput(out),
		log:    log,
		events: make(chan monitor.Event, 64),
		errs:   make(chan error, 1),
	}
	outFd := int(out.Fd())
	c.sizeFn = func() (int, int, error) {
		return term.GetSize(outFd)
	}
	return c
}

// Enter switches to raw mode, the alternate screen, and a hidden cursor,
// then starts reading keys in the background. On failure whatever was
// already changed is left for Restore to undo.
func (c *ANSI) Enter() error {
	if !term.IsTerminal(c.fd) {
		return errors.New(errors.ErrTerminal,
			"Standard input isn't a terminal",
			"Run sysmon interactively, or use 'sysmon snapshot' for scripts.")
	}

	state, err := term.MakeRaw(c.fd)
	if err != nil {
		return errors.Wrap(err, "Couldn't switch the terminal to raw mode")
	}
	c.state = state

	if err := c.attach(); err != nil {
		return err
	}
	c.log.Debug("ansi console entered raw mode on fd %d", c.fd)
	return nil
}

// attach switches to the alternate screen, hides the cursor, and starts the
// background key reader. Restore undoes all three.
func (c *ANSI) attach() error {
	c.output.AltScreen()
	c.altScreen = true
	c.output.HideCursor()

	reader, err := cancelreader.NewReader(c.in)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Couldn't open keyboard input", "")
	}
	c.reader = reader
	c.readDone = make(chan struct{})
	go c.readLoop()
	return nil
}

func (c *ANSI) readLoop() {
	defer close(c.readDone)
	buf := make([]byte, 256)
	for {
		n, err := c.reader.Read(buf)
		if n > 0 {
			for _, ev := range decodeKeys(buf[:n]) {
				select {
				case c.events <- ev:
				default:
					c.log.Warn("dropping key %q, event queue full", ev.Key)
				}
			}
		}
		if err != nil {
			if !stderrors.Is(err, cancelreader.ErrCanceled) {
				c.errs <- err
			}
			return
		}
	}
}

// Restore undoes Enter in reverse order. Only the first call does anything.
func (c *ANSI) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.restored {
		return nil
	}
	c.restored = true

	if c.reader != nil {
		c.reader.Cancel()
		<-c.readDone
		if err := c.reader.Close(); err != nil {
			c.log.Debug("closing input reader: %v", err)
		}
	}
	if c.altScreen {
		c.output.ShowCursor()
		c.output.ExitAltScreen()
	}
	if c.state != nil {
		if err := term.Restore(c.fd, c.state); err != nil {
			return errors.WrapWithCode(err, errors.ErrTerminal,
				"Couldn't restore the terminal mode",
				"Run 'reset' to recover your terminal session.")
		}
	}
	c.log.Debug("ansi console restored")
	return nil
}

// Size returns the terminal size, or 0, 0 when it can't be read.
func (c *ANSI) Size() (int, int) {
	w, h, err := c.sizeFn()
	if err != nil {
		return 0, 0
	}
	return w, h
}

// Clear erases the whole screen.
func (c *ANSI) Clear() error {
	c.output.ClearScreen()
	return nil
}

// Draw paints a frame from the top-left corner in a single write. Each line
// erases to its right edge and everything below the frame is erased, so a
// frame never leaves stale text from the previous one.
func (c *ANSI) Draw(frame monitor.Frame) (int, error) {
	lines := strings.Split(frame.String(), "\n")

	var b strings.Builder
	b.WriteString(seqCursorHome)
	for i, line := range lines {
		if i > 0 {
			// Raw mode disables output post-processing, so \n alone won't return the carriage.
			b.WriteString("\r\n")
		}
		b.WriteString(line)
		b.WriteString(seqEraseRight)
	}
	b.WriteString(seqEraseDown)

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return 0, err
	}
	return len(lines), nil
}

// Poll waits up to timeout for one key. A read error from the background
// reader is returned once.
func (c *ANSI) Poll(timeout time.Duration) (monitor.Event, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-c.events:
		return ev, true, nil
	case err := <-c.errs:
		return monitor.Event{}, false, err
	case <-timer.C:
		return monitor.Event{}, false, nil
	}
}
