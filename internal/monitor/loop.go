package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/sysinfo"
)

// DefaultCadence is the input-poll timeout, which is also the redraw interval.
const DefaultCadence = 200 * time.Millisecond

// State is the refresh loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateStopping
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Console is the terminal the loop draws on and reads keys from.
//
// Enter puts the terminal into raw mode on the alternate screen. Restore undoes
// whatever Enter managed to do and must be safe to call after a failed Enter.
// Poll waits at most timeout for one input event; ok is false on timeout.
type Console interface {
	Enter() error
	Restore() error
	Size() (width, height int)
	Clear() error
	Draw(frame Frame) (painted int, err error)
	Poll(timeout time.Duration) (ev Event, ok bool, err error)
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithCadence sets the poll timeout. Non-positive values keep the default.
func WithCadence(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.cadence = d
		}
	}
}

// WithLogger sets the loop's logger.
func WithLogger(log logger.Logger) LoopOption {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// Loop samples, renders, and polls input once per tick until a quit key,
// a fatal error, or context cancellation.
type Loop struct {
	console Console
	source  sysinfo.Source
	cadence time.Duration
	log     logger.Logger
	keys    KeyMap

	state      State
	shouldQuit bool
	ticks      int
}

// viewState is what the previous tick painted.
type viewState struct {
	width   int
	height  int
	painted int
}

// NewLoop creates a loop that draws on console using metrics from source.
func NewLoop(console Console, source sysinfo.Source, opts ...LoopOption) *Loop {
	l := &Loop{
		console: console,
		source:  source,
		cadence: DefaultCadence,
		log:     logger.Noop(),
		keys:    DefaultKeyMap(),
		state:   StateRunning,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Run owns the terminal for the lifetime of the loop. Restore runs exactly
// once on every exit path, including a failed Enter and a panic. The first
// fatal error is returned; a Restore error is only reported when nothing
// failed before it.
func (l *Loop) Run(ctx context.Context) (err error) {
	defer func() {
		l.state = StateStopping
		if rerr := l.console.Restore(); rerr != nil {
			l.log.Error("terminal restore failed: %v", rerr)
			if err == nil {
				err = fatal(rerr, errors.ErrTerminal,
					"Couldn't restore the terminal",
					"Run 'reset' to recover your terminal session.")
			}
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("dashboard panic: %v", r)
			err = errors.New(errors.ErrRender,
				fmt.Sprintf("Dashboard stopped unexpectedly: %v", r),
				"This is a bug; rerun with --log-level debug and report the log.")
		}
	}()

	if err := l.console.Enter(); err != nil {
		return fatal(err, errors.ErrTerminal,
			"Couldn't take over the terminal",
			"Run sysmon from an interactive terminal.")
	}
	l.log.Info("dashboard started, cadence %s", l.cadence)

	var view viewState
	for l.state == StateRunning {
		if ctx.Err() != nil {
			l.log.Info("dashboard cancelled: %v", ctx.Err())
			break
		}
		if err := l.tick(ctx, &view); err != nil {
			l.log.Error("tick %d failed: %v", l.ticks+1, err)
			return err
		}
		if l.shouldQuit {
			l.state = StateStopping
		}
	}

	l.log.Info("dashboard stopped after %d ticks", l.ticks)
	return nil
}

// tick runs one sample, build, render, draw, poll cycle.
func (l *Loop) tick(ctx context.Context, view *viewState) error {
	provider, err := l.source.Open(ctx)
	if err != nil {
		return fatal(err, errors.ErrProvider, "Couldn't read system metrics", "")
	}
	snap := Build(provider)

	width, height := l.console.Size()
	frame := Render(snap, width, height)

	if width != view.width || height != view.height || frame.Lines() < view.painted {
		if err := l.console.Clear(); err != nil {
			return fatal(err, errors.ErrRender, "Couldn't clear the screen", "")
		}
	}

	painted, err := l.console.Draw(frame)
	if err != nil {
		return fatal(err, errors.ErrRender, "Couldn't draw the dashboard", "")
	}
	*view = viewState{width: width, height: height, painted: painted}
	l.ticks++

	ev, ok, err := l.console.Poll(l.cadence)
	if err != nil {
		return fatal(err, errors.ErrInput, "Couldn't read keyboard input", "")
	}
	if ok {
		l.handleEvent(ev)
	}
	return nil
}

func (l *Loop) handleEvent(ev Event) {
	if l.keys.IsQuit(ev) {
		l.log.Debug("quit key %q", ev.Key)
		l.shouldQuit = true
		return
	}
	l.log.Debug("ignored input %q", ev.Key)
}

// fatal keeps errors that already carry a code and wraps the rest.
func fatal(err error, code, message, suggestion string) error {
	if errors.CodeOf(err) != "" {
		return err
	}
	return errors.WrapWithCode(err, code, message, suggestion)
}
