// Package monitor implements the live host metrics dashboard.
//
// # Pipeline
//
// Every tick runs the same steps:
//
//  1. A fresh sysinfo.Provider is opened from the Source
//  2. Build samples it into a Snapshot (memory refreshed before it is read)
//  3. Render lays the Snapshot out as a Frame sized to the terminal
//  4. The Console paints the Frame
//  5. The Console is polled for one key with the cadence as timeout
//
// The poll timeout is the only pacing, so the dashboard redraws once per
// cadence while idle and immediately after any key.
//
// # Consoles
//
// Loop drives any Console. The terminal package provides an ANSI console
// built on x/term and a tcell console. Model is a third rendition on Bubble
// Tea that replaces the poll timeout with tea.Tick.
//
// # Terminal Ownership
//
// Loop.Run calls Console.Restore exactly once on every exit path, including
// a failed Enter, a fatal tick error, context cancellation, and a panic.
//
// # Keyboard Shortcuts
//
//	q, Esc, Ctrl+C - Quit
//
// Every other key is ignored.
package monitor
