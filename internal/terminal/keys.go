package terminal

import (
	"unicode/utf8"

	"github.com/rileyhilliard/sysmon/internal/monitor"
)

const (
	keyCtrlC     = 0x03
	keyTab       = 0x09
	keyEnter     = 0x0d
	keyEscape    = 0x1b
	keyBackspace = 0x7f
)

// decodeKeys turns one raw-mode read into key events. A lone ESC at the end
// of a read is the Escape key; ESC followed by '[' or 'O' starts a control
// sequence (arrows, function keys) which is consumed and dropped. ESC before
// a printable rune is an alt chord; before anything else it is Escape and the
// following byte is decoded on its own.
func decodeKeys(b []byte) []monitor.Event {
	var events []monitor.Event
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == keyEscape:
			if i+1 == len(b) {
				events = append(events, monitor.Event{Key: monitor.KeyEsc})
				i++
				continue
			}
			next := b[i+1]
			if next == '[' || next == 'O' {
				i = skipSequence(b, i+2, next == 'O')
				continue
			}
			r, size := utf8.DecodeRune(b[i+1:])
			if next < 0x20 || next == keyBackspace || (r == utf8.RuneError && size <= 1) {
				// Not an alt chord: Escape was pressed on its own and the
				// next key arrived in the same read.
				events = append(events, monitor.Event{Key: monitor.KeyEsc})
				i++
				continue
			}
			events = append(events, monitor.Event{Key: "alt+" + string(r)})
			i += 1 + size

		case c == keyCtrlC:
			events = append(events, monitor.Event{Key: monitor.KeyCtrlC})
			i++

		case c == keyEnter || c == '\n':
			events = append(events, monitor.Event{Key: "enter"})
			i++

		case c == keyTab:
			events = append(events, monitor.Event{Key: "tab"})
			i++

		case c == keyBackspace || c == 0x08:
			events = append(events, monitor.Event{Key: "backspace"})
			i++

		case c < 0x20:
			events = append(events, monitor.Event{Key: "ctrl+" + ctrlName(c)})
			i++

		default:
			r, size := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError && size <= 1 {
				i++
				continue
			}
			events = append(events, monitor.Event{Key: string(r)})
			i += size
		}
	}
	return events
}

// skipSequence returns the index just past the control sequence whose body
// starts at i. SS3 sequences carry one final byte; CSI sequences end at the
// first byte in 0x40..0x7e.
func skipSequence(b []byte, i int, ss3 bool) int {
	if ss3 {
		if i < len(b) {
			return i + 1
		}
		return i
	}
	for i < len(b) {
		c := b[i]
		i++
		if c >= 0x40 && c <= 0x7e {
			break
		}
	}
	return i
}

func ctrlName(c byte) string {
	if c >= 1 && c <= 26 {
		return string(rune('a' + c - 1))
	}
	return string(rune('@' + c))
}
