package monitor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// Key names reported by consoles. Printable keys are reported as themselves.
const (
	KeyQuit   = "q"
	KeyEsc    = "esc"
	KeyCtrlC  = "ctrl+c"
	KeyResize = "resize"
)

// Event is a single input event read from a console.
type Event struct {
	Key string
}

// String returns the key name so events can be matched against key.Binding.
func (e Event) String() string {
	return e.Key
}

// KeyMap holds the dashboard's key bindings.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the standard bindings. Ctrl+C is bound to quit
// because raw mode stops the terminal from turning it into SIGINT.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(KeyQuit, KeyEsc, KeyCtrlC),
		),
	}
}

// IsQuit reports whether an input event (an Event or a tea.KeyMsg) is a quit key.
func (k KeyMap) IsQuit(ev fmt.Stringer) bool {
	return key.Matches(ev, k.Quit)
}
