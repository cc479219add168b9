package terminal

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal owns the tcell screen and turns its events into held keys and quit requests
type Terminal struct {
	screen tcell.Screen
	keys   *HeldKeys
	keymap KeyMap

	finiOnce sync.Once
}

// New wraps screen, key events are recorded into keys
func New(screen tcell.Screen, keys *HeldKeys, keymap KeyMap) *Terminal {
	return &Terminal{
		screen: screen,
		keys:   keys,
		keymap: keymap,
	}
}

// Init enters raw mode and the alternate screen
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Fini restores the terminal, safe to call more than once
func (t *Terminal) Fini() {
	t.finiOnce.Do(t.screen.Fini)
}

// HandleEvent applies one event, quit is called for Escape and Ctrl-C
// Returns false once the screen has shut down and polling should stop
func (t *Terminal) HandleEvent(ev tcell.Event, quit func()) bool {
	switch ev := ev.(type) {
	case nil:
		return false

	case *tcell.EventKey:
		action, key := t.keymap.Resolve(ev)
		switch action {
		case ActionQuit:
			slog.Debug("quit requested from keyboard")
			quit()
		case ActionKey:
			t.keys.Press(key)
		}

	case *tcell.EventResize:
		// Held state is stale after a resize pause
		t.keys.ReleaseAll()
		t.screen.Sync()

	case *tcell.EventFocus:
		if !ev.Focused {
			t.keys.ReleaseAll()
		}

	case *tcell.EventError:
		slog.Error("terminal event error", "error", ev.Error())
	}
	return true
}

// Poll reads events until the screen is finalized
// Run it on its own goroutine, PollEvent blocks
func (t *Terminal) Poll(quit func()) {
	for {
		if !t.HandleEvent(t.screen.PollEvent(), quit) {
			return
		}
	}
}

// EmergencyReset writes the escape sequences that undo raw-mode screen state
// Used from crash handlers when the screen cannot be finalized normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)
