package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/thunars/internal/keymap"
	"github.com/kk-code-lab/thunars/internal/state"
)

// ResizeCommand reports a terminal size change. The application handles it
// itself rather than passing it to the browser.
type ResizeCommand struct {
	Width, Height int
}

// InputHandler converts tcell events to commands
type InputHandler struct {
	resolver *keymap.Resolver
}

// NewInputHandler creates a new input handler
func NewInputHandler(resolver *keymap.Resolver) *InputHandler {
	return &InputHandler{resolver: resolver}
}

// ProcessEvent converts a tcell event into a command for the given mode.
// Events that carry no input give NoneCommand.
func (ih *InputHandler) ProcessEvent(ev tcell.Event, mode state.Mode) state.Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev, mode)
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeCommand{Width: w, Height: h}
	default:
		return state.NoneCommand{}
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey, mode state.Mode) state.Command {
	// No binding can name Alt or Meta, so such chords must not fall through
	// to their unmodified key.
	if ev.Modifiers()&(tcell.ModAlt|tcell.ModMeta) != 0 {
		return state.NoneCommand{}
	}
	return ih.resolver.Resolve(mode, keymap.FromEvent(ev))
}
