package keymap

import (
	"github.com/kk-code-lab/thunars/internal/state"
)

// Section names a binding table in the configuration file.
type Section string

const (
	SectionFileList Section = "filelist"
	SectionFinder   Section = "finder"
	SectionOmnibar  Section = "omnibar"
)

// Sections lists the binding tables in file order.
var Sections = []Section{SectionFileList, SectionFinder, SectionOmnibar}

// action is a bindable name. An empty label keeps it out of the footer.
type action struct {
	name  string
	cmd   state.Command
	label string
}

var fileListActions = []action{
	{"scroll_down", state.EntryScrollCommand{Down: true}, ""},
	{"scroll_up", state.EntryScrollCommand{Down: false}, ""},
	{"window_down", state.WindowScrollCommand{Down: true}, ""},
	{"window_up", state.WindowScrollCommand{Down: false}, ""},
	{"select_entry", state.SelectEntryCommand{}, "open"},
	{"hint_mode", state.HintModeCommand{}, "jump"},
	{"finder_files", state.FinderModeCommand{Zoxide: false}, "find"},
	{"finder_zoxide", state.FinderModeCommand{Zoxide: true}, "zoxide"},
	{"rename", state.OmnibarModeCommand{Kind: state.OmnibarRename}, "rename"},
	{"touch", state.OmnibarModeCommand{Kind: state.OmnibarTouch}, "touch"},
	{"mkdir", state.OmnibarModeCommand{Kind: state.OmnibarMkdir}, "mkdir"},
	{"yank", state.YankCommand{Cut: false}, "yank"},
	{"cut", state.YankCommand{Cut: true}, "cut"},
	{"paste", state.PasteCommand{}, "paste"},
	{"clear_clipboard", state.ClearClipboardCommand{}, ""},
	{"refresh", state.RefreshCommand{}, ""},
	{"exit", state.ExitCommand{}, "quit"},
	{"exit_hint", state.ExitHintCommand{}, ""},
}

var finderActions = []action{
	{"scroll_down", state.EntryScrollCommand{Down: true}, ""},
	{"scroll_up", state.EntryScrollCommand{Down: false}, ""},
	{"select_entry", state.SelectEntryCommand{}, "open"},
	{"backspace", state.BackspaceCommand{}, ""},
	{"exit", state.ExitCommand{}, "close"},
}

var omnibarActions = []action{
	{"backspace", state.BackspaceCommand{}, ""},
	{"submit", state.SubmitCommand{}, "ok"},
	{"exit", state.ExitCommand{}, "cancel"},
}

// exitHintAction lives in the filelist table but is only live in hint mode.
const exitHintAction = "exit_hint"

func actionsFor(section Section) []action {
	switch section {
	case SectionFileList:
		return fileListActions
	case SectionFinder:
		return finderActions
	case SectionOmnibar:
		return omnibarActions
	}
	return nil
}

// ActionNames lists the bindable names of a section.
func ActionNames(section Section) []string {
	actions := actionsFor(section)
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.name
	}
	return names
}
