package state

// Command is the base interface for everything the key resolver can emit.
// The Browser interprets a command according to its current Mode.
type Command interface{}

// Mode selects which command vocabulary is live.
type Mode int

const (
	ModeNormal Mode = iota
	ModeHint
	ModeFinder
	ModeOmnibar
)

func (m Mode) String() string {
	switch m {
	case ModeHint:
		return "hint"
	case ModeFinder:
		return "finder"
	case ModeOmnibar:
		return "omnibar"
	default:
		return "normal"
	}
}

// OmnibarKind is the filesystem action an omnibar submission performs.
type OmnibarKind int

const (
	OmnibarRename OmnibarKind = iota
	OmnibarTouch
	OmnibarMkdir
)

// Title is the omnibar panel caption.
func (k OmnibarKind) Title() string {
	switch k {
	case OmnibarTouch:
		return "New file"
	case OmnibarMkdir:
		return "New directory"
	default:
		return "Rename"
	}
}

func (k OmnibarKind) String() string {
	switch k {
	case OmnibarTouch:
		return "touch"
	case OmnibarMkdir:
		return "mkdir"
	default:
		return "rename"
	}
}

// ===== NORMAL MODE =====

type EntryScrollCommand struct {
	Down bool
}
type WindowScrollCommand struct {
	Down bool
}
type SelectEntryCommand struct{}
type HintModeCommand struct{}
type FinderModeCommand struct {
	Zoxide bool // search directory history instead of the file index
}
type OmnibarModeCommand struct {
	Kind OmnibarKind
}
type YankCommand struct {
	Cut bool
}
type PasteCommand struct{}
type ClearClipboardCommand struct{}
type RefreshCommand struct{}
type ExitCommand struct{}
type NoneCommand struct{}

// ===== TEXT ENTRY (finder, omnibar, hint) =====

type WriteCommand struct {
	Char rune
}
type BackspaceCommand struct{}
type SubmitCommand struct{}

// ===== HINT MODE =====

type ExitHintCommand struct{}

// ShouldRefreshPreview reports whether cmd can have changed what the preview shows.
func ShouldRefreshPreview(cmd Command) bool {
	switch cmd.(type) {
	case nil, ExitCommand, NoneCommand:
		return false
	}
	return true
}
