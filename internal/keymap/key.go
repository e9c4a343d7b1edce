package keymap

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	apperrors "github.com/kk-code-lab/thunars/internal/errors"
)

// Key is a normalised key press. Character keys have Code tcell.KeyRune.
type Key struct {
	Code tcell.Key
	Rune rune
}

// Char returns the key for a printable character.
func Char(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: r}
}

// Named returns the key for a non-character tcell key.
func Named(code tcell.Key) Key {
	if code == tcell.KeyBackspace2 {
		code = tcell.KeyBackspace
	}
	return Key{Code: code}
}

// FromEvent normalises a tcell key event. Modifiers other than those folded
// into tcell's control keys are dropped.
func FromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return Char(ev.Rune())
	}
	return Named(ev.Key())
}

// IsChar reports whether k inserts text.
func (k Key) IsChar() bool {
	return k.Code == tcell.KeyRune
}

var namedKeys = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"backspace": tcell.KeyBackspace,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pageup":    tcell.KeyPgUp,
	"pagedown":  tcell.KeyPgDn,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
}

var keyNames = func() map[tcell.Key]string {
	m := make(map[tcell.Key]string, len(namedKeys))
	for name, code := range namedKeys {
		m[code] = name
	}
	return m
}()

// ctrlAliases are control letters a terminal sends as a named key.
var ctrlAliases = map[byte]string{
	'h': "backspace",
	'i': "tab",
	'm': "enter",
}

// ParseKey parses a configuration key identifier.
func ParseKey(id string) (Key, error) {
	if utf8.RuneCountInString(id) == 1 {
		r, _ := utf8.DecodeRuneInString(id)
		return Char(r), nil
	}

	lower := strings.ToLower(id)
	if lower == "space" {
		return Char(' '), nil
	}
	if code, ok := namedKeys[lower]; ok {
		return Named(code), nil
	}
	if rest, ok := strings.CutPrefix(lower, "ctrl-"); ok && len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
		if name, taken := ctrlAliases[rest[0]]; taken {
			return Key{}, apperrors.Newf(apperrors.ConfigError, "parse key", "", "%q is the same key as %q; write %q", id, name, name)
		}
		return Named(tcell.KeyCtrlA + tcell.Key(rest[0]-'a')), nil
	}
	if rest, ok := strings.CutPrefix(lower, "f"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= 12 {
			return Named(tcell.KeyF1 + tcell.Key(n-1)), nil
		}
	}
	return Key{}, apperrors.Newf(apperrors.ConfigError, "parse key", "", "unknown key %q", id)
}

// String renders the key the way ParseKey accepts it.
func (k Key) String() string {
	switch {
	case k.Code == tcell.KeyRune && k.Rune == ' ':
		return "space"
	case k.Code == tcell.KeyRune:
		return string(k.Rune)
	}
	if name, ok := keyNames[k.Code]; ok {
		return name
	}
	if k.Code >= tcell.KeyCtrlA && k.Code <= tcell.KeyCtrlZ {
		return "ctrl-" + string(rune('a'+k.Code-tcell.KeyCtrlA))
	}
	if k.Code >= tcell.KeyF1 && k.Code <= tcell.KeyF12 {
		return fmt.Sprintf("f%d", k.Code-tcell.KeyF1+1)
	}
	return fmt.Sprintf("key(%d)", int(k.Code))
}
