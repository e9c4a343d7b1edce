package state

// TextBuffer is a single-line editable string. Editing happens at the end.
type TextBuffer struct {
	runes []rune
}

func (b *TextBuffer) Insert(r rune) {
	b.runes = append(b.runes, r)
}

// Backspace removes the last rune and reports whether there was one.
func (b *TextBuffer) Backspace() bool {
	if len(b.runes) == 0 {
		return false
	}
	b.runes = b.runes[:len(b.runes)-1]
	return true
}

func (b *TextBuffer) Set(s string) {
	b.runes = []rune(s)
}

func (b *TextBuffer) Clear() {
	b.runes = b.runes[:0]
}

func (b *TextBuffer) Len() int {
	return len(b.runes)
}

func (b *TextBuffer) String() string {
	return string(b.runes)
}
