package state

func (b *Browser) enterHint() {
	b.mode = ModeHint
	b.hintInput = b.hintInput[:0]
}

func (b *Browser) leaveHint() {
	b.mode = ModeNormal
	b.hintInput = b.hintInput[:0]
}

// dispatchHint collects code characters until they name a visible row. Two
// characters without a match give up.
func (b *Browser) dispatchHint(cmd Command) error {
	switch c := cmd.(type) {
	case ExitHintCommand, ExitCommand:
		b.leaveHint()
	case WriteCommand:
		b.hintInput = append(b.hintInput, c.Char)
		code := string(b.hintInput)
		if b.hints.IsValid(code, len(b.files.Visible())) {
			row, err := b.hints.Resolve(code)
			b.leaveHint()
			if err != nil {
				return err
			}
			b.files.SelectRow(row)
			return nil
		}
		if len(b.hintInput) >= 2 {
			b.leaveHint()
		}
	}
	return nil
}

// HintInput is the partially typed code.
func (b *Browser) HintInput() string {
	return string(b.hintInput)
}
