package state

// OmnibarState is the single-line prompt used for rename, touch and mkdir.
type OmnibarState struct {
	Active bool
	Kind   OmnibarKind
	Buffer TextBuffer
}

func (o *OmnibarState) open(kind OmnibarKind) {
	o.Active = true
	o.Kind = kind
	o.Buffer.Clear()
}

func (o *OmnibarState) close() {
	o.Active = false
	o.Buffer.Clear()
}
