package state

import (
	apperrors "github.com/kk-code-lab/thunars/internal/errors"
)

// Single-key codes come first so the top rows are one keystroke away. Their
// characters never start a two-key code, which keeps every code prefix-free.
var (
	hintSingles = []rune{'p', 'l', 'f', 'u', 'w', 'y', 'q', ';'}
	hintFirsts  = []rune{'t', 'n', 's', 'e', 'r', 'i', 'a', 'o'}
	hintSeconds = []rune{'t', 'n', 's', 'e', 'r', 'i', 'a', 'o', 'p', 'l', 'f', 'u', 'w', 'y', 'q', ';'}
)

// HintTable maps visible rows to quick-jump codes and back. It is built once
// and never changes.
type HintTable struct {
	codes []string
	rows  map[string]int
}

// NewHintTable builds the 136-entry table.
func NewHintTable() *HintTable {
	n := len(hintSingles) + len(hintFirsts)*len(hintSeconds)
	h := &HintTable{
		codes: make([]string, 0, n),
		rows:  make(map[string]int, n),
	}

	add := func(code string) {
		h.rows[code] = len(h.codes)
		h.codes = append(h.codes, code)
	}
	for _, c := range hintSingles {
		add(string(c))
	}
	for _, first := range hintFirsts {
		for _, second := range hintSeconds {
			add(string([]rune{first, second}))
		}
	}
	return h
}

// Len is the number of addressable rows.
func (h *HintTable) Len() int {
	return len(h.codes)
}

// Code returns the code for a visible row.
func (h *HintTable) Code(row int) (string, bool) {
	if row < 0 || row >= len(h.codes) {
		return "", false
	}
	return h.codes[row], true
}

// IsValid reports whether partial is the complete code of one of the first
// visibleRows rows.
func (h *HintTable) IsValid(partial string, visibleRows int) bool {
	row, ok := h.rows[partial]
	return ok && row < visibleRows
}

// Resolve returns the row for code.
func (h *HintTable) Resolve(code string) (int, error) {
	row, ok := h.rows[code]
	if !ok {
		return 0, apperrors.Newf(apperrors.UnknownHint, "resolve hint", "", "no row for %q", code)
	}
	return row, nil
}
