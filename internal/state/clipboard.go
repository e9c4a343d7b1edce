package state

import (
	"os"
	"path/filepath"
)

// ClipboardEntry is a queued copy or move of one file.
type ClipboardEntry struct {
	Path string
	Cut  bool
}

// Clipboard holds files queued for the next paste, in yank order.
type Clipboard struct {
	entries []ClipboardEntry
}

// Push queues path. Directories and paths that cannot be stat'ed are
// silently refused.
func (c *Clipboard) Push(path string, cut bool) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return false
	}
	c.entries = append(c.entries, ClipboardEntry{Path: abs, Cut: cut})
	return true
}

// Entries returns a copy of the queue.
func (c *Clipboard) Entries() []ClipboardEntry {
	out := make([]ClipboardEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Clipboard) Len() int {
	return len(c.entries)
}

func (c *Clipboard) Clear() {
	c.entries = nil
}

// Lines renders the queue for the clipboard panel.
func (c *Clipboard) Lines() []string {
	lines := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		verb := "copy"
		if e.Cut {
			verb = "cut "
		}
		lines = append(lines, verb+" "+e.Path)
	}
	return lines
}
