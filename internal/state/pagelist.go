package state

import "errors"

// ErrOutOfRange is returned by Current on an empty list.
var ErrOutOfRange = errors.New("list is empty")

// PagedList is an ordered sequence viewed through a window of viewport rows.
// selected is relative to scroll; scroll+selected is the absolute cursor.
type PagedList[T any] struct {
	entries  []T
	scroll   int
	selected int
	viewport int
}

// NewPagedList returns an empty list showing viewport rows.
func NewPagedList[T any](viewport int) *PagedList[T] {
	l := &PagedList[T]{}
	l.SetViewport(viewport)
	return l
}

// SetViewport changes the visible row count without moving the cursor. A
// cursor left below a shrunken window is pulled back by the next move.
func (l *PagedList[T]) SetViewport(n int) {
	if n < 1 {
		n = 1
	}
	l.viewport = n
}

// fit pins a cursor that sits below the window to its last row, keeping the
// absolute index.
func (l *PagedList[T]) fit() {
	if l.selected < l.viewport {
		return
	}
	idx := l.Index()
	l.selected = l.viewport - 1
	l.scroll = idx - l.selected
}

func (l *PagedList[T]) Viewport() int { return l.viewport }
func (l *PagedList[T]) Len() int      { return len(l.entries) }
func (l *PagedList[T]) Scroll() int   { return l.scroll }
func (l *PagedList[T]) Selected() int { return l.selected }

// Index is the absolute position of the cursor.
func (l *PagedList[T]) Index() int { return l.scroll + l.selected }

// Entries returns the backing slice; callers must not modify it.
func (l *PagedList[T]) Entries() []T { return l.entries }

// Replace swaps the contents and moves the cursor back to the top.
func (l *PagedList[T]) Replace(entries []T) {
	l.entries = entries
	l.scroll = 0
	l.selected = 0
}

// Update swaps the contents but keeps the cursor, clamped to the new length.
func (l *PagedList[T]) Update(entries []T) {
	l.entries = entries
	n := len(entries)
	if l.scroll > 0 && l.scroll+l.viewport > n {
		l.scroll = max(0, n-l.viewport)
	}
	if l.scroll+l.selected >= n {
		l.selected = max(0, n-1-l.scroll)
	}
}

// Current returns the entry under the cursor.
func (l *PagedList[T]) Current() (T, error) {
	var zero T
	idx := l.Index()
	if idx < 0 || idx >= len(l.entries) {
		return zero, ErrOutOfRange
	}
	return l.entries[idx], nil
}

// Visible returns the rows inside the window.
func (l *PagedList[T]) Visible() []T {
	if l.scroll >= len(l.entries) {
		return nil
	}
	end := min(len(l.entries), l.scroll+l.viewport)
	return l.entries[l.scroll:end]
}

// ScrollWindow moves the window one row, leaving the cursor at the same
// row of the window.
func (l *PagedList[T]) ScrollWindow(down bool) {
	l.fit()
	if !down {
		if l.scroll > 0 {
			l.scroll--
		}
		return
	}

	maxScroll := max(0, len(l.entries)-l.viewport)
	if l.scroll < maxScroll && l.scroll+1+l.selected < len(l.entries) {
		l.scroll++
	}
}

// ScrollEntry moves the cursor one entry. Leaving the window drags it along.
func (l *PagedList[T]) ScrollEntry(down bool) {
	l.fit()
	if !down {
		if l.selected == 0 && l.scroll > 0 {
			l.scroll--
		} else if l.selected > 0 {
			l.selected--
		}
		return
	}

	if len(l.entries) == 0 || l.Index() >= len(l.entries)-1 {
		return
	}

	last := l.viewport - 1
	if l.selected >= last {
		l.scroll += l.selected + 1 - last
		l.selected = last
	} else {
		l.selected++
	}
}

// SelectRow moves the cursor to a row of the current window.
func (l *PagedList[T]) SelectRow(row int) bool {
	l.fit()
	if row < 0 || row >= l.viewport || l.scroll+row >= len(l.entries) {
		return false
	}
	l.selected = row
	return true
}

// SelectIndex moves the cursor to an absolute index, scrolling as little as possible.
func (l *PagedList[T]) SelectIndex(idx int) {
	if len(l.entries) == 0 {
		return
	}
	idx = max(0, min(idx, len(l.entries)-1))

	switch {
	case idx < l.scroll:
		l.scroll = idx
		l.selected = 0
	case idx >= l.scroll+l.viewport:
		l.scroll = idx - l.viewport + 1
		l.selected = l.viewport - 1
	default:
		l.selected = idx - l.scroll
	}
}
