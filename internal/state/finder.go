package state

// FinderState is the fuzzy-finder overlay.
type FinderState struct {
	Active  bool
	Zoxide  bool
	Query   TextBuffer
	Results *PagedList[string]
}

func newFinderState() FinderState {
	return FinderState{Results: NewPagedList[string](1)}
}

// Mode is the search source for the current session.
func (f *FinderState) Mode() SearchMode {
	if f.Zoxide {
		return SearchHistory
	}
	return SearchIndex
}

func (f *FinderState) open(zoxide bool) {
	f.Active = true
	f.Zoxide = zoxide
	f.Query.Clear()
	f.Results.Replace(nil)
}

func (f *FinderState) close() {
	f.Active = false
	f.Query.Clear()
	f.Results.Replace(nil)
}

// UpdateFiles installs new results, truncated to one screen. The window never
// scrolls; the cursor stays put unless the list became shorter.
func (f *FinderState) UpdateFiles(files []string) {
	if limit := f.Results.Viewport(); len(files) > limit {
		files = files[:limit]
	}
	f.Results.Update(files)
}
