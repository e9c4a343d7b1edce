package state

import "context"

// SearchMode picks the finder's candidate source.
type SearchMode int

const (
	// SearchIndex ranks files under the current directory.
	SearchIndex SearchMode = iota
	// SearchHistory asks the directory history (zoxide) for matches.
	SearchHistory
)

func (m SearchMode) String() string {
	if m == SearchHistory {
		return "zoxide"
	}
	return "files"
}

// SearchRequest is what the finder asks for on every query change.
type SearchRequest struct {
	Query string
	Mode  SearchMode
	Root  string
	Limit int
	// Fresh asks index searchers to rebuild any cached walk of Root.
	Fresh bool
}

// Searcher returns finder candidates, best first. Index results are relative
// to Root, history results are absolute.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) ([]string, error)
}

// Previewer renders the first lines of a file for the preview panel.
type Previewer interface {
	Preview(path string, maxLines, maxWidth int) ([]string, error)
}

// Opener hands a file to an external program.
type Opener interface {
	Open(path string) error
}
