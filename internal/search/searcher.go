// Package search provides the finder's candidate sources: a fuzzy-ranked
// file index of the current directory and zoxide's directory history.
package search

import (
	"context"

	"github.com/kk-code-lab/thunars/internal/state"
)

// Dispatcher routes finder requests to the index or the history source.
type Dispatcher struct {
	Index   *IndexSearcher
	History *HistorySearcher
}

var _ state.Searcher = (*Dispatcher)(nil)

// Search implements state.Searcher.
func (d *Dispatcher) Search(ctx context.Context, req state.SearchRequest) ([]string, error) {
	switch req.Mode {
	case state.SearchHistory:
		if d.History == nil {
			return nil, nil
		}
		return d.History.Search(ctx, req.Query, req.Limit)
	default:
		if d.Index == nil {
			return nil, nil
		}
		return d.Index.Search(ctx, req.Root, req.Query, req.Limit, req.Fresh)
	}
}
