package search

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"
)

// IndexSearcher fuzzy-ranks the files under a root. The walk is cached per
// root and rebuilt on request.
type IndexSearcher struct {
	opts walkOptions
	log  *logrus.Entry

	root  string
	files []string
}

// NewIndexSearcher returns a searcher that indexes at most maxFiles files.
func NewIndexSearcher(maxFiles int, showHidden bool, log *logrus.Entry) *IndexSearcher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &IndexSearcher{
		opts: walkOptions{MaxFiles: maxFiles, ShowHidden: showHidden},
		log:  log,
	}
}

// Search returns up to limit root-relative paths matching query, best first.
// An empty query lists files in walk order.
func (s *IndexSearcher) Search(ctx context.Context, root, query string, limit int, fresh bool) ([]string, error) {
	if fresh || s.files == nil || root != s.root {
		if err := s.reindex(ctx, root); err != nil {
			return nil, err
		}
	}
	return rankPaths(s.files, query, limit), nil
}

func (s *IndexSearcher) reindex(ctx context.Context, root string) error {
	files, truncated, err := walkFiles(ctx, root, s.opts)
	if err != nil {
		return err
	}
	s.root = root
	s.files = files
	s.log.WithFields(logrus.Fields{
		"root":      root,
		"files":     len(files),
		"truncated": truncated,
	}).Debug("indexed files")
	return nil
}

// rankPaths orders candidates by edit distance to the query, preferring
// paths whose file name alone matches, then shorter paths, then walk order.
func rankPaths(paths []string, query string, limit int) []string {
	query = strings.Join(strings.Fields(query), "")
	if query == "" {
		return headOf(paths, limit)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, paths)
	nameHit := make(map[int]bool, len(ranks))
	for _, r := range ranks {
		nameHit[r.OriginalIndex] = fuzzy.MatchNormalizedFold(query, path.Base(r.Target))
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if nameHit[a.OriginalIndex] != nameHit[b.OriginalIndex] {
			return nameHit[a.OriginalIndex]
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if len(a.Target) != len(b.Target) {
			return len(a.Target) < len(b.Target)
		}
		return a.OriginalIndex < b.OriginalIndex
	})

	out := make([]string, 0, min(len(ranks), max(limit, 0)))
	for _, r := range ranks {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, r.Target)
	}
	return out
}

func headOf(paths []string, limit int) []string {
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}
