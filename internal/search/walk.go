package search

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"

	fsutil "github.com/kk-code-lab/thunars/internal/fs"
)

// walkOptions control which entries a walk reports.
type walkOptions struct {
	MaxFiles   int
	ShowHidden bool
}

// walkFiles lists regular files under root breadth first, so shallow files
// come before deep ones. Paths are slash-separated and relative to root.
// The second result reports whether the cap cut the walk short.
func walkFiles(ctx context.Context, root string, opts walkOptions) ([]string, bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ignores := newIgnoreProvider(root)

	var files []string
	queue := []string{""}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return files, false, err
		}
		rel := queue[0]
		queue = queue[1:]

		dirents, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			continue
		}
		sort.Slice(dirents, func(i, j int) bool { return dirents[i].Name() < dirents[j].Name() })

		matcher := ignores.MatcherFor(rel)
		for _, d := range dirents {
			name := d.Name()
			if name == ".git" || (!opts.ShowHidden && fsutil.IsHidden(name)) {
				continue
			}
			child := path.Join(rel, name)
			isDir := d.IsDir()
			if matcher.Ignored(child, isDir) {
				continue
			}
			if isDir {
				queue = append(queue, child)
				continue
			}
			if !d.Type().IsRegular() {
				continue
			}
			files = append(files, child)
			if opts.MaxFiles > 0 && len(files) >= opts.MaxFiles {
				return files, true, nil
			}
		}
	}
	return files, false, nil
}
