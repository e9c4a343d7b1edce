package state

import (
	"os"
	"path/filepath"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	"github.com/sirupsen/logrus"
)

func (b *Browser) enterFinder(zoxide bool) {
	b.mode = ModeFinder
	b.finder.open(zoxide)
	b.search(true)
}

func (b *Browser) leaveFinder() {
	b.mode = ModeNormal
	b.finder.close()
}

func (b *Browser) dispatchFinder(cmd Command) error {
	switch c := cmd.(type) {
	case WriteCommand:
		b.finder.Query.Insert(c.Char)
		b.search(false)
	case BackspaceCommand:
		if b.finder.Query.Backspace() {
			b.search(false)
		}
	case EntryScrollCommand:
		b.finder.Results.ScrollEntry(c.Down)
	case SelectEntryCommand, SubmitCommand:
		return b.openFinderSelection()
	case ExitCommand:
		b.leaveFinder()
	}
	return nil
}

// search runs synchronously; a failing searcher leaves an empty result list.
func (b *Browser) search(fresh bool) {
	if b.searcher == nil {
		b.finder.UpdateFiles(nil)
		return
	}
	req := SearchRequest{
		Query: b.finder.Query.String(),
		Mode:  b.finder.Mode(),
		Root:  b.cwd,
		Limit: b.finder.Results.Viewport(),
		Fresh: fresh,
	}
	results, err := b.searcher.Search(b.ctx, req)
	if err != nil {
		b.log.WithFields(logrus.Fields{
			"query":  req.Query,
			"source": req.Mode.String(),
		}).WithError(err).Warn("search failed")
		results = nil
	}
	b.finder.UpdateFiles(results)
}

func (b *Browser) openFinderSelection() error {
	choice, err := b.finder.Results.Current()
	if err != nil {
		return nil
	}
	path := choice
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.cwd, path)
	}
	b.leaveFinder()

	info, err := os.Stat(path)
	if err != nil {
		return apperrors.New(apperrors.IOFailure, "open", path, err)
	}
	if info.IsDir() {
		return b.ChangeDirectory(path)
	}
	return b.open(path)
}
