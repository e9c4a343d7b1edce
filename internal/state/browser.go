package state

import (
	"context"
	"os"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	fsutil "github.com/kk-code-lab/thunars/internal/fs"
	"github.com/sirupsen/logrus"
)

// chdirFn keeps the process working directory in step with the browser.
// Tests swap it out.
var chdirFn = os.Chdir

// Options configures a Browser. Collaborators may be nil; the matching
// feature then degrades to a no-op.
type Options struct {
	StartDir  string
	Searcher  Searcher
	Previewer Previewer
	Opener    Opener
	Context   context.Context
	Log       *logrus.Entry
}

// Viewport carries the row and column budgets the layout hands to the browser.
type Viewport struct {
	FileRows     int
	FinderRows   int
	PreviewLines int
	PreviewWidth int
}

// Browser is the mode-driven controller. It owns all navigation state and is
// only ever touched from the event loop goroutine.
type Browser struct {
	cwd       string
	files     *PagedList[fsutil.Entry]
	hints     *HintTable
	hintInput []rune
	finder    FinderState
	omnibar   OmnibarState
	clipboard Clipboard
	mode      Mode
	exit      bool

	preview      []string
	previewLines int
	previewWidth int
	status       string

	searcher  Searcher
	previewer Previewer
	opener    Opener
	ctx       context.Context
	log       *logrus.Entry
}

// NewBrowser lists opts.StartDir and returns a browser in normal mode.
func NewBrowser(opts Options) (*Browser, error) {
	b := &Browser{
		files:     NewPagedList[fsutil.Entry](1),
		hints:     NewHintTable(),
		finder:    newFinderState(),
		searcher:  opts.Searcher,
		previewer: opts.Previewer,
		opener:    opts.Opener,
		ctx:       opts.Context,
		log:       opts.Log,
	}
	if b.ctx == nil {
		b.ctx = context.Background()
	}
	if b.log == nil {
		b.log = logrus.NewEntry(logrus.StandardLogger())
	}

	start := opts.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, apperrors.New(apperrors.IOFailure, "getwd", "", err)
		}
		start = wd
	}
	if err := b.ChangeDirectory(start); err != nil {
		return nil, err
	}
	b.refreshPreview()
	return b, nil
}

// Dispatch applies one command in the current mode. Errors are also kept as
// the status line until the next command.
func (b *Browser) Dispatch(cmd Command) error {
	if b.exit {
		return nil
	}
	if _, idle := cmd.(NoneCommand); idle || cmd == nil {
		return nil
	}
	b.status = ""

	var err error
	switch b.mode {
	case ModeNormal:
		err = b.dispatchNormal(cmd)
	case ModeHint:
		err = b.dispatchHint(cmd)
	case ModeFinder:
		err = b.dispatchFinder(cmd)
	case ModeOmnibar:
		err = b.dispatchOmnibar(cmd)
	}

	if ShouldRefreshPreview(cmd) && !b.exit {
		b.refreshPreview()
	}
	if err != nil {
		b.status = err.Error()
		b.log.WithFields(logrus.Fields{
			"mode": b.mode.String(),
			"kind": apperrors.KindOf(err).String(),
		}).WithError(err).Warn("command failed")
		b.log.Debug(apperrors.Stack(err))
	}
	return err
}

// Reload re-reads the current directory for an outside change. Unlike a
// dispatched RefreshCommand it keeps the status line unless the reload
// itself fails.
func (b *Browser) Reload() error {
	if b.exit {
		return nil
	}
	if err := b.Refresh(); err != nil {
		b.status = err.Error()
		b.log.WithError(err).Warn("reload failed")
		return err
	}
	b.refreshPreview()
	return nil
}

func (b *Browser) dispatchNormal(cmd Command) error {
	switch c := cmd.(type) {
	case EntryScrollCommand:
		b.files.ScrollEntry(c.Down)
	case WindowScrollCommand:
		b.files.ScrollWindow(c.Down)
	case SelectEntryCommand:
		return b.openSelection()
	case HintModeCommand:
		b.enterHint()
	case FinderModeCommand:
		b.enterFinder(c.Zoxide)
	case OmnibarModeCommand:
		b.enterOmnibar(c.Kind)
	case YankCommand:
		b.yank(c.Cut)
	case PasteCommand:
		return b.paste()
	case ClearClipboardCommand:
		b.clipboard.Clear()
	case RefreshCommand:
		return b.Refresh()
	case ExitCommand:
		b.exit = true
	}
	return nil
}

// Resize applies new layout budgets.
func (b *Browser) Resize(v Viewport) {
	b.files.SetViewport(v.FileRows)
	if b.files.Len() > 0 {
		b.files.SelectIndex(b.files.Index())
	}
	b.finder.Results.SetViewport(v.FinderRows)
	if results := b.finder.Results.Entries(); len(results) > b.finder.Results.Viewport() {
		b.finder.UpdateFiles(results)
	}
	b.previewLines = v.PreviewLines
	b.previewWidth = v.PreviewWidth
	b.refreshPreview()
}

func (b *Browser) Mode() Mode                  { return b.mode }
func (b *Browser) CurrentDir() string          { return b.cwd }
func (b *Browser) Exited() bool                { return b.exit }
func (b *Browser) Status() string              { return b.status }
func (b *Browser) Preview() []string           { return b.preview }
func (b *Browser) Clipboard() []ClipboardEntry { return b.clipboard.Entries() }

// Selected returns the entry under the file list cursor.
func (b *Browser) Selected() (fsutil.Entry, bool) {
	entry, err := b.files.Current()
	return entry, err == nil
}

func (b *Browser) refreshPreview() {
	b.preview = nil
	if b.previewer == nil || b.previewLines <= 0 {
		return
	}
	entry, err := b.files.Current()
	if err != nil || entry.IsDir() {
		return
	}
	lines, err := b.previewer.Preview(entry.FullPath, b.previewLines, b.previewWidth)
	if err != nil {
		b.log.WithError(err).WithField("path", entry.FullPath).Debug("preview unavailable")
		return
	}
	b.preview = lines
}
