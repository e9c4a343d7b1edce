package state

import (
	"io/fs"
	"path/filepath"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	fsutil "github.com/kk-code-lab/thunars/internal/fs"
)

func (b *Browser) yank(cut bool) {
	entry, ok := b.Selected()
	if !ok || entry.IsDir() {
		return
	}
	if b.clipboard.Push(entry.FullPath, cut) {
		b.log.WithField("path", entry.FullPath).WithField("cut", cut).Debug("queued for paste")
	}
}

// paste copies every queued file into the current directory. Cut entries
// lose their source only after a successful copy. The clipboard is emptied
// even when some entries fail; their errors are joined.
func (b *Browser) paste() error {
	entries := b.clipboard.Entries()
	if len(entries) == 0 {
		return nil
	}

	var errs []error
	for _, e := range entries {
		dst := filepath.Join(b.cwd, filepath.Base(e.Path))
		if fsutil.Exists(dst) {
			errs = append(errs, apperrors.New(apperrors.IOFailure, "paste", dst, fs.ErrExist))
			continue
		}
		if err := fsutil.CopyFile(e.Path, dst); err != nil {
			errs = append(errs, err)
			continue
		}
		if e.Cut {
			if err := fsutil.Remove(e.Path); err != nil {
				errs = append(errs, err)
			}
		}
	}
	b.clipboard.Clear()

	if err := b.Refresh(); err != nil {
		errs = append(errs, err)
	}
	return apperrors.Join(errs...)
}
