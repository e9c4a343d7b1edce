package state

import (
	"path/filepath"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	fsutil "github.com/kk-code-lab/thunars/internal/fs"
	"golang.org/x/text/unicode/norm"
)

// ChangeDirectory lists target and makes it the current directory. Nothing
// changes unless the listing succeeds.
func (b *Browser) ChangeDirectory(target string) error {
	if !filepath.IsAbs(target) {
		target = filepath.Join(b.cwd, target)
	}
	dir, err := fsutil.Canonicalize(target)
	if err != nil {
		return err
	}
	entries, err := fsutil.ReadDir(dir)
	if err != nil {
		return err
	}
	if err := chdirFn(dir); err != nil {
		return apperrors.New(apperrors.IOFailure, "chdir", dir, err)
	}

	b.cwd = dir
	b.files.Replace(entries)
	b.log.WithField("dir", dir).Debug("changed directory")
	return nil
}

// Refresh re-reads the current directory and keeps the cursor on the same
// name when it still exists.
func (b *Browser) Refresh() error {
	prev, hadPrev := b.Selected()
	prevIndex := b.files.Index()

	if err := b.ChangeDirectory(b.cwd); err != nil {
		return err
	}
	if hadPrev && b.selectName(prev.Name) {
		return nil
	}
	b.files.SelectIndex(prevIndex)
	return nil
}

func (b *Browser) selectName(name string) bool {
	name = norm.NFC.String(name)
	for i, entry := range b.files.Entries() {
		if entry.Name == name {
			b.files.SelectIndex(i)
			return true
		}
	}
	return false
}

func (b *Browser) openSelection() error {
	entry, err := b.files.Current()
	if err != nil {
		return nil
	}
	if entry.IsDir() {
		return b.ChangeDirectory(entry.FullPath)
	}
	return b.open(entry.FullPath)
}

func (b *Browser) open(path string) error {
	if b.opener == nil {
		return apperrors.Newf(apperrors.ExternalProcessFailure, "open", path, "no opener configured")
	}
	if err := b.opener.Open(path); err != nil {
		if apperrors.KindOf(err) == apperrors.Unknown {
			return apperrors.New(apperrors.ExternalProcessFailure, "open", path, err)
		}
		return err
	}
	b.log.WithField("path", path).Info("opened file")
	return nil
}
