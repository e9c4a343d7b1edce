package state

import (
	"path/filepath"
	"strings"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	fsutil "github.com/kk-code-lab/thunars/internal/fs"
)

func (b *Browser) enterOmnibar(kind OmnibarKind) {
	b.mode = ModeOmnibar
	b.omnibar.open(kind)
	if kind != OmnibarRename {
		return
	}
	if entry, ok := b.Selected(); ok && !entry.Synthetic && !entry.IsDir() {
		b.omnibar.Buffer.Set(entry.Name)
	}
}

func (b *Browser) leaveOmnibar() {
	b.mode = ModeNormal
	b.omnibar.close()
}

func (b *Browser) dispatchOmnibar(cmd Command) error {
	switch c := cmd.(type) {
	case WriteCommand:
		b.omnibar.Buffer.Insert(c.Char)
	case BackspaceCommand:
		b.omnibar.Buffer.Backspace()
	case SubmitCommand:
		return b.submitOmnibar()
	case ExitCommand:
		b.leaveOmnibar()
	}
	return nil
}

// submitOmnibar performs the prompt's action. The prompt closes whether or
// not the action succeeds.
func (b *Browser) submitOmnibar() error {
	kind := b.omnibar.Kind
	name := b.omnibar.Buffer.String()
	b.leaveOmnibar()

	if err := validateName(kind, name); err != nil {
		return err
	}
	target := filepath.Join(b.cwd, name)

	switch kind {
	case OmnibarRename:
		entry, ok := b.Selected()
		if !ok || entry.Synthetic || entry.IsDir() {
			return apperrors.Newf(apperrors.InvalidInput, "rename", entry.FullPath, "only files can be renamed")
		}
		if err := fsutil.Rename(entry.FullPath, target); err != nil {
			return err
		}
	case OmnibarTouch:
		if err := fsutil.Touch(target); err != nil {
			return err
		}
	case OmnibarMkdir:
		if fsutil.Exists(target) {
			return apperrors.Newf(apperrors.InvalidInput, "mkdir", target, "already exists")
		}
		if err := fsutil.MakeDir(target); err != nil {
			return err
		}
	}

	if err := b.ChangeDirectory(b.cwd); err != nil {
		return err
	}
	b.selectName(name)
	return nil
}

func validateName(kind OmnibarKind, name string) error {
	op := kind.String()
	switch {
	case strings.TrimSpace(name) == "":
		return apperrors.Newf(apperrors.InvalidInput, op, "", "name is empty")
	case name == "." || name == "..":
		return apperrors.Newf(apperrors.InvalidInput, op, name, "reserved name")
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return apperrors.Newf(apperrors.InvalidInput, op, name, "name contains a path separator")
	}
	return nil
}
