package fs

import (
	"os"
	"path/filepath"
	"sort"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	"golang.org/x/text/unicode/norm"
)

// ReadDir enumerates dir for display: directories first, then files, each
// group sorted by name, with "." and ".." prepended.
func ReadDir(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.New(apperrors.IOFailure, "read directory", dir, err)
	}

	dirs := make([]Entry, 0, len(dirents))
	files := make([]Entry, 0, len(dirents))

	for _, d := range dirents {
		rawName := d.Name()
		fullPath := filepath.Join(dir, rawName)

		entry := Entry{
			Name:     norm.NFC.String(rawName),
			FullPath: fullPath,
			Kind:     KindFile,
		}
		if d.IsDir() {
			entry.Kind = KindDirectory
		}

		// Symlinks are listed by what they point at.
		if d.Type()&os.ModeSymlink != 0 {
			entry.IsSymlink = true
			if info, err := os.Stat(fullPath); err == nil && info.IsDir() {
				entry.Kind = KindDirectory
			}
		}

		if entry.IsDir() {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	sortByName(dirs)
	sortByName(files)

	entries := make([]Entry, 0, len(dirs)+len(files)+2)
	entries = append(entries, SyntheticEntries(dir)...)
	entries = append(entries, dirs...)
	entries = append(entries, files...)
	return entries, nil
}

func sortByName(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// Canonicalize resolves dir to an absolute, symlink-free directory path.
func Canonicalize(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", apperrors.New(apperrors.InvalidDirectory, "resolve", dir, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", apperrors.New(apperrors.InvalidDirectory, "resolve", abs, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", apperrors.New(apperrors.InvalidDirectory, "resolve", resolved, err)
	}
	if !info.IsDir() {
		return "", apperrors.Newf(apperrors.InvalidDirectory, "resolve", resolved, "not a directory")
	}

	return resolved, nil
}
