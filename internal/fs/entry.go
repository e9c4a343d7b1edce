package fs

import (
	"path/filepath"
	"strings"
)

// Kind distinguishes files from directories in a listing.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry represents a single row of a directory listing.
type Entry struct {
	Name      string
	FullPath  string
	Kind      Kind
	IsSymlink bool
	Synthetic bool // "." and ".."
}

// IsDir reports whether the entry navigates rather than opens.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IsHidden reports whether the entry is a dot-file. Synthetic entries never are.
func (e Entry) IsHidden() bool {
	return !e.Synthetic && IsHidden(e.Name)
}

// IsHidden reports whether name follows the dot-file convention.
func IsHidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".") && name != ".."
}

// SyntheticEntries returns the "." and ".." rows for dir.
func SyntheticEntries(dir string) []Entry {
	parent := filepath.Dir(dir)
	return []Entry{
		{Name: ".", FullPath: dir, Kind: KindDirectory, Synthetic: true},
		{Name: "..", FullPath: parent, Kind: KindDirectory, Synthetic: true},
	}
}
