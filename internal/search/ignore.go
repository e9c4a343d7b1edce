package search

import (
	"os"
	"path"
	"path/filepath"
)

// ignoreFileNames are read in every directory, lowest priority first.
var ignoreFileNames = []string{".gitignore", ".ignore", ".thunarsignore"}

var userHomeDirFn = os.UserHomeDir

// ignoreProvider builds and caches one matcher per directory of a walk.
type ignoreProvider struct {
	root  string
	cache map[string]*IgnoreMatcher
}

func newIgnoreProvider(root string) *ignoreProvider {
	p := &ignoreProvider{
		root:  root,
		cache: make(map[string]*IgnoreMatcher),
	}

	base := NewIgnoreMatcher()
	if home, err := userHomeDirFn(); err == nil && home != "" {
		p.addFile(base, filepath.Join(home, ".config", "git", "ignore"), "")
	}
	p.addFile(base, filepath.Join(root, ".git", "info", "exclude"), "")
	p.addDirectory(base, "")
	p.cache[""] = base
	return p
}

// MatcherFor returns the rules in force inside rel (slash-separated,
// "" for the root). Parents are resolved first so nested files extend them.
func (p *ignoreProvider) MatcherFor(rel string) *IgnoreMatcher {
	if rel == "." {
		rel = ""
	}
	if m, ok := p.cache[rel]; ok {
		return m
	}

	parent := path.Dir(rel)
	if parent == "." {
		parent = ""
	}
	m := p.MatcherFor(parent).Clone()
	p.addDirectory(m, rel)
	p.cache[rel] = m
	return m
}

func (p *ignoreProvider) addDirectory(m *IgnoreMatcher, rel string) {
	dir := filepath.Join(p.root, filepath.FromSlash(rel))
	for _, name := range ignoreFileNames {
		p.addFile(m, filepath.Join(dir, name), rel)
	}
}

func (p *ignoreProvider) addFile(m *IgnoreMatcher, file, base string) {
	data, err := os.ReadFile(file)
	if err != nil || len(data) == 0 {
		return
	}
	m.AddPatterns(string(data), base)
}
