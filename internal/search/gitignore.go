package search

import (
	"path"
	"strings"
)

// IgnoreMatcher holds gitignore rules collected from one or more files.
// Paths are slash-separated and relative to the search root.
type IgnoreMatcher struct {
	rules []ignoreRule
}

type ignoreRule struct {
	segments []string // pattern split on "/", "**" kept as its own segment
	negate   bool
	dirOnly  bool
	// nameOnly rules have no slash and match the last path element at any depth.
	nameOnly bool
	base     string // directory of the ignore file, "" for the root
}

// NewIgnoreMatcher returns an empty matcher.
func NewIgnoreMatcher() *IgnoreMatcher {
	return &IgnoreMatcher{}
}

// Clone copies the rule list so a subdirectory can extend it.
func (m *IgnoreMatcher) Clone() *IgnoreMatcher {
	if m == nil {
		return NewIgnoreMatcher()
	}
	return &IgnoreMatcher{rules: append([]ignoreRule(nil), m.rules...)}
}

// Len is the number of parsed rules.
func (m *IgnoreMatcher) Len() int {
	return len(m.rules)
}

// AddPatterns parses ignore file content found in base ("" or "." for the root).
func (m *IgnoreMatcher) AddPatterns(content, base string) {
	base = strings.Trim(path.Clean("/"+base), "/")
	for _, line := range strings.Split(content, "\n") {
		if rule, ok := parseIgnoreLine(strings.TrimSuffix(line, "\r"), base); ok {
			m.rules = append(m.rules, rule)
		}
	}
}

func parseIgnoreLine(line, base string) (ignoreRule, bool) {
	line = trimUnescapedSpaces(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ignoreRule{}, false
	}

	rule := ignoreRule{base: base}
	if strings.HasPrefix(line, "!") {
		rule.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		rule.dirOnly = true
		line = strings.TrimRight(line, "/")
	}
	anchored := strings.HasPrefix(line, "/")
	line = strings.TrimLeft(line, "/")
	if line == "" {
		return ignoreRule{}, false
	}

	// path.Match negates classes with ^, gitignore with !.
	line = strings.ReplaceAll(line, "[!", "[^")
	rule.segments = strings.Split(line, "/")
	rule.nameOnly = !anchored && len(rule.segments) == 1
	return rule, true
}

// trimUnescapedSpaces drops trailing spaces unless a backslash protects them.
func trimUnescapedSpaces(line string) string {
	end := len(line)
	for end > 0 && line[end-1] == ' ' {
		if end >= 2 && line[end-2] == '\\' {
			break
		}
		end--
	}
	return line[:end]
}

// Ignored reports whether rel is excluded. The last matching rule wins.
func (m *IgnoreMatcher) Ignored(rel string, isDir bool) bool {
	rel = strings.Trim(path.Clean("/"+rel), "/")
	if rel == "" {
		return false
	}

	ignored := false
	for _, rule := range m.rules {
		if rule.matches(rel, isDir) {
			ignored = !rule.negate
		}
	}
	return ignored
}

func (r ignoreRule) matches(rel string, isDir bool) bool {
	if r.dirOnly && !isDir {
		return false
	}
	if r.base != "" {
		rest, ok := strings.CutPrefix(rel, r.base+"/")
		if !ok {
			return false
		}
		rel = rest
	}

	if r.nameOnly {
		ok, _ := path.Match(r.segments[0], path.Base(rel))
		return ok
	}
	return matchSegments(r.segments, strings.Split(rel, "/"))
}

// matchSegments matches glob segments element by element; "**" spans any
// number of elements, including none.
func matchSegments(pattern, parts []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(parts); i++ {
				if matchSegments(rest, parts[i:]) {
					return true
				}
			}
			return false
		}
		if len(parts) == 0 {
			return false
		}
		if ok, _ := path.Match(pattern[0], parts[0]); !ok {
			return false
		}
		pattern, parts = pattern[1:], parts[1:]
	}
	return len(parts) == 0
}
