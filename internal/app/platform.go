package app

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

var userHomeDirFn = os.UserHomeDir

// resolveOpenCommands picks how files are opened: a configured or
// environment editor first, then the platform's opener, then a stock
// terminal editor. At most one of the results is non-nil.
func resolveOpenCommands(goos, configured string, getenv func(string) string, lookPath func(string) (string, error)) (editor, platform []string) {
	if args, ok := detectEditorCommandInternal(configured, getenv, lookPath); ok {
		return args, nil
	}
	if args, ok := detectPlatformOpener(goos, lookPath); ok {
		return nil, args
	}
	if args, ok := defaultEditorCommand(goos, lookPath); ok {
		return args, nil
	}
	return nil, nil
}

func detectEditorCommandInternal(configured string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := []string{configured, getenv("VISUAL"), getenv("EDITOR")}

	for _, candidate := range candidates {
		args := parseEditorCommand(candidate)
		if len(args) == 0 {
			continue
		}
		if resolved, ok := resolveEditorExecutableWithLookup(args[0], lookPath); ok {
			args[0] = resolved
			return args, true
		}
	}
	return nil, false
}

func defaultEditorCommand(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	var defaults [][]string
	if strings.EqualFold(goos, "windows") {
		defaults = [][]string{
			{"notepad++.exe"},
			{"notepad.exe"},
		}
	} else {
		defaults = [][]string{
			{"vim"},
			{"nano"},
			{"vi"},
		}
	}

	for _, def := range defaults {
		if resolved, ok := resolveEditorExecutableWithLookup(def[0], lookPath); ok {
			args := append([]string{resolved}, def[1:]...)
			return args, true
		}
	}
	return nil, false
}

// detectPlatformOpener finds the desktop "open with default application"
// command. The file path is appended as the last argument.
func detectPlatformOpener(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	var candidates [][]string
	switch strings.ToLower(goos) {
	case "darwin":
		candidates = [][]string{{"open"}}
	case "windows":
		candidates = [][]string{{"cmd", "/C", "start", ""}}
	default:
		candidates = [][]string{{"xdg-open"}, {"gio", "open"}}
	}

	for _, c := range candidates {
		if resolved, err := lookPath(c[0]); err == nil && resolved != "" {
			return append([]string{resolved}, c[1:]...), true
		}
	}
	return nil, false
}

// parseEditorCommand splits an editor setting into argv. Single and double
// quotes group words; a quote of the other kind inside them is literal.
func parseEditorCommand(cmd string) []string {
	var (
		args  []string
		word  strings.Builder
		quote rune
	)
	flush := func() {
		if word.Len() > 0 {
			args = append(args, word.String())
			word.Reset()
		}
	}

	for _, r := range strings.TrimSpace(cmd) {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
		case quote == 0 && unicode.IsSpace(r):
			flush()
		default:
			word.WriteRune(r)
		}
	}
	flush()

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}
	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := userHomeDirFn()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return home
	}

	sep := path[1]
	if sep != '/' && sep != '\\' {
		return path
	}
	return filepath.Join(home, path[2:])
}

func resolveEditorExecutableWithLookup(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}

	path, err := lookPath(expandUserPath(cmd))
	if err != nil {
		return "", false
	}
	return path, true
}
