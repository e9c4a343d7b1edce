package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	"github.com/kk-code-lab/thunars/internal/keymap"
	"github.com/kk-code-lab/thunars/internal/state"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if !cfg.Preview.Enabled || cfg.Preview.TabWidth != 4 {
		t.Errorf("Unexpected preview defaults %+v", cfg.Preview)
	}
	if cfg.Search.Zoxide != "zoxide" || cfg.Search.MaxFiles != 20000 {
		t.Errorf("Unexpected search defaults %+v", cfg.Search)
	}
	if got := cfg.FileList["scroll_down"]; len(got) != 2 || got[0] != "j" {
		t.Errorf("Expected array binding, got %v", got)
	}
	if got := cfg.FileList["hint_mode"]; len(got) != 1 || got[0] != "f" {
		t.Errorf("Expected string binding, got %v", got)
	}
	if _, err := cfg.Resolver(); err != nil {
		t.Fatalf("Default bindings should be valid: %v", err)
	}
}

func TestDefaultBindsEveryAction(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	bindings := cfg.Bindings()
	for _, section := range keymap.Sections {
		for _, name := range keymap.ActionNames(section) {
			if len(bindings[section][name]) == 0 {
				t.Errorf("%s.%s has no default key", section, name)
			}
		}
	}
}

func TestLoadMissingDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Missing user file should mean defaults: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Expected no user path, got %q", cfg.Path)
	}
}

func TestLoadFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "thunars"), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "thunars", "config.toml")
	if err := os.WriteFile(path, []byte("[general]\nwatch = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.General.Watch || cfg.Path != path {
		t.Errorf("Expected watch from %s, got %+v", path, cfg)
	}
}

func TestLoadMergesPerKey(t *testing.T) {
	path := writeConfig(t, `
[preview]
enabled = false

[filelist]
scroll_down = "n"
paste = ["P", "ctrl-v"]

[finder]
exit = ["esc", "ctrl-c"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.Enabled {
		t.Error("preview.enabled should be overridden to false")
	}
	if cfg.Preview.TabWidth != 4 {
		t.Errorf("Unset keys should keep defaults, got tab_width=%d", cfg.Preview.TabWidth)
	}

	r, err := cfg.Resolver()
	if err != nil {
		t.Fatalf("Resolver: %v", err)
	}
	key := func(id string) keymap.Key {
		k, err := keymap.ParseKey(id)
		if err != nil {
			t.Fatal(err)
		}
		return k
	}
	if got := r.Resolve(state.ModeNormal, key("n")); got != (state.EntryScrollCommand{Down: true}) {
		t.Errorf("Expected n to scroll, got %#v", got)
	}
	if got := r.Resolve(state.ModeNormal, key("j")); got != (state.NoneCommand{}) {
		t.Errorf("Overridden binding should drop j, got %#v", got)
	}
	if got := r.Resolve(state.ModeNormal, key("k")); got != (state.EntryScrollCommand{Down: false}) {
		t.Errorf("Inherited binding missing, got %#v", got)
	}
	if got := r.Resolve(state.ModeNormal, key("ctrl-v")); got != (state.PasteCommand{}) {
		t.Errorf("Expected paste, got %#v", got)
	}
	if got := r.Resolve(state.ModeFinder, key("ctrl-c")); got != (state.ExitCommand{}) {
		t.Errorf("Expected finder exit, got %#v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":     "[filelist\nexit = ",
		"unknown key":   "[general]\nwach = true\n",
		"bad binding":   "[filelist]\nexit = 3\n",
		"bad level":     "[log]\nlevel = \"loud\"\n",
		"bad tab width": "[preview]\ntab_width = 0\n",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body))
		if !apperrors.Is(err, apperrors.ConfigError) {
			t.Errorf("%s: expected ConfigError, got %v", name, err)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !apperrors.Is(err, apperrors.ConfigError) {
		t.Errorf("Explicit missing path: expected ConfigError, got %v", err)
	}
}

func TestResolverRejectsCharacterInFinder(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[finder]\nexit = \"q\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Resolver(); !apperrors.Is(err, apperrors.ConfigError) {
		t.Errorf("Expected ConfigError, got %v", err)
	}
}

func TestDefaultPathFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	prev := userHomeDirFn
	userHomeDirFn = func() (string, error) { return "/home/someone", nil }
	defer func() { userHomeDirFn = prev }()

	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/home/someone", ".config", "thunars", "config.toml"); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
