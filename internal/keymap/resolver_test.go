package keymap

import (
	"strings"
	"testing"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	"github.com/kk-code-lab/thunars/internal/state"
)

func testBindings() Bindings {
	return Bindings{
		SectionFileList: {
			"scroll_down":   {"j", "down"},
			"scroll_up":     {"k", "up"},
			"select_entry":  {"enter"},
			"hint_mode":     {"f"},
			"finder_files":  {"/"},
			"finder_zoxide": {"z"},
			"rename":        {"r"},
			"yank":          {"y"},
			"cut":           {"x"},
			"paste":         {"p"},
			"exit":          {"q"},
			"exit_hint":     {"esc"},
		},
		SectionFinder: {
			"scroll_down":  {"down", "ctrl-n"},
			"scroll_up":    {"up"},
			"select_entry": {"enter"},
			"backspace":    {"backspace"},
			"exit":         {"esc"},
		},
		SectionOmnibar: {
			"backspace": {"backspace"},
			"submit":    {"enter"},
			"exit":      {"esc"},
		},
	}
}

func mustResolver(t *testing.T, b Bindings) *Resolver {
	t.Helper()
	r, err := NewResolver(b)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func key(t *testing.T, id string) Key {
	t.Helper()
	k, err := ParseKey(id)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

// ===== MODE RESOLUTION TESTS =====

func TestResolveNormal(t *testing.T) {
	r := mustResolver(t, testBindings())

	cases := []struct {
		id   string
		want state.Command
	}{
		{"j", state.EntryScrollCommand{Down: true}},
		{"down", state.EntryScrollCommand{Down: true}},
		{"k", state.EntryScrollCommand{Down: false}},
		{"z", state.FinderModeCommand{Zoxide: true}},
		{"x", state.YankCommand{Cut: true}},
		{"q", state.ExitCommand{}},
		{"w", state.NoneCommand{}},
		{"esc", state.NoneCommand{}},
		{"f5", state.NoneCommand{}},
	}
	for _, tc := range cases {
		if got := r.Resolve(state.ModeNormal, key(t, tc.id)); got != tc.want {
			t.Errorf("%s: expected %#v, got %#v", tc.id, tc.want, got)
		}
	}
}

func TestResolveHint(t *testing.T) {
	r := mustResolver(t, testBindings())

	if got := r.Resolve(state.ModeHint, key(t, "esc")); got != (state.ExitHintCommand{}) {
		t.Errorf("Expected ExitHint, got %#v", got)
	}
	if got := r.Resolve(state.ModeHint, key(t, "q")); got != (state.WriteCommand{Char: 'q'}) {
		t.Errorf("Characters in hint mode are hint input even when bound elsewhere, got %#v", got)
	}
	if got := r.Resolve(state.ModeHint, key(t, "down")); got != (state.NoneCommand{}) {
		t.Errorf("Expected None, got %#v", got)
	}
}

func TestResolveTextModes(t *testing.T) {
	r := mustResolver(t, testBindings())

	for _, mode := range []state.Mode{state.ModeFinder, state.ModeOmnibar} {
		if got := r.Resolve(mode, key(t, "j")); got != (state.WriteCommand{Char: 'j'}) {
			t.Errorf("%v: expected Write(j), got %#v", mode, got)
		}
		if got := r.Resolve(mode, key(t, "space")); got != (state.WriteCommand{Char: ' '}) {
			t.Errorf("%v: expected Write(space), got %#v", mode, got)
		}
		if got := r.Resolve(mode, key(t, "backspace")); got != (state.BackspaceCommand{}) {
			t.Errorf("%v: expected Backspace, got %#v", mode, got)
		}
		if got := r.Resolve(mode, key(t, "esc")); got != (state.ExitCommand{}) {
			t.Errorf("%v: expected Exit, got %#v", mode, got)
		}
		if got := r.Resolve(mode, key(t, "home")); got != (state.NoneCommand{}) {
			t.Errorf("%v: expected None, got %#v", mode, got)
		}
	}

	if got := r.Resolve(state.ModeFinder, key(t, "ctrl-n")); got != (state.EntryScrollCommand{Down: true}) {
		t.Errorf("Expected scroll, got %#v", got)
	}
	if got := r.Resolve(state.ModeOmnibar, key(t, "enter")); got != (state.SubmitCommand{}) {
		t.Errorf("Expected submit, got %#v", got)
	}
}

// ===== VALIDATION TESTS =====

func TestNewResolverRejectsBadBindings(t *testing.T) {
	cases := map[string]func(Bindings){
		"unknown key": func(b Bindings) {
			b[SectionFileList]["paste"] = []string{"hyper-p"}
		},
		"unknown action": func(b Bindings) {
			b[SectionFileList]["delete"] = []string{"d"}
		},
		"unknown section": func(b Bindings) {
			b["pager"] = map[string][]string{"exit": {"q"}}
		},
		"conflict": func(b Bindings) {
			b[SectionFileList]["paste"] = []string{"j"}
		},
		"finder character": func(b Bindings) {
			b[SectionFinder]["exit"] = []string{"q"}
		},
		"omnibar space": func(b Bindings) {
			b[SectionOmnibar]["submit"] = []string{"space"}
		},
	}
	for name, mutate := range cases {
		b := testBindings()
		mutate(b)
		if _, err := NewResolver(b); !apperrors.Is(err, apperrors.ConfigError) {
			t.Errorf("%s: expected ConfigError, got %v", name, err)
		}
	}
}

func TestSameKeyAcrossModesIsAllowed(t *testing.T) {
	b := testBindings()
	b[SectionFinder]["exit"] = []string{"esc", "ctrl-c"}
	b[SectionOmnibar]["exit"] = []string{"esc", "ctrl-c"}
	mustResolver(t, b)
}

func TestExitHintMayShareKeyWithNormalAction(t *testing.T) {
	b := testBindings()
	b[SectionFileList]["exit"] = []string{"q", "esc"}
	r := mustResolver(t, b)

	esc := key(t, "esc")
	if got := r.Resolve(state.ModeNormal, esc); got != (state.ExitCommand{}) {
		t.Errorf("Expected exit in normal mode, got %#v", got)
	}
	if got := r.Resolve(state.ModeHint, esc); got != (state.ExitHintCommand{}) {
		t.Errorf("Expected exit_hint in hint mode, got %#v", got)
	}
}

func TestDuplicateKeyForSameAction(t *testing.T) {
	b := testBindings()
	b[SectionFileList]["paste"] = []string{"p", "p"}
	r := mustResolver(t, b)
	if got := r.Resolve(state.ModeNormal, key(t, "p")); got != (state.PasteCommand{}) {
		t.Errorf("Expected paste, got %#v", got)
	}
}

// ===== DESCRIBE TESTS =====

func TestDescribe(t *testing.T) {
	r := mustResolver(t, testBindings())

	var parts []string
	for _, h := range r.Describe(state.ModeNormal) {
		parts = append(parts, h.Keys+" "+h.Label)
	}
	got := strings.Join(parts, ", ")
	if !strings.HasPrefix(got, "enter open, f jump, / find, z zoxide") {
		t.Errorf("Unexpected normal footer %q", got)
	}
	if strings.Contains(got, "touch") {
		t.Errorf("Unbound actions should not be advertised: %q", got)
	}

	hint := r.Describe(state.ModeHint)
	if len(hint) != 1 || hint[0].Keys != "esc" {
		t.Errorf("Unexpected hint footer %+v", hint)
	}
	omni := r.Describe(state.ModeOmnibar)
	if len(omni) != 2 || omni[0].Label != "ok" {
		t.Errorf("Unexpected omnibar footer %+v", omni)
	}
}
