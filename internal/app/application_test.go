package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/thunars/internal/config"
	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	statepkg "github.com/kk-code-lab/thunars/internal/state"
)

// makeDir creates a temp directory holding the named files and chdirs the
// test into it so the browser's chdir calls are undone afterwards.
func makeDir(t *testing.T, names ...string) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	return dir
}

func newTestApplication(t *testing.T, dir string, mutate func(*config.Config)) (*Application, tcell.SimulationScreen) {
	t.Helper()
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	origLookPath := lookPathFn
	lookPathFn = func(string) (string, error) { return "", errors.New("not found") }
	t.Cleanup(func() { lookPathFn = origLookPath })

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	if mutate != nil {
		mutate(cfg)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sim := tcell.NewSimulationScreen("")
	app, err := NewApplication(Options{Config: cfg, StartDir: dir, Logger: logger, Screen: sim})
	if err != nil {
		t.Fatalf("NewApplication failed: %v", err)
	}
	t.Cleanup(func() {
		_ = app.Close()
	})
	return app, sim
}

func selectedRow(app *Application) string {
	for _, row := range app.browser.View().Rows {
		if row.Selected {
			return row.Name
		}
	}
	return ""
}

func screenText(sim tcell.SimulationScreen) string {
	cells, w, h := sim.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if runes := cells[y*w+x].Runes; len(runes) > 0 {
				b.WriteRune(runes[0])
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// ===== LOOP TESTS =====

func TestRunExitsOnQuitBinding(t *testing.T) {
	dir := makeDir(t, "a.txt", "b.txt")
	app, sim := newTestApplication(t, dir, nil)

	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not exit on the quit binding")
	}

	if !app.browser.Exited() {
		t.Error("Expected browser to be exited")
	}
	// "." and ".." lead every listing.
	if got := selectedRow(app); got != ".." {
		t.Errorf("Expected scroll before quit to select .., got %q", got)
	}
}

func TestHandleEventDispatchesKeys(t *testing.T) {
	dir := makeDir(t, "a.txt", "b.txt")
	app, _ := newTestApplication(t, dir, nil)

	if !app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)) {
		t.Error("Expected redraw after a bound key")
	}
	if got := selectedRow(app); got != ".." {
		t.Errorf("Expected .. selected, got %q", got)
	}

	if app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Error("Expected no redraw for an unbound key")
	}

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone))
	if mode := app.browser.Mode(); mode != statepkg.ModeFinder {
		t.Fatalf("Expected finder mode, got %v", mode)
	}
	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if app.browser.Exited() {
		t.Error("Expected q to be typed into the finder, not quit")
	}
	app.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if mode := app.browser.Mode(); mode != statepkg.ModeNormal {
		t.Errorf("Expected normal mode after esc, got %v", mode)
	}
}

func TestHandleEventResize(t *testing.T) {
	dir := makeDir(t, "a.txt")
	app, sim := newTestApplication(t, dir, nil)

	sim.SetSize(120, 40)
	if !app.handleEvent(tcell.NewEventResize(120, 40)) {
		t.Fatal("Expected redraw after resize")
	}
	app.render()
	if !strings.Contains(screenText(sim), "Preview") {
		t.Error("Expected preview panel on a wide screen")
	}
}

func TestRenderShowsListing(t *testing.T) {
	dir := makeDir(t, "alpha.txt", "beta.txt")
	app, sim := newTestApplication(t, dir, nil)

	app.render()
	text := screenText(sim)
	for _, want := range []string{"thunars", "alpha.txt", "beta.txt", "q: quit"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected screen to contain %q", want)
		}
	}
}

func TestWatcherRefreshesListing(t *testing.T) {
	dir := makeDir(t, "a.txt")
	app, _ := newTestApplication(t, dir, func(cfg *config.Config) {
		cfg.General.Watch = true
	})
	if app.watcher == nil {
		t.Skip("fsnotify unavailable")
	}

	if err := os.WriteFile(filepath.Join(dir, "new.txt"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for !app.applyWatcher() {
		if time.Now().After(deadline) {
			t.Fatal("Expected watcher to trigger a refresh")
		}
		time.Sleep(10 * time.Millisecond)
	}

	found := false
	for _, row := range app.browser.View().Rows {
		if row.Name == "new.txt" {
			found = true
		}
	}
	if !found {
		t.Error("Expected new.txt after refresh")
	}
}

func TestWatcherWaitsForNormalMode(t *testing.T) {
	dir := makeDir(t, "a.txt")
	app, _ := newTestApplication(t, dir, func(cfg *config.Config) {
		cfg.General.Watch = true
	})
	if app.watcher == nil {
		t.Skip("fsnotify unavailable")
	}

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	app.refreshPending = true
	if app.applyWatcher() {
		t.Error("Expected no refresh while in hint mode")
	}
	app.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !app.applyWatcher() {
		t.Error("Expected pending refresh once back in normal mode")
	}
}

func TestWatcherRefreshKeepsPasteError(t *testing.T) {
	dir := makeDir(t, "a.txt")
	app, _ := newTestApplication(t, dir, func(cfg *config.Config) {
		cfg.General.Watch = true
	})
	if app.watcher == nil {
		t.Skip("fsnotify unavailable")
	}

	// "." and ".." lead every listing.
	for _, r := range "jjyp" {
		app.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	status := app.browser.Status()
	if !strings.Contains(status, "a.txt") {
		t.Fatalf("Expected paste collision on the status line, got %q", status)
	}

	app.refreshPending = true
	if !app.applyWatcher() {
		t.Fatal("Expected watcher refresh in normal mode")
	}
	if got := app.browser.Status(); got != status {
		t.Errorf("Expected status %q after watcher refresh, got %q", status, got)
	}
}

// ===== STARTUP TESTS =====

func TestNewApplicationRejectsMissingStartDir(t *testing.T) {
	dir := makeDir(t)
	t.Setenv("VISUAL", "")

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	_, err := NewApplication(Options{
		StartDir: filepath.Join(dir, "missing"),
		Logger:   logger,
		Screen:   tcell.NewSimulationScreen(""),
	})
	if !apperrors.Is(err, apperrors.InvalidDirectory) {
		t.Fatalf("Expected InvalidDirectory, got %v", err)
	}
}

func TestNewApplicationRejectsBadBindings(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	cfg.Finder["exit"] = config.KeyList{"x"}

	_, err = NewApplication(Options{Config: cfg, Logger: logger, Screen: tcell.NewSimulationScreen("")})
	if !apperrors.Is(err, apperrors.ConfigError) {
		t.Fatalf("Expected ConfigError, got %v", err)
	}
}
