package app

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/thunars/internal/state"
	inputui "github.com/kk-code-lab/thunars/internal/ui/input"
)

// tickInterval bounds how long one tick waits for terminal input.
const tickInterval = 50 * time.Millisecond

// Run drives the browser until it exits. Each tick waits for at most one
// event, dispatches at most one command and redraws if anything changed.
func (app *Application) Run() error {
	eventChan := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := resumeSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	app.render()
	for !app.browser.Exited() {
		renderPending := app.applyWatcher()

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-ticker.C:
		case <-sigContCh:
			app.resumeAfterStop()
			renderPending = true
		}

		if renderPending && !app.browser.Exited() {
			app.render()
		}
	}

	app.log.WithField("dir", app.browser.CurrentDir()).Debug("exit")
	return nil
}

func (app *Application) render() {
	mode := app.browser.Mode()
	app.renderer.Render(app.browser.View(), app.resolver.Describe(mode))
}

// handleEvent translates and dispatches one terminal event. It reports
// whether the screen needs a redraw.
func (app *Application) handleEvent(ev tcell.Event) bool {
	cmd := app.input.ProcessEvent(ev, app.browser.Mode())
	switch cmd.(type) {
	case inputui.ResizeCommand:
		app.screen.Sync()
		app.browser.Resize(app.renderer.Layout().Viewport())
		return true
	case statepkg.NoneCommand:
		_, interrupt := ev.(*tcell.EventInterrupt)
		return interrupt
	}

	app.log.WithField("command", commandName(cmd)).Debug("dispatch")
	// Failures are already logged and shown on the status line.
	_ = app.browser.Dispatch(cmd)
	app.followDirectory()
	return true
}

// applyWatcher drains watcher events and refreshes the listing once the
// browser is back in normal mode.
func (app *Application) applyWatcher() bool {
	if app.watcher == nil {
		return false
	}
	if app.watcher.Changed() {
		app.refreshPending = true
	}
	if !app.refreshPending || app.browser.Mode() != statepkg.ModeNormal {
		return false
	}
	app.refreshPending = false
	_ = app.browser.Reload()
	app.followDirectory()
	return true
}

// resumeAfterStop redraws after the process was stopped and continued.
func (app *Application) resumeAfterStop() {
	app.screen.Sync()
	app.browser.Resize(app.renderer.Layout().Viewport())
}

func commandName(cmd statepkg.Command) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", cmd), "state.")
}
