package app

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/thunars/internal/config"
	fsutil "github.com/kk-code-lab/thunars/internal/fs"
	"github.com/kk-code-lab/thunars/internal/keymap"
	"github.com/kk-code-lab/thunars/internal/logging"
	"github.com/kk-code-lab/thunars/internal/preview"
	"github.com/kk-code-lab/thunars/internal/search"
	statepkg "github.com/kk-code-lab/thunars/internal/state"
	inputui "github.com/kk-code-lab/thunars/internal/ui/input"
	renderui "github.com/kk-code-lab/thunars/internal/ui/render"
)

// newScreen is swapped out by tests.
var newScreen = tcell.NewScreen

// Options configures an Application.
type Options struct {
	Config   *config.Config
	StartDir string
	Logger   *logrus.Logger
	// Screen is used instead of the terminal when set. It must not be
	// initialised yet.
	Screen tcell.Screen
}

// Application represents the running app.
type Application struct {
	screen   tcell.Screen
	browser  *statepkg.Browser
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	resolver *keymap.Resolver
	watcher  *fsutil.Watcher
	log      *logrus.Entry

	ctx            context.Context
	cancel         context.CancelFunc
	refreshPending bool
}

// NewApplication initialises the screen and lists the start directory. The
// screen is released again if anything after Init fails.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Default(); err != nil {
			return nil, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	resolver, err := cfg.Resolver()
	if err != nil {
		return nil, err
	}

	screen := opts.Screen
	if screen == nil {
		if screen, err = newScreen(); err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &Application{
		screen:   screen,
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(resolver),
		resolver: resolver,
		log:      logging.For(logger, "app"),
		ctx:      ctx,
		cancel:   cancel,
	}

	browserOpts := statepkg.Options{
		StartDir: opts.StartDir,
		Searcher: &search.Dispatcher{
			Index:   search.NewIndexSearcher(cfg.Search.MaxFiles, cfg.Search.ShowHidden, logging.For(logger, "search")),
			History: search.NewHistorySearcher(cfg.Search.Zoxide),
		},
		Opener:  NewOpener(screen, cfg.General.Editor, logging.For(logger, "opener")),
		Context: ctx,
		Log:     logging.For(logger, "browser"),
	}
	if cfg.Preview.Enabled {
		browserOpts.Previewer = preview.NewLoader(cfg.Preview.TabWidth)
	}

	browser, err := statepkg.NewBrowser(browserOpts)
	if err != nil {
		cancel()
		screen.Fini()
		return nil, err
	}
	app.browser = browser
	app.browser.Resize(app.renderer.Layout().Viewport())

	if cfg.General.Watch {
		app.startWatcher()
	}

	app.log.WithField("dir", browser.CurrentDir()).Debug("application started")
	return app, nil
}

// startWatcher enables change notifications for the current directory. A
// watcher that cannot start only costs automatic refreshes.
func (app *Application) startWatcher() {
	w, err := fsutil.NewWatcher()
	if err != nil {
		logging.Error(app.log, "watcher unavailable", err)
		return
	}
	app.watcher = w
	app.followDirectory()
}

// followDirectory points the watcher at the browser's current directory.
func (app *Application) followDirectory() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Watch(app.browser.CurrentDir()); err != nil {
		logging.Error(app.log, "watch directory", err)
	}
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.cancel()
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.screen.Fini()
	return err
}

// CurrentDir returns the directory the browser ended in.
func (app *Application) CurrentDir() string {
	return app.browser.CurrentDir()
}
