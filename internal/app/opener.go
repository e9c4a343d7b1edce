package app

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	statepkg "github.com/kk-code-lab/thunars/internal/state"
)

var (
	commandBuilder = exec.Command
	lookPathFn     = exec.LookPath
	openTTY        = func() (*os.File, error) { return os.OpenFile("/dev/tty", os.O_RDWR, 0) }
)

// Opener opens files for the browser. Terminal editors take over the tty
// while the screen is suspended; desktop openers are started and left
// running.
type Opener struct {
	screen   tcell.Screen
	editor   []string
	platform []string
	log      *logrus.Entry
}

var _ statepkg.Opener = (*Opener)(nil)

// NewOpener resolves the open command once. configured is general.editor.
func NewOpener(screen tcell.Screen, configured string, log *logrus.Entry) *Opener {
	editor, platform := resolveOpenCommands(runtime.GOOS, configured, os.Getenv, lookPathFn)
	o := &Opener{screen: screen, editor: editor, platform: platform, log: log}
	log.WithFields(logrus.Fields{"editor": editor, "platform": platform}).Debug("opener resolved")
	return o
}

// Open implements state.Opener.
func (o *Opener) Open(path string) error {
	switch {
	case len(o.editor) > 0:
		return o.runEditor(path)
	case len(o.platform) > 0:
		return o.startDetached(path)
	}
	return apperrors.Newf(apperrors.ExternalProcessFailure, "open", path, "no editor or opener found")
}

func (o *Opener) runEditor(path string) error {
	args := withFile(o.editor, path)
	useTTY := runtime.GOOS != "windows"

	var tty *os.File
	if useTTY {
		var err error
		if tty, err = openTTY(); err != nil {
			o.log.WithError(err).Debug("no controlling tty, using stdio")
			useTTY = false
		} else {
			defer func() {
				_ = tty.Close()
			}()
		}
	}

	if err := o.screen.Suspend(); err != nil {
		return apperrors.New(apperrors.ExternalProcessFailure, "suspend screen", path, err)
	}

	cmd := commandBuilder(args[0], args[1:]...)
	if useTTY {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	o.log.WithField("args", args).Debug("running editor")
	runErr := cmd.Run()

	if err := o.screen.Resume(); err != nil {
		return apperrors.New(apperrors.ExternalProcessFailure, "resume screen", path, err)
	}
	o.screen.Sync()

	if runErr != nil {
		return apperrors.New(apperrors.ExternalProcessFailure, "open", path, runErr)
	}
	return nil
}

func (o *Opener) startDetached(path string) error {
	args := withFile(o.platform, path)
	cmd := commandBuilder(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return apperrors.New(apperrors.ExternalProcessFailure, "open", path, err)
	}
	o.log.WithField("args", args).Debug("started opener")
	go func() {
		if err := cmd.Wait(); err != nil {
			o.log.WithError(err).WithField("path", path).Warn("opener exited with error")
		}
	}()
	return nil
}

func withFile(base []string, path string) []string {
	args := make([]string, len(base)+1)
	copy(args, base)
	args[len(base)] = path
	return args
}
