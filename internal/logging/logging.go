// Package logging routes logrus output to a file, since the terminal belongs
// to the UI.
package logging

import (
	"io"
	"os"
	"path/filepath"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	"github.com/sirupsen/logrus"
)

var userCacheDirFn = os.UserCacheDir

// DefaultFile is the log location used when none is configured.
func DefaultFile() string {
	dir, err := userCacheDirFn()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "thunars", "thunars.log")
}

// Configure sets up logger to append to file at level. An empty file means
// DefaultFile. When the file cannot be opened output is discarded. The
// returned closer releases the file.
func Configure(logger *logrus.Logger, file, level string) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, apperrors.New(apperrors.ConfigError, "log level", "", err)
	}
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if file == "" {
		file = DefaultFile()
	}
	out, err := openLogFile(file)
	if err != nil {
		logger.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	logger.SetOutput(out)
	return out, nil
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, os.ErrNotExist
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// For returns an entry tagged with component.
func For(logger *logrus.Logger, component string) *logrus.Entry {
	return logger.WithField("component", component)
}

// Error logs err at error level and, under debug, the stack of its cause.
func Error(log *logrus.Entry, msg string, err error) {
	log.WithError(err).WithField("kind", apperrors.KindOf(err).String()).Error(msg)
	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		if stack := apperrors.Stack(err); stack != "" {
			log.Debug(stack)
		}
	}
}
