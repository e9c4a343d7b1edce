package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/thunars/internal/app"
	"github.com/kk-code-lab/thunars/internal/config"
	"github.com/kk-code-lab/thunars/internal/logging"
	"github.com/kk-code-lab/thunars/internal/shellsetup"
)

type rootOptions struct {
	configPath  string
	dir         string
	logFile     string
	cwdFile     string
	debug       bool
	printConfig bool
}

// runApplication is swapped out by tests.
var runApplication = func(opts apppkg.Options) (string, error) {
	application, err := apppkg.NewApplication(opts)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = application.Close()
	}()

	if err := application.Run(); err != nil {
		return "", err
	}
	return application.CurrentDir(), nil
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "thunars",
		Short: "A keyboard-driven terminal file browser",
		Long: `thunars lists a directory, previews text files and jumps anywhere with
two-key hints. Press / to fuzzy-find files below the current directory,
z to jump through zoxide history, y/x/p to copy, cut and paste.

Key bindings and settings live in ~/.config/thunars/config.toml; run
"thunars --print-config" for the annotated defaults.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd.OutOrStdout(), opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/thunars/config.toml)")
	flags.StringVarP(&opts.dir, "dir", "d", "", "directory to start in (default is the working directory)")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (overrides log.file)")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")
	flags.BoolVar(&opts.printConfig, "print-config", false, "print the default configuration and exit")
	flags.StringVar(&opts.cwdFile, "cwd-file", "", "write the final directory to this file on exit")

	rootCmd.AddCommand(newInitCmd())
	return rootCmd
}

func runRoot(out io.Writer, opts *rootOptions) error {
	if opts.printConfig {
		_, err := out.Write(config.DefaultTOML())
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logFile := cfg.Log.File
	if opts.logFile != "" {
		logFile = opts.logFile
	}
	level := cfg.Log.Level
	if opts.debug {
		level = logrus.DebugLevel.String()
	}

	logger := logrus.New()
	closer, err := logging.Configure(logger, logFile, level)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()
	logger.WithFields(logrus.Fields{"config": cfg.Path, "dir": opts.dir}).Info("starting")

	finalDir, err := runApplication(apppkg.Options{Config: cfg, StartDir: opts.dir, Logger: logger})
	if err != nil {
		logging.Error(logging.For(logger, "main"), "application failed", err)
		return err
	}

	if opts.cwdFile != "" && finalDir != "" {
		// Owner-only: the file is read back by the calling shell.
		if err := os.WriteFile(opts.cwdFile, []byte(finalDir), 0o600); err != nil {
			return fmt.Errorf("write cwd file: %w", err)
		}
	}
	return nil
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [shell]",
		Short: "Print a shell function that changes directory on exit",
		Long: `Print a "thunars" shell function for bash, zsh, sh, ksh, fish or pwsh.
When the browser exits, the calling shell moves to the last directory shown.

  eval "$(thunars init bash)"`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: shellsetup.Shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			}
			exe, err := os.Executable()
			if err != nil {
				exe = "thunars"
			}
			return shellsetup.Write(cmd.OutOrStdout(), shell, exe)
		},
	}
}
