// Package config loads thunars settings from TOML.
//
// The compiled-in default.toml is always decoded first. A user file, when
// present, overrides individual keys; everything it leaves out keeps the
// default. Malformed files are fatal.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	"github.com/kk-code-lab/thunars/internal/keymap"
	"github.com/sirupsen/logrus"
)

//go:embed default.toml
var defaultTOML []byte

var (
	userHomeDirFn = os.UserHomeDir
	getenvFn      = os.Getenv
)

// Config is the decoded configuration.
type Config struct {
	General  General            `toml:"general"`
	Log      Log                `toml:"log"`
	Preview  Preview            `toml:"preview"`
	Search   Search             `toml:"search"`
	FileList map[string]KeyList `toml:"filelist"`
	Finder   map[string]KeyList `toml:"finder"`
	Omnibar  map[string]KeyList `toml:"omnibar"`

	// Path is the user file that was merged in, empty for defaults only.
	Path string `toml:"-"`
}

type General struct {
	Watch  bool   `toml:"watch"`
	Editor string `toml:"editor"`
}

type Log struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Preview struct {
	Enabled  bool `toml:"enabled"`
	TabWidth int  `toml:"tab_width"`
}

type Search struct {
	Zoxide     string `toml:"zoxide"`
	MaxFiles   int    `toml:"max_files"`
	ShowHidden bool   `toml:"show_hidden"`
}

// KeyList is a binding value: one key identifier or an array of them.
type KeyList []string

// UnmarshalTOML implements toml.Unmarshaler.
func (k *KeyList) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		*k = KeyList{val}
		return nil
	case []any:
		out := make(KeyList, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("binding list holds %T, want string", item)
			}
			out = append(out, s)
		}
		*k = out
		return nil
	}
	return fmt.Errorf("binding is %T, want string or array of strings", v)
}

// DefaultTOML returns the compiled-in configuration file.
func DefaultTOML() []byte {
	return defaultTOML
}

// Default decodes the compiled-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(string(defaultTOML), &cfg); err != nil {
		return nil, apperrors.New(apperrors.ConfigError, "decode defaults", "", err)
	}
	return &cfg, nil
}

// DefaultPath is where the user file is looked up when no path is given.
func DefaultPath() (string, error) {
	if dir := getenvFn("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "thunars", "config.toml"), nil
	}
	home, err := userHomeDirFn()
	if err != nil {
		return "", apperrors.New(apperrors.ConfigError, "locate config", "", err)
	}
	return filepath.Join(home, ".config", "thunars", "config.toml"), nil
}

// Load returns the defaults merged with the user file at path. An empty path
// means DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) && !explicit {
			return cfg, cfg.validate()
		}
		return nil, apperrors.New(apperrors.ConfigError, "read config", path, statErr)
	}

	var user Config
	md, err := toml.DecodeFile(path, &user)
	if err != nil {
		return nil, apperrors.New(apperrors.ConfigError, "parse config", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apperrors.Newf(apperrors.ConfigError, "parse config", path, "unknown keys: %s", strings.Join(keys, ", "))
	}

	mergeConfig(cfg, &user, md)
	cfg.Path = path
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig copies every key the user file defines onto dst.
func mergeConfig(dst, src *Config, md toml.MetaData) {
	if md.IsDefined("general", "watch") {
		dst.General.Watch = src.General.Watch
	}
	if md.IsDefined("general", "editor") {
		dst.General.Editor = src.General.Editor
	}
	if md.IsDefined("log", "file") {
		dst.Log.File = src.Log.File
	}
	if md.IsDefined("log", "level") {
		dst.Log.Level = src.Log.Level
	}
	if md.IsDefined("preview", "enabled") {
		dst.Preview.Enabled = src.Preview.Enabled
	}
	if md.IsDefined("preview", "tab_width") {
		dst.Preview.TabWidth = src.Preview.TabWidth
	}
	if md.IsDefined("search", "zoxide") {
		dst.Search.Zoxide = src.Search.Zoxide
	}
	if md.IsDefined("search", "max_files") {
		dst.Search.MaxFiles = src.Search.MaxFiles
	}
	if md.IsDefined("search", "show_hidden") {
		dst.Search.ShowHidden = src.Search.ShowHidden
	}

	dst.FileList = mergeBindings(dst.FileList, src.FileList)
	dst.Finder = mergeBindings(dst.Finder, src.Finder)
	dst.Omnibar = mergeBindings(dst.Omnibar, src.Omnibar)
}

func mergeBindings(dst, src map[string]KeyList) map[string]KeyList {
	if dst == nil {
		dst = make(map[string]KeyList, len(src))
	}
	for action, keys := range src {
		dst[action] = keys
	}
	return dst
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return apperrors.New(apperrors.ConfigError, "validate config", c.Path, err)
	}
	if c.Preview.TabWidth < 1 {
		return apperrors.Newf(apperrors.ConfigError, "validate config", c.Path, "preview.tab_width must be positive, got %d", c.Preview.TabWidth)
	}
	if c.Search.MaxFiles < 1 {
		return apperrors.Newf(apperrors.ConfigError, "validate config", c.Path, "search.max_files must be positive, got %d", c.Search.MaxFiles)
	}
	return nil
}

// Bindings converts the key tables for keymap.NewResolver.
func (c *Config) Bindings() keymap.Bindings {
	convert := func(m map[string]KeyList) map[string][]string {
		out := make(map[string][]string, len(m))
		for action, keys := range m {
			out[action] = []string(keys)
		}
		return out
	}
	return keymap.Bindings{
		keymap.SectionFileList: convert(c.FileList),
		keymap.SectionFinder:   convert(c.Finder),
		keymap.SectionOmnibar:  convert(c.Omnibar),
	}
}

// Resolver builds the key resolver, reporting bad bindings as a ConfigError.
func (c *Config) Resolver() (*keymap.Resolver, error) {
	r, err := keymap.NewResolver(c.Bindings())
	if err != nil {
		if c.Path != "" {
			return nil, apperrors.New(apperrors.ConfigError, "load bindings", c.Path, err)
		}
		return nil, err
	}
	return r, nil
}
