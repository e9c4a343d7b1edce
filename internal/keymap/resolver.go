package keymap

import (
	"strings"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	"github.com/kk-code-lab/thunars/internal/state"
)

// Bindings is the configuration form of a key map: section, then action
// name, then the key identifiers bound to it.
type Bindings map[Section]map[string][]string

// Hint is one footer entry.
type Hint struct {
	Keys  string
	Label string
}

// Resolver turns key presses into commands for the current mode.
type Resolver struct {
	tables   map[Section]map[Key]state.Command
	exitHint map[Key]bool
	hints    map[Section][]Hint
}

// NewResolver validates b and builds one lookup table per section.
func NewResolver(b Bindings) (*Resolver, error) {
	r := &Resolver{
		tables:   make(map[Section]map[Key]state.Command, len(Sections)),
		exitHint: make(map[Key]bool),
		hints:    make(map[Section][]Hint, len(Sections)+1),
	}

	for section := range b {
		if actionsFor(section) == nil {
			return nil, apperrors.Newf(apperrors.ConfigError, "load bindings", "", "unknown section [%s]", section)
		}
	}

	for _, section := range Sections {
		if err := r.buildSection(section, b[section]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Resolver) buildSection(section Section, bound map[string][]string) error {
	known := make(map[string]bool)
	for _, a := range actionsFor(section) {
		known[a.name] = true
	}
	for name := range bound {
		if !known[name] {
			return apperrors.Newf(apperrors.ConfigError, "load bindings", "", "unknown action %s.%s", section, name)
		}
	}

	table := make(map[Key]state.Command)
	owner := make(map[Key]string)
	// exit_hint is only live in hint mode, so it cannot clash with the rest.
	hintOwner := make(map[Key]string)
	textEntry := section != SectionFileList

	for _, a := range actionsFor(section) {
		ids := bound[a.name]
		keys := make([]string, 0, len(ids))
		for _, id := range ids {
			key, err := ParseKey(id)
			if err != nil {
				return apperrors.Newf(apperrors.ConfigError, "load bindings", "", "%s.%s: %v", section, a.name, err)
			}
			if textEntry && key.IsChar() {
				return apperrors.Newf(apperrors.ConfigError, "load bindings", "", "%s.%s: character key %q would block typing", section, a.name, id)
			}
			owners := owner
			if a.name == exitHintAction {
				owners = hintOwner
			}
			if prev, taken := owners[key]; taken {
				if prev == a.name {
					continue
				}
				return apperrors.Newf(apperrors.ConfigError, "load bindings", "", "%s: key %q bound to both %s and %s", section, key, prev, a.name)
			}
			owners[key] = a.name
			keys = append(keys, key.String())

			if a.name == exitHintAction {
				r.exitHint[key] = true
				continue
			}
			table[key] = a.cmd
		}

		if len(keys) == 0 {
			continue
		}
		if a.label != "" {
			r.hints[section] = append(r.hints[section], Hint{Keys: strings.Join(keys, "/"), Label: a.label})
		}
		if a.name == exitHintAction {
			r.hints[hintSection] = append(r.hints[hintSection], Hint{Keys: strings.Join(keys, "/"), Label: "cancel"})
		}
	}

	r.tables[section] = table
	return nil
}

// hintSection keys the footer for hint mode, which has no table of its own.
const hintSection Section = "hint"

// Resolve maps a key press to a command. Unbound keys give NoneCommand.
func (r *Resolver) Resolve(mode state.Mode, key Key) state.Command {
	switch mode {
	case state.ModeHint:
		if r.exitHint[key] {
			return state.ExitHintCommand{}
		}
		if key.IsChar() {
			return state.WriteCommand{Char: key.Rune}
		}
	case state.ModeNormal:
		if cmd, ok := r.tables[SectionFileList][key]; ok {
			return cmd
		}
	case state.ModeFinder, state.ModeOmnibar:
		if cmd, ok := r.tables[sectionFor(mode)][key]; ok {
			return cmd
		}
		if key.IsChar() {
			return state.WriteCommand{Char: key.Rune}
		}
	}
	return state.NoneCommand{}
}

// Describe returns the footer hints for mode.
func (r *Resolver) Describe(mode state.Mode) []Hint {
	if mode == state.ModeHint {
		return r.hints[hintSection]
	}
	return r.hints[sectionFor(mode)]
}

func sectionFor(mode state.Mode) Section {
	switch mode {
	case state.ModeFinder:
		return SectionFinder
	case state.ModeOmnibar:
		return SectionOmnibar
	}
	return SectionFileList
}
