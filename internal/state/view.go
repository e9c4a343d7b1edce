package state

import "strings"

// Row is one visible file list line.
type Row struct {
	Name      string
	IsDir     bool
	IsSymlink bool
	Selected  bool
	// Hint is set in hint mode for rows whose code still matches the typed prefix.
	Hint string
}

type FinderView struct {
	Active   bool
	Zoxide   bool
	Query    string
	Results  []string
	Selected int
}

type OmnibarView struct {
	Active bool
	Title  string
	Text   string
}

// ViewModel is a read-only snapshot of everything the renderer draws.
type ViewModel struct {
	Mode       Mode
	CurrentDir string
	Rows       []Row
	HintInput  string
	Preview    []string
	Clipboard  []string
	Finder     FinderView
	Omnibar    OmnibarView
	Status     string
}

// View builds a snapshot for the renderer.
func (b *Browser) View() ViewModel {
	vm := ViewModel{
		Mode:       b.mode,
		CurrentDir: b.cwd,
		HintInput:  string(b.hintInput),
		Preview:    b.preview,
		Clipboard:  b.clipboard.Lines(),
		Status:     b.status,
	}

	visible := b.files.Visible()
	vm.Rows = make([]Row, len(visible))
	for i, entry := range visible {
		row := Row{
			Name:      entry.Name,
			IsDir:     entry.IsDir(),
			IsSymlink: entry.IsSymlink,
			Selected:  i == b.files.Selected(),
		}
		if b.mode == ModeHint {
			if code, ok := b.hints.Code(i); ok && strings.HasPrefix(code, vm.HintInput) {
				row.Hint = code
			}
		}
		vm.Rows[i] = row
	}

	if b.finder.Active {
		vm.Finder = FinderView{
			Active:   true,
			Zoxide:   b.finder.Zoxide,
			Query:    b.finder.Query.String(),
			Results:  b.finder.Results.Visible(),
			Selected: b.finder.Results.Selected(),
		}
	}
	if b.omnibar.Active {
		vm.Omnibar = OmnibarView{
			Active: true,
			Title:  b.omnibar.Kind.Title(),
			Text:   b.omnibar.Buffer.String(),
		}
	}
	return vm
}
