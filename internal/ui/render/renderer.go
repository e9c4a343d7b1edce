package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/thunars/internal/keymap"
	"github.com/kk-code-lab/thunars/internal/state"
	"github.com/kk-code-lab/thunars/internal/textutil"
)

// hintGutter is the width reserved in front of file names in hint mode:
// two code cells and a space.
const hintGutter = 3

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Layout computes the panel geometry for the current screen size.
func (r *Renderer) Layout() Layout {
	w, h := r.screen.Size()
	return ComputeLayout(w, h)
}

// Render draws the entire UI from a browser snapshot.
func (r *Renderer) Render(vm state.ViewModel, hints []keymap.Hint) {
	r.screen.Clear()
	r.screen.HideCursor()

	l := r.Layout()
	r.drawHeader(vm, l.Header)
	r.drawFiles(vm, l.Files)
	r.drawSeparator(l)
	r.drawPreview(vm, l.Preview)
	r.drawClipboard(vm, l.Clipboard)
	r.drawStatus(vm, l.Status)
	r.drawLine(l.Footer.X, l.Footer.Y, l.Footer.W, buildFooterHelpText(hints), tcell.StyleDefault.Foreground(r.theme.FooterFg))

	switch {
	case vm.Finder.Active:
		r.drawFinder(vm.Finder, l)
	case vm.Omnibar.Active:
		r.drawOmnibar(vm.Omnibar, l)
	}

	r.screen.Show()
}

// drawHeader renders the top bar with the title and the current directory.
func (r *Renderer) drawHeader(vm state.ViewModel, rect Rect) {
	if rect.W <= 0 {
		return
	}
	base := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	r.fill(rect.X, rect.Y, rect.W, base)

	x := r.drawText(rect.X, rect.Y, rect.W, " thunars ", base.Bold(true).Foreground(r.theme.TitleFg))
	remaining := rect.X + rect.W - x
	if remaining > 1 {
		r.drawText(x, rect.Y, remaining, textutil.TruncateLeft(vm.CurrentDir, remaining-1), base)
	}
}

func (r *Renderer) drawFiles(vm state.ViewModel, rect Rect) {
	hinting := vm.Mode == state.ModeHint
	for i, row := range vm.Rows {
		if i >= rect.H {
			break
		}
		y := rect.Y + i
		style := r.entryStyle(row)
		if row.Selected && !hinting {
			style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}

		x := rect.X
		width := rect.W
		if hinting {
			r.drawHint(x, y, row.Hint)
			x += hintGutter
			width -= hintGutter
		} else {
			r.fill(x, y, 1, style)
			x++
			width--
		}
		if width <= 0 {
			continue
		}

		name := row.Name
		if row.IsDir {
			name += "/"
		}
		r.drawLine(x, y, width, name, style)
	}
}

func (r *Renderer) entryStyle(row state.Row) tcell.Style {
	style := tcell.StyleDefault.Foreground(r.theme.FileFg)
	switch {
	case row.IsSymlink:
		style = style.Foreground(r.theme.SymlinkFg)
	case row.IsDir:
		style = style.Foreground(r.theme.DirectoryFg).Bold(true)
	}
	return style
}

func (r *Renderer) drawHint(x, y int, code string) {
	if code == "" {
		r.fill(x, y, hintGutter, tcell.StyleDefault)
		return
	}
	style := tcell.StyleDefault.Background(r.theme.HintBg).Foreground(r.theme.HintFg).Bold(true)
	end := r.drawText(x, y, hintGutter-1, code, style)
	r.fill(end, y, x+hintGutter-1-end, style)
	r.fill(x+hintGutter-1, y, 1, tcell.StyleDefault)
}

// drawSeparator draws the vertical rule between the file list and the
// right-hand panels.
func (r *Renderer) drawSeparator(l Layout) {
	if l.Preview.W <= 0 {
		return
	}
	x := l.Files.X + l.Files.W
	style := tcell.StyleDefault.Foreground(r.theme.BorderFg)
	for y := l.Files.Y; y < l.Files.Y+l.Files.H; y++ {
		r.screen.SetContent(x, y, tcell.RuneVLine, nil, style)
	}
}

func (r *Renderer) drawTitle(x, y, width int, title string) {
	r.drawLine(x, y, width, title, tcell.StyleDefault.Foreground(r.theme.TitleFg).Bold(true))
}

func (r *Renderer) drawPreview(vm state.ViewModel, rect Rect) {
	if rect.W <= 0 {
		return
	}
	r.drawTitle(rect.X, rect.Y-1, rect.W, "Preview")

	numStyle := tcell.StyleDefault.Foreground(r.theme.LineNumFg)
	for i, line := range vm.Preview {
		if i >= rect.H {
			break
		}
		y := rect.Y + i
		num, text := splitLineNumber(line)
		x := r.drawText(rect.X, y, rect.W, num, numStyle)
		if remaining := rect.X + rect.W - x; remaining > 0 {
			r.drawLine(x, y, remaining, text, tcell.StyleDefault)
		}
	}
}

// splitLineNumber separates the right-aligned line number prefix of a
// preview line from its text.
func splitLineNumber(line string) (string, string) {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	digits := i
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == digits || i >= len(line) || line[i] != ' ' {
		return "", line
	}
	return line[:i+1], line[i+1:]
}

func (r *Renderer) drawClipboard(vm state.ViewModel, rect Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	r.drawTitle(rect.X, rect.Y-1, rect.W, fmt.Sprintf("Clipboard (%d)", len(vm.Clipboard)))

	lines := vm.Clipboard
	overflow := 0
	if len(lines) > rect.H {
		overflow = len(lines) - rect.H + 1
		lines = lines[:rect.H-1]
	}

	for i, line := range lines {
		y := rect.Y + i
		verb, path := line, ""
		if len(line) > 5 {
			verb, path = line[:5], line[5:]
		}
		verbStyle := tcell.StyleDefault.Foreground(r.theme.ClipCopyFg)
		if verb == "cut  " {
			verbStyle = tcell.StyleDefault.Foreground(r.theme.ClipCutFg)
		}
		x := r.drawText(rect.X, y, rect.W, verb, verbStyle)
		if remaining := rect.X + rect.W - x; remaining > 0 {
			r.drawText(x, y, remaining, textutil.TruncateLeft(path, remaining), tcell.StyleDefault)
		}
	}
	if overflow > 0 {
		r.drawLine(rect.X, rect.Y+rect.H-1, rect.W, fmt.Sprintf("+%d more", overflow), tcell.StyleDefault.Foreground(r.theme.LineNumFg))
	}
}

func (r *Renderer) drawStatus(vm state.ViewModel, rect Rect) {
	if rect.W <= 0 {
		return
	}
	if vm.Status != "" {
		r.drawLine(rect.X, rect.Y, rect.W, " "+vm.Status, tcell.StyleDefault.Foreground(r.theme.ErrorFg))
		return
	}
	r.drawLine(rect.X, rect.Y, rect.W, formatStatusLine(vm), tcell.StyleDefault.Foreground(r.theme.FooterFg))
}

func (r *Renderer) drawFinder(f state.FinderView, l Layout) {
	box := l.Finder
	if box.W <= 0 {
		return
	}
	title := "Find files"
	if f.Zoxide {
		title = "Zoxide"
	}
	r.drawBox(box, title)

	q := l.FinderQuery
	prompt := "> "
	x := r.drawText(q.X, q.Y, q.W, prompt, tcell.StyleDefault.Foreground(r.theme.TitleFg))
	query := textutil.TruncateLeft(f.Query, max(q.X+q.W-x-1, 0))
	end := r.drawText(x, q.Y, q.X+q.W-x, query, tcell.StyleDefault)
	r.screen.ShowCursor(end, q.Y)

	sepY := box.Y + 2
	border := tcell.StyleDefault.Foreground(r.theme.BorderFg)
	r.screen.SetContent(box.X, sepY, tcell.RuneLTee, nil, border)
	for x := box.X + 1; x < box.X+box.W-1; x++ {
		r.screen.SetContent(x, sepY, tcell.RuneHLine, nil, border)
	}
	r.screen.SetContent(box.X+box.W-1, sepY, tcell.RuneRTee, nil, border)

	list := l.FinderList
	if len(f.Results) == 0 {
		if list.H > 0 {
			r.drawLine(list.X, list.Y, list.W, " no matches", tcell.StyleDefault.Foreground(r.theme.LineNumFg))
		}
		return
	}
	for i, result := range f.Results {
		if i >= list.H {
			break
		}
		style := tcell.StyleDefault
		if i == f.Selected {
			style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}
		r.drawLine(list.X, list.Y+i, list.W, " "+textutil.TruncateLeft(result, list.W-1), style)
	}
}

func (r *Renderer) drawOmnibar(o state.OmnibarView, l Layout) {
	box := l.Omnibar
	if box.W <= 0 {
		return
	}
	r.drawBox(box, o.Title)
	t := l.OmnibarText
	text := textutil.TruncateLeft(o.Text, max(t.W-2, 0))
	end := r.drawText(t.X+1, t.Y, t.W-1, text, tcell.StyleDefault)
	r.screen.ShowCursor(end, t.Y)
}
