package render

import "github.com/kk-code-lab/thunars/internal/state"

const (
	minSplitWidth    = 60 // narrower screens show the file list only
	minFileListWidth = 24
	clipboardRows    = 5
	finderMaxWidth   = 90
	finderMaxHeight  = 22
	omnibarMaxWidth  = 64
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Layout places every panel for one screen size.
type Layout struct {
	Header    Rect
	Files     Rect
	Preview   Rect // content rows, below the preview title
	Clipboard Rect // content rows, below the clipboard title
	Status    Rect
	Footer    Rect

	Finder      Rect // overlay box including border
	FinderQuery Rect
	FinderList  Rect
	Omnibar     Rect
	OmnibarText Rect
}

// ComputeLayout splits a w×h screen.
func ComputeLayout(w, h int) Layout {
	var l Layout
	if w <= 0 || h <= 0 {
		return l
	}

	l.Header = Rect{X: 0, Y: 0, W: w, H: 1}
	bodyY := 1
	bodyH := max(h-3, 0)
	l.Status = Rect{X: 0, Y: min(bodyY+bodyH, h-1), W: w, H: 1}
	l.Footer = Rect{X: 0, Y: h - 1, W: w, H: 1}

	filesW := w
	if w >= minSplitWidth {
		filesW = max(w*2/5, minFileListWidth)
	}
	l.Files = Rect{X: 0, Y: bodyY, W: filesW, H: bodyH}

	if rightW := w - filesW - 1; rightW > 0 && bodyH > 1 {
		rightX := filesW + 1
		clipH := 0
		if bodyH >= 3*(clipboardRows+1) {
			clipH = clipboardRows
		}
		previewH := bodyH - 1
		if clipH > 0 {
			previewH -= clipH + 1
			l.Clipboard = Rect{X: rightX, Y: bodyY + bodyH - clipH, W: rightW, H: clipH}
		}
		l.Preview = Rect{X: rightX, Y: bodyY + 1, W: rightW, H: previewH}
	}

	fw := min(w-4, finderMaxWidth)
	fh := min(bodyH, finderMaxHeight)
	if fw >= 10 && fh >= 5 {
		l.Finder = Rect{X: (w - fw) / 2, Y: bodyY + (bodyH-fh)/2, W: fw, H: fh}
		l.FinderQuery = Rect{X: l.Finder.X + 1, Y: l.Finder.Y + 1, W: fw - 2, H: 1}
		l.FinderList = Rect{X: l.Finder.X + 1, Y: l.Finder.Y + 3, W: fw - 2, H: fh - 4}
	}

	ow := min(w-4, omnibarMaxWidth)
	if ow >= 10 && bodyH >= 3 {
		l.Omnibar = Rect{X: (w - ow) / 2, Y: bodyY + (bodyH-3)/2, W: ow, H: 3}
		l.OmnibarText = Rect{X: l.Omnibar.X + 1, Y: l.Omnibar.Y + 1, W: ow - 2, H: 1}
	}
	return l
}

// Viewport is the geometry the browser pages against.
func (l Layout) Viewport() state.Viewport {
	return state.Viewport{
		FileRows:     l.Files.H,
		FinderRows:   max(l.FinderList.H, 1),
		PreviewLines: l.Preview.H,
		PreviewWidth: l.Preview.W,
	}
}
