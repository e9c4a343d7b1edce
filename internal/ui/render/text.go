package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/thunars/internal/textutil"
)

// drawText writes text from startX, never past maxWidth cells, and returns
// the column after the last cell written. Zero-width runes combine with the
// preceding cell.
func (r *Renderer) drawText(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(textutil.Sanitize(text))
	for i := 0; i < len(runes); {
		mainc := runes[i]
		i++
		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := runewidth.RuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		for pad := 1; pad < w; pad++ {
			r.screen.SetContent(x+pad, y, ' ', nil, style)
		}
		x += w
	}
	return x
}

// fill paints cells [x, x+width) of row y.
func (r *Renderer) fill(x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// drawLine draws text truncated with an ellipsis and pads the rest of the
// width with style.
func (r *Renderer) drawLine(x, y, width int, text string, style tcell.Style) {
	if width <= 0 {
		return
	}
	end := r.drawText(x, y, width, textutil.Truncate(text, width), style)
	r.fill(end, y, x+width-end, style)
}

// drawBox outlines rect with a title on the top edge.
func (r *Renderer) drawBox(rect Rect, title string) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	border := tcell.StyleDefault.Foreground(r.theme.BorderFg)
	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1

	for x := rect.X + 1; x < right; x++ {
		r.screen.SetContent(x, rect.Y, tcell.RuneHLine, nil, border)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		r.screen.SetContent(rect.X, y, tcell.RuneVLine, nil, border)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, border)
		r.fill(rect.X+1, y, rect.W-2, tcell.StyleDefault)
	}
	r.screen.SetContent(rect.X, rect.Y, tcell.RuneULCorner, nil, border)
	r.screen.SetContent(right, rect.Y, tcell.RuneURCorner, nil, border)
	r.screen.SetContent(rect.X, bottom, tcell.RuneLLCorner, nil, border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)

	if title != "" && rect.W > 4 {
		label := " " + textutil.Truncate(title, rect.W-4) + " "
		r.drawText(rect.X+1, rect.Y, rect.W-2, label, tcell.StyleDefault.Foreground(r.theme.TitleFg).Bold(true))
	}
}
