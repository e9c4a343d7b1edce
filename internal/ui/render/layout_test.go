package render

import "testing"

func TestComputeLayoutSplitsWideScreen(t *testing.T) {
	l := ComputeLayout(100, 30)

	if l.Header != (Rect{X: 0, Y: 0, W: 100, H: 1}) {
		t.Errorf("Expected header on row 0, got %+v", l.Header)
	}
	if l.Files != (Rect{X: 0, Y: 1, W: 40, H: 27}) {
		t.Errorf("Expected file list 40x27 at row 1, got %+v", l.Files)
	}
	if l.Status.Y != 28 || l.Footer.Y != 29 {
		t.Errorf("Expected status on 28 and footer on 29, got %d and %d", l.Status.Y, l.Footer.Y)
	}
	if l.Preview != (Rect{X: 41, Y: 2, W: 59, H: 20}) {
		t.Errorf("Expected preview 59x20 at (41,2), got %+v", l.Preview)
	}
	if l.Clipboard != (Rect{X: 41, Y: 23, W: 59, H: clipboardRows}) {
		t.Errorf("Expected clipboard below preview, got %+v", l.Clipboard)
	}
}

func TestComputeLayoutDropsPanelsWhenNarrow(t *testing.T) {
	l := ComputeLayout(50, 20)
	if l.Files.W != 50 {
		t.Errorf("Expected file list to take the full width, got %d", l.Files.W)
	}
	if l.Preview.W != 0 || l.Clipboard.W != 0 {
		t.Errorf("Expected no right panels, got preview %+v clipboard %+v", l.Preview, l.Clipboard)
	}
}

func TestComputeLayoutHidesClipboardOnShortScreen(t *testing.T) {
	l := ComputeLayout(100, 15)
	if l.Clipboard != (Rect{}) {
		t.Errorf("Expected no clipboard panel, got %+v", l.Clipboard)
	}
	if l.Preview.H != 11 {
		t.Errorf("Expected preview to use the whole column, got height %d", l.Preview.H)
	}
}

func TestComputeLayoutOverlaysAreCentered(t *testing.T) {
	l := ComputeLayout(100, 30)
	if l.Finder != (Rect{X: 5, Y: 3, W: 90, H: 22}) {
		t.Errorf("Unexpected finder box %+v", l.Finder)
	}
	if l.FinderList.H != 18 || l.FinderList.Y != 6 {
		t.Errorf("Unexpected finder list %+v", l.FinderList)
	}
	if l.Omnibar != (Rect{X: 18, Y: 13, W: 64, H: 3}) {
		t.Errorf("Unexpected omnibar box %+v", l.Omnibar)
	}
}

func TestComputeLayoutEmptyScreen(t *testing.T) {
	if l := ComputeLayout(0, 0); l != (Layout{}) {
		t.Errorf("Expected zero layout, got %+v", l)
	}
}

func TestLayoutViewport(t *testing.T) {
	v := ComputeLayout(100, 30).Viewport()
	if v.FileRows != 27 || v.FinderRows != 18 || v.PreviewLines != 20 || v.PreviewWidth != 59 {
		t.Errorf("Unexpected viewport %+v", v)
	}

	small := ComputeLayout(8, 4).Viewport()
	if small.FinderRows != 1 {
		t.Errorf("Expected finder rows to stay at least 1, got %d", small.FinderRows)
	}
}
