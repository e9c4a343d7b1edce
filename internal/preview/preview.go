// Package preview renders the head of a text file for the preview panel.
package preview

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	fsutil "github.com/kk-code-lab/thunars/internal/fs"
	"github.com/kk-code-lab/thunars/internal/textutil"
)

// byteLimit bounds how much of a file is read; enough for any screen.
const byteLimit int64 = 64 * 1024

// Loader builds line-numbered previews.
type Loader struct {
	TabWidth int
}

// NewLoader returns a loader expanding tabs to tabWidth columns.
func NewLoader(tabWidth int) *Loader {
	if tabWidth <= 0 {
		tabWidth = textutil.DefaultTabWidth
	}
	return &Loader{TabWidth: tabWidth}
}

// Preview returns at most maxLines lines of path, each prefixed with its
// line number and cut to maxWidth cells. Directories, special files and
// binary content give no lines.
func (l *Loader) Preview(path string, maxLines, maxWidth int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.New(apperrors.IOFailure, "preview", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}

	content, err := fsutil.ReadHead(path, byteLimit)
	if err != nil {
		return nil, apperrors.New(apperrors.IOFailure, "preview", path, err)
	}
	if len(content) == 0 || !fsutil.LooksLikeText(path, content) {
		return nil, nil
	}

	lines := splitLines(fsutil.DecodeText(content), maxLines)
	numberWidth := len(strconv.Itoa(len(lines)))

	out := make([]string, len(lines))
	for i, line := range lines {
		text := textutil.Sanitize(textutil.ExpandTabs(line, l.TabWidth))
		numbered := fmt.Sprintf("%*d %s", numberWidth, i+1, text)
		if maxWidth > 0 {
			numbered = textutil.Truncate(numbered, maxWidth)
		}
		out[i] = numbered
	}
	return out, nil
}

func splitLines(text string, limit int) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.SplitN(text, "\n", limit+1)
	if len(lines) > limit {
		lines = lines[:limit]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
