package render

import (
	"strings"

	"github.com/kk-code-lab/thunars/internal/keymap"
)

// buildFooterHelpText returns the footer hint string with leading/trailing padding.
func buildFooterHelpText(hints []keymap.Hint) string {
	parts := buildFooterHelpSegments(hints)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments formats each hint as "keys: label".
func buildFooterHelpSegments(hints []keymap.Hint) []string {
	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		if h.Keys == "" {
			continue
		}
		segments = append(segments, h.Keys+": "+h.Label)
	}
	return segments
}
