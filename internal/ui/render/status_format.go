package render

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/thunars/internal/state"
)

// formatStatusLine describes the active mode when there is no message to show.
func formatStatusLine(vm state.ViewModel) string {
	var parts []string
	switch vm.Mode {
	case state.ModeHint:
		parts = append(parts, "HINT "+vm.HintInput)
	case state.ModeFinder:
		source := "files"
		if vm.Finder.Zoxide {
			source = "zoxide"
		}
		parts = append(parts, "FIND "+source, formatCount(len(vm.Finder.Results), "match", "matches"))
	case state.ModeOmnibar:
		parts = append(parts, strings.ToUpper(vm.Omnibar.Title))
	default:
		parts = append(parts, formatCount(len(vm.Rows), "entry", "entries")+" shown")
	}
	if n := len(vm.Clipboard); n > 0 {
		parts = append(parts, fmt.Sprintf("clipboard %d", n))
	}
	return " " + strings.Join(parts, " · ")
}

func formatCount(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
