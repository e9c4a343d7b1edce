// Package shellsetup prints shell functions that run thunars and then move
// the calling shell into the directory the browser was left in.
package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// Shells lists the accepted shell names.
var Shells = []string{"bash", "zsh", "sh", "ksh", "fish", "pwsh"}

const posixFunction = `thunars() {
    tmp="$(mktemp -t thunars-cwd.XXXXXX)" || return
    command %s --cwd-file "$tmp" "$@"
    code=$?
    if [ -s "$tmp" ] && [ ! -L "$tmp" ]; then
        dest="$(cat -- "$tmp")"
        if [ -d "$dest" ] && [ "$dest" != "$PWD" ]; then
            cd -- "$dest"
        fi
    fi
    rm -f -- "$tmp"
    return $code
}
`

const fishFunction = `function thunars
    set -l tmp (mktemp -t thunars-cwd.XXXXXX); or return
    command %s --cwd-file $tmp $argv
    set -l code $status
    if test -s $tmp; and not test -L $tmp
        set -l dest (cat -- $tmp)
        if test -d "$dest"; and test "$dest" != "$PWD"
            builtin cd -- $dest
        end
    end
    rm -f -- $tmp
    return $code
end
`

const pwshFunction = `function thunars {
    $tmp = New-TemporaryFile
    try {
        & %s --cwd-file $tmp.FullName @args
        $dest = Get-Content -LiteralPath $tmp.FullName -Raw -ErrorAction SilentlyContinue
        if ($dest) { $dest = $dest.Trim() }
        if ($dest -and (Test-Path -LiteralPath $dest -PathType Container)) {
            Set-Location -LiteralPath $dest
        }
    } finally {
        Remove-Item -LiteralPath $tmp.FullName -ErrorAction SilentlyContinue
    }
}
`

// Write prints the integration for shellOverride, or for the detected shell
// when it is empty. executable is the thunars binary to call.
func Write(w io.Writer, shellOverride, executable string) error {
	shell := canonicalShellName(normalizeShellName(shellOverride))
	if shell == "" {
		shell = detectShell()
	}
	if executable == "" {
		executable = "thunars"
	}
	quoted := strconv.Quote(executable)

	var tmpl string
	switch shell {
	case "bash", "zsh", "sh", "ksh", "dash":
		tmpl = posixFunction
	case "fish":
		tmpl = fishFunction
	case "pwsh":
		tmpl = pwshFunction
	default:
		return fmt.Errorf("unsupported shell %q (want one of %s)", shell, strings.Join(Shells, ", "))
	}
	_, err := fmt.Fprintf(w, tmpl, quoted)
	return err
}

func detectShell() string {
	return detectShellInternal(runtime.GOOS, os.Getenv)
}

func detectShellInternal(goos string, getenv func(string) string) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}
	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}
	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	for _, quote := range []string{`"`, `'`} {
		if strings.HasPrefix(value, quote) {
			value = value[1:]
			if idx := strings.Index(value, quote); idx >= 0 {
				return value[:idx]
			}
			return value
		}
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}
