package shellsetup

import (
	"bytes"
	"strings"
	"testing"
)

func TestDetectShellInternal(t *testing.T) {
	tests := []struct {
		name          string
		goos          string
		envShell      string
		expectedShell string
	}{
		{
			name:          "uses SHELL when set",
			goos:          "linux",
			envShell:      "/bin/zsh",
			expectedShell: "zsh",
		},
		{
			name:          "strips arguments and quotes",
			goos:          "linux",
			envShell:      `"/usr/local/bin/fish" -l`,
			expectedShell: "fish",
		},
		{
			name:          "powershell is pwsh",
			goos:          "windows",
			envShell:      `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`,
			expectedShell: "pwsh",
		},
		{
			name:          "unix fallback",
			goos:          "linux",
			expectedShell: "bash",
		},
		{
			name:          "windows fallback",
			goos:          "windows",
			expectedShell: "pwsh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(key string) string {
				if key == "SHELL" {
					return tt.envShell
				}
				return ""
			}
			got := detectShellInternal(tt.goos, env)
			if got != tt.expectedShell {
				t.Fatalf("detectShellInternal() = %q, want %q", got, tt.expectedShell)
			}
		})
	}
}

func TestWritePerShell(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"thunars() {", `command "/opt/thunars" --cwd-file "$tmp" "$@"`, `cd -- "$dest"`}},
		{"zsh", []string{"thunars() {"}},
		{"fish", []string{"function thunars", `command "/opt/thunars" --cwd-file $tmp $argv`, "builtin cd"}},
		{"powershell", []string{"function thunars {", `& "/opt/thunars" --cwd-file $tmp.FullName @args`, "Set-Location"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.shell, "/opt/thunars"); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Expected output to contain %q, got:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestWriteRejectsUnknownShell(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "tcsh", "thunars"); err == nil {
		t.Fatal("Expected error for unsupported shell")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}
