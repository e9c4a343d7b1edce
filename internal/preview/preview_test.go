package preview

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
	"golang.org/x/text/encoding/unicode"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPreviewNumbersLines(t *testing.T) {
	var body []byte
	for i := 0; i < 12; i++ {
		body = append(body, "line\r\n"...)
	}
	path := writeFile(t, "a.txt", body)

	lines, err := NewLoader(4).Preview(path, 10, 80)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 10 {
		t.Fatalf("Expected 10 lines, got %d", len(lines))
	}
	if lines[0] != " 1 line" || lines[9] != "10 line" {
		t.Errorf("Unexpected numbering %q / %q", lines[0], lines[9])
	}
}

func TestPreviewExpandsTabsAndSanitises(t *testing.T) {
	path := writeFile(t, "tabs.go", []byte("\tx\x1b[31m\n"))
	lines, err := NewLoader(4).Preview(path, 5, 80)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != "1     x?[31m" {
		t.Errorf("Unexpected line %q", lines)
	}
}

func TestPreviewTruncatesToWidth(t *testing.T) {
	path := writeFile(t, "long.txt", []byte("abcdefghijklmnopqrstuvwxyz\n"))
	lines, err := NewLoader(4).Preview(path, 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0] != "1 abcdefg…" {
		t.Errorf("Unexpected truncation %q", lines[0])
	}
}

func TestPreviewBinaryAndDirectories(t *testing.T) {
	bin := writeFile(t, "blob.dat", []byte{0x00, 0x01, 0x02, 0xff, 0x00})
	l := NewLoader(4)
	if lines, err := l.Preview(bin, 5, 80); err != nil || lines != nil {
		t.Errorf("Binary file should have no preview, got %v (%v)", lines, err)
	}
	if lines, err := l.Preview(t.TempDir(), 5, 80); err != nil || lines != nil {
		t.Errorf("Directory should have no preview, got %v (%v)", lines, err)
	}
	if _, err := l.Preview(filepath.Join(t.TempDir(), "missing"), 5, 80); !apperrors.Is(err, apperrors.IOFailure) {
		t.Errorf("Expected IOFailure, got %v", err)
	}
}

func TestPreviewDecodesUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte("hello\nworld\n"))
	if err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, "utf16.txt", data)

	lines, err := NewLoader(4).Preview(path, 5, 80)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[1] != "2 world" {
		t.Errorf("Unexpected UTF-16 preview %q", lines)
	}
}
