package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	textSniffSize         = 4096
	nonPrintableThreshold = 30 // percent
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".a": {}, ".bin": {}, ".bmp": {}, ".bz2": {}, ".class": {},
	".dll": {}, ".dylib": {}, ".exe": {}, ".gif": {}, ".gz": {}, ".ico": {},
	".iso": {}, ".jar": {}, ".jpeg": {}, ".jpg": {}, ".mkv": {}, ".mov": {},
	".mp3": {}, ".mp4": {}, ".o": {}, ".pdf": {}, ".png": {}, ".so": {},
	".tar": {}, ".tgz": {}, ".ttf": {}, ".wasm": {}, ".webp": {}, ".woff": {},
	".woff2": {}, ".xz": {}, ".zip": {}, ".zst": {},
}

type bom int

const (
	bomNone bom = iota
	bomUTF8
	bomUTF16LE
	bomUTF16BE
)

// ReadHead returns up to limit bytes from the start of path.
func ReadHead(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return io.ReadAll(io.LimitReader(f, limit))
}

// LooksLikeText sniffs the first bytes of content. path is only used for
// the extension shortcut and may be empty.
func LooksLikeText(path string, content []byte) bool {
	if path != "" {
		if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			return false
		}
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textSniffSize {
		sample = sample[:textSniffSize]
	}
	if detectBOM(sample) != bomNone {
		return true
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	bad := 0
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != 0x1b {
			bad++
		}
	}
	return bad*100/len(sample) < nonPrintableThreshold
}

// DecodeText converts BOM-prefixed UTF-8/UTF-16 content to a UTF-8 string.
func DecodeText(content []byte) string {
	switch detectBOM(content) {
	case bomUTF8:
		return string(content[3:])
	case bomUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case bomUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	}
	return string(content)
}

func detectBOM(b []byte) bom {
	switch {
	case len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		return bomUTF8
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE:
		return bomUTF16LE
	case len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF:
		return bomUTF16BE
	}
	return bomNone
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
