package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII names display correctly
	// on terminals that do not announce a charset.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
