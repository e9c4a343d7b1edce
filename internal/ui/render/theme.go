package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	HintBg      tcell.Color
	HintFg      tcell.Color
	TitleFg     tcell.Color
	BorderFg    tcell.Color
	LineNumFg   tcell.Color
	ClipCopyFg  tcell.Color
	ClipCutFg   tcell.Color
	FooterFg    tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		HintBg:      tcell.Color214,
		HintFg:      tcell.ColorBlack,
		TitleFg:     tcell.Color44,
		BorderFg:    tcell.Color244,
		LineNumFg:   tcell.Color244,
		ClipCopyFg:  tcell.Color78,
		ClipCutFg:   tcell.Color209,
		FooterFg:    tcell.Color250,
		ErrorFg:     tcell.Color196,
	}
}
