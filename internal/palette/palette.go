// Package palette holds the ANSI escape prefixes behind the built-in themes.
package palette

// Base attribute prefixes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
)

// Palette defines the color prefix per slide element. Attribute prefixes
// (bold, italic, ...) are layered on top by the theme layer.
type Palette struct {
	Text          string
	H1            string
	H2            string
	H3            string
	H4            string
	H5            string
	Emphasis      string
	Strong        string
	Small         string
	CodeInline    string
	CodeBlock     string
	Quote         string
	ListMarker    string
	LinkText      string
	LinkURL       string
	ImageTitle    string
	Separator     string
	PageDivider   string
	RevealMarker  string
}

func fg256(n string) string { return "\x1b[38;5;" + n + "m" }

// PaletteDefault keeps body text at the terminal default and colors the
// structural elements.
var PaletteDefault = Palette{
	H1:           fg256("117"),
	H2:           fg256("111"),
	H3:           fg256("105"),
	H4:           fg256("99"),
	H5:           fg256("93"),
	Strong:       fg256("215"),
	CodeInline:   fg256("150"),
	CodeBlock:    fg256("150"),
	Quote:        fg256("245"),
	ListMarker:   fg256("215"),
	LinkText:     fg256("75"),
	LinkURL:      fg256("244"),
	ImageTitle:   fg256("179"),
	Separator:    fg256("240"),
	PageDivider:  fg256("240"),
	RevealMarker: fg256("240"),
}

// PalettePlain renders without any color; attributes still apply.
var PalettePlain = Palette{}

// PaletteAurora is a cool blue/green scheme for dark terminals.
var PaletteAurora = Palette{
	Text:         fg256("152"),
	H1:           fg256("48"),
	H2:           fg256("43"),
	H3:           fg256("37"),
	H4:           fg256("30"),
	H5:           fg256("23"),
	Emphasis:     fg256("159"),
	Strong:       fg256("121"),
	CodeInline:   fg256("222"),
	CodeBlock:    fg256("222"),
	Quote:        fg256("66"),
	ListMarker:   fg256("48"),
	LinkText:     fg256("81"),
	LinkURL:      fg256("60"),
	ImageTitle:   fg256("115"),
	Separator:    fg256("23"),
	PageDivider:  fg256("23"),
	RevealMarker: fg256("30"),
}

// PaletteEmber is a warm red/amber scheme for dark terminals.
var PaletteEmber = Palette{
	Text:         fg256("223"),
	H1:           fg256("203"),
	H2:           fg256("209"),
	H3:           fg256("215"),
	H4:           fg256("221"),
	H5:           fg256("179"),
	Emphasis:     fg256("217"),
	Strong:       fg256("208"),
	CodeInline:   fg256("143"),
	CodeBlock:    fg256("143"),
	Quote:        fg256("137"),
	ListMarker:   fg256("208"),
	LinkText:     fg256("214"),
	LinkURL:      fg256("95"),
	ImageTitle:   fg256("180"),
	Separator:    fg256("94"),
	PageDivider:  fg256("94"),
	RevealMarker: fg256("137"),
}

// PalettePaper targets light terminals.
var PalettePaper = Palette{
	Text:         fg256("236"),
	H1:           fg256("25"),
	H2:           fg256("26"),
	H3:           fg256("27"),
	H4:           fg256("61"),
	H5:           fg256("60"),
	Emphasis:     fg256("95"),
	Strong:       fg256("88"),
	CodeInline:   fg256("22"),
	CodeBlock:    fg256("22"),
	Quote:        fg256("244"),
	ListMarker:   fg256("88"),
	LinkText:     fg256("25"),
	LinkURL:      fg256("246"),
	ImageTitle:   fg256("94"),
	Separator:    fg256("250"),
	PageDivider:  fg256("250"),
	RevealMarker: fg256("250"),
}
