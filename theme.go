package opmark

import (
	"sort"

	"pkt.systems/opmark/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Text          Style
	Heading       [5]Style
	Bold          Style
	Italics       Style
	Small         Style
	Strikethrough Style
	Underline     Style
	CodeInline    Style
	CodeBlock     Style
	Quote         Style
	ListMarker    Style
	LinkText      Style
	LinkURL       Style
	ImageTitle    Style
	Separator     Style
	PageDivider   Style
	RevealMarker  Style
}

// Theme provides named styles for deck rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	out := ""
	for _, p := range prefixes {
		out += p
	}
	return Style{Prefix: out}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:          style(p.Text),
		Heading:       [5]Style{style(palette.Bold, p.H1), style(palette.Bold, p.H2), style(palette.Bold, p.H3), style(p.H4), style(p.H5)},
		Bold:          style(palette.Bold, p.Strong),
		Italics:       style(palette.Italic, p.Emphasis),
		Small:         style(palette.Faint, p.Small),
		Strikethrough: style(palette.Strike, p.Text),
		Underline:     style(palette.Underline, p.Text),
		CodeInline:    style(p.CodeInline),
		CodeBlock:     style(p.CodeBlock),
		Quote:         style(palette.Italic, p.Quote),
		ListMarker:    style(p.ListMarker),
		LinkText:      style(palette.Underline, p.LinkText),
		LinkURL:       style(p.LinkURL),
		ImageTitle:    style(p.ImageTitle),
		Separator:     style(p.Separator),
		PageDivider:   style(p.PageDivider),
		RevealMarker:  style(palette.Faint, p.RevealMarker),
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"plain":   theme{name: "plain", styles: stylesFromPalette(palette.PalettePlain)},
	"aurora":  theme{name: "aurora", styles: stylesFromPalette(palette.PaletteAurora)},
	"ember":   theme{name: "ember", styles: stylesFromPalette(palette.PaletteEmber)},
	"paper":   theme{name: "paper", styles: stylesFromPalette(palette.PalettePaper)},
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	t, ok := builtinThemes[name]
	return t, ok
}

// AvailableThemes lists the built-in theme names, sorted.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
