// Package opmark tokenizes a plain-text presentation markup and renders it
// to ANSI for terminal display.
//
// The markup dialect is line oriented. `---` on its own line starts a new
// page, `---t` starts a reveal step within the page, and `t---` closes the
// current step so later content belongs to the next one. Inline styles are
// toggles: *bold*, /italics/, _underline_, ~strikethrough~, $small$ and
// `code`. Headings, ordered and unordered lists (two spaces per nesting
// level), quotes, fenced code blocks, images with options
// (`![title](url)<c|w320|https://link>`) and hyperlinks (`<url>` or
// `[text](url)`) round out the syntax.
//
// NewParser gives access to the raw mark stream; IntoPages groups it into
// pages and reveal steps for a presentation frontend.
//
// Example:
//
//	src := "# Hello\n\nplain, *bold* and /italics/ text\n"
//	err := opmark.Render(opmark.RenderRequest{
//		Reader: strings.NewReader(src),
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  opmark.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Rendering can be customized with RenderOptions such as OSC 8 hyperlink
// support.
package opmark
