package opmark

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const ansiReset = "\x1b[0m"

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Page    int // 1-based; zero renders the whole deck
	Options []RenderOption
}

// Render reads a full opmark document, tokenizes and groups it, and writes
// an ANSI preview of the deck. Transitions are rendered in ascending reveal
// order within each page.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	var cfg renderConfig
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	pages := IntoPages(NewParser(string(src)))
	if req.Page > 0 && req.Page > len(pages) {
		return fmt.Errorf("render: page %d of %d", req.Page, len(pages))
	}
	r := &pageRenderer{
		w:      req.Writer,
		width:  req.Width,
		styles: theme.Styles(),
		osc8:   cfg.osc8,
	}
	if req.Page > 0 {
		r.renderPage(pages[req.Page-1])
	} else {
		for i, entry := range pages {
			if i > 0 {
				r.pageDivider(i + 1)
			}
			r.renderPage(entry)
		}
	}
	r.flush()
	return r.err
}

// pageRenderer writes grouped pages as styled terminal lines. Style prefixes
// come from the theme; widths are measured with printable rune width so the
// escape sequences never count against the wrap limit.
type pageRenderer struct {
	w         io.Writer
	width     int
	styles    Styles
	osc8      bool
	style     string
	lineWidth int
	err       error
}

func (r *pageRenderer) renderPage(entry PageEntry) {
	order := make([]int, len(entry.Page.Children))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entry.Page.Children[order[a]].Order < entry.Page.Children[order[b]].Order
	})
	revealed := false
	for _, idx := range order {
		transition := entry.Page.Children[idx]
		if len(transition.Children) == 0 {
			continue
		}
		if revealed {
			r.revealDivider()
		}
		revealed = true
		for _, m := range transition.Children {
			r.renderMark(m)
		}
		r.closeLine()
	}
}

func (r *pageRenderer) renderMark(m Mark) {
	switch m.Kind {
	case MarkNewLine:
		r.closeLine()
		r.write("\n", Style{})
		r.lineWidth = 0
	case MarkSeparator:
		r.closeLine()
		rule := "─"
		if m.Dir == SeparatorVertical {
			rule = "┆"
		}
		r.write(strings.Repeat(rule, r.ruleWidth()), r.styles.Separator)
		r.newline()
	case MarkCodeBlock:
		r.renderCodeBlock(m)
	case MarkImage:
		r.renderImage(m)
	case MarkText:
		r.renderText(m)
	}
}

func (r *pageRenderer) renderText(m Mark) {
	st := m.Style
	switch {
	case st.Heading != HeadingNone:
		r.closeLine()
		style := r.styles.Heading[int(st.Heading)-1]
		for _, line := range strings.Split(wordwrap.String(m.Text, r.wrapLimit(0)), "\n") {
			r.write(line, style)
			r.newline()
		}
	case st.Quote:
		r.closeLine()
		for _, line := range strings.Split(wordwrap.String(m.Text, r.wrapLimit(2)), "\n") {
			r.write("> "+line, r.styles.Quote)
			r.newline()
		}
	case st.Listing.Kind == ListOrdered:
		r.closeLine()
		indent := strings.Repeat(" ", 2*int(st.Listing.Indent))
		marker := strconv.Itoa(st.Listing.Ordinal) + "."
		r.write(indent, Style{})
		r.write(marker, r.styles.ListMarker)
		r.appendInline(" "+m.Text, r.styles.Text, "")
	case st.Listing.Kind == ListUnordered:
		r.closeLine()
		indent := strings.Repeat(" ", 2*int(st.Listing.Indent))
		r.write(indent, Style{})
		r.write("•", r.styles.ListMarker)
		// the parser keeps the space after the dash in the run text
		r.appendInline(m.Text, r.styles.Text, "")
	case st.Code:
		r.appendInline(m.Text, r.styles.CodeInline, "")
	case st.Hyperlink != "":
		r.appendInline(m.Text, r.styles.LinkText, st.Hyperlink)
	default:
		r.appendInline(m.Text, r.inlineStyle(st), "")
	}
}

func (r *pageRenderer) renderCodeBlock(m Mark) {
	r.closeLine()
	if m.Language != "" {
		r.write(m.Language, r.styles.Small)
		r.newline()
	}
	body := strings.TrimSuffix(m.Text, "\n")
	for _, line := range strings.Split(body, "\n") {
		r.write("  "+line, r.styles.CodeBlock)
		r.newline()
	}
}

func (r *pageRenderer) renderImage(m Mark) {
	r.closeLine()
	label := "⧉ " + m.Title
	url := fitURL(m.URL, r.wrapLimit(ansi.PrintableRuneWidth(label)+3))
	width := ansi.PrintableRuneWidth(label) + ansi.PrintableRuneWidth(url) + 3
	if pad := r.alignPad(m.Image.AlignH, width); pad > 0 {
		r.write(strings.Repeat(" ", pad), Style{})
	}
	target := m.Image.Hyperlink
	if target == "" {
		target = m.URL
	}
	r.linkStart(target)
	r.write(label, r.styles.ImageTitle)
	r.write(" ("+url+")", r.styles.LinkURL)
	r.linkEnd()
	r.newline()
}

// appendInline adds a run to the open line, wrapping greedily at spaces.
func (r *pageRenderer) appendInline(text string, style Style, link string) {
	if text == "" {
		return
	}
	if link != "" {
		r.linkStart(link)
		defer r.linkEnd()
	}
	words := strings.Split(text, " ")
	for i, word := range words {
		if i > 0 {
			if r.width > 0 && r.lineWidth+1+ansi.PrintableRuneWidth(word) > r.width && r.lineWidth > 0 {
				r.newline()
			} else {
				r.write(" ", style)
			}
		} else if r.width > 0 && r.lineWidth > 0 && r.lineWidth+ansi.PrintableRuneWidth(word) > r.width {
			r.newline()
		}
		r.write(word, style)
	}
}

func (r *pageRenderer) inlineStyle(st StyleText) Style {
	prefix := r.styles.Text.Prefix
	if st.Bold {
		prefix += r.styles.Bold.Prefix
	}
	if st.Italics {
		prefix += r.styles.Italics.Prefix
	}
	if st.Small {
		prefix += r.styles.Small.Prefix
	}
	if st.Strikethrough {
		prefix += r.styles.Strikethrough.Prefix
	}
	if st.Underline {
		prefix += r.styles.Underline.Prefix
	}
	return Style{Prefix: prefix}
}

func (r *pageRenderer) pageDivider(page int) {
	r.closeLine()
	label := " page " + strconv.Itoa(page) + " "
	width := r.ruleWidth()
	fill := width - ansi.PrintableRuneWidth(label)
	if fill < 4 {
		fill = 4
	}
	left := fill / 2
	r.write(strings.Repeat("━", left)+label+strings.Repeat("━", fill-left), r.styles.PageDivider)
	r.newline()
}

func (r *pageRenderer) revealDivider() {
	r.closeLine()
	r.write("· · ·", r.styles.RevealMarker)
	r.newline()
}

func (r *pageRenderer) ruleWidth() int {
	if r.width > 0 {
		return r.width
	}
	return 40
}

// wrapLimit returns the usable width after reserving prefix columns.
func (r *pageRenderer) wrapLimit(reserved int) int {
	if r.width <= 0 {
		return 1 << 20
	}
	limit := r.width - reserved
	if limit < 1 {
		limit = 1
	}
	return limit
}

func (r *pageRenderer) alignPad(align AlignHorizontal, contentWidth int) int {
	if r.width <= 0 || contentWidth >= r.width {
		return 0
	}
	switch align {
	case AlignCenter:
		return (r.width - contentWidth) / 2
	case AlignRight:
		return r.width - contentWidth
	default:
		return 0
	}
}

func (r *pageRenderer) linkStart(url string) {
	if !r.osc8 || url == "" {
		return
	}
	r.writeRaw(osc8Start + url + "\x1b\\")
}

func (r *pageRenderer) linkEnd() {
	if !r.osc8 {
		return
	}
	r.writeRaw(osc8End)
}

func (r *pageRenderer) write(text string, style Style) {
	if text == "" {
		return
	}
	if style.Prefix != r.style {
		if r.style != "" {
			r.writeRaw(ansiReset)
		}
		r.style = style.Prefix
		if r.style != "" {
			r.writeRaw(r.style)
		}
	}
	r.writeRaw(text)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		r.lineWidth = ansi.PrintableRuneWidth(text[i+1:])
	} else {
		r.lineWidth += ansi.PrintableRuneWidth(text)
	}
}

func (r *pageRenderer) writeRaw(text string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, text)
}

func (r *pageRenderer) newline() {
	if r.style != "" {
		r.writeRaw(ansiReset)
		r.style = ""
	}
	r.writeRaw("\n")
	r.lineWidth = 0
}

func (r *pageRenderer) closeLine() {
	if r.lineWidth > 0 {
		r.newline()
	}
}

func (r *pageRenderer) flush() {
	r.closeLine()
	if r.style != "" {
		r.writeRaw(ansiReset)
		r.style = ""
	}
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

// fitURL shortens a URL for display, dropping the scheme before truncating.
func fitURL(url string, limit int) string {
	if ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}
