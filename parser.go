package opmark

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// inlineSpecials are the characters that terminate a literal text run. A run
// that would start on one of them is forced to length one so an unmatched
// special character degrades to literal text instead of looping.
const inlineSpecials = "*`~_/$^\\<[\n"

// Parser tokenizes one opmark document. It owns a cursor over the source
// text and consumes it destructively: once Next returns false the parser is
// exhausted and cannot be restarted. A Parser is not safe for concurrent use.
type Parser struct {
	rest             string
	emittedFirstPage bool
	isLineStart      bool
	isOrdered        bool
	isUnordered      bool
	style            StyleText
	ordinals         [6]int
	orderedIndent    IndentLevel
	transitionOrder  int
}

// NewParser returns a Parser over the full text of an opmark document.
func NewParser(src string) *Parser {
	return &Parser{rest: src, isLineStart: true}
}

// Next returns the next mark, or ok=false once the input is exhausted.
// Tokenization is total: malformed syntax degrades to literal text and no
// input can make Next fail.
func (p *Parser) Next() (Mark, bool) {
	if !p.emittedFirstPage {
		p.emittedFirstPage = true
		return Mark{Kind: MarkPage}, true
	}
	if p.transitionOrder == 0 {
		p.transitionOrder = 1
		return Mark{Kind: MarkTransition}, true
	}

	for {
		if p.rest == "" {
			return Mark{}, false
		}

		if p.rest[0] == '\n' {
			p.rest = p.rest[1:]
			p.isLineStart = true
			p.style = StyleText{}
			empty := p.rest == ""
			if empty || p.rest[0] == '\n' {
				if !empty {
					p.rest = p.rest[1:]
				}
				p.isOrdered = false
				p.isUnordered = false
				p.orderedIndent = IndentNone
				p.ordinals = [6]int{}
				return Mark{Kind: MarkNewLine}, true
			}
			// A single newline is a soft break: no mark, keep scanning.
		}

		if p.isLineStart {
			if rest, ok := strings.CutPrefix(p.rest, "---\n"); ok {
				p.rest = rest
				p.transitionOrder = 0
				return Mark{Kind: MarkPage}, true
			}
			if m, ok := p.transition(); ok {
				return m, true
			}
			if rest, ok := strings.CutPrefix(p.rest, "t---\n"); ok {
				p.rest = rest
				return Mark{Kind: MarkTransitionEnd}, true
			}
			if m, ok := p.codeBlock(); ok {
				return m, true
			}
			if m, ok := p.heading(); ok {
				return m, true
			}
			if m, ok := p.image(); ok {
				return m, true
			}
			if m, ok := p.orderedList(); ok {
				return m, true
			}
			if m, ok := p.quote(); ok {
				return m, true
			}
			if m, ok := p.separator(); ok {
				return m, true
			}
			if m, ok := p.unorderedList(); ok {
				return m, true
			}
		}

		switch p.rest[0] {
		case '*':
			p.rest = p.rest[1:]
			p.isLineStart = false
			p.style.Bold = !p.style.Bold
			continue
		case '/':
			p.rest = p.rest[1:]
			p.isLineStart = false
			p.style.Italics = !p.style.Italics
			continue
		case '$':
			p.rest = p.rest[1:]
			p.isLineStart = false
			p.style.Small = !p.style.Small
			continue
		case '~':
			p.rest = p.rest[1:]
			p.isLineStart = false
			p.style.Strikethrough = !p.style.Strikethrough
			continue
		case '_':
			p.rest = p.rest[1:]
			p.isLineStart = false
			p.style.Underline = !p.style.Underline
			continue
		}

		if m, ok := p.inlineCode(); ok {
			return m, true
		}
		if m, ok := p.hyperlink(); ok {
			return m, true
		}

		if p.rest[0] == '\\' && len(p.rest) >= 2 {
			_, size := utf8.DecodeRuneInString(p.rest[1:])
			text := p.rest[1 : 1+size]
			p.rest = p.rest[1+size:]
			p.isLineStart = false
			return Mark{Kind: MarkText, Text: text}, true
		}

		end := strings.IndexAny(p.rest, inlineSpecials)
		switch {
		case end < 0:
			end = len(p.rest)
		case end == 0:
			end = 1
		}
		m := Mark{Kind: MarkText, Text: p.rest[:end], Style: p.style}
		p.rest = p.rest[end:]
		p.isLineStart = false
		return m, true
	}
}

// Marks drains the parser and returns all remaining marks.
func (p *Parser) Marks() []Mark {
	var marks []Mark
	for {
		m, ok := p.Next()
		if !ok {
			return marks
		}
		marks = append(marks, m)
	}
}

// currentLine returns the remainder up to (excluding) the next newline.
func (p *Parser) currentLine() string {
	if i := strings.IndexByte(p.rest, '\n'); i >= 0 {
		return p.rest[:i]
	}
	return p.rest
}

// transition matches `---t` with an optional reveal order: `---t3`. The
// order is taken from the suffix only when it is all digits spanning to the
// end of the line; otherwise the auto-increment counter supplies it. Either
// way the counter rebases to order+1.
func (p *Parser) transition() (Mark, bool) {
	if !strings.HasPrefix(p.rest, "---t") {
		return Mark{}, false
	}
	line := p.currentLine()
	order := p.transitionOrder
	if len(line) > 4 && isAllDigits(line[4:]) {
		if n, err := strconv.Atoi(line[4:]); err == nil {
			order = n
		}
	}
	p.transitionOrder = order + 1
	p.rest = p.rest[len(line):]
	return Mark{Kind: MarkTransition, Order: order}, true
}

// codeBlock matches a fenced block:
//
//	```language
//	body
//	```
//
// The text after the opening fence up to the line break is the language tag;
// empty means none. Without a closing fence there is no match and the
// opening backticks degrade to inline scanning.
func (p *Parser) codeBlock() (Mark, bool) {
	if !strings.HasPrefix(p.rest, "```") {
		return Mark{}, false
	}
	end := strings.Index(p.rest, "\n```")
	if end < 0 {
		return Mark{}, false
	}
	firstLineEnd := strings.IndexByte(p.rest, '\n')
	language := p.rest[3:firstLineEnd]
	code := ""
	if firstLineEnd+1 <= end {
		code = p.rest[firstLineEnd+1 : end]
	}
	p.rest = p.rest[end+4:]
	return Mark{Kind: MarkCodeBlock, Text: code, Language: language}, true
}

// heading matches one or more leading hashes followed by a space. The level
// is the hash count, capped at Heading5.
func (p *Parser) heading() (Mark, bool) {
	if !strings.HasPrefix(p.rest, "#") {
		return Mark{}, false
	}
	line := p.currentLine()
	if len(line) <= 2 {
		return Mark{}, false
	}
	idx := 1
	for idx < len(line)-1 && line[idx] == '#' {
		idx++
	}
	text, ok := strings.CutPrefix(line[idx:], " ")
	if !ok {
		return Mark{}, false
	}
	p.rest = p.rest[len(line):]
	p.isLineStart = false
	return Mark{Kind: MarkText, Text: text, Style: StyleText{Heading: HeadingFrom(idx)}}, true
}

// hyperlink matches the angle form `<url>` and the bracket form
// `[title](url)`. Both must close on the same line or the opening character
// degrades to literal text.
func (p *Parser) hyperlink() (Mark, bool) {
	if strings.HasPrefix(p.rest, "<") {
		line := p.currentLine()
		if angleEnd := strings.IndexByte(line, '>'); angleEnd >= 0 {
			url := line[1:angleEnd]
			p.rest = p.rest[angleEnd+1:]
			p.isLineStart = false
			return Mark{Kind: MarkText, Text: url, Style: StyleText{Hyperlink: url}}, true
		}
	}
	if strings.HasPrefix(p.rest, "[") {
		line := p.currentLine()
		if bracketEnd := strings.IndexByte(line, ']'); bracketEnd >= 0 {
			if strings.HasPrefix(line[bracketEnd+1:], "(") {
				if rel := strings.IndexByte(line[bracketEnd+2:], ')'); rel >= 0 {
					parensEnd := bracketEnd + 2 + rel
					title := line[1:bracketEnd]
					url := line[bracketEnd+2 : parensEnd]
					p.rest = p.rest[parensEnd+1:]
					p.isLineStart = false
					return Mark{Kind: MarkText, Text: title, Style: StyleText{Hyperlink: url}}, true
				}
			}
		}
	}
	return Mark{}, false
}

// image matches `![title](src)` with optional `<opt|opt|...>` display
// options directly after the closing parenthesis.
func (p *Parser) image() (Mark, bool) {
	if !strings.HasPrefix(p.rest, "![") {
		return Mark{}, false
	}
	line := p.currentLine()
	bracketEnd := strings.IndexByte(line, ']')
	if bracketEnd < 0 || !strings.HasPrefix(line[bracketEnd+1:], "(") {
		return Mark{}, false
	}
	rel := strings.IndexByte(line[bracketEnd+2:], ')')
	if rel < 0 {
		return Mark{}, false
	}
	parensEnd := bracketEnd + 2 + rel
	title := line[2:bracketEnd]
	url := line[bracketEnd+2 : parensEnd]
	imageEnd := parensEnd
	var style StyleImage
	if strings.HasPrefix(line[parensEnd+1:], "<") {
		if angleRel := strings.IndexByte(line[parensEnd+2:], '>'); angleRel >= 0 {
			imageEnd = parensEnd + angleRel + 2
			angleEnd := parensEnd + 2 + angleRel
			for _, opt := range strings.Split(line[parensEnd+2:angleEnd], "|") {
				applyImageOption(&style, opt)
			}
		}
	}
	p.rest = p.rest[imageEnd+1:]
	p.isLineStart = false
	return Mark{Kind: MarkImage, URL: url, Title: title, Image: style}, true
}

// applyImageOption interprets one `<...>` option token. Alignment keywords
// set AlignH; `w`/`h` followed by a number set the dimensions; anything else,
// including a `w`/`h` token whose suffix does not parse, becomes the
// hyperlink.
func applyImageOption(style *StyleImage, opt string) {
	switch opt {
	case "auto":
		style.AlignH = AlignAuto
	case "left":
		style.AlignH = AlignLeft
	case "right":
		style.AlignH = AlignRight
	case "center":
		style.AlignH = AlignCenter
	default:
		switch {
		case strings.HasPrefix(opt, "w"):
			if n, err := strconv.ParseFloat(opt[1:], 64); err == nil {
				style.Width = n
				style.HasWidth = true
			} else {
				style.Hyperlink = opt
			}
		case strings.HasPrefix(opt, "h"):
			if n, err := strconv.ParseFloat(opt[1:], 64); err == nil {
				style.Height = n
				style.HasHeight = true
			} else {
				style.Hyperlink = opt
			}
		default:
			style.Hyperlink = opt
		}
	}
}

// orderedList matches `N. item` after an indent. The ordinal written in the
// source is ignored: the parser numbers same-indent runs itself, restarting
// at 1 when a list begins or nests deeper, and resuming from the stored
// per-indent ordinal when returning to a shallower level.
func (p *Parser) orderedList() (Mark, bool) {
	line := p.currentLine()
	if line == "" {
		return Mark{}, false
	}
	level := indentOf(line)
	idx := int(level) * 2
	if idx >= len(line) {
		return Mark{}, false
	}
	for idx < len(line)-1 && isDigit(line[idx]) {
		idx++
	}
	if !strings.HasPrefix(line[idx:], ". ") {
		return Mark{}, false
	}
	ordinal := 1
	if p.isOrdered && p.orderedIndent >= level {
		ordinal = p.ordinals[level] + 1
	}
	p.ordinals[level] = ordinal
	text := line[idx+2:]
	p.rest = p.rest[len(line):]
	p.isLineStart = false
	p.isOrdered = true
	p.orderedIndent = level
	style := StyleText{Listing: Listing{Kind: ListOrdered, Ordinal: ordinal, Indent: level}}
	return Mark{Kind: MarkText, Text: text, Style: style}, true
}

// quote matches a `> ` line.
func (p *Parser) quote() (Mark, bool) {
	if !strings.HasPrefix(p.rest, "> ") {
		return Mark{}, false
	}
	line := p.currentLine()
	p.rest = p.rest[len(line):]
	p.isLineStart = false
	return Mark{Kind: MarkText, Text: line[2:], Style: StyleText{Quote: true}}, true
}

// separator matches a line that is exactly `----` (horizontal) or `----v`
// (vertical).
func (p *Parser) separator() (Mark, bool) {
	if rest, ok := strings.CutPrefix(p.rest, "----\n"); ok {
		p.rest = rest
		return Mark{Kind: MarkSeparator, Dir: SeparatorHorizontal}, true
	}
	if rest, ok := strings.CutPrefix(p.rest, "----v\n"); ok {
		p.rest = rest
		return Mark{Kind: MarkSeparator, Dir: SeparatorVertical}, true
	}
	return Mark{}, false
}

// unorderedList matches `- item` after an indent. The emitted text keeps the
// space after the dash.
func (p *Parser) unorderedList() (Mark, bool) {
	line := p.currentLine()
	if line == "" {
		return Mark{}, false
	}
	level := indentOf(line)
	idx := int(level) * 2
	if idx >= len(line) || !strings.HasPrefix(line[idx:], "- ") {
		return Mark{}, false
	}
	text := line[idx+1:]
	p.rest = p.rest[len(line):]
	p.isLineStart = false
	p.isUnordered = true
	style := StyleText{Listing: Listing{Kind: ListUnordered, Indent: level}}
	return Mark{Kind: MarkText, Text: text, Style: style}, true
}

// inlineCode matches `code` closed on the same line.
func (p *Parser) inlineCode() (Mark, bool) {
	if !strings.HasPrefix(p.rest, "`") {
		return Mark{}, false
	}
	line := p.currentLine()
	rel := strings.IndexByte(line[1:], '`')
	if rel < 0 {
		return Mark{}, false
	}
	text := line[1 : 1+rel]
	p.rest = p.rest[rel+2:]
	p.isLineStart = false
	return Mark{Kind: MarkText, Text: text, Style: StyleText{Code: true}}, true
}

// indentOf counts leading spaces and quantizes them to an IndentLevel
// (two spaces per level, saturating at Indent5).
func indentOf(line string) IndentLevel {
	n := 0
	for n < len(line)-1 && line[n] == ' ' {
		n++
	}
	return IndentLevelFrom(n / 2)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
