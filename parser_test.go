package opmark

import (
	"testing"
)

// marksOf drains a fresh parser and strips the bootstrap Page and Transition
// marks so tests can assert on document content alone.
func marksOf(t *testing.T, src string) []Mark {
	t.Helper()
	marks := NewParser(src).Marks()
	if len(marks) < 2 {
		t.Fatalf("expected bootstrap Page and Transition, got %d marks", len(marks))
	}
	if marks[0].Kind != MarkPage {
		t.Fatalf("first mark = %v, want MarkPage", marks[0].Kind)
	}
	if marks[1].Kind != MarkTransition || marks[1].Order != 0 {
		t.Fatalf("second mark = %+v, want Transition order 0", marks[1])
	}
	return marks[2:]
}

func TestEmptyInput(t *testing.T) {
	marks := NewParser("").Marks()
	if len(marks) != 2 {
		t.Fatalf("got %d marks, want 2", len(marks))
	}
	if marks[0].Kind != MarkPage || marks[1].Kind != MarkTransition {
		t.Fatalf("got %+v, want Page then Transition", marks)
	}
	if marks[1].Order != 0 {
		t.Fatalf("bootstrap transition order = %d, want 0", marks[1].Order)
	}
}

func TestParserIsExhaustedAfterDrain(t *testing.T) {
	p := NewParser("hello")
	p.Marks()
	if m, ok := p.Next(); ok {
		t.Fatalf("Next after drain = %+v, want ok=false", m)
	}
}

func TestPlainText(t *testing.T) {
	marks := marksOf(t, "hello world")
	if len(marks) != 1 {
		t.Fatalf("got %d marks, want 1", len(marks))
	}
	if marks[0].Kind != MarkText || marks[0].Text != "hello world" {
		t.Fatalf("got %+v", marks[0])
	}
	if marks[0].Style != (StyleText{}) {
		t.Fatalf("plain text carries style %+v", marks[0].Style)
	}
}

func TestBoldToggle(t *testing.T) {
	marks := marksOf(t, "a *b* c")
	want := []struct {
		text string
		bold bool
	}{
		{"a ", false},
		{"b", true},
		{" c", false},
	}
	if len(marks) != len(want) {
		t.Fatalf("got %d marks, want %d: %+v", len(marks), len(want), marks)
	}
	for i, w := range want {
		if marks[i].Text != w.text || marks[i].Style.Bold != w.bold {
			t.Fatalf("mark %d = %q bold=%v, want %q bold=%v", i, marks[i].Text, marks[i].Style.Bold, w.text, w.bold)
		}
	}
}

func TestDoubledToggleCancelsItself(t *testing.T) {
	marks := marksOf(t, "**x**")
	if len(marks) != 1 {
		t.Fatalf("got %d marks, want 1: %+v", len(marks), marks)
	}
	if marks[0].Text != "x" || marks[0].Style.Bold {
		t.Fatalf("got %q bold=%v, want %q bold=false", marks[0].Text, marks[0].Style.Bold, "x")
	}
}

func TestTogglesCombine(t *testing.T) {
	marks := marksOf(t, "*/_x")
	if len(marks) != 1 {
		t.Fatalf("got %d marks, want 1: %+v", len(marks), marks)
	}
	st := marks[0].Style
	if !st.Bold || !st.Italics || !st.Underline {
		t.Fatalf("style = %+v, want bold italics underline", st)
	}
}

func TestSmallAndStrikethroughToggles(t *testing.T) {
	marks := marksOf(t, "$tiny$ and ~gone~")
	if marks[0].Text != "tiny" || !marks[0].Style.Small {
		t.Fatalf("got %+v, want small %q", marks[0], "tiny")
	}
	if marks[2].Text != "gone" || !marks[2].Style.Strikethrough {
		t.Fatalf("got %+v, want strikethrough %q", marks[2], "gone")
	}
}

func TestStyleResetsAtNewline(t *testing.T) {
	marks := marksOf(t, "*a\nb")
	if len(marks) != 2 {
		t.Fatalf("got %d marks, want 2: %+v", len(marks), marks)
	}
	if marks[0].Text != "a" || !marks[0].Style.Bold {
		t.Fatalf("got %+v, want bold %q", marks[0], "a")
	}
	if marks[1].Text != "b" || marks[1].Style.Bold {
		t.Fatalf("unclosed toggle leaked across newline: %+v", marks[1])
	}
}

func TestSingleNewlineIsSoftBreak(t *testing.T) {
	marks := marksOf(t, "a\nb")
	if len(marks) != 2 {
		t.Fatalf("got %d marks, want 2: %+v", len(marks), marks)
	}
	for _, m := range marks {
		if m.Kind != MarkText {
			t.Fatalf("soft break emitted %v", m.Kind)
		}
	}
}

func TestBlankLineEmitsSingleNewLineMark(t *testing.T) {
	marks := marksOf(t, "a\n\nb")
	if len(marks) != 3 {
		t.Fatalf("got %d marks, want 3: %+v", len(marks), marks)
	}
	if marks[1].Kind != MarkNewLine {
		t.Fatalf("middle mark = %v, want MarkNewLine", marks[1].Kind)
	}
}

func TestTrailingNewlineAtEOF(t *testing.T) {
	marks := marksOf(t, "a\n")
	if len(marks) != 2 || marks[1].Kind != MarkNewLine {
		t.Fatalf("got %+v, want text then NewLine", marks)
	}
}

func TestHeadingLevels(t *testing.T) {
	cases := []struct {
		src  string
		text string
		want Heading
	}{
		{"# One", "One", Heading1},
		{"## Two", "Two", Heading2},
		{"### Three", "Three", Heading3},
		{"###### Capped", "Capped", Heading5},
	}
	for _, tc := range cases {
		marks := marksOf(t, tc.src)
		if len(marks) != 1 {
			t.Fatalf("%q: got %d marks, want 1", tc.src, len(marks))
		}
		if marks[0].Text != tc.text || marks[0].Style.Heading != tc.want {
			t.Fatalf("%q: got %q level %v, want %q level %v",
				tc.src, marks[0].Text, marks[0].Style.Heading, tc.text, tc.want)
		}
	}
}

func TestHeadingRequiresSpace(t *testing.T) {
	marks := marksOf(t, "#nospace")
	for _, m := range marks {
		if m.Style.Heading != HeadingNone {
			t.Fatalf("hash without space parsed as heading: %+v", m)
		}
	}
}

func TestHeadingOnlyAtLineStart(t *testing.T) {
	marks := marksOf(t, "see # this")
	if len(marks) != 1 || marks[0].Style.Heading != HeadingNone {
		t.Fatalf("mid-line hash parsed as heading: %+v", marks)
	}
}

func TestInlineCode(t *testing.T) {
	marks := marksOf(t, "run `go vet` first")
	if len(marks) != 3 {
		t.Fatalf("got %d marks, want 3: %+v", len(marks), marks)
	}
	if marks[1].Text != "go vet" || !marks[1].Style.Code {
		t.Fatalf("got %+v, want code %q", marks[1], "go vet")
	}
	if marks[2].Text != " first" {
		t.Fatalf("text after code span = %q, want %q", marks[2].Text, " first")
	}
}

func TestUnterminatedBacktickDegradesToText(t *testing.T) {
	marks := marksOf(t, "`abc")
	if len(marks) != 2 {
		t.Fatalf("got %d marks, want 2: %+v", len(marks), marks)
	}
	if marks[0].Text != "`" || marks[0].Style.Code {
		t.Fatalf("got %+v, want literal backtick", marks[0])
	}
	if marks[1].Text != "abc" {
		t.Fatalf("got %q, want %q", marks[1].Text, "abc")
	}
}

func TestCodeBlock(t *testing.T) {
	marks := marksOf(t, "```go\nfmt.Println(1)\n```")
	if len(marks) != 1 {
		t.Fatalf("got %d marks, want 1: %+v", len(marks), marks)
	}
	m := marks[0]
	if m.Kind != MarkCodeBlock || m.Language != "go" || m.Text != "fmt.Println(1)" {
		t.Fatalf("got %+v", m)
	}
}

func TestCodeBlockWithoutLanguage(t *testing.T) {
	marks := marksOf(t, "```\nbody\n```")
	if marks[0].Language != "" || marks[0].Text != "body" {
		t.Fatalf("got %+v", marks[0])
	}
}

func TestEmptyCodeBlock(t *testing.T) {
	marks := marksOf(t, "```\n```")
	if len(marks) != 1 || marks[0].Kind != MarkCodeBlock || marks[0].Text != "" {
		t.Fatalf("got %+v", marks)
	}
}

func TestUnclosedCodeBlockDegrades(t *testing.T) {
	marks := marksOf(t, "```go\ncode")
	for _, m := range marks {
		if m.Kind == MarkCodeBlock && m.Text != "" {
			t.Fatalf("unclosed fence produced code block %+v", m)
		}
	}
}

func TestHyperlinkAngleForm(t *testing.T) {
	marks := marksOf(t, "<https://pkt.systems>")
	if len(marks) != 1 {
		t.Fatalf("got %d marks, want 1: %+v", len(marks), marks)
	}
	m := marks[0]
	if m.Text != "https://pkt.systems" || m.Style.Hyperlink != "https://pkt.systems" {
		t.Fatalf("got %+v", m)
	}
}

func TestHyperlinkBracketForm(t *testing.T) {
	marks := marksOf(t, "see [docs](https://pkt.systems/doc) here")
	if len(marks) != 3 {
		t.Fatalf("got %d marks, want 3: %+v", len(marks), marks)
	}
	m := marks[1]
	if m.Text != "docs" || m.Style.Hyperlink != "https://pkt.systems/doc" {
		t.Fatalf("got %+v", m)
	}
}

func TestUnclosedAngleDegradesToText(t *testing.T) {
	marks := marksOf(t, "<abc")
	if marks[0].Text != "<" || marks[0].Style.Hyperlink != "" {
		t.Fatalf("got %+v, want literal angle bracket", marks[0])
	}
}

func TestImage(t *testing.T) {
	marks := marksOf(t, "![logo](logo.png)")
	if len(marks) != 1 {
		t.Fatalf("got %d marks, want 1: %+v", len(marks), marks)
	}
	m := marks[0]
	if m.Kind != MarkImage || m.Title != "logo" || m.URL != "logo.png" {
		t.Fatalf("got %+v", m)
	}
}

func TestImageOptions(t *testing.T) {
	marks := marksOf(t, "![shot](shot.png)<center|w320|h240.5|https://pkt.systems>")
	m := marks[0]
	if m.Kind != MarkImage {
		t.Fatalf("got %+v, want image", m)
	}
	img := m.Image
	if img.AlignH != AlignCenter {
		t.Fatalf("align = %v, want center", img.AlignH)
	}
	if !img.HasWidth || img.Width != 320 {
		t.Fatalf("width = %v (set %v), want 320", img.Width, img.HasWidth)
	}
	if !img.HasHeight || img.Height != 240.5 {
		t.Fatalf("height = %v (set %v), want 240.5", img.Height, img.HasHeight)
	}
	if img.Hyperlink != "https://pkt.systems" {
		t.Fatalf("hyperlink = %q", img.Hyperlink)
	}
}

func TestImageOptionNonNumericWidthBecomesHyperlink(t *testing.T) {
	marks := marksOf(t, "![t](u.png)<wide>")
	img := marks[0].Image
	if img.HasWidth {
		t.Fatalf("bogus width parsed: %+v", img)
	}
	if img.Hyperlink != "wide" {
		t.Fatalf("hyperlink = %q, want %q", img.Hyperlink, "wide")
	}
}

func TestOrderedListNumbersItself(t *testing.T) {
	marks := marksOf(t, "1. a\n1. b\n9. c")
	if len(marks) != 3 {
		t.Fatalf("got %d marks, want 3: %+v", len(marks), marks)
	}
	for i, m := range marks {
		l := m.Style.Listing
		if l.Kind != ListOrdered || l.Ordinal != i+1 {
			t.Fatalf("item %d = %+v, want ordinal %d", i, l, i+1)
		}
	}
}

func TestOrderedListNestingResumesOuterCount(t *testing.T) {
	marks := marksOf(t, "1. a\n  1. b\n  2. c\n2. d")
	want := []struct {
		ordinal int
		indent  IndentLevel
	}{
		{1, IndentNone},
		{1, Indent1},
		{2, Indent1},
		{2, IndentNone},
	}
	if len(marks) != len(want) {
		t.Fatalf("got %d marks, want %d: %+v", len(marks), len(want), marks)
	}
	for i, w := range want {
		l := marks[i].Style.Listing
		if l.Ordinal != w.ordinal || l.Indent != w.indent {
			t.Fatalf("item %d = ordinal %d indent %v, want ordinal %d indent %v",
				i, l.Ordinal, l.Indent, w.ordinal, w.indent)
		}
	}
}

func TestBlankLineRestartsOrderedList(t *testing.T) {
	marks := marksOf(t, "1. a\n2. b\n\n1. c")
	last := marks[len(marks)-1]
	if last.Style.Listing.Ordinal != 1 {
		t.Fatalf("ordinal after blank line = %d, want 1", last.Style.Listing.Ordinal)
	}
}

func TestUnorderedList(t *testing.T) {
	marks := marksOf(t, "- item\n  - deep")
	if len(marks) != 2 {
		t.Fatalf("got %d marks, want 2: %+v", len(marks), marks)
	}
	if marks[0].Text != " item" || marks[0].Style.Listing.Kind != ListUnordered {
		t.Fatalf("got %+v", marks[0])
	}
	if marks[1].Text != " deep" || marks[1].Style.Listing.Indent != Indent1 {
		t.Fatalf("got %+v", marks[1])
	}
}

func TestQuote(t *testing.T) {
	marks := marksOf(t, "> wise words")
	if len(marks) != 1 {
		t.Fatalf("got %d marks, want 1: %+v", len(marks), marks)
	}
	if marks[0].Text != "wise words" || !marks[0].Style.Quote {
		t.Fatalf("got %+v", marks[0])
	}
}

func TestSeparators(t *testing.T) {
	marks := marksOf(t, "----\n")
	if marks[0].Kind != MarkSeparator || marks[0].Dir != SeparatorHorizontal {
		t.Fatalf("got %+v, want horizontal separator", marks[0])
	}
	marks = marksOf(t, "----v\n")
	if marks[0].Kind != MarkSeparator || marks[0].Dir != SeparatorVertical {
		t.Fatalf("got %+v, want vertical separator", marks[0])
	}
}

func TestSeparatorRequiresNewline(t *testing.T) {
	marks := marksOf(t, "----")
	if marks[0].Kind != MarkText || marks[0].Text != "----" {
		t.Fatalf("got %+v, want literal dashes", marks[0])
	}
}

func TestPageBreakResetsTransitionCounter(t *testing.T) {
	marks := NewParser("a\n---\nb").Marks()
	want := []MarkKind{MarkPage, MarkTransition, MarkText, MarkPage, MarkTransition, MarkText}
	if len(marks) != len(want) {
		t.Fatalf("got %d marks, want %d: %+v", len(marks), len(want), marks)
	}
	for i, k := range want {
		if marks[i].Kind != k {
			t.Fatalf("mark %d = %v, want %v", i, marks[i].Kind, k)
		}
	}
	if marks[4].Order != 0 {
		t.Fatalf("transition after page break has order %d, want 0", marks[4].Order)
	}
}

func TestTransitionOrderNumbering(t *testing.T) {
	marks := NewParser("---t\n---t\n---t5\n---t\n").Marks()
	var orders []int
	for _, m := range marks {
		if m.Kind == MarkTransition {
			orders = append(orders, m.Order)
		}
	}
	want := []int{0, 1, 2, 5, 6}
	if len(orders) != len(want) {
		t.Fatalf("got orders %v, want %v", orders, want)
	}
	for i := range want {
		if orders[i] != want[i] {
			t.Fatalf("got orders %v, want %v", orders, want)
		}
	}
}

func TestTransitionNonNumericSuffixUsesCounter(t *testing.T) {
	marks := NewParser("---tx\n").Marks()
	found := false
	for _, m := range marks[2:] {
		if m.Kind == MarkTransition {
			found = true
			if m.Order != 1 {
				t.Fatalf("order = %d, want counter value 1", m.Order)
			}
		}
	}
	if !found {
		t.Fatalf("no transition mark in %+v", marks)
	}
}

func TestTransitionEnd(t *testing.T) {
	marks := marksOf(t, "t---\n")
	if len(marks) != 1 || marks[0].Kind != MarkTransitionEnd {
		t.Fatalf("got %+v, want TransitionEnd", marks)
	}
}

func TestBackslashEscape(t *testing.T) {
	marks := marksOf(t, `\*x`)
	if len(marks) != 2 {
		t.Fatalf("got %d marks, want 2: %+v", len(marks), marks)
	}
	if marks[0].Text != "*" || marks[0].Style.Bold {
		t.Fatalf("got %+v, want literal asterisk", marks[0])
	}
	if marks[1].Text != "x" {
		t.Fatalf("got %q, want %q", marks[1].Text, "x")
	}
}

func TestBackslashEscapeMultibyte(t *testing.T) {
	marks := marksOf(t, "\\é")
	if len(marks) != 1 || marks[0].Text != "é" {
		t.Fatalf("got %+v, want single escaped rune", marks)
	}
}

func TestCaretForcedSingleChar(t *testing.T) {
	marks := marksOf(t, "a^b")
	if len(marks) != 3 {
		t.Fatalf("got %d marks, want 3: %+v", len(marks), marks)
	}
	if marks[1].Text != "^" {
		t.Fatalf("got %q, want lone caret run", marks[1].Text)
	}
}
