package opmark

// MarkKind identifies the variant of a Mark.
type MarkKind uint8

const (
	// MarkText is a styled text run.
	MarkText MarkKind = iota
	// MarkCodeBlock is a fenced code block with an optional language tag.
	MarkCodeBlock
	// MarkImage is an image with title, source and display options.
	MarkImage
	// MarkNewLine is an explicit paragraph break.
	MarkNewLine
	// MarkTransition opens a progressive-reveal group within a page.
	MarkTransition
	// MarkTransitionEnd closes the currently open transition group.
	MarkTransitionEnd
	// MarkPage starts a new page.
	MarkPage
	// MarkSeparator is a horizontal or vertical rule.
	MarkSeparator
)

// Heading is the heading level of a text run, HeadingNone for body text.
type Heading uint8

const (
	HeadingNone Heading = iota
	Heading1
	Heading2
	Heading3
	Heading4
	Heading5
)

// HeadingFrom converts a leading-hash count to a Heading, capped at Heading5.
func HeadingFrom(n int) Heading {
	if n <= 0 {
		return HeadingNone
	}
	if n >= 5 {
		return Heading5
	}
	return Heading(n)
}

// IndentLevel is the quantized nesting depth of a list item, 0 through 5.
type IndentLevel uint8

const (
	IndentNone IndentLevel = iota
	Indent1
	Indent2
	Indent3
	Indent4
	Indent5
)

// IndentLevelFrom converts a half-indent count to an IndentLevel, saturating
// at Indent5.
func IndentLevelFrom(n int) IndentLevel {
	if n <= 0 {
		return IndentNone
	}
	if n >= 5 {
		return Indent5
	}
	return IndentLevel(n)
}

// ListKind says whether a text run belongs to a list item.
type ListKind uint8

const (
	ListNone ListKind = iota
	ListOrdered
	ListUnordered
)

// Listing carries the list membership of a text run. Ordinal is meaningful
// for ListOrdered only.
type Listing struct {
	Kind    ListKind
	Ordinal int
	Indent  IndentLevel
}

// SeparatorDir is the direction of a separator rule.
type SeparatorDir uint8

const (
	SeparatorHorizontal SeparatorDir = iota
	SeparatorVertical
)

// AlignHorizontal is the horizontal alignment of an image.
type AlignHorizontal uint8

const (
	AlignAuto AlignHorizontal = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// StyleText is the per-run formatting of a text mark. The boolean toggles
// combine freely; Heading, Hyperlink and Listing are set by their block or
// inline productions only.
type StyleText struct {
	Bold          bool
	Code          bool
	Italics       bool
	Quote         bool
	Small         bool
	Strikethrough bool
	Underline     bool
	Heading       Heading
	Hyperlink     string
	Listing       Listing
}

// StyleImage holds the display options of an image mark.
type StyleImage struct {
	AlignH    AlignHorizontal
	Hyperlink string
	Width     float64
	Height    float64
	HasWidth  bool
	HasHeight bool
}

// Mark is one token produced by the tokenizer: either an inline run or a
// structural marker. Which payload fields are meaningful depends on Kind:
//
//	MarkText       Text, Style
//	MarkCodeBlock  Text (body), Language ("" when absent)
//	MarkImage      URL, Title, Image
//	MarkTransition Order, Children
//	MarkPage       Children
//	MarkSeparator  Dir
//
// The tokenizer always emits Page and Transition marks with empty Children;
// only the grouper appends into them.
type Mark struct {
	Kind     MarkKind
	Text     string
	Language string
	URL      string
	Title    string
	Order    int
	Dir      SeparatorDir
	Style    StyleText
	Image    StyleImage
	Children []Mark
}
