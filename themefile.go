package opmark

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// themeFile is the on-disk theme format: a name plus a map of element names
// to SGR parameter strings, e.g.
//
//	name: custom
//	base: default
//	styles:
//	  h1: "1;38;5;203"
//	  quote: "3;38;5;245"
type themeFile struct {
	Name   string            `yaml:"name"`
	Base   string            `yaml:"base"`
	Styles map[string]string `yaml:"styles"`
}

// LoadTheme reads a YAML theme definition. Unlisted elements inherit from
// the base theme ("default" unless overridden).
func LoadTheme(r io.Reader) (Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("load theme: read: %w", err)
	}
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("load theme: parse: %w", err)
	}
	if tf.Name == "" {
		return nil, fmt.Errorf("load theme: name is required")
	}
	base := DefaultTheme()
	if tf.Base != "" {
		t, ok := ThemeByName(tf.Base)
		if !ok {
			return nil, fmt.Errorf("load theme: unknown base theme %q", tf.Base)
		}
		base = t
	}
	styles := base.Styles()
	for element, params := range tf.Styles {
		st := sgrStyle(params)
		switch element {
		case "text":
			styles.Text = st
		case "h1":
			styles.Heading[0] = st
		case "h2":
			styles.Heading[1] = st
		case "h3":
			styles.Heading[2] = st
		case "h4":
			styles.Heading[3] = st
		case "h5":
			styles.Heading[4] = st
		case "bold":
			styles.Bold = st
		case "italics":
			styles.Italics = st
		case "small":
			styles.Small = st
		case "strikethrough":
			styles.Strikethrough = st
		case "underline":
			styles.Underline = st
		case "code":
			styles.CodeInline = st
		case "code-block":
			styles.CodeBlock = st
		case "quote":
			styles.Quote = st
		case "list-marker":
			styles.ListMarker = st
		case "link-text":
			styles.LinkText = st
		case "link-url":
			styles.LinkURL = st
		case "image-title":
			styles.ImageTitle = st
		case "separator":
			styles.Separator = st
		case "page-divider":
			styles.PageDivider = st
		case "reveal-marker":
			styles.RevealMarker = st
		default:
			return nil, fmt.Errorf("load theme: unknown element %q", element)
		}
	}
	return NewTheme(tf.Name, styles), nil
}

// sgrStyle turns an SGR parameter string like "1;38;5;203" into a Style.
// An empty string means unstyled.
func sgrStyle(params string) Style {
	if params == "" {
		return Style{}
	}
	return Style{Prefix: "\x1b[" + params + "m"}
}
