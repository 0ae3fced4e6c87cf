package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"pkt.systems/opmark"
)

var (
	outlineTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	outlinePageStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
	outlineHeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	outlineMetaStyle    = lipgloss.NewStyle().Faint(true)
)

// printOutline renders a structural summary of the deck: one block per page
// with its headings and reveal step count.
func printOutline(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if err := opmark.ValidateInput(src); err != nil {
		return err
	}
	pages := opmark.IntoPages(opmark.NewParser(string(src)))

	fmt.Fprintln(w, outlineTitleStyle.Render(fmt.Sprintf("deck: %d pages", len(pages))))
	for i, entry := range pages {
		steps := 0
		marks := 0
		var headings []string
		for _, transition := range entry.Page.Children {
			if len(transition.Children) > 0 {
				steps++
			}
			marks += len(transition.Children)
			for _, m := range transition.Children {
				if m.Kind == opmark.MarkText && m.Style.Heading != opmark.HeadingNone {
					depth := int(m.Style.Heading) - 1
					headings = append(headings, strings.Repeat("  ", depth)+m.Text)
				}
			}
		}
		fmt.Fprintln(w, outlinePageStyle.Render(fmt.Sprintf("page %d", i+1))+
			outlineMetaStyle.Render(fmt.Sprintf("  (%d steps, %d marks, max order %d)", steps, marks, entry.MaxOrder)))
		for _, h := range headings {
			fmt.Fprintln(w, "  "+outlineHeadingStyle.Render(h))
		}
	}
	return nil
}
