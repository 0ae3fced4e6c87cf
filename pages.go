package opmark

// PageEntry is one grouped page. MaxOrder is the highest transition reveal
// order seen on the page. LastTransition is reserved for presenter cursor
// state and is currently always zero.
type PageEntry struct {
	Page           Mark
	MaxOrder       int
	LastTransition int
}

// IntoPages drains the parser and folds its flat mark stream into pages.
func IntoPages(p *Parser) []PageEntry {
	return GroupMarks(p.Marks())
}

// GroupMarks folds an ordered mark sequence into pages of transitions.
//
// Page marks start a new entry. Transition marks are appended under the
// current page, tracking the maximum reveal order. A TransitionEnd appends a
// fresh empty transition as a boundary; subsequent marks accumulate there.
// Any other mark is appended as a child of the most recently opened
// transition, synthesizing an empty page or transition first when none is
// open yet. A single pass, order preserved throughout.
func GroupMarks(marks []Mark) []PageEntry {
	var pages []PageEntry
	for _, m := range marks {
		if m.Kind == MarkPage {
			pages = append(pages, PageEntry{Page: m})
			continue
		}
		if len(pages) == 0 {
			pages = append(pages, PageEntry{Page: Mark{Kind: MarkPage}})
		}
		entry := &pages[len(pages)-1]
		switch m.Kind {
		case MarkTransition:
			entry.Page.Children = append(entry.Page.Children, m)
			if m.Order > entry.MaxOrder {
				entry.MaxOrder = m.Order
			}
		case MarkTransitionEnd:
			entry.Page.Children = append(entry.Page.Children, Mark{Kind: MarkTransition})
		default:
			if len(entry.Page.Children) == 0 {
				entry.Page.Children = append(entry.Page.Children, Mark{Kind: MarkTransition})
			}
			last := &entry.Page.Children[len(entry.Page.Children)-1]
			last.Children = append(last.Children, m)
		}
	}
	return pages
}
