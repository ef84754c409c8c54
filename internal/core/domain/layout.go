package domain

// Page is one page of a document's layout stream.
type Page struct {
	// Number is the 0-based page index.
	Number int

	// Elements are the page's lines in reading order.
	Elements []TextElement
}

// Layout is the full layout stream of one document.
type Layout struct {
	// Name identifies the document (its file name).
	Name string

	// Path is where the document was read from.
	Path string

	// Pages are the document pages in order.
	Pages []Page
}

// Elements flattens the layout into a single ordered element list.
func (l *Layout) Elements() []TextElement {
	if l == nil {
		return nil
	}
	var n int
	for i := range l.Pages {
		n += len(l.Pages[i].Elements)
	}
	out := make([]TextElement, 0, n)
	for i := range l.Pages {
		out = append(out, l.Pages[i].Elements...)
	}
	return out
}

// PageCount returns the number of pages.
func (l *Layout) PageCount() int {
	if l == nil {
		return 0
	}
	return len(l.Pages)
}
