package pipeline

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

// ErrInvalidLayout indicates a page skeleton is missing a substitution marker.
var ErrInvalidLayout = errors.New("invalid page layout")

// Substitution markers in the page skeleton, in the order they must appear.
const (
	MarkerTitle   = "{{title}}"
	MarkerSidebar = "{{sidebar}}"
	MarkerContent = "{{content}}"
)

// Layout is a page skeleton split around its three substitution points.
// Everything outside the markers is emitted literally.
type Layout struct {
	head          string // up to the title
	beforeSidebar string
	beforeContent string
	tail          string
}

// NewLayout splits skeleton at the title, sidebar and content markers.
// Each marker must appear exactly once, in that order.
func NewLayout(skeleton string) (*Layout, error) {
	for _, m := range []string{MarkerTitle, MarkerSidebar, MarkerContent} {
		if n := strings.Count(skeleton, m); n != 1 {
			return nil, fmt.Errorf("%w: marker %s found %d times, want 1", ErrInvalidLayout, m, n)
		}
	}

	head, rest, _ := strings.Cut(skeleton, MarkerTitle)
	beforeSidebar, rest, ok := strings.Cut(rest, MarkerSidebar)
	if !ok {
		return nil, fmt.Errorf("%w: %s must follow %s", ErrInvalidLayout, MarkerSidebar, MarkerTitle)
	}
	beforeContent, tail, ok := strings.Cut(rest, MarkerContent)
	if !ok {
		return nil, fmt.Errorf("%w: %s must follow %s", ErrInvalidLayout, MarkerContent, MarkerSidebar)
	}

	return &Layout{
		head:          head,
		beforeSidebar: beforeSidebar,
		beforeContent: beforeContent,
		tail:          tail,
	}, nil
}

// Render serializes doc into a full page. When escape is true, user text
// (title, link text, headings, paragraphs) is HTML-escaped.
func (l *Layout) Render(doc *Document, escape bool) string {
	esc := textEscaper(escape)

	sidebar := RenderSidebar(doc, escape)
	body := RenderBody(doc, escape)

	var b strings.Builder
	b.Grow(len(l.head) + len(l.beforeSidebar) + len(l.beforeContent) + len(l.tail) + len(sidebar) + len(body) + len(doc.Title))
	b.WriteString(l.head)
	b.WriteString(esc(doc.Title))
	b.WriteString(l.beforeSidebar)
	b.WriteString(sidebar)
	b.WriteString(l.beforeContent)
	b.WriteString(body)
	b.WriteString(l.tail)
	return b.String()
}

// RenderSidebar builds the sidebar container: an optional main-title heading
// followed by the links, one per line.
func RenderSidebar(doc *Document, escape bool) string {
	esc := textEscaper(escape)

	var b strings.Builder
	b.WriteString("<div class=\"sidebar\">\n")
	if doc.Title != "" {
		b.WriteString("    <h1>")
		b.WriteString(esc(doc.Title))
		b.WriteString("</h1>\n")
	}
	for i, link := range doc.Links {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(`<a href="#`)
		b.WriteString(link.Anchor())
		b.WriteString(`">`)
		b.WriteString(esc(link.Text))
		b.WriteString("</a>")
	}
	b.WriteString("\n</div>")
	return b.String()
}

// RenderBody concatenates the body fragments with no separator between them.
func RenderBody(doc *Document, escape bool) string {
	esc := textEscaper(escape)

	var b strings.Builder
	for _, n := range doc.Nodes {
		switch n.Kind {
		case NodeBlockOpen:
			b.WriteString(`<article class="post" id="`)
			b.WriteString(StepAnchor(n.Step))
			b.WriteString(`">`)
		case NodeHeading:
			b.WriteString("    <h2>" + esc(n.Text) + "</h2>")
		case NodeSubheading:
			b.WriteString("    <h4>" + esc(n.Text) + "</h4>")
		case NodeParagraph:
			b.WriteString("    <p>" + esc(n.Text) + "</p>")
		case NodeBlockClose:
			b.WriteString("</article>")
		}
	}
	return b.String()
}

func textEscaper(escape bool) func(string) string {
	if escape {
		return html.EscapeString
	}
	return func(s string) string { return s }
}
