package render

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markup converts editor markup to an HTML fragment.
type Markup interface {
	Convert(raw string) string
}

// MarkdownConverter renders Markdown with the common extensions.
// External links open in a new tab.
type MarkdownConverter struct{}

// Convert renders raw as HTML. Empty input gives an empty fragment.
func (MarkdownConverter) Convert(raw string) string {
	if raw == "" {
		return ""
	}
	// parsers keep state and cannot be reused
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return string(markdown.ToHTML([]byte(raw), p, r))
}
