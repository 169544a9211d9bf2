package formatter

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown  = goldmark.New(goldmark.WithExtensions(extension.GFM))
	sanitizer = bluemonday.UGCPolicy().AddTargetBlankToFullyQualifiedLinks(true)
)

// RenderHTML writes the blocks as escaped HTML, one element per line.
func RenderHTML(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch b.Kind {
		case Heading:
			sb.WriteString("<h3>" + html.EscapeString(b.Text) + "</h3>\n")
		case SubHeading:
			sb.WriteString("<h4>" + html.EscapeString(b.Text) + "</h4>\n")
		default:
			sb.WriteString("<p>")
			for _, s := range b.Spans {
				writeSpan(&sb, s)
			}
			sb.WriteString("</p>\n")
		}
	}
	return sb.String()
}

func writeSpan(sb *strings.Builder, s Span) {
	switch s.Kind {
	case SpanBold:
		sb.WriteString("<strong>" + html.EscapeString(s.Text) + "</strong>")
	case SpanLink:
		fmt.Fprintf(sb, `<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
			html.EscapeString(s.Href), html.EscapeString(s.Text))
	default:
		sb.WriteString(html.EscapeString(s.Text))
	}
}

// RenderMarkdown is the richer mode: full CommonMark + GFM tables and lists.
func RenderMarkdown(text string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return SanitizeHTML(buf.String()), nil
}

// SanitizeHTML strips scripts, handlers and anything outside the user-content policy.
func SanitizeHTML(raw string) string {
	return sanitizer.Sanitize(raw)
}
