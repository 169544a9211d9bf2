// Package formatter turns the loosely structured text returned by the legal
// API into display blocks. Each line is classified on its own; there is no
// multi-line parsing.
package formatter

import (
	"regexp"
	"strings"
)

type BlockKind string

const (
	Heading    BlockKind = "heading"
	SubHeading BlockKind = "subheading"
	Paragraph  BlockKind = "paragraph"
)

type SpanKind string

const (
	SpanText SpanKind = "text"
	SpanBold SpanKind = "bold"
	SpanLink SpanKind = "link"
)

type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
	Href string   `json:"href,omitempty"`
}

type Block struct {
	Kind  BlockKind `json:"kind"`
	Text  string    `json:"text,omitempty"`
	Spans []Span    `json:"spans,omitempty"`
}

var (
	headingRe    = regexp.MustCompile(`^###\s`)
	subHeadingRe = regexp.MustCompile(`^####\s`)
	linkRe       = regexp.MustCompile(`https?://\S+`)
	boldRe       = regexp.MustCompile(`\*\*.*?\*\*`)
	hrefTrailRe  = regexp.MustCompile(`[.,)]+$`)
	pointsRe     = regexp.MustCompile(`(?:\d+\.\s+|•\s+|-\s+|\*\s+)`)
)

// Format splits text on newlines and classifies every line.
func Format(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, formatLine(strings.TrimSuffix(line, "\r")))
	}
	return blocks
}

func formatLine(line string) Block {
	switch {
	case headingRe.MatchString(line):
		return Block{Kind: Heading, Text: headingRe.ReplaceAllString(line, "")}
	case subHeadingRe.MatchString(line):
		return Block{Kind: SubHeading, Text: subHeadingRe.ReplaceAllString(line, "")}
	default:
		return Block{Kind: Paragraph, Spans: paragraphSpans(line)}
	}
}

func paragraphSpans(line string) []Span {
	var spans []Span
	last := 0
	for _, loc := range linkRe.FindAllStringIndex(line, -1) {
		spans = append(spans, boldSpans(line[last:loc[0]])...)
		url := line[loc[0]:loc[1]]
		spans = append(spans, Span{Kind: SpanLink, Text: url, Href: hrefTrailRe.ReplaceAllString(url, "")})
		last = loc[1]
	}
	return append(spans, boldSpans(line[last:])...)
}

func boldSpans(part string) []Span {
	var spans []Span
	last := 0
	for _, loc := range boldRe.FindAllStringIndex(part, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Kind: SpanText, Text: part[last:loc[0]]})
		}
		spans = append(spans, Span{Kind: SpanBold, Text: part[loc[0]+2 : loc[1]-2]})
		last = loc[1]
	}
	if last < len(part) {
		spans = append(spans, Span{Kind: SpanText, Text: part[last:]})
	}
	return spans
}

// PlainText drops the markers and joins the blocks back into lines.
func PlainText(blocks []Block) string {
	lines := make([]string, len(blocks))
	for i, b := range blocks {
		if b.Kind != Paragraph {
			lines[i] = b.Text
			continue
		}
		var sb strings.Builder
		for _, s := range b.Spans {
			sb.WriteString(s.Text)
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// SplitPoints breaks a list-shaped answer ("1. ", "• ", "- ", "* ") into its items.
func SplitPoints(text string) []string {
	var points []string
	for _, p := range pointsRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			points = append(points, p)
		}
	}
	return points
}
