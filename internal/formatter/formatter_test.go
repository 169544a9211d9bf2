package formatter

import (
	"reflect"
	"strings"
	"testing"
)

func TestFormat_Headings(t *testing.T) {
	blocks := Format("### Heading\n#### Sub heading")

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Kind != Heading || blocks[0].Text != "Heading" {
		t.Errorf("block 0 = %+v", blocks[0])
	}
	if blocks[1].Kind != SubHeading || blocks[1].Text != "Sub heading" {
		t.Errorf("block 1 = %+v", blocks[1])
	}
}

func TestFormat_HashesWithoutSpaceStayParagraph(t *testing.T) {
	blocks := Format("###Heading")
	if blocks[0].Kind != Paragraph {
		t.Errorf("expected paragraph, got %s", blocks[0].Kind)
	}
}

func TestFormat_Bold(t *testing.T) {
	blocks := Format("The **Indemnity** clause applies")

	want := []Span{
		{Kind: SpanText, Text: "The "},
		{Kind: SpanBold, Text: "Indemnity"},
		{Kind: SpanText, Text: " clause applies"},
	}
	if !reflect.DeepEqual(blocks[0].Spans, want) {
		t.Errorf("spans = %+v, want %+v", blocks[0].Spans, want)
	}
	if strings.Contains(RenderHTML(blocks), "**") {
		t.Error("asterisks should not survive rendering")
	}
}

func TestFormat_Links(t *testing.T) {
	blocks := Format("See https://example.com/x for details")

	spans := blocks[0].Spans
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %+v", spans)
	}
	if spans[1].Kind != SpanLink || spans[1].Text != "https://example.com/x" || spans[1].Href != "https://example.com/x" {
		t.Errorf("link span = %+v", spans[1])
	}
	html := RenderHTML(blocks)
	if !strings.Contains(html, `<a href="https://example.com/x"`) || !strings.Contains(html, ">https://example.com/x</a>") {
		t.Errorf("link not rendered: %s", html)
	}
}

func TestFormat_LinkTrailingPunctuationTrimmedFromHref(t *testing.T) {
	blocks := Format("(source: https://indiankanoon.org/doc/1).")
	var link Span
	for _, s := range blocks[0].Spans {
		if s.Kind == SpanLink {
			link = s
		}
	}
	if link.Href != "https://indiankanoon.org/doc/1" {
		t.Errorf("href = %q", link.Href)
	}
	if link.Text != "https://indiankanoon.org/doc/1)." {
		t.Errorf("text should keep the token verbatim, got %q", link.Text)
	}
}

func TestFormat_PlainTextIsUnchanged(t *testing.T) {
	inputs := []string{
		"This agreement is made between the parties.",
		"Line one\nLine two\n\nLine four",
		"",
		"trailing newline\n",
	}
	for _, in := range inputs {
		if got := PlainText(Format(in)); got != in {
			t.Errorf("PlainText(Format(%q)) = %q", in, got)
		}
	}
}

func TestFormat_Deterministic(t *testing.T) {
	in := "### Risks\n1. **Termination**: see https://a.b/c\nplain"
	if !reflect.DeepEqual(Format(in), Format(in)) {
		t.Error("Format should be deterministic")
	}
}

func TestRenderHTML_EscapesInput(t *testing.T) {
	html := RenderHTML(Format("<script>alert(1)</script>"))
	if strings.Contains(html, "<script>") {
		t.Errorf("html not escaped: %s", html)
	}
}

func TestSplitPoints(t *testing.T) {
	got := SplitPoints("1. First point 2. Second point • Third - Fourth")
	want := []string{"First point", "Second point", "Third", "Fourth"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitPoints = %q, want %q", got, want)
	}
}

func TestRenderMarkdown_SanitisesOutput(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\n- a\n- b\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "<li>a</li>") {
		t.Errorf("list missing: %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("script survived: %s", out)
	}
}
