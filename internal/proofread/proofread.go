// Package proofread runs the quick local checks behind the legal lens editor.
package proofread

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

type IssueType string

const (
	Grammar     IssueType = "grammar"
	Punctuation IssueType = "punctuation"
	Terminology IssueType = "terminology"
	Citation    IssueType = "citation"
)

// Suggestion points at Text starting at byte offset Index.
type Suggestion struct {
	Text        string    `json:"text"`
	Replacement string    `json:"replacement"`
	Type        IssueType `json:"type"`
	Index       int       `json:"index"`
}

type Issues struct {
	Grammar     int `json:"grammar"`
	Punctuation int `json:"punctuation"`
	Terminology int `json:"terminology"`
	Citation    int `json:"citation"`
}

type Report struct {
	Suggestions []Suggestion `json:"suggestions"`
	Issues      Issues       `json:"issues"`
}

type term struct {
	re          *regexp.Regexp
	replacement string
}

var (
	sentenceEndRe      = regexp.MustCompile(`[.!?]+`)
	wordRe             = regexp.MustCompile(`\S+`)
	spaceBeforePunctRe = regexp.MustCompile(`\s+[,.!?]`)

	legalTerms = []term{
		{regexp.MustCompile(`(?i)due to`), "because of"},
		{regexp.MustCompile(`(?i)prior to`), "before"},
		{regexp.MustCompile(`(?i)subsequent to`), "after"},
		{regexp.MustCompile(`(?i)in order to`), "to"},
	}

	highlightColours = map[IssueType]string{
		Grammar:     "blue",
		Punctuation: "green",
		Terminology: "orange",
		Citation:    "red",
	}
)

func Analyze(text string) Report {
	report := Report{Suggestions: make([]Suggestion, 0)}
	add := func(s Suggestion) {
		report.Suggestions = append(report.Suggestions, s)
		switch s.Type {
		case Grammar:
			report.Issues.Grammar++
		case Punctuation:
			report.Issues.Punctuation++
		case Terminology:
			report.Issues.Terminology++
		case Citation:
			report.Issues.Citation++
		}
	}

	for _, span := range sentenceSpans(text) {
		sentence := text[span[0]:span[1]]
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}

		words := wordRe.FindAllStringIndex(sentence, -1)
		for i := 1; i < len(words); i++ {
			prev := sentence[words[i-1][0]:words[i-1][1]]
			word := sentence[words[i][0]:words[i][1]]
			if word != prev {
				continue
			}
			start, end := span[0]+words[i-1][0], span[0]+words[i][1]
			add(Suggestion{Text: text[start:end], Replacement: word, Type: Grammar, Index: start})
		}

		first, size := utf8.DecodeRuneInString(trimmed)
		if upper := unicode.ToUpper(first); upper != first {
			offset := span[0] + strings.Index(sentence, trimmed)
			add(Suggestion{Text: trimmed, Replacement: string(upper) + trimmed[size:], Type: Grammar, Index: offset})
		}
	}

	for _, loc := range spaceBeforePunctRe.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		add(Suggestion{Text: match, Replacement: strings.TrimSpace(match), Type: Punctuation, Index: loc[0]})
	}

	for _, t := range legalTerms {
		for _, loc := range t.re.FindAllStringIndex(text, -1) {
			add(Suggestion{Text: text[loc[0]:loc[1]], Replacement: t.replacement, Type: Terminology, Index: loc[0]})
		}
	}
	return report
}

// sentenceSpans returns the byte ranges between sentence terminators.
func sentenceSpans(text string) [][2]int {
	var spans [][2]int
	start := 0
	for _, loc := range sentenceEndRe.FindAllStringIndex(text, -1) {
		spans = append(spans, [2]int{start, loc[0]})
		start = loc[1]
	}
	return append(spans, [2]int{start, len(text)})
}

// Highlight escapes text and wraps each suggestion in a coloured span. The
// current suggestion is filled, the rest underlined. Overlapping suggestions
// keep the earliest one.
func Highlight(text string, suggestions []Suggestion, current int) string {
	if text == "" {
		return ""
	}

	order := make([]int, 0, len(suggestions))
	for i, s := range suggestions {
		if s.Index >= 0 && s.Index+len(s.Text) <= len(text) && text[s.Index:s.Index+len(s.Text)] == s.Text {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return suggestions[order[a]].Index < suggestions[order[b]].Index
	})

	var sb strings.Builder
	pos := 0
	for _, i := range order {
		s := suggestions[i]
		if s.Index < pos {
			continue
		}
		sb.WriteString(html.EscapeString(text[pos:s.Index]))

		colour := highlightColours[s.Type]
		if colour == "" {
			colour = "red"
		}
		style := fmt.Sprintf("border-bottom: 2px solid %s;", colour)
		if i == current {
			style = fmt.Sprintf("background-color: %s; color: white; padding: 2px; border-radius: 2px;", colour)
		}
		fmt.Fprintf(&sb, `<span style="%s" data-suggestion-index="%d">%s</span>`, style, i, html.EscapeString(s.Text))
		pos = s.Index + len(s.Text)
	}
	sb.WriteString(html.EscapeString(text[pos:]))
	return sb.String()
}
