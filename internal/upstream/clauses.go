package upstream

import (
	"regexp"
	"strings"
)

var clauseHeadingRe = regexp.MustCompile(`\d+\.\s+\*\*[^*]+\*\*:`)

// SplitClauses cuts a recommendation on its numbered bold headings
// ("1. **Term**:"). Without headings it falls back to blank lines.
func SplitClauses(text string) []string {
	if clauseHeadingRe.MatchString(text) {
		if clauses := nonEmpty(clauseHeadingRe.Split(text, -1), true); len(clauses) > 0 {
			return clauses
		}
	}
	return nonEmpty(strings.Split(text, "\n\n"), false)
}

func nonEmpty(parts []string, trim bool) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if trim {
			p = strings.TrimSpace(p)
		}
		out = append(out, p)
	}
	return out
}
