package llm

import "context"

// Summariser produces a formatted summary of a document's plain text.
type Summariser interface {
	Summarise(ctx context.Context, documentName string, text string) (string, error)
}
