package assistant_test

import (
	"context"

	"github.com/akolanti/lexgate/internal/upstream"
)

type MockLegalAPI struct {
	OnSubmit   func(ctx context.Context, name string, sub upstream.Submission) (*upstream.Result, error)
	OnConverse func(ctx context.Context, name string, payload map[string]string) (*upstream.Result, error)
}

func (m *MockLegalAPI) Submit(ctx context.Context, name string, sub upstream.Submission) (*upstream.Result, error) {
	if m.OnSubmit != nil {
		return m.OnSubmit(ctx, name, sub)
	}
	return &upstream.Result{Text: "mocked reply", Found: true}, nil
}

func (m *MockLegalAPI) Converse(ctx context.Context, name string, payload map[string]string) (*upstream.Result, error) {
	if m.OnConverse != nil {
		return m.OnConverse(ctx, name, payload)
	}
	return &upstream.Result{Text: "mocked reply", Found: true}, nil
}

type MockSummariser struct {
	OnSummarise func(ctx context.Context, name string, text string) (string, error)
}

func (m *MockSummariser) Summarise(ctx context.Context, name string, text string) (string, error) {
	if m.OnSummarise != nil {
		return m.OnSummarise(ctx, name, text)
	}
	return "mocked summary", nil
}
