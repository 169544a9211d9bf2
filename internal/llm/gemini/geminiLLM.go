package gemini

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/llm"
	"github.com/akolanti/lexgate/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var (
	logger       = logger_i.NewLogger("llm_gemini")
	geminiClient *llmClient
	once         sync.Once
)

// GetGeminiClient returns nil when no key is configured or the client fails to start.
func GetGeminiClient(ctx context.Context, apiKey string, modelName string) llm.Summariser {
	if apiKey == "" {
		logger.Info("No Gemini key configured, fallback summariser disabled")
		return nil
	}
	once.Do(func() {
		newGeminiClient(ctx, apiKey, modelName)
	})

	if geminiClient == nil {
		return nil
	}
	return geminiClient
}

func newGeminiClient(ctx context.Context, apiKey string, modelName string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		logger.Error("Error creating Gemini client", "error", err)
		return
	}
	geminiClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Gemini client created", "model", modelName)
}

func (c *llmClient) Summarise(ctx context.Context, documentName string, text string) (string, error) {
	log := logger.Trace(ctx)
	if len(text) > config.MaxSummariserInputChars {
		log.Debug("Truncating summariser input", "chars", len(text))
		text = text[:config.MaxSummariserInputChars]
	}

	temperature := config.ModelTemperature
	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: config.SummariserContext}},
		},
		Temperature: &temperature,
	}

	userPrompt := fmt.Sprintf("Document: %s\n\n%s", documentName, text)
	result, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(userPrompt), contentConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	summary := result.Text()
	if summary == "" {
		return "", errors.New("gemini returned an empty summary")
	}
	return summary, nil
}
