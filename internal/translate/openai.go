package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

// OpenAITranslator translates text via the OpenAI chat completion API.
type OpenAITranslator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAITranslator creates a translator with a per-call deadline.
func NewOpenAITranslator(apiKey string, timeout time.Duration) (*OpenAITranslator, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	return &OpenAITranslator{
		client:  openai.NewClient(apiKey),
		model:   defaultModel,
		timeout: timeout,
	}, nil
}

// Translate converts text into the target language. Deadline expiry is
// reported as CodeTimeout; every other upstream failure as CodeFailed
// with the upstream message preserved.
func (t *OpenAITranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"Translate the user's message into %q. Respond with the translation only.", targetLang),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", &Error{Code: CodeTimeout, Err: err}
		}
		return "", &Error{Code: CodeFailed, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &Error{Code: CodeFailed, Err: errors.New("empty completion response")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
