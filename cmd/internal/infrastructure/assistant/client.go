package assistant

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/patrickmn/go-cache"
	"github.com/sashabaranov/go-openai"
)

// MinSummarizeLength is the shortest input worth sending to the model;
// anything shorter is echoed back unchanged.
const MinSummarizeLength = 100

const summarizeSystemPrompt = `You are an expert note-taking assistant for students. Your job is to create clear,
comprehensive summaries of lecture notes and study materials.

Guidelines:
- Create well-organized bullet points highlighting key concepts
- Preserve important definitions, formulas, and technical terms
- Maintain the logical flow of information
- Include relevant examples if present in the original notes
- Keep the summary concise but informative (aim for 30-40% of original length)
- Use clear, academic language appropriate for students`

const askSystemPrompt = `You are a helpful study assistant. Answer the student's question using only
the provided note content. If the note does not contain the answer, say so.`

type Client interface {
	Summarize(ctx context.Context, text string) (string, error)
	Ask(ctx context.Context, noteBody, question string) (string, error)
}

type OpenAIClient struct {
	client  *openai.Client
	model   string
	summary *cache.Cache
}

func NewOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
		log.Warnf("OPENAI_MODEL not set, defaulting to %s", model)
	}

	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		summary: cache.New(time.Hour, 10*time.Minute),
	}, nil
}

// Summarize condenses note text. Results are cached by content hash: a
// note body that has not changed never pays for a second completion.
func (o *OpenAIClient) Summarize(ctx context.Context, text string) (string, error) {
	if len(text) < MinSummarizeLength {
		return text, nil
	}

	key := contentKey(text)
	if cached, ok := o.summary.Get(key); ok {
		return cached.(string), nil
	}

	answer, err := o.complete(ctx, summarizeSystemPrompt,
		fmt.Sprintf("Please summarize these notes:\n\n%s", text))
	if err != nil {
		return "", err
	}

	o.summary.SetDefault(key, answer)
	return answer, nil
}

func (o *OpenAIClient) Ask(ctx context.Context, noteBody, question string) (string, error) {
	return o.complete(ctx, askSystemPrompt,
		fmt.Sprintf("Note content:\n\n%s\n\nQuestion: %s", noteBody, question))
}

func (o *OpenAIClient) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.3,
		MaxTokens:   1000,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		log.Errorf("chat completion failed: %v", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func contentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
