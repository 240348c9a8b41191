package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	summaryModel   = "gpt-3.5-turbo"
	summaryTimeout = 60 * time.Second
	// resumes can be long; keep the prompt bounded
	maxSummaryInput = 8000
)

var ErrAIDisabled = errors.New("OpenAI API key not set")

// AIService produces recruiter-facing resume summaries.
type AIService struct {
	client  openai.Client
	enabled bool
}

func NewAIService(apiKey string) *AIService {
	if apiKey == "" {
		return &AIService{}
	}
	return &AIService{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		enabled: true,
	}
}

func (s *AIService) Enabled() bool { return s.enabled }

// SummarizeResume returns a 3-5 sentence summary of resume text.
func (s *AIService) SummarizeResume(ctx context.Context, text string) (string, error) {
	if !s.enabled {
		return "", ErrAIDisabled
	}

	text = truncateUTF8(text, maxSummaryInput)

	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	prompt := fmt.Sprintf("Summarize the following resume or document in 3-5 sentences for a recruiter.\n\n%s", text)
	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(summaryModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a helpful assistant."),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(256),
		Temperature: openai.Float(0.5),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "No summary.", nil
	}

	summary := strings.TrimSpace(completion.Choices[0].Message.Content)
	if summary == "" {
		return "No summary.", nil
	}
	return summary, nil
}

// truncateUTF8 caps s at max bytes without splitting a multi-byte rune.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
