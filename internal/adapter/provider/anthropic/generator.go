// Package anthropic generates flashcards with the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPrompt = "You are an expert educator who creates high-quality flashcards for effective learning. " +
	"Always respond with properly formatted JSON."

// Config holds the client settings.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int64
	Timeout   time.Duration
	// BaseURL overrides the API endpoint. Empty means the SDK default.
	BaseURL string
}

// Generator implements the card generator on top of Claude.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Generator.
func New(cfg Config, log *slog.Logger) *Generator {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL), option.WithMaxRetries(0))
	}

	return &Generator{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       log.With("provider", "anthropic"),
	}
}

// GenerateCards sends the text to the model and returns the text of its reply.
func (g *Generator) GenerateCards(ctx context.Context, text string, maxCards int) (string, error) {
	start := time.Now()

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(text, maxCards))),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("anthropic api: status %d: %w", apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("anthropic api: %w", err)
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			reply.WriteString(block.Text)
		}
	}
	if reply.Len() == 0 {
		return "", fmt.Errorf("anthropic api: empty response")
	}

	g.log.DebugContext(ctx, "cards generated",
		slog.String("model", g.model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("took", time.Since(start)),
	)

	return reply.String(), nil
}

func buildPrompt(text string, maxCards int) string {
	return fmt.Sprintf(`Create flashcards from the following text.
For each important concept or fact, create a flashcard with a question on the front and the answer on the back.
Create at most %d flashcards.

Return ONLY a JSON array with this format:
[{"front": "...", "back": "...", "category": "..."}]

Rules:
- Categories should be one of: Concept, Definition, Process, Example, Fact
- Do not include any explanation or other text outside the JSON array

Text to create flashcards from:
%s`, maxCards, text)
}
