package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-litepaper-be/internal/entity"
	"ai-litepaper-be/pkg/llm"
)

// Generator turns a validated litepaper record into the ten narrative
// sections with a single structured completion call. All-or-nothing: a
// response missing any section fails the whole operation, and no retry is
// attempted here.
type Generator struct {
	provider llm.LLMProvider
}

func NewGenerator(provider llm.LLMProvider) *Generator {
	return &Generator{
		provider: provider,
	}
}

// Generate issues one completion request and validates its completeness.
// The underlying model runs at temperature 0.7, so identical input can yield
// different prose; callers must not assume repeatability.
func (g *Generator) Generate(ctx context.Context, lp *entity.Litepaper) (*entity.LitepaperContent, error) {
	history := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(lp)},
	}

	response, err := g.provider.Chat(ctx, history,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(4000),
		llm.WithJSONOutput(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate litepaper content: %w", err)
	}

	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("failed to generate litepaper content: no JSON found in response")
	}

	var content entity.LitepaperContent
	if err := json.Unmarshal([]byte(jsonContent), &content); err != nil {
		return nil, fmt.Errorf("failed to generate litepaper content: %w", err)
	}

	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("synthesis incomplete: %w", err)
	}

	return &content, nil
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
