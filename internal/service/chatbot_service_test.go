package service

import (
	"context"
	"errors"
	"testing"

	"ai-litepaper-be/internal/dto"
	"ai-litepaper-be/internal/repository/memory"
	"ai-litepaper-be/pkg/document"
	"ai-litepaper-be/pkg/intake"
	"ai-litepaper-be/pkg/llm"
	"ai-litepaper-be/pkg/synthesis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extractionJSON = `{
	"response": "Building your litepaper now!",
	"projectData": {
		"projectName": "Aurora",
		"tokenSymbol": "AUR",
		"description": "Decentralized compute marketplace",
		"problemStatement": "Centralized GPU supply",
		"targetMarket": "infrastructure",
		"totalSupply": "1000000000",
		"features": [{"name": "Compute Market", "description": "GPU rental"}],
		"tokenDistribution": {"team": 20, "publicSale": 80},
		"outputFormat": "pdf"
	}
}`

func newChatService(provider llm.LLMProvider) IChatbotService {
	litepaperSvc := NewLitepaperService(
		memory.NewLitepaperRepository(),
		synthesis.NewGenerator(provider),
		document.NewRenderer(&stubEngine{output: []byte("%PDF-fake")}),
		&recordingPublisher{},
		nopLogger{},
	)
	return NewChatbotService(
		intake.NewKeywordPolicy(),
		intake.NewExtractor(provider),
		litepaperSvc,
		nopLogger{},
	)
}

func TestChatGatheringTurn(t *testing.T) {
	provider := &queueProvider{responses: []string{"What problem does your token solve?"}}
	svc := newChatService(provider)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message: "I have an idea for a token",
	})
	require.NoError(t, err)

	assert.Equal(t, "What problem does your token solve?", res.Response)
	assert.Nil(t, res.Litepaper)
	assert.Equal(t, 1, provider.calls, "gathering turn makes exactly one completion call")
}

func TestChatExtractionProducesLitepaper(t *testing.T) {
	// First call answers the extraction prompt, second the synthesis prompt.
	provider := &queueProvider{responses: []string{extractionJSON, synthesisJSON()}}
	svc := newChatService(provider)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message: "generate my litepaper",
	})
	require.NoError(t, err)

	assert.Equal(t, "Building your litepaper now!", res.Response)
	require.NotNil(t, res.Litepaper)
	assert.Equal(t, "Aurora", res.Litepaper.ProjectName)
	require.NotNil(t, res.Litepaper.Documents)
	assert.Contains(t, res.Litepaper.Documents.Markdown, "# Aurora Litepaper")
	require.NotNil(t, res.Litepaper.Documents.Pdf)
}

func TestChatHistoryThresholdTriggersExtraction(t *testing.T) {
	provider := &queueProvider{responses: []string{extractionJSON, synthesisJSON()}}
	svc := newChatService(provider)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message: "the supply is one billion",
		ConversationHistory: []dto.ChatMessageDTO{
			{Role: "user", Content: "I want a token for GPU compute"},
			{Role: "assistant", Content: "Tell me more about the market"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Litepaper, "two prior turns should trigger extraction")
}

func TestChatInsufficientExtraction(t *testing.T) {
	provider := &queueProvider{responses: []string{`{"response": "Could you share the token distribution?", "projectData": null}`}}
	svc := newChatService(provider)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message: "generate it",
	})
	require.NoError(t, err)

	assert.Equal(t, "Could you share the token distribution?", res.Response)
	assert.Nil(t, res.Litepaper)
	assert.Equal(t, 1, provider.calls, "no synthesis call without a complete project")
}

func TestChatProviderFailure(t *testing.T) {
	provider := &queueProvider{responses: []string{""}, errs: []error{errors.New("model unavailable")}}
	svc := newChatService(provider)

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hello there"})
	require.Error(t, err)
}
