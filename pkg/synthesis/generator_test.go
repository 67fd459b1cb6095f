package synthesis

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"ai-litepaper-be/internal/entity"
	"ai-litepaper-be/pkg/llm"
)

type fakeProvider struct {
	response string
	err      error
	lastOpts llm.Options
	lastMsgs []llm.Message
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.lastMsgs = history
	for _, opt := range options {
		opt(&p.lastOpts)
	}
	return p.response, p.err
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func completeContent() string {
	payload, _ := json.Marshal(map[string]string{
		"executiveSummary":  "s1",
		"problemStatement":  "s2",
		"marketAnalysis":    "s3",
		"solution":          "s4",
		"productFeatures":   "s5",
		"tokenDistribution": "s6",
		"tokenomicsUtility": "s7",
		"emissionSchedule":  "s8",
		"tokenFlow":         "s9",
		"valueGrowth":       "s10",
	})
	return string(payload)
}

func testLitepaper() *entity.Litepaper {
	return &entity.Litepaper{
		ProjectName:      "Aurora",
		TokenSymbol:      "AUR",
		Description:      "A decentralized compute marketplace",
		ProblemStatement: "GPU capacity is scarce",
		TotalSupply:      "1000000000",
		TokenDistribution: map[string]float64{
			"team":       20,
			"publicSale": 80,
		},
		Features: []entity.Feature{
			{Name: "Compute Market", Description: "Peer-to-peer GPU rental"},
		},
	}
}

func TestGenerateParsesCompleteContent(t *testing.T) {
	provider := &fakeProvider{response: completeContent()}
	g := NewGenerator(provider)

	content, err := g.Generate(context.Background(), testLitepaper())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if content.ExecutiveSummary != "s1" || content.ValueGrowth != "s10" {
		t.Errorf("content not mapped: %+v", content)
	}
}

func TestGenerateOptions(t *testing.T) {
	provider := &fakeProvider{response: completeContent()}
	g := NewGenerator(provider)

	if _, err := g.Generate(context.Background(), testLitepaper()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if provider.lastOpts.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", provider.lastOpts.Temperature)
	}
	if provider.lastOpts.MaxTokens != 4000 {
		t.Errorf("max tokens = %v, want 4000", provider.lastOpts.MaxTokens)
	}
	if !provider.lastOpts.JSONOutput {
		t.Error("JSON output not requested")
	}
}

func TestGeneratePromptMentionsProject(t *testing.T) {
	provider := &fakeProvider{response: completeContent()}
	g := NewGenerator(provider)

	if _, err := g.Generate(context.Background(), testLitepaper()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	var userPrompt string
	for _, m := range provider.lastMsgs {
		if m.Role == "user" {
			userPrompt = m.Content
		}
	}
	for _, want := range []string{"Aurora", "AUR", "Compute Market"} {
		if !strings.Contains(userPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateStripsSurroundingProse(t *testing.T) {
	provider := &fakeProvider{response: "Sure, here is the content:\n" + completeContent() + "\nLet me know."}
	g := NewGenerator(provider)

	content, err := g.Generate(context.Background(), testLitepaper())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if content.TokenFlow != "s9" {
		t.Errorf("content not parsed from wrapped response")
	}
}

func TestGenerateRejectsIncompleteContent(t *testing.T) {
	var partial map[string]string
	_ = json.Unmarshal([]byte(completeContent()), &partial)
	delete(partial, "emissionSchedule")
	payload, _ := json.Marshal(partial)

	provider := &fakeProvider{response: string(payload)}
	g := NewGenerator(provider)

	_, err := g.Generate(context.Background(), testLitepaper())
	if err == nil {
		t.Fatal("expected error for missing section")
	}
	if !strings.Contains(err.Error(), "emissionSchedule") {
		t.Errorf("error should name the missing section, got: %v", err)
	}
}

func TestGenerateRejectsNonJSONResponse(t *testing.T) {
	provider := &fakeProvider{response: "I cannot help with that."}
	g := NewGenerator(provider)

	if _, err := g.Generate(context.Background(), testLitepaper()); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}
