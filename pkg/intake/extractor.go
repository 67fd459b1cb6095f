package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-litepaper-be/pkg/llm"
)

const contextWindow = 5 // conversation turns kept for model context

// ExtractedFeature mirrors one feature entry in the extraction payload.
type ExtractedFeature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ExtractedProject is the structured record the model infers from the
// conversation. Fields the user never mentioned arrive as model-chosen
// defaults per the extraction prompt.
type ExtractedProject struct {
	ProjectName       string             `json:"projectName"`
	TokenSymbol       string             `json:"tokenSymbol"`
	Description       string             `json:"description"`
	ProblemStatement  string             `json:"problemStatement"`
	TargetMarket      string             `json:"targetMarket"`
	MarketSize        string             `json:"marketSize"`
	TotalSupply       string             `json:"totalSupply"`
	Features          []ExtractedFeature `json:"features"`
	TokenDistribution map[string]float64 `json:"tokenDistribution"`
	OutputFormat      string             `json:"outputFormat"`
}

// ExtractionResult is the extraction turn outcome: conversational text plus,
// when the model had enough to work with, the inferred project.
type ExtractionResult struct {
	Response string
	Project  *ExtractedProject
}

// Extracted reports whether the result meets the success criterion: a
// non-empty project name and at least one well-formed feature.
func (r *ExtractionResult) Extracted() bool {
	if r.Project == nil || r.Project.ProjectName == "" {
		return false
	}
	for _, f := range r.Project.Features {
		if f.Name != "" && f.Description != "" {
			return true
		}
	}
	return false
}

// Extractor runs the two completion flavors of the intake state machine:
// free-text gathering guidance and structured project extraction.
type Extractor struct {
	provider llm.LLMProvider
}

func NewExtractor(provider llm.LLMProvider) *Extractor {
	return &Extractor{
		provider: provider,
	}
}

// Gather produces a clarifying, requirements-gathering reply with no
// extraction attempt.
func (e *Extractor) Gather(ctx context.Context, message string, history []llm.Message) (string, error) {
	var b strings.Builder

	b.WriteString("You are a helpful AI assistant specializing in cryptocurrency litepapers and tokenomics.\n\n")
	b.WriteString("Conversation history:\n")
	b.WriteString(conversationContext(history))
	fmt.Fprintf(&b, "\nCurrent message: %s\n\n", message)
	b.WriteString("Provide a helpful, engaging response that:\n")
	b.WriteString("1. Acknowledges their message\n")
	b.WriteString("2. Asks relevant follow-up questions about their crypto project\n")
	b.WriteString("3. Guides them toward providing enough detail for litepaper generation\n")
	b.WriteString("4. Mentions that you can generate a litepaper once you have sufficient project details\n\n")
	b.WriteString("Keep the tone professional but friendly. Focus on gathering information about:\n")
	b.WriteString("- Project purpose and problem it solves\n")
	b.WriteString("- Target market and use cases\n")
	b.WriteString("- Token utility and distribution\n")
	b.WriteString("- Key features or innovations\n")

	messages := []llm.Message{
		{Role: "system", Content: "You are a cryptocurrency litepaper specialist assistant."},
		{Role: "user", Content: b.String()},
	}

	reply, err := e.provider.Chat(ctx, messages,
		llm.WithTemperature(0.8),
		llm.WithMaxTokens(300),
	)
	if err != nil {
		return "", fmt.Errorf("gathering response failed: %w", err)
	}
	if reply == "" {
		reply = "Tell me more about your cryptocurrency project and I'll help you create a professional litepaper!"
	}
	return reply, nil
}

// Extract asks the model to infer a complete project record from the
// conversation, with reasonable defaults for unspecified fields.
func (e *Extractor) Extract(ctx context.Context, message string, history []llm.Message) (*ExtractionResult, error) {
	var b strings.Builder

	b.WriteString("Based on this conversation about a cryptocurrency project, extract the key project details and generate a professional litepaper.\n\n")
	b.WriteString("Conversation:\n")
	b.WriteString(conversationContext(history))
	fmt.Fprintf(&b, "\nCurrent message: %s\n\n", message)
	b.WriteString("Extract and infer the following details (use reasonable defaults for missing information):\n")
	b.WriteString("1. Project name\n")
	b.WriteString("2. Token symbol (3-4 characters)\n")
	b.WriteString("3. Project description\n")
	b.WriteString("4. Problem statement\n")
	b.WriteString("5. Target market (defi, nft, infrastructure, payments, privacy, other)\n")
	b.WriteString("6. Market size estimate\n")
	b.WriteString("7. Total supply (as string)\n")
	b.WriteString("8. Key features (at least 2-3)\n")
	b.WriteString("9. Token distribution percentages (must sum to 100)\n\n")
	b.WriteString("Generate a comprehensive response that acknowledges the project details and creates the litepaper. Return as JSON with this structure:\n")
	b.WriteString(`{
  "response": "Conversational response about creating the litepaper",
  "projectData": {
    "projectName": "string",
    "tokenSymbol": "string",
    "description": "string (min 10 chars)",
    "problemStatement": "string (min 10 chars)",
    "targetMarket": "defi|nft|infrastructure|payments|privacy|other",
    "marketSize": "string",
    "totalSupply": "string",
    "features": [{"name": "string", "description": "string"}],
    "tokenDistribution": {"category": number},
    "outputFormat": "pdf"
  }
}
`)
	b.WriteString("\nMake the response enthusiastic and professional. If insufficient information is provided, ask specific follow-up questions instead of generating the litepaper.\n")

	messages := []llm.Message{
		{Role: "system", Content: "You are a helpful cryptocurrency litepaper assistant that extracts project details and generates professional documentation."},
		{Role: "user", Content: b.String()},
	}

	response, err := e.provider.Chat(ctx, messages,
		llm.WithTemperature(0.7),
		llm.WithJSONOutput(),
	)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("extraction failed: no JSON found in response")
	}

	var parsed struct {
		Response    string            `json:"response"`
		ProjectData *ExtractedProject `json:"projectData"`
	}
	if err := json.Unmarshal([]byte(jsonContent), &parsed); err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	result := &ExtractionResult{
		Response: parsed.Response,
		Project:  parsed.ProjectData,
	}

	if result.Response == "" {
		if result.Extracted() {
			result.Response = fmt.Sprintf("Great! I've created a professional litepaper for %s. You can download it in PDF, HTML, or Markdown format using the buttons below.", result.Project.ProjectName)
		} else {
			result.Response = "I need more details about your project to create a comprehensive litepaper. Could you tell me more about your token's purpose, key features, and tokenomics?"
		}
	}

	return result, nil
}

// conversationContext flattens the last few turns into "role: content" lines.
func conversationContext(history []llm.Message) string {
	if len(history) > contextWindow {
		history = history[len(history)-contextWindow:]
	}

	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}
	return strings.Join(lines, "\n")
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
