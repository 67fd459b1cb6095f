package synthesis

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-litepaper-be/internal/entity"
)

const systemPrompt = "You are an expert cryptocurrency whitepaper writer. Generate comprehensive, professional content for litepapers. Always respond with valid JSON."

// buildPrompt embeds every record field into one completion prompt and pins
// the exact JSON keys the response must carry.
func buildPrompt(lp *entity.Litepaper) string {
	distributionJSON, _ := json.Marshal(lp.TokenDistribution)
	featuresJSON, _ := json.Marshal(featurePayload(lp.Features))

	var b strings.Builder

	b.WriteString("You are an expert cryptocurrency whitepaper writer. Generate comprehensive content for a professional litepaper based on the following project details:\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", lp.ProjectName)
	fmt.Fprintf(&b, "Token Symbol: %s\n", lp.TokenSymbol)
	fmt.Fprintf(&b, "Description: %s\n", lp.Description)
	fmt.Fprintf(&b, "Problem Statement: %s\n", lp.ProblemStatement)
	fmt.Fprintf(&b, "Target Market: %s\n", orNotSpecified(lp.TargetMarket))
	fmt.Fprintf(&b, "Market Size: %s\n", orNotSpecified(lp.MarketSize))
	fmt.Fprintf(&b, "Total Supply: %s\n", lp.TotalSupply)

	if lp.InitialPrice != nil {
		fmt.Fprintf(&b, "Initial Price: $%g\n", *lp.InitialPrice)
	} else {
		b.WriteString("Initial Price: Not specified\n")
	}
	if lp.VestingPeriod != nil {
		fmt.Fprintf(&b, "Vesting Period: %d months\n", *lp.VestingPeriod)
	} else {
		b.WriteString("Vesting Period: Not specified\n")
	}

	fmt.Fprintf(&b, "Token Distribution: %s\n", distributionJSON)
	fmt.Fprintf(&b, "Features: %s\n", featuresJSON)
	fmt.Fprintf(&b, "Content Style: %s\n", lp.ContentStyle)
	fmt.Fprintf(&b, "Document Length: %s\n\n", lp.DocumentLength)

	b.WriteString("Generate professional litepaper content with the following sections. Return the response as a JSON object with these exact keys:\n\n")
	b.WriteString("1. executiveSummary - A compelling 2-3 paragraph executive summary\n")
	b.WriteString("2. problemStatement - Detailed analysis of the problem being solved (3-4 paragraphs)\n")
	b.WriteString("3. marketAnalysis - Market opportunity and growth potential analysis (3-4 paragraphs)\n")
	b.WriteString("4. solution - Detailed description of the proposed solution (4-5 paragraphs)\n")
	b.WriteString("5. productFeatures - Comprehensive overview of main product features (4-5 paragraphs)\n")
	b.WriteString("6. tokenDistribution - Analysis of token distribution strategy (3-4 paragraphs)\n")
	b.WriteString("7. tokenomicsUtility - Detailed explanation of token utility and mechanics (4-5 paragraphs)\n")
	b.WriteString("8. emissionSchedule - Token emission schedule and vesting details (2-3 paragraphs)\n")
	b.WriteString("9. tokenFlow - Token flow and ecosystem mechanics (3-4 paragraphs)\n")
	b.WriteString("10. valueGrowth - Simulated token value growth analysis and projections (3-4 paragraphs)\n\n")

	fmt.Fprintf(&b, "Make the content professional, investor-grade, and specific to the cryptocurrency industry. Use proper technical terminology and ensure all sections flow logically. Focus on %s tone throughout.\n", lp.ContentStyle)

	return b.String()
}

type featureJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func featurePayload(features []entity.Feature) []featureJSON {
	out := make([]featureJSON, len(features))
	for i, f := range features {
		out[i] = featureJSON{Name: f.Name, Description: f.Description}
	}
	return out
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
