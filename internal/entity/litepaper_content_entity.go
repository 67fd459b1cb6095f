package entity

import "fmt"

// LitepaperContent holds the ten narrative sections produced by the content
// synthesizer. All fields are required; Validate enforces completeness so a
// half-filled completion response never reaches the renderers.
type LitepaperContent struct {
	ExecutiveSummary  string `json:"executiveSummary"`
	ProblemStatement  string `json:"problemStatement"`
	MarketAnalysis    string `json:"marketAnalysis"`
	Solution          string `json:"solution"`
	ProductFeatures   string `json:"productFeatures"`
	TokenDistribution string `json:"tokenDistribution"`
	TokenomicsUtility string `json:"tokenomicsUtility"`
	EmissionSchedule  string `json:"emissionSchedule"`
	TokenFlow         string `json:"tokenFlow"`
	ValueGrowth       string `json:"valueGrowth"`
}

// ContentSection pairs a section with its presentation metadata.
type ContentSection struct {
	Key    string // JSON key, also used to name missing sections in errors
	Title  string // document heading
	Anchor string // in-page anchor id for HTML
	Body   string
}

// Sections returns the ten sections in canonical document order.
func (c *LitepaperContent) Sections() []ContentSection {
	return []ContentSection{
		{Key: "executiveSummary", Title: "Executive Summary", Anchor: "executive-summary", Body: c.ExecutiveSummary},
		{Key: "problemStatement", Title: "Problem Statement", Anchor: "problem-statement", Body: c.ProblemStatement},
		{Key: "marketAnalysis", Title: "Market Analysis", Anchor: "market-analysis", Body: c.MarketAnalysis},
		{Key: "solution", Title: "Proposed Solution", Anchor: "solution", Body: c.Solution},
		{Key: "productFeatures", Title: "Product Features", Anchor: "features", Body: c.ProductFeatures},
		{Key: "tokenDistribution", Title: "Token Distribution", Anchor: "distribution", Body: c.TokenDistribution},
		{Key: "tokenomicsUtility", Title: "Tokenomics Utility", Anchor: "utility", Body: c.TokenomicsUtility},
		{Key: "emissionSchedule", Title: "Emission Schedule", Anchor: "emission", Body: c.EmissionSchedule},
		{Key: "tokenFlow", Title: "Token Flow", Anchor: "flow", Body: c.TokenFlow},
		{Key: "valueGrowth", Title: "Value Growth Projections", Anchor: "growth", Body: c.ValueGrowth},
	}
}

// Validate checks that every section is present and non-empty.
func (c *LitepaperContent) Validate() error {
	for _, s := range c.Sections() {
		if s.Body == "" {
			return fmt.Errorf("missing required section: %s", s.Key)
		}
	}
	return nil
}
