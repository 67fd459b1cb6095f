package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Feature is one named product capability of the project
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Litepaper is the central record: the validated project input plus the
// AI-generated narrative content. Immutable after creation.
type Litepaper struct {
	Id               uuid.UUID
	ProjectName      string
	TokenSymbol      string
	Description      string
	ProblemStatement string
	TargetMarket     string
	MarketSize       string
	TotalSupply      string // arbitrary-precision decimal, kept as string to avoid overflow
	InitialPrice     *float64
	VestingPeriod    *int // months
	TokenDistribution map[string]float64
	Features         []Feature
	LogoUrl          string
	OutputFormat     string
	ContentStyle     string
	DocumentLength   string
	IncludeCharts    string
	GeneratedContent *LitepaperContent
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DistributionCategories returns the distribution keys in canonical order.
// JSON objects lose insertion order on decode, so lexicographic order is the
// stable order shared by the chart, the Markdown breakdown and the HTML grid.
func (l *Litepaper) DistributionCategories() []string {
	keys := make([]string, 0, len(l.TokenDistribution))
	for k := range l.TokenDistribution {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
