package entity

import (
	"strings"
	"testing"
)

func completeContent() *LitepaperContent {
	return &LitepaperContent{
		ExecutiveSummary:  "s1",
		ProblemStatement:  "s2",
		MarketAnalysis:    "s3",
		Solution:          "s4",
		ProductFeatures:   "s5",
		TokenDistribution: "s6",
		TokenomicsUtility: "s7",
		EmissionSchedule:  "s8",
		TokenFlow:         "s9",
		ValueGrowth:       "s10",
	}
}

func TestSectionsCanonicalOrder(t *testing.T) {
	sections := completeContent().Sections()

	if len(sections) != 10 {
		t.Fatalf("expected 10 sections, got %d", len(sections))
	}

	expected := []struct {
		key    string
		title  string
		anchor string
	}{
		{"executiveSummary", "Executive Summary", "executive-summary"},
		{"problemStatement", "Problem Statement", "problem-statement"},
		{"marketAnalysis", "Market Analysis", "market-analysis"},
		{"solution", "Proposed Solution", "solution"},
		{"productFeatures", "Product Features", "features"},
		{"tokenDistribution", "Token Distribution", "distribution"},
		{"tokenomicsUtility", "Tokenomics Utility", "utility"},
		{"emissionSchedule", "Emission Schedule", "emission"},
		{"tokenFlow", "Token Flow", "flow"},
		{"valueGrowth", "Value Growth Projections", "growth"},
	}

	for i, want := range expected {
		got := sections[i]
		if got.Key != want.key || got.Title != want.title || got.Anchor != want.anchor {
			t.Errorf("section %d = {%s %s %s}, want {%s %s %s}",
				i, got.Key, got.Title, got.Anchor, want.key, want.title, want.anchor)
		}
	}
}

func TestContentValidate(t *testing.T) {
	if err := completeContent().Validate(); err != nil {
		t.Fatalf("complete content should validate, got %v", err)
	}

	partial := completeContent()
	partial.EmissionSchedule = ""
	err := partial.Validate()
	if err == nil {
		t.Fatal("expected error for missing section")
	}
	if !strings.Contains(err.Error(), "emissionSchedule") {
		t.Errorf("error should name the missing section, got %v", err)
	}
}

func TestDistributionCategoriesSorted(t *testing.T) {
	lp := &Litepaper{
		TokenDistribution: map[string]float64{
			"team":       20,
			"advisors":   10,
			"publicSale": 70,
		},
	}

	got := lp.DistributionCategories()
	want := []string{"advisors", "publicSale", "team"}
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d = %q, want %q", i, got[i], want[i])
		}
	}
}
