package document

import (
	"strings"
	"testing"
)

func TestMarkdownLayout(t *testing.T) {
	r := fixedRenderer(nil)

	md, err := r.Markdown(testLitepaper())
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}

	for _, want := range []string{
		"# Aurora Litepaper",
		"**Token Symbol:** AUR",
		"**Version:** 1.0",
		"**Date:** 3/4/2025",
		"## Table of Contents",
		"*" + disclaimer + "*",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownSectionOrder(t *testing.T) {
	r := fixedRenderer(nil)

	md, err := r.Markdown(testLitepaper())
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}

	titles := []string{
		"## Executive Summary",
		"## Problem Statement",
		"## Market Analysis",
		"## Proposed Solution",
		"## Product Features",
		"## Token Distribution",
		"## Tokenomics Utility",
		"## Emission Schedule",
		"## Token Flow",
		"## Value Growth Projections",
	}

	lastIdx := -1
	for _, title := range titles {
		idx := strings.Index(md, title)
		if idx == -1 {
			t.Fatalf("markdown missing section %q", title)
		}
		if idx < lastIdx {
			t.Errorf("section %q out of order", title)
		}
		lastIdx = idx
	}
}

func TestMarkdownDistributionBreakdown(t *testing.T) {
	r := fixedRenderer(nil)

	md, err := r.Markdown(testLitepaper())
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}

	if !strings.Contains(md, "### Distribution Breakdown") {
		t.Fatal("markdown missing distribution breakdown")
	}

	// Categories listed in deterministic lexicographic order, camelCase
	// keys humanized.
	for _, want := range []string{
		"- **ecosystem:** 25%",
		"- **public Sale:** 40%",
		"- **staking Rewards:** 15%",
		"- **team:** 20%",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing breakdown line %q", want)
		}
	}

	if strings.Index(md, "- **ecosystem:**") > strings.Index(md, "- **team:**") {
		t.Error("breakdown categories not in lexicographic order")
	}
}

func TestHTMLLayout(t *testing.T) {
	r := fixedRenderer(nil)

	html, err := r.HTML(testLitepaper())
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}

	for _, want := range []string{
		`<div class="section" id="executive-summary">`,
		`<div class="section" id="distribution">`,
		`<a href="#growth">10. Value Growth Projections</a>`,
		"<h3>Key Features:</h3>",
		"<strong>Compute Market:</strong> Peer-to-peer GPU rental",
		`src="data:image/png;base64,`,
		disclaimer,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestHTMLOmitsChartWhenDistributionEmpty(t *testing.T) {
	r := fixedRenderer(nil)
	lp := testLitepaper()
	lp.TokenDistribution = nil

	html, err := r.HTML(lp)
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	if strings.Contains(html, "chart-container") {
		t.Error("chart should be omitted when no distribution exists")
	}
}
