package document

import (
	"fmt"
	"strings"

	"ai-litepaper-be/internal/entity"
	"ai-litepaper-be/pkg/chart"
)

const disclaimer = "This litepaper was generated using AI technology and should be reviewed by legal and financial experts before use."

// Markdown renders the record into plain-text Markdown: title block, table of
// contents, the ten sections in canonical order, a distribution breakdown and
// a closing disclaimer.
func (r *Renderer) Markdown(lp *entity.Litepaper) (string, error) {
	if lp.GeneratedContent == nil {
		return "", ErrNoGeneratedContent
	}

	sections := lp.GeneratedContent.Sections()

	var b strings.Builder

	fmt.Fprintf(&b, "# %s Litepaper\n\n", lp.ProjectName)
	fmt.Fprintf(&b, "**Token Symbol:** %s  \n", lp.TokenSymbol)
	b.WriteString("**Version:** 1.0  \n")
	fmt.Fprintf(&b, "**Date:** %s\n\n", r.now().Format("1/2/2006"))
	b.WriteString("---\n\n")

	b.WriteString("## Table of Contents\n\n")
	for i, s := range sections {
		fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, s.Title, s.Anchor)
	}
	b.WriteString("\n---\n")

	for _, s := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", s.Title, s.Body)

		if s.Key == "tokenDistribution" {
			b.WriteString("\n### Distribution Breakdown\n\n")
			for _, category := range lp.DistributionCategories() {
				fmt.Fprintf(&b, "- **%s:** %s%%\n",
					chart.HumanizeCategory(category),
					chart.FormatPercent(lp.TokenDistribution[category]))
			}
		}
	}

	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "*%s*\n", disclaimer)

	return b.String(), nil
}
