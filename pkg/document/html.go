package document

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"ai-litepaper-be/internal/entity"
	"ai-litepaper-be/pkg/chart"
)

type htmlSection struct {
	Number         int
	Title          string
	Anchor         string
	Paragraphs     []string
	IsFeatures     bool
	IsDistribution bool
}

type htmlDistributionItem struct {
	Label string
	Value string
}

type htmlDocument struct {
	ProjectName  string
	TokenSymbol  string
	Date         string
	Sections     []htmlSection
	Features     []entity.Feature
	Distribution []htmlDistributionItem
	ChartDataURL template.URL
	Disclaimer   string
}

// HTML renders a complete standalone document with embedded styling. The
// layout mirrors Markdown() with in-page anchors, a features list under the
// product-features section and the distribution chart + grid under the
// token-distribution section.
func (r *Renderer) HTML(lp *entity.Litepaper) (string, error) {
	if lp.GeneratedContent == nil {
		return "", ErrNoGeneratedContent
	}

	doc := htmlDocument{
		ProjectName: lp.ProjectName,
		TokenSymbol: lp.TokenSymbol,
		Date:        r.now().Format("1/2/2006"),
		Features:    lp.Features,
		Disclaimer:  disclaimer,
	}

	for i, s := range lp.GeneratedContent.Sections() {
		doc.Sections = append(doc.Sections, htmlSection{
			Number:         i + 1,
			Title:          s.Title,
			Anchor:         s.Anchor,
			Paragraphs:     splitParagraphs(s.Body),
			IsFeatures:     s.Key == "productFeatures",
			IsDistribution: s.Key == "tokenDistribution",
		})
	}

	for _, category := range lp.DistributionCategories() {
		doc.Distribution = append(doc.Distribution, htmlDistributionItem{
			Label: chart.HumanizeCategory(category),
			Value: chart.FormatPercent(lp.TokenDistribution[category]),
		})
	}

	// A record that reaches the renderer always has a distribution, but the
	// chart is decoration: leave it out rather than fail the whole document.
	if dataURL, err := chart.TokenDistributionChart(lp.TokenDistribution, lp.TokenSymbol); err == nil {
		doc.ChartDataURL = template.URL(dataURL)
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}

	return buf.String(), nil
}

// splitParagraphs breaks section prose on newline boundaries into separate
// <p> elements.
func splitParagraphs(body string) []string {
	var paragraphs []string
	for _, line := range strings.Split(body, "\n") {
		paragraphs = append(paragraphs, line)
	}
	return paragraphs
}

var htmlTemplate = template.Must(template.New("litepaper").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.ProjectName}} Litepaper</title>
    <style>
        body {
            font-family: 'Arial', sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        .cover {
            text-align: center;
            padding: 60px 0;
            border-bottom: 3px solid #3b82f6;
            margin-bottom: 40px;
        }
        .cover h1 {
            font-size: 3em;
            margin: 0;
            color: #1d4ed8;
        }
        .cover h2 {
            font-size: 1.5em;
            color: #6366f1;
            margin: 10px 0;
        }
        .cover .meta {
            margin-top: 30px;
            color: #666;
        }
        .toc {
            background: #f8fafc;
            padding: 30px;
            border-radius: 8px;
            margin-bottom: 40px;
        }
        .toc h2 {
            color: #1d4ed8;
            border-bottom: 2px solid #3b82f6;
            padding-bottom: 10px;
        }
        .toc ul {
            list-style: none;
            padding: 0;
        }
        .toc li {
            padding: 8px 0;
            border-bottom: 1px solid #e2e8f0;
        }
        .toc a {
            text-decoration: none;
            color: #3b82f6;
        }
        .section {
            margin-bottom: 40px;
            page-break-inside: avoid;
        }
        .section h2 {
            color: #1d4ed8;
            border-left: 4px solid #3b82f6;
            padding-left: 20px;
            margin-bottom: 20px;
        }
        .token-distribution {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            margin: 20px 0;
        }
        .distribution-item {
            background: #f1f5f9;
            padding: 15px;
            border-radius: 8px;
            border-left: 4px solid #3b82f6;
        }
        .chart-container {
            text-align: center;
            margin: 30px 0;
        }
        .footer {
            margin-top: 60px;
            padding-top: 30px;
            border-top: 1px solid #e2e8f0;
            text-align: center;
            color: #666;
            font-style: italic;
        }
        @media print {
            .cover { page-break-after: always; }
            .section { page-break-inside: avoid; }
        }
    </style>
</head>
<body>
    <div class="cover">
        <h1>{{.ProjectName}}</h1>
        <h2>Litepaper</h2>
        <div class="meta">
            <p><strong>Token Symbol:</strong> {{.TokenSymbol}}</p>
            <p><strong>Version:</strong> 1.0</p>
            <p><strong>Date:</strong> {{.Date}}</p>
        </div>
    </div>

    <div class="toc">
        <h2>Table of Contents</h2>
        <ul>
{{- range .Sections}}
            <li><a href="#{{.Anchor}}">{{.Number}}. {{.Title}}</a></li>
{{- end}}
        </ul>
    </div>
{{range .Sections}}
    <div class="section" id="{{.Anchor}}">
        <h2>{{.Number}}. {{.Title}}</h2>
        {{range .Paragraphs}}<p>{{.}}</p>
        {{end}}
{{- if .IsFeatures}}
        <h3>Key Features:</h3>
        <ul>
{{- range $.Features}}
            <li><strong>{{.Name}}:</strong> {{.Description}}</li>
{{- end}}
        </ul>
{{- end}}
{{- if .IsDistribution}}
{{- if $.ChartDataURL}}
        <div class="chart-container">
            <img src="{{$.ChartDataURL}}" alt="Token Distribution Chart" style="max-width: 100%; height: auto;">
        </div>
{{- end}}
        <div class="token-distribution">
{{- range $.Distribution}}
            <div class="distribution-item">
                <strong>{{.Label}}</strong><br>
                {{.Value}}%
            </div>
{{- end}}
        </div>
{{- end}}
    </div>
{{end}}
    <div class="footer">
        <p>{{.Disclaimer}}</p>
    </div>
</body>
</html>
`))
