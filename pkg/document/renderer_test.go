package document

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-litepaper-be/internal/entity"

	"github.com/google/uuid"
)

type stubEngine struct {
	output []byte
	err    error
}

func (e *stubEngine) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	return e.output, e.err
}

func testLitepaper() *entity.Litepaper {
	return &entity.Litepaper{
		Id:               uuid.New(),
		ProjectName:      "Aurora",
		TokenSymbol:      "AUR",
		Description:      "A decentralized compute marketplace",
		ProblemStatement: "GPU capacity is scarce and centralized",
		TotalSupply:      "1000000000",
		TokenDistribution: map[string]float64{
			"team":           20,
			"publicSale":     40,
			"ecosystem":      25,
			"stakingRewards": 15,
		},
		Features: []entity.Feature{
			{Name: "Compute Market", Description: "Peer-to-peer GPU rental"},
		},
		GeneratedContent: testContent(),
	}
}

func testContent() *entity.LitepaperContent {
	return &entity.LitepaperContent{
		ExecutiveSummary:  "Summary body",
		ProblemStatement:  "Problem body",
		MarketAnalysis:    "Market body",
		Solution:          "Solution body",
		ProductFeatures:   "Features body",
		TokenDistribution: "Distribution body",
		TokenomicsUtility: "Utility body",
		EmissionSchedule:  "Emission body",
		TokenFlow:         "Flow body",
		ValueGrowth:       "Growth body",
	}
}

func fixedRenderer(engine PDFEngine) *Renderer {
	r := NewRenderer(engine)
	r.now = func() time.Time {
		return time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
	}
	return r
}

func TestRenderDispatch(t *testing.T) {
	r := fixedRenderer(&stubEngine{output: []byte("%PDF-fake")})
	lp := testLitepaper()

	tests := []struct {
		format   string
		contains string
	}{
		{"markdown", "# Aurora Litepaper"},
		{"html", "<title>Aurora Litepaper</title>"},
		{"pdf", "%PDF-fake"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := r.Render(context.Background(), lp, tt.format)
			if err != nil {
				t.Fatalf("Render(%s) error: %v", tt.format, err)
			}
			if !strings.Contains(string(data), tt.contains) {
				t.Errorf("Render(%s) output missing %q", tt.format, tt.contains)
			}
		})
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	r := fixedRenderer(nil)

	_, err := r.Render(context.Background(), testLitepaper(), "docx")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRenderWithoutGeneratedContent(t *testing.T) {
	r := fixedRenderer(nil)
	lp := testLitepaper()
	lp.GeneratedContent = nil

	for _, format := range []string{"markdown", "html"} {
		if _, err := r.Render(context.Background(), lp, format); !errors.Is(err, ErrNoGeneratedContent) {
			t.Errorf("Render(%s) = %v, want ErrNoGeneratedContent", format, err)
		}
	}
}

func TestPDFEngineFailurePropagates(t *testing.T) {
	r := fixedRenderer(&stubEngine{err: errors.New("browser not found")})

	if _, err := r.PDF(context.Background(), testLitepaper()); err == nil {
		t.Fatal("expected engine error")
	}
}

func TestPDFWithoutEngine(t *testing.T) {
	r := fixedRenderer(nil)

	if _, err := r.PDF(context.Background(), testLitepaper()); err == nil {
		t.Fatal("expected error when engine is nil")
	}
}

func TestContentTypeAndExtension(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
		extension   string
	}{
		{"pdf", "application/pdf", "pdf"},
		{"html", "text/html", "html"},
		{"markdown", "text/markdown", "md"},
	}

	for _, tt := range tests {
		if got := ContentType(tt.format); got != tt.contentType {
			t.Errorf("ContentType(%s) = %q, want %q", tt.format, got, tt.contentType)
		}
		if got := FileExtension(tt.format); got != tt.extension {
			t.Errorf("FileExtension(%s) = %q, want %q", tt.format, got, tt.extension)
		}
	}
}
