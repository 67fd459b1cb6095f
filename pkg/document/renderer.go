package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-litepaper-be/internal/constant"
	"ai-litepaper-be/internal/entity"
)

var (
	// ErrUnsupportedFormat is returned for formats outside pdf|html|markdown
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoGeneratedContent is returned when a record has not been synthesized yet
	ErrNoGeneratedContent = errors.New("litepaper content not generated yet")
)

// PDFEngine paginates a rendered HTML document into PDF bytes. It is an
// external process boundary (a headless browser) and the only fallible
// collaborator of the renderer; callers are expected to treat its failure as
// a degraded result, not a fatal one.
type PDFEngine interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Renderer merges a litepaper record and its generated content into the three
// output formats. Markdown and HTML are pure given (record, content); only
// PDF depends on the external engine.
type Renderer struct {
	engine PDFEngine
	now    func() time.Time
}

func NewRenderer(engine PDFEngine) *Renderer {
	return &Renderer{
		engine: engine,
		now:    time.Now,
	}
}

// Render dispatches to the requested format backend and returns raw bytes.
func (r *Renderer) Render(ctx context.Context, lp *entity.Litepaper, format string) ([]byte, error) {
	switch format {
	case constant.OutputFormatMarkdown:
		md, err := r.Markdown(lp)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	case constant.OutputFormatHtml:
		html, err := r.HTML(lp)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	case constant.OutputFormatPdf:
		return r.PDF(ctx, lp)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// PDF renders the exact same HTML as HTML() and paginates it through the
// engine. A4 pages with 20mm margins; see pdfengine for the print settings.
func (r *Renderer) PDF(ctx context.Context, lp *entity.Litepaper) ([]byte, error) {
	if r.engine == nil {
		return nil, fmt.Errorf("pdf engine not available")
	}

	html, err := r.HTML(lp)
	if err != nil {
		return nil, err
	}

	return r.engine.RenderPDF(ctx, html)
}

// ContentType maps a format to its download content type.
func ContentType(format string) string {
	switch format {
	case constant.OutputFormatPdf:
		return "application/pdf"
	case constant.OutputFormatHtml:
		return "text/html"
	case constant.OutputFormatMarkdown:
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}

// FileExtension maps a format to its download file extension.
func FileExtension(format string) string {
	if format == constant.OutputFormatMarkdown {
		return "md"
	}
	return format
}
