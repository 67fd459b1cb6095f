package pdfengine

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 in inches, with 20mm margins on all sides
const (
	a4PaperWidth  = 8.27
	a4PaperHeight = 11.69
	pageMargin    = 0.79
)

// ChromeEngine paginates HTML into PDF through a headless Chromium instance.
// Launching the browser is expensive and failure-prone, so each render runs
// in its own allocator with a hard timeout; errors are returned to the caller
// rather than retried.
type ChromeEngine struct {
	execPath string
	timeout  time.Duration
}

func NewChromeEngine(execPath string, timeout time.Duration) *ChromeEngine {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeEngine{
		execPath: execPath,
		timeout:  timeout,
	}
}

func (e *ChromeEngine) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, e.timeout)
	defer cancelTimeout()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4PaperWidth).
				WithPaperHeight(a4PaperHeight).
				WithMarginTop(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				WithMarginRight(pageMargin).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromium pdf render failed: %w", err)
	}

	return pdf, nil
}
