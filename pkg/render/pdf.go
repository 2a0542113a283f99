package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPrintTimeout bounds a single print when the caller sets none
const DefaultPrintTimeout = 60 * time.Second

// PDFPrinter prints rendered pages through a headless Chrome
type PDFPrinter struct {
	// ChromePath overrides the browser binary; CHROME_PATH is used when empty
	ChromePath string
	Timeout    time.Duration
}

// NewPDFPrinter creates a printer using chromePath, or CHROME_PATH when empty
func NewPDFPrinter(chromePath string) *PDFPrinter {
	return &PDFPrinter{ChromePath: chromePath, Timeout: DefaultPrintTimeout}
}

// Print renders html to an A4 PDF with backgrounds
func (p *PDFPrinter) Print(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if path := p.chromePath(); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}
	runCtx, cancelRun := context.WithTimeout(cctx, timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "cvbuilder-")
	if err != nil {
		return nil, fmt.Errorf("failed to create print directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "cv.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write print source: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print PDF: %w", err)
	}
	return pdf, nil
}

func (p *PDFPrinter) chromePath() string {
	if p.ChromePath != "" {
		return p.ChromePath
	}
	return os.Getenv("CHROME_PATH")
}
