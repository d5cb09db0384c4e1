// Package rendering turns the assembled export document into a
// paginated PDF byte stream. The renderer only ever sees a fully
// persisted, schema-valid projection.
package rendering

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// DefaultTimeout bounds one render, browser startup included.
const DefaultTimeout = 60 * time.Second

// PDFRenderer renders HTML with a headless browser.
type PDFRenderer struct {
	execPath string
	timeout  time.Duration
}

// NewPDFRenderer creates a renderer using the given browser binary.
// An empty path falls back to the CHROME_PATH environment variable,
// then to chromedp's own lookup.
func NewPDFRenderer(execPath string) *PDFRenderer {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	return &PDFRenderer{
		execPath: execPath,
		timeout:  DefaultTimeout,
	}
}

// RenderPDF renders an HTML document to A4 PDF bytes.
func (r *PDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.timeout)
	defer cancelRun()

	// chromedp navigates to files, not strings; stage the markup in a
	// temp dir for the lifetime of the render.
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &RenderError{Message: "failed to stage HTML", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "browser render failed", Cause: err}
	}
	return pdf, nil
}
