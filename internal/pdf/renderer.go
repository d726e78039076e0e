// Package pdf rasterizes rendered HTML to PDF bytes with headless Chrome.
package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const defaultRenderTimeout = 60 * time.Second

// A4 paper in inches, 1cm margins (Chrome's PrintToPDF unit).
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.394
)

// Renderer produces PDF bytes from an HTML document
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// RenderError reports a failed PDF rasterization
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("PDF generation failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ChromeRenderer implements Renderer using a headless Chrome instance.
// Each render gets a fresh browser context; allocator and context are
// cancelled on every path so no Chrome process outlives a request.
type ChromeRenderer struct {
	execPath string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewChromeRenderer creates a ChromeRenderer. execPath may be empty to use
// the Chrome found on PATH; timeout 0 falls back to the default.
func NewChromeRenderer(execPath string, timeout time.Duration, logger *zap.Logger) *ChromeRenderer {
	if timeout == 0 {
		timeout = defaultRenderTimeout
	}

	return &ChromeRenderer{
		execPath: execPath,
		timeout:  timeout,
		logger:   logger,
	}
}

// RenderPDF loads the document into a fresh page and prints it as
// A4 landscape with backgrounds, matching the calendar's page directive.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	start := time.Now()

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
			buf, _, err := page.PrintToPDF().
				WithLandscape(true).
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		r.logger.Error("PDF rasterization failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, &RenderError{Err: err}
	}

	r.logger.Info("PDF rendered",
		zap.Int("size_bytes", len(pdf)),
		zap.Duration("elapsed", time.Since(start)))

	return pdf, nil
}
