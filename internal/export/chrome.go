package export

import (
	"context"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches, the only page format the statement uses.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// ChromeEngine drives a local headless Chrome through the DevTools
// protocol. Every session gets its own exec allocator, so no browser
// process outlives the request that launched it.
type ChromeEngine struct {
	execPath string
}

// NewChromeEngine creates an engine. An empty execPath lets chromedp
// find the browser on PATH.
func NewChromeEngine(execPath string) *ChromeEngine {
	return &ChromeEngine{execPath: execPath}
}

// NewSession starts a fresh browser. The session inherits ctx, so a
// caller deadline bounds both the launch and every later export.
func (e *ChromeEngine) NewSession(ctx context.Context) (Session, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// An empty Run starts the browser eagerly, surfacing launch
	// failures here instead of on first use.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, &EngineError{Stage: "launch", Cause: err}
	}

	return &chromeSession{
		ctx: browserCtx,
		cancel: func() {
			cancelBrowser()
			cancelAlloc()
		},
	}, nil
}

type chromeSession struct {
	ctx    context.Context
	cancel func()
}

// Export loads markup as the session's document and prints it to an
// in-memory A4 PDF with background graphics preserved and default
// margins.
func (s *chromeSession) Export(markup string) ([]byte, error) {
	var pdf []byte

	err := chromedp.Run(s.ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, markup).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &EngineError{Stage: "export", Cause: err}
	}

	return pdf, nil
}

func (s *chromeSession) Close() error {
	s.cancel()
	return nil
}
