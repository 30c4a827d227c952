package company

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

//
// HEADLESS RENDER FALLBACK
//

// Renderer returns the HTML of a page after scripts have run.
type Renderer interface {
	Render(ctx context.Context, pageURL string) (string, error)
}

// ChromeRenderer renders pages with headless Chrome, starting a fresh browser
// per call. Timeout is clamped like every other lookup; ExecPath overrides the
// Chrome binary.
type ChromeRenderer struct {
	ExecPath  string
	UserAgent string
	Timeout   time.Duration
	Settle    time.Duration
}

func (r ChromeRenderer) Render(ctx context.Context, pageURL string) (string, error) {
	timeout := ClampTimeout(r.Timeout)
	settle := r.Settle
	if settle <= 0 {
		settle = 2 * time.Second
	}
	ua := r.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.UserAgent(ua),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
		log.Printf("[Render] using Chrome from: %s", r.ExecPath)
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(log.Printf))
	defer browserCancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
