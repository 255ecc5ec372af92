package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/111.0.0.0 Safari/537.36"

// SessionOptions configures a browser session.
type SessionOptions struct {
	Headless bool
	// BlockResources aborts image, font, and media requests to bound the
	// cost and latency of each page load.
	BlockResources bool
}

// Session is one headless-browser context. Sessions are resource-heavy
// (a Chrome process behind each one) and must be closed on every exit path;
// callers acquire with NewSession and defer Close. A session must not be
// shared across concurrent scrapes: page state is mutable.
type Session struct {
	ctx          context.Context
	cancelBrowse context.CancelFunc
	cancelAlloc  context.CancelFunc
}

// NewSession launches a browser context under parent. Cancelling parent
// aborts the session and everything running in it.
func NewSession(parent context.Context, opts SessionOptions) (*Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	browserCtx, cancelBrowse := chromedp.NewContext(allocCtx)

	s := &Session{ctx: browserCtx, cancelBrowse: cancelBrowse, cancelAlloc: cancelAlloc}

	// Start the browser now so launch failures surface here, not mid-scrape.
	if err := chromedp.Run(browserCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	if opts.BlockResources {
		if err := s.blockSubresources(); err != nil {
			s.Close()
			return nil, fmt.Errorf("enabling request interception: %w", err)
		}
	}

	return s, nil
}

// Close releases the browser context and its Chrome process. Safe to call
// more than once.
func (s *Session) Close() {
	s.cancelBrowse()
	s.cancelAlloc()
}

// Run executes browser actions with the given timeout. Timeouts surface as
// context errors from the failed action, never hangs.
func (s *Session) Run(timeout time.Duration, actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// blockSubresources pauses every request and fails the non-essential ones.
func (s *Session) blockSubresources() error {
	chromedp.ListenTarget(s.ctx, func(ev interface{}) {
		paused, ok := ev.(*fetch.EventRequestPaused)
		if !ok {
			return
		}
		go func() {
			c := chromedp.FromContext(s.ctx)
			ectx := cdp.WithExecutor(s.ctx, c.Target)
			switch paused.ResourceType {
			case network.ResourceTypeImage, network.ResourceTypeFont, network.ResourceTypeMedia:
				_ = fetch.FailRequest(paused.RequestID, network.ErrorReasonBlockedByClient).Do(ectx)
			default:
				_ = fetch.ContinueRequest(paused.RequestID).Do(ectx)
			}
		}()
	})
	return chromedp.Run(s.ctx, fetch.Enable())
}
