package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chromedp/chromedp"
)

// Session owns one Chrome instance and the page it scripts against.
// The run holds it for its whole duration and releases it through
// Close, which must run on every exit path and is safe to call twice.
type Session struct {
	ctx           context.Context
	allocCancel   context.CancelFunc
	browserCancel context.CancelFunc
	closeOnce     sync.Once
}

// newSession launches headless Chrome, or attaches to an existing one
// when CDP_URL is set, and returns once the browser is up and the
// initial page target exists.
func newSession(parent context.Context) (*Session, error) {
	var allocCtx context.Context
	var allocCancel context.CancelFunc

	if cdpURL != "" {
		slog.Info("connecting to Chrome", "cdp", cdpURL)
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(parent, cdpURL)
	} else {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("no-first-run", true),
			chromedp.Flag("disable-popup-blocking", true),
		)
		if headful {
			opts = append(opts, chromedp.Flag("headless", false))
		} else {
			opts = append(opts, chromedp.Headless)
		}
		slog.Info("launching Chrome", "headless", !headful)
		allocCtx, allocCancel = chromedp.NewExecAllocator(parent, opts...)
	}

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// An empty Run starts the browser and attaches to the first tab.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("start Chrome: %w", err)
	}

	return &Session{
		ctx:           browserCtx,
		allocCancel:   allocCancel,
		browserCancel: browserCancel,
	}, nil
}

// Close tears down the page, browser, and allocator. Later calls are
// no-ops.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.browserCancel()
		s.allocCancel()
	})
}
