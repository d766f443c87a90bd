package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// navigateAndSettle navigates to url and waits for the page's
// networkIdle lifecycle event. The listener is registered before the
// navigation starts so an event that fires during load is not missed.
// Network idle is a readiness heuristic only; callers still poll for
// the UI they need.
func navigateAndSettle(ctx context.Context, url string) error {
	idle := make(chan struct{}, 1)
	chromedp.ListenTarget(ctx, func(ev any) {
		if e, ok := ev.(*page.EventLifecycleEvent); ok && e.Name == "networkIdle" {
			select {
			case idle <- struct{}{}:
			default:
			}
		}
	})

	if err := chromedp.Run(ctx,
		page.SetLifecycleEventsEnabled(true),
		chromedp.Navigate(url),
	); err != nil {
		return err
	}

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("network idle: %w", ctx.Err())
	}
}

// clickByNodeID resolves a backend DOM node to a remote object and
// invokes click() on it. Works for elements the a11y tree knows about
// regardless of whether they have a usable CSS selector.
func clickByNodeID(ctx context.Context, backendNodeID int64) error {
	return chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			p := map[string]any{"backendNodeId": backendNodeID}
			var result json.RawMessage
			if err := chromedp.FromContext(ctx).Target.Execute(ctx, "DOM.resolveNode", p, &result); err != nil {
				return fmt.Errorf("DOM.resolveNode: %w", err)
			}
			var resp struct {
				Object struct {
					ObjectID string `json:"objectId"`
				} `json:"object"`
			}
			if err := json.Unmarshal(result, &resp); err != nil {
				return fmt.Errorf("unmarshal resolveNode: %w", err)
			}
			if resp.Object.ObjectID == "" {
				return fmt.Errorf("no objectId for node %d", backendNodeID)
			}
			callP := map[string]any{
				"objectId":            resp.Object.ObjectID,
				"functionDeclaration": "function() { this.click(); }",
				"arguments":           []any{},
			}
			if err := chromedp.FromContext(ctx).Target.Execute(ctx, "Runtime.callFunctionOn", callP, nil); err != nil {
				return fmt.Errorf("click callFunctionOn: %w", err)
			}
			return nil
		}),
	)
}

// dragPointer simulates a press-drag-release gesture with raw mouse
// events: move to the start point, press the left button, move to the
// end point with the button held, release.
func dragPointer(ctx context.Context, fromX, fromY, toX, toY float64) error {
	return chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			if err := input.DispatchMouseEvent(input.MouseMoved, fromX, fromY).Do(ctx); err != nil {
				return fmt.Errorf("mouse move: %w", err)
			}
			if err := input.DispatchMouseEvent(input.MousePressed, fromX, fromY).
				WithButton(input.Left).
				WithButtons(1).
				WithClickCount(1).
				Do(ctx); err != nil {
				return fmt.Errorf("mouse down: %w", err)
			}
			if err := input.DispatchMouseEvent(input.MouseMoved, toX, toY).
				WithButton(input.Left).
				WithButtons(1).
				Do(ctx); err != nil {
				return fmt.Errorf("mouse drag: %w", err)
			}
			if err := input.DispatchMouseEvent(input.MouseReleased, toX, toY).
				WithButton(input.Left).
				WithClickCount(1).
				Do(ctx); err != nil {
				return fmt.Errorf("mouse up: %w", err)
			}
			return nil
		}),
	)
}

// capturePage takes a full-page PNG screenshot, capturing beyond the
// viewport so the whole drawing surface lands in the artifact.
func capturePage(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return buf, nil
}
