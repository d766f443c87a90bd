package main

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// runVerification executes the scripted drawing check against a running
// Canvie instance: select the Rectangle tool, switch the stroke style
// to Rough, drag a rectangle across the canvas, capture a screenshot.
// The sequence is linear and all-or-nothing; any failing step aborts
// the run and the caller still closes the session.
func runVerification(ctx context.Context) error {
	navCtx, navCancel := context.WithTimeout(ctx, navigateTimeout)
	defer navCancel()

	slog.Info("navigating", "url", targetURL)
	if err := navigateAndSettle(navCtx, targetURL); err != nil {
		return &NavigationError{URL: targetURL, Err: err}
	}

	// Canvie keeps initializing client-side after the network goes
	// quiet. Readiness is the toolbar actually being usable, so poll
	// for the Rectangle control instead of sleeping a fixed interval.
	slog.Info("waiting for toolbar", "control", toolRectangle)
	if err := waitInteractive(ctx, toolRectangle, settleTimeout); err != nil {
		return err
	}

	for _, name := range []string{toolRectangle, toolStrokeStyle, toolRough} {
		slog.Info("clicking", "control", name)
		if err := clickControl(ctx, name); err != nil {
			return err
		}
	}

	slog.Info("drawing rectangle",
		"from", []float64{dragFromX, dragFromY},
		"to", []float64{dragToX, dragToY})
	dragCtx, dragCancel := context.WithTimeout(ctx, actionTimeout)
	defer dragCancel()
	if err := dragPointer(dragCtx, dragFromX, dragFromY, dragToX, dragToY); err != nil {
		return &InteractionError{Op: "drag", Err: err}
	}

	slog.Info("capturing screenshot", "path", outputPath)
	ssCtx, ssCancel := context.WithTimeout(ctx, actionTimeout)
	defer ssCancel()
	buf, err := capturePage(ssCtx)
	if err != nil {
		return &InteractionError{Op: "screenshot", Err: err}
	}
	return writeArtifact(outputPath, buf)
}

// waitInteractive polls the accessibility tree until a control with the
// given name is present and enabled, bounded by timeout. Menus that
// render their controls lazily make a single lookup racy; polling keeps
// the wait as short as the app allows.
func waitInteractive(ctx context.Context, name string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		tCtx, tCancel := context.WithTimeout(ctx, actionTimeout)
		nodes, err := fetchAXTree(tCtx)
		tCancel()
		lastErr = err

		if err == nil {
			if c, ok := findControl(nodes, name); ok && !c.Disabled {
				return nil
			}
		}

		if time.Now().After(deadline) {
			return &ElementNotFoundError{Name: name, Err: lastErr}
		}
		select {
		case <-ctx.Done():
			return &ElementNotFoundError{Name: name, Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

// clickControl locates a control by accessible name in the current
// accessibility tree and clicks it through its backend DOM node.
func clickControl(ctx context.Context, name string) error {
	tCtx, tCancel := context.WithTimeout(ctx, actionTimeout)
	defer tCancel()

	nodes, err := fetchAXTree(tCtx)
	if err != nil {
		return &InteractionError{Op: "locate " + name, Err: err}
	}
	c, ok := findControl(nodes, name)
	if !ok {
		return &ElementNotFoundError{Name: name}
	}
	if err := clickByNodeID(tCtx, c.BackendNodeID); err != nil {
		return &InteractionError{Op: "click " + name, Err: err}
	}
	return nil
}

// writeArtifact stores the screenshot, overwriting any previous run's
// artifact at the same path.
func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &ArtifactWriteError{Path: path, Err: err}
	}
	return nil
}
