package main

import (
	"os"
	"time"
)

// Accessible names of the toolbar controls the run drives. These are
// the labels Canvie exposes for assistive tech, so they double as a UI
// contract: if one disappears the run fails before touching the canvas.
const (
	toolRectangle   = "Rectangle"
	toolStrokeStyle = "Stroke style"
	toolRough       = "Rough"
)

// Drag gesture for the drawn rectangle, in page pixel coordinates.
const (
	dragFromX = 300.0
	dragFromY = 300.0
	dragToX   = 500.0
	dragToY   = 500.0
)

var (
	targetURL  = envOr("CANVIE_VERIFY_URL", "http://localhost:3000/")
	outputPath = envOr("CANVIE_VERIFY_OUT", "verification.png")
	cdpURL     = os.Getenv("CDP_URL") // empty = launch Chrome ourselves
	headful    = os.Getenv("CANVIE_VERIFY_HEADFUL") == "true"

	navigateTimeout = 60 * time.Second
	settleTimeout   = 120 * time.Second
	actionTimeout   = 15 * time.Second
	pollInterval    = 500 * time.Millisecond
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
