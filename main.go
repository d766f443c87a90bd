// Canvie's UI verification runner: drives a headless Chrome session
// against a locally running Canvie instance, draws a rough-stroked
// rectangle through the UI, and captures a screenshot for visual
// review.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	sess, err := newSession(context.Background())
	if err != nil {
		slog.Error("session", "err", err)
		return 1
	}
	defer sess.Close()

	if err := runVerification(sess.ctx); err != nil {
		slog.Error("verification failed", "err", err)
		return exitCode(err)
	}

	slog.Info("verification complete", "screenshot", outputPath)
	return 0
}

// exitCode maps the error taxonomy to distinct exit codes so a CI
// caller can tell "app down" from "UI contract changed".
func exitCode(err error) int {
	var nav *NavigationError
	var missing *ElementNotFoundError
	var interact *InteractionError
	var artifact *ArtifactWriteError

	switch {
	case errors.As(err, &nav):
		return 2
	case errors.As(err, &missing):
		return 3
	case errors.As(err, &interact):
		return 4
	case errors.As(err, &artifact):
		return 5
	}
	return 1
}
