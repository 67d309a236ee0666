package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs the default text logger on stderr, verbose enables debug
// level logs and source locations.
func InitSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	})
	slog.SetDefault(slog.New(handler))
}
