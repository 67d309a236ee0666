package main

import (
	"context"
	"log/slog"
	"time"

	"debateservice/lib/restyutil"
	"debateservice/lib/scrapers/debateorg"
	"debateservice/lib/serviceutil"
	"debateservice/lib/telemetry"
)

// ShutdownTelemetry flushes pending spans and metrics, call it once the
// server has stopped.
func ShutdownTelemetry() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	err := telemetry.Shutdown(ctx)
	if err != nil {
		slog.Warn("failed to shutdown telemetry", "err", err)
	}
}

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	err := telemetry.SetupFromEnv(ctx, "opinions-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	telemetry.InstrumentPerfStats(ctx)

	if !verbose {
		return
	}

	out, err := restyutil.NewFilesystemOutput(".dev/resty/debateorg")
	if err != nil {
		serviceutil.Fatal("create resty output", err)
	}
	debateorg.SetRestyInstrumentOutput(out)
}
