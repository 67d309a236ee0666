package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestShutdownTelemetryStopsProviders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "telemetry.json5"), []byte(`{ otlp: {} }`), 0600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	InitTelemetry(ctx, false)

	_, span := otel.Tracer("test").Start(ctx, "before")
	require.True(t, span.IsRecording())
	span.End()

	ShutdownTelemetry()

	_, span = otel.Tracer("test").Start(ctx, "after")
	require.False(t, span.IsRecording())
	span.End()
}
