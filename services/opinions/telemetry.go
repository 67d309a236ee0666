package opinions

import (
	"debateservice/lib/telemetry"

	"go.opentelemetry.io/otel/metric"
)

var tracer = telemetry.Tracer("debateservice.services.opinions")
var meter = telemetry.Meter("debateservice.services.opinions")

var requestCounter, _ = meter.Int64Counter(
	"opinions.requests",
	metric.WithDescription("Opinion requests handled, by outcome."),
)
