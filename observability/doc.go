// Package observability provides OpenTelemetry tracing and metrics for
// statkit services.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("statserver"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanBootstrapEstimate)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("statserver"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("statserver"))
//	metrics.RecordEstimation(ctx, "statserver", "bootstrap", "ok", repetitions, duration)
package observability
