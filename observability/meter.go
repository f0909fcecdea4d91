package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/skillsenselab/statkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds metric instruments for the estimation service.
type Metrics struct {
	estimationTotal    metric.Int64Counter
	estimationDuration metric.Float64Histogram
	estimationActive   metric.Int64UpDownCounter
	resampleTotal      metric.Int64Counter
	errorTotal         metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	estimationTotal, err := meter.Int64Counter("estimation.total",
		metric.WithDescription("Total number of estimation runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating estimation.total counter: %w", err)
	}

	estimationDuration, err := meter.Float64Histogram("estimation.duration",
		metric.WithDescription("Duration of estimation runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating estimation.duration histogram: %w", err)
	}

	estimationActive, err := meter.Int64UpDownCounter("estimation.active",
		metric.WithDescription("Number of estimation runs currently in flight"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating estimation.active gauge: %w", err)
	}

	resampleTotal, err := meter.Int64Counter("resample.total",
		metric.WithDescription("Total number of resamples drawn across all runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resample.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		estimationTotal:    estimationTotal,
		estimationDuration: estimationDuration,
		estimationActive:   estimationActive,
		resampleTotal:      resampleTotal,
		errorTotal:         errorTotal,
	}, nil
}

// RecordEstimationStart increments the in-flight estimation count.
func (m *Metrics) RecordEstimationStart(ctx context.Context) {
	m.estimationActive.Add(ctx, 1)
}

// RecordEstimation decrements in-flight estimations and records a completed
// run with its repetition count.
func (m *Metrics) RecordEstimation(ctx context.Context, service, operation, status string, repetitions int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.estimationActive.Add(ctx, -1)
	m.estimationTotal.Add(ctx, 1, attrs)
	m.resampleTotal.Add(ctx, int64(repetitions), metric.WithAttributes(
		attribute.String("operation", operation),
	))
	m.estimationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("operation", operation),
	))
}

// RecordError records an error by type and component.
func (m *Metrics) RecordError(ctx context.Context, errType, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
