package telemetry

import (
	"context"
	"time"

	"github.com/ggorockee/cookiemap/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceVersion = "1.0.0"

// Telemetry tracer, meter and the pipeline instruments
type Telemetry struct {
	serviceName    string
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	tracer         trace.Tracer
	meter          metric.Meter

	// HTTP
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram
	HTTPActiveRequests  metric.Int64UpDownCounter

	// Discovery
	DiscoveryRuns      metric.Int64Counter
	DiscoveryErrors    metric.Int64Counter
	DiscoveryDuration  metric.Float64Histogram
	PostsFetched       metric.Int64Counter
	CandidatesParsed   metric.Int64Counter
	CandidatesSaved    metric.Int64Counter
	CandidatesRejected metric.Int64Counter

	// Promotion
	Promotions      metric.Int64Counter
	PromotionErrors metric.Int64Counter
}

// New exports traces and metrics over OTLP/HTTP to endpoint. An empty
// endpoint gives a no-op instance backed by the global providers.
func New(ctx context.Context, serviceName, endpoint string) (*Telemetry, error) {
	if endpoint == "" {
		logger.GetLogger("telemetry").Info("SIGNOZ_ENDPOINT not set, tracing and metrics disabled")
		return NewNoop(serviceName), nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
		resource.WithHost(),
		resource.WithOS(),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	metricExporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(endpoint),
		otlpmetrichttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(15*time.Second))),
	)
	otel.SetMeterProvider(meterProvider)

	t := &Telemetry{
		serviceName:    serviceName,
		tracerProvider: tracerProvider,
		meterProvider:  meterProvider,
		tracer:         tracerProvider.Tracer(serviceName),
		meter:          meterProvider.Meter(serviceName),
	}
	if err := t.registerMetrics(); err != nil {
		return nil, err
	}

	logger.GetLogger("telemetry").Infof("OpenTelemetry initialized with endpoint: %s", endpoint)
	return t, nil
}

// NewNoop instance whose spans and instruments record nothing unless a global
// provider has been installed
func NewNoop(serviceName string) *Telemetry {
	return newWithMeter(serviceName, otel.Meter(serviceName))
}

// newWithMeter falls back to a discarding meter when meter cannot create the
// instruments, so the Record helpers never see a nil instrument
func newWithMeter(serviceName string, meter metric.Meter) *Telemetry {
	t := &Telemetry{
		serviceName: serviceName,
		tracer:      otel.Tracer(serviceName),
		meter:       meter,
	}
	if err := t.registerMetrics(); err != nil {
		logger.GetLogger("telemetry").Warnf("instrument registration failed, metrics disabled: %v", err)
		t.meter = noopmetric.NewMeterProvider().Meter(serviceName)
		_ = t.registerMetrics() // the noop meter never fails
	}
	return t
}

func (t *Telemetry) registerMetrics() error {
	var err error

	if t.HTTPRequestsTotal, err = t.meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return err
	}

	if t.HTTPRequestDuration, err = t.meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	); err != nil {
		return err
	}

	if t.HTTPActiveRequests, err = t.meter.Int64UpDownCounter(
		"http.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return err
	}

	if t.DiscoveryRuns, err = t.meter.Int64Counter(
		"cookiemap.discovery.runs",
		metric.WithDescription("Total number of discovery runs"),
	); err != nil {
		return err
	}

	if t.DiscoveryErrors, err = t.meter.Int64Counter(
		"cookiemap.discovery.errors",
		metric.WithDescription("Total number of failed discovery runs"),
	); err != nil {
		return err
	}

	if t.DiscoveryDuration, err = t.meter.Float64Histogram(
		"cookiemap.discovery.duration",
		metric.WithDescription("Duration of discovery runs in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return err
	}

	if t.PostsFetched, err = t.meter.Int64Counter(
		"cookiemap.discovery.posts_fetched",
		metric.WithDescription("Raw posts returned by source connectors"),
	); err != nil {
		return err
	}

	if t.CandidatesParsed, err = t.meter.Int64Counter(
		"cookiemap.candidates.parsed",
		metric.WithDescription("Candidates produced by the extractor"),
	); err != nil {
		return err
	}

	if t.CandidatesSaved, err = t.meter.Int64Counter(
		"cookiemap.candidates.saved",
		metric.WithDescription("Candidates written to the candidate table"),
	); err != nil {
		return err
	}

	if t.CandidatesRejected, err = t.meter.Int64Counter(
		"cookiemap.candidates.rejected",
		metric.WithDescription("Candidates dropped by the region-code filter"),
	); err != nil {
		return err
	}

	if t.Promotions, err = t.meter.Int64Counter(
		"cookiemap.promotion.total",
		metric.WithDescription("Candidates promoted to published stores"),
	); err != nil {
		return err
	}

	if t.PromotionErrors, err = t.meter.Int64Counter(
		"cookiemap.promotion.errors",
		metric.WithDescription("Failed promotions"),
	); err != nil {
		return err
	}

	return nil
}

// ServiceName name the tracer and meter were created under
func (t *Telemetry) ServiceName() string {
	return t.serviceName
}

// StartSpan starts a span on the service tracer
func (t *Telemetry) StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// RecordDiscovery one finished discovery run for platform
func (t *Telemetry) RecordDiscovery(ctx context.Context, platform string, duration time.Duration, fetched, parsed, saved, rejected int, err error) {
	attrs := metric.WithAttributes(attribute.String("platform", platform))

	t.DiscoveryRuns.Add(ctx, 1, attrs)
	t.DiscoveryDuration.Record(ctx, duration.Seconds(), attrs)
	if err != nil {
		t.DiscoveryErrors.Add(ctx, 1, attrs)
		return
	}

	t.PostsFetched.Add(ctx, int64(fetched), attrs)
	t.CandidatesParsed.Add(ctx, int64(parsed), attrs)
	t.CandidatesSaved.Add(ctx, int64(saved), attrs)
	t.CandidatesRejected.Add(ctx, int64(rejected), attrs)
}

// RecordPromotion one promotion attempt for a candidate discovered on platform
func (t *Telemetry) RecordPromotion(ctx context.Context, platform string, err error) {
	attrs := metric.WithAttributes(attribute.String("platform", platform))
	if err != nil {
		t.PromotionErrors.Add(ctx, 1, attrs)
		return
	}
	t.Promotions.Add(ctx, 1, attrs)
}

// Shutdown flushes and stops both providers
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.tracerProvider != nil {
		if err := t.tracerProvider.Shutdown(ctx); err != nil {
			return err
		}
	}
	if t.meterProvider != nil {
		if err := t.meterProvider.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
