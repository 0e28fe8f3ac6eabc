package telemetry

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const spanLocalsKey = "otel-span"

// MiddlewareConfig tracing middleware options
type MiddlewareConfig struct {
	Skip func(*fiber.Ctx) bool
}

// DefaultSkip health probes, docs and the scrape endpoint are not traced
func DefaultSkip(c *fiber.Ctx) bool {
	path := c.Path()
	return path == "/healthz" || path == "/metrics" || strings.HasPrefix(path, "/v1/docs")
}

// Middleware server span plus HTTP instruments for every request
func (t *Telemetry) Middleware(config ...MiddlewareConfig) fiber.Handler {
	cfg := MiddlewareConfig{Skip: DefaultSkip}
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		if cfg.Skip != nil && cfg.Skip(c) {
			return c.Next()
		}

		start := time.Now()
		method := c.Method()
		path := c.Path()

		active := metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		)
		t.HTTPActiveRequests.Add(c.Context(), 1, active)
		defer t.HTTPActiveRequests.Add(c.Context(), -1, active)

		ctx := otel.GetTextMapPropagator().Extract(c.Context(), propagation.HeaderCarrier(c.GetReqHeaders()))
		ctx, span := t.tracer.Start(ctx, method+" "+path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(method),
				semconv.URLPath(path),
				semconv.ServerAddress(c.Hostname()),
				semconv.UserAgentOriginal(string(c.Request().Header.UserAgent())),
			),
		)
		defer span.End()

		c.Locals(spanLocalsKey, span)
		c.SetUserContext(ctx)

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		span.SetAttributes(semconv.HTTPResponseStatusCode(status))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		route := c.Route().Path
		if route == "" {
			route = path
		}
		attrs := metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", route),
			attribute.String("status", strconv.Itoa(status)),
		)
		t.HTTPRequestsTotal.Add(c.Context(), 1, attrs)
		t.HTTPRequestDuration.Record(c.Context(), time.Since(start).Seconds(), attrs)

		return err
	}
}

// SpanFromContext request span stored by Middleware, nil when untraced
func SpanFromContext(c *fiber.Ctx) trace.Span {
	span, ok := c.Locals(spanLocalsKey).(trace.Span)
	if !ok {
		return nil
	}
	return span
}
