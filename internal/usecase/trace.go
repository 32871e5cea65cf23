package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("hoops-reference/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan opens a child span for a page loader. Without a sampled
// parent (tests, the CLI) it returns a noop span and the context unchanged.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// startPage tags ctx with the page being built, so every log entry and span
// under it names that page, then opens the loader span.
func startPage(ctx context.Context, page, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx = logging.WithPage(ctx, page)
	attrs = append(attrs, attribute.String("hoops.page", page))
	return startUsecaseSpan(ctx, spanName, attrs...)
}

func entityAttr(kind, id string) attribute.KeyValue {
	return attribute.String("hoops."+kind+"_id", strings.TrimSpace(id))
}
