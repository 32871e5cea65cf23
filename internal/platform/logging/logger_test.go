package logging

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

func TestLoggerWritesKeyValueFields(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved(LevelDebug)
	logger.Warn("page section failed", "section", "awards", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["section"] != "awards" {
		t.Fatalf("unexpected section field: %v", fields["section"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected a field for the dangling key")
	}
}

func TestLoggerContextAddsTraceIDs(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved(LevelInfo)
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "http request")
	logger.InfoContext(context.Background(), "no trace")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}
	if got := entries[0].ContextMap()["trace_id"]; got != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", got)
	}
	if _, ok := entries[1].ContextMap()["trace_id"]; ok {
		t.Fatalf("expected no trace_id without a span")
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved(LevelWarn)
	logger.Info("dropped")
	logger.Debug("dropped")
	logger.Error("kept")

	if logs.Len() != 1 {
		t.Fatalf("unexpected entry count: %d", logs.Len())
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("does not panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("unexpected sync error: %v", err)
	}
}

func TestWithAddsFieldsToEveryEntry(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved(LevelInfo)
	client := logger.With("component", "statsapi")
	client.Info("request failed", "status", 503)
	client.Info("request failed", "status", 502)

	for _, entry := range logs.All() {
		if got := entry.ContextMap()["component"]; got != "statsapi" {
			t.Fatalf("unexpected component field: %v", got)
		}
	}
	if logs.Len() != 2 {
		t.Fatalf("unexpected entry count: %d", logs.Len())
	}
}

func TestContextEntriesNameThePage(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved(LevelInfo)
	ctx := WithPage(context.Background(), "box_score")
	logger.WarnContext(ctx, "page section failed to load", "section", "team_stats")
	logger.WarnContext(context.Background(), "no page here")
	logger.Warn("plain entry")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields[PageKey] != "box_score" || fields["section"] != "team_stats" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	for _, entry := range entries[1:] {
		if _, ok := entry.ContextMap()[PageKey]; ok {
			t.Fatalf("unexpected page field on %q", entry.Message)
		}
	}
	if got := PageFromContext(WithPage(ctx, "")); got != "box_score" {
		t.Fatalf("empty page should keep the outer one, got %q", got)
	}
}
