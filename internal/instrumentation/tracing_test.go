package instrumentation

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSpanAttributeBuilder(t *testing.T) {
	builder := NewSpanAttributeBuilder().
		WithTool("task_list").
		WithService("task").
		WithOperation("list").
		WithWorkspace("work").
		WithResource("task", "task_8f3kq2").
		WithReadOnly(true)

	attrs := builder.Build()

	if len(attrs) != 7 {
		t.Errorf("expected 7 attributes, got %d", len(attrs))
	}

	// Verify attributes are present
	attrMap := make(map[string]interface{})
	for _, attr := range attrs {
		attrMap[string(attr.Key)] = attr.Value.AsInterface()
	}

	if attrMap[SpanAttrTool] != "task_list" {
		t.Errorf("expected tool 'task_list', got %v", attrMap[SpanAttrTool])
	}
	if attrMap[SpanAttrService] != "task" {
		t.Errorf("expected service 'task', got %v", attrMap[SpanAttrService])
	}
	if attrMap[SpanAttrOperation] != "list" {
		t.Errorf("expected operation 'list', got %v", attrMap[SpanAttrOperation])
	}
	if attrMap[SpanAttrWorkspace] != "work" {
		t.Errorf("expected workspace 'work', got %v", attrMap[SpanAttrWorkspace])
	}
	if attrMap[SpanAttrResourceType] != "task" {
		t.Errorf("expected resource type 'task', got %v", attrMap[SpanAttrResourceType])
	}
	if attrMap[SpanAttrResourceID] != "task_8f3kq2" {
		t.Errorf("expected resource id 'task_8f3kq2', got %v", attrMap[SpanAttrResourceID])
	}
	if attrMap[SpanAttrReadOnly] != true {
		t.Errorf("expected read_only true, got %v", attrMap[SpanAttrReadOnly])
	}
}

func TestSpanAttributeBuilder_EmptyValues(t *testing.T) {
	// Empty workspace, resource, and inference strategy should not be added
	builder := NewSpanAttributeBuilder().
		WithTool("test_tool").
		WithWorkspace("").
		WithResource("", "").
		WithInference("")

	attrs := builder.Build()

	// Only tool should be present
	if len(attrs) != 1 {
		t.Errorf("expected 1 attribute (only tool), got %d", len(attrs))
	}
}

func TestSpanAttributeBuilder_Inference(t *testing.T) {
	attrs := NewSpanAttributeBuilder().
		WithInference("fuzzy").
		Build()

	if len(attrs) != 1 {
		t.Fatalf("expected 1 attribute, got %d", len(attrs))
	}
	if string(attrs[0].Key) != SpanAttrInference {
		t.Errorf("expected key %q, got %q", SpanAttrInference, attrs[0].Key)
	}
	if attrs[0].Value.AsString() != "fuzzy" {
		t.Errorf("expected value 'fuzzy', got %q", attrs[0].Value.AsString())
	}
}

func TestStartSpan(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Initialize provider to set global tracer
	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	spanCtx, span := StartSpan(ctx, "test-span")
	defer span.End()

	if spanCtx == nil {
		t.Error("expected context to be non-nil")
	}
	if span == nil {
		t.Error("expected span to be non-nil")
	}
}

func TestStartToolSpan(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	spanCtx, span := StartToolSpan(ctx, "task_list")
	defer span.End()

	if spanCtx == nil {
		t.Error("expected context to be non-nil")
	}
	if span == nil {
		t.Error("expected span to be non-nil")
	}
}

func TestStartAPISpan(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	spanCtx, span := StartAPISpan(ctx, "task", "list")
	defer span.End()

	if spanCtx == nil {
		t.Error("expected context to be non-nil")
	}
	if span == nil {
		t.Error("expected span to be non-nil")
	}
}

func TestSetSpanError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	_, span := StartSpan(ctx, "test-span")

	// Should not panic
	SetSpanError(span, errors.New("test error"))
	SetSpanError(span, nil) // nil error should be safe
	span.End()
}

func TestSetSpanSuccess(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	_, span := StartSpan(ctx, "test-span")

	// Should not panic
	SetSpanSuccess(span)
	span.End()
}

func TestAddSpanEvent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	_, span := StartSpan(ctx, "test-span")

	// Should not panic
	AddSpanEvent(span, "test-event")
	span.End()
}

func TestGetTraceID_NoSpan(t *testing.T) {
	ctx := context.Background()
	traceID := GetTraceID(ctx)
	if traceID != "" {
		t.Errorf("expected empty trace ID for context without span, got %q", traceID)
	}
}

func TestGetSpanID_NoSpan(t *testing.T) {
	ctx := context.Background()
	spanID := GetSpanID(ctx)
	if spanID != "" {
		t.Errorf("expected empty span ID for context without span, got %q", spanID)
	}
}

func TestSpanContextString_NoSpan(t *testing.T) {
	ctx := context.Background()
	ctxStr := SpanContextString(ctx)
	if ctxStr != "" {
		t.Errorf("expected empty context string for context without span, got %q", ctxStr)
	}
}
