package logger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "helloteam.app/api"

// Span is an OTel span bound to the context it was started on.
type Span struct {
	ctx  context.Context
	span trace.Span
}

// StartSpan opens an internal span under whatever span ctx already carries.
//
//	span := logger.StartSpan(ctx, "auth.sign_up")
//	defer func() { span.Finish(err) }()
//	ctx = span.Context()
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) *Span {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
	return &Span{ctx: ctx, span: span}
}

// StartQueuedSpan opens a consumer span for a queued message. When traceID is
// the hex id of the request that enqueued it, the span joins that trace.
func StartQueuedSpan(ctx context.Context, traceID *string, name string, attrs ...attribute.KeyValue) *Span {
	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(attrs...),
	}

	if traceID != nil {
		if tid, err := trace.TraceIDFromHex(*traceID); err == nil {
			remote := trace.NewSpanContext(trace.SpanContextConfig{
				TraceID:    tid,
				TraceFlags: trace.FlagsSampled,
				Remote:     true,
			})
			ctx = trace.ContextWithRemoteSpanContext(ctx, remote)
			opts = append(opts, trace.WithLinks(trace.Link{SpanContext: remote}))
		}
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, name, opts...)
	return &Span{ctx: ctx, span: span}
}

func (s *Span) Context() context.Context {
	return s.ctx
}

// Finish marks the span failed when err is non-nil and ends it.
func (s *Span) Finish(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}
