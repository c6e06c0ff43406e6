// Package traced wraps rop combinators in OpenTelemetry spans and slog
// events. Results pass through unchanged.
package traced

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/railway/pkg/rop"
)

const instrumentationName = "github.com/ib-77/railway/pkg/rop/traced"

const (
	AttrOutcome   = "rop.outcome"
	AttrErrorKind = "rop.error.kind"
	AttrErrorCode = "rop.error.code"
	AttrItems     = "rop.items"
)

const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeCancelled = "cancelled"
	OutcomePanic     = "panic"
)

// Tracer records one span per combinator call and, when a logger is set,
// one log record: debug for success, warn for failure.
type Tracer struct {
	tracer trace.Tracer
	logger *slog.Logger
}

// New builds a Tracer. A nil tracer falls back to the global provider and
// a nil logger disables logging.
func New(tracer trace.Tracer, logger *slog.Logger) *Tracer {
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}
	return &Tracer{tracer: tracer, logger: logger}
}

// NewWithBridge logs through the OpenTelemetry slog bridge so records
// carry the active span's trace correlation.
func NewWithBridge(tracer trace.Tracer, name string) *Tracer {
	return New(tracer, otelslog.NewLogger(name))
}

func (t *Tracer) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "rop."+op, trace.WithAttributes(attrs...))
}

// run executes op inside its span. A panic ends the span with an error
// status and keeps propagating.
func run[T any](ctx context.Context, t *Tracer, op string,
	f func(ctx context.Context) rop.Result[T], attrs ...attribute.KeyValue) rop.Result[T] {

	ctx, span := t.start(ctx, op, attrs...)
	defer func() {
		if p := recover(); p != nil {
			span.SetAttributes(attribute.String(AttrOutcome, OutcomePanic))
			span.RecordError(fmt.Errorf("panic: %v", p))
			span.SetStatus(codes.Error, "panic")
			span.End()
			t.log(ctx, slog.LevelError, op, slog.String(AttrOutcome, OutcomePanic), slog.Any("panic", p))
			panic(p)
		}
	}()

	return finish(ctx, t, span, op, f(ctx))
}

func finish[T any](ctx context.Context, t *Tracer, span trace.Span, op string, r rop.Result[T]) rop.Result[T] {
	defer span.End()

	if r.IsSuccess() {
		span.SetAttributes(attribute.String(AttrOutcome, OutcomeSuccess))
		span.SetStatus(codes.Ok, "")
		t.log(ctx, slog.LevelDebug, op, slog.String(AttrOutcome, OutcomeSuccess))
		return r
	}

	err := r.Err()
	outcome := OutcomeFailure
	if r.IsCancel() {
		outcome = OutcomeCancelled
	}

	span.SetAttributes(
		attribute.String(AttrOutcome, outcome),
		attribute.String(AttrErrorKind, err.Kind().String()),
		attribute.String(AttrErrorCode, err.Code()),
	)
	span.SetStatus(codes.Error, err.Detail())
	t.log(ctx, slog.LevelWarn, op,
		slog.String(AttrOutcome, outcome),
		slog.String(AttrErrorKind, err.Kind().String()),
		slog.String(AttrErrorCode, err.Code()),
		slog.String("detail", err.Detail()),
	)

	return r
}

func (t *Tracer) log(ctx context.Context, level slog.Level, op string, attrs ...slog.Attr) {
	if t.logger == nil {
		return
	}
	t.logger.LogAttrs(ctx, level, "rop."+op, attrs...)
}
