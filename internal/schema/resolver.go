// Package schema fetches schema specification documents on demand.
package schema

import (
	"context"
	"log/slog"

	"verigo/contracts/network"
	"verigo/internal/platform/tracer"
	dErrors "verigo/pkg/domain-errors"
)

// Resolver fetches schema specifications through a caller-supplied network
// context. Verification passes the external context opened for the
// credential's originating identity, not the session's own. Specifications
// are never cached here.
type Resolver struct {
	logger *slog.Logger
	tracer tracer.Tracer
}

// Option configures the Resolver.
type Option func(*Resolver)

// WithLogger sets the logger for the resolver.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// WithTracer sets the tracer for the resolver.
func WithTracer(t tracer.Tracer) Option {
	return func(r *Resolver) {
		r.tracer = t
	}
}

// NewResolver creates a schema resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{tracer: tracer.NewNoop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Specs fetches the schema object for schemaID via the context's client and
// reads its specification document. Unknown identifiers and fetch failures
// map to schema_resolution_failed.
func (r *Resolver) Specs(ctx context.Context, schemaID string, netCtx network.Context) (map[string]any, error) {
	if schemaID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "schema id is required")
	}
	if netCtx == nil {
		return nil, dErrors.New(dErrors.CodeNoActiveSession, "schema resolution requires an active context")
	}

	ctx, span := r.tracer.Start(ctx, tracer.SpanSchemaResolve,
		tracer.String(tracer.AttrSchemaID, schemaID),
	)
	spec, err := r.specs(ctx, schemaID, netCtx)
	span.End(err)
	return spec, err
}

func (r *Resolver) specs(ctx context.Context, schemaID string, netCtx network.Context) (map[string]any, error) {
	obj, err := netCtx.Client().GetSchema(ctx, schemaID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeSchemaResolution, "schema fetch failed")
	}
	if obj == nil {
		return nil, dErrors.New(dErrors.CodeSchemaResolution, "unknown schema "+schemaID)
	}

	spec, err := obj.Specification(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeSchemaResolution, "reading schema specification failed")
	}

	if r.logger != nil {
		r.logger.InfoContext(ctx, "resolved schema specification", "schema_id", schemaID)
	}
	return spec, nil
}
