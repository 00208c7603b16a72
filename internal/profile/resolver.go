// Package profile resolves public basic profiles by DID.
package profile

import (
	"context"
	"log/slog"

	"github.com/mitchellh/mapstructure"

	"verigo/contracts/identity"
	"verigo/contracts/network"
	"verigo/internal/platform/tracer"
	dErrors "verigo/pkg/domain-errors"
)

// profileType is the public store every identity keeps its basic profile in.
const profileType = "basicProfile"

// Resolver reads public profiles through the shared network client.
// Profiles are public and independent of any session, so lookups never go
// through the caller's own context.
type Resolver struct {
	client             network.Client
	defaultContextName string
	logger             *slog.Logger
	tracer             tracer.Tracer
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

// NewResolver creates a profile resolver. defaultContextName is used when a
// lookup does not name a context. Panics if client is nil - fail fast at
// construction.
func NewResolver(client network.Client, defaultContextName string, opts ...Option) *Resolver {
	if client == nil {
		panic("profile.NewResolver: network client is required")
	}
	r := &Resolver{
		client:             client,
		defaultContextName: defaultContextName,
		tracer:             tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve reads the basic profile of did under contextName, falling back to
// the default vault context when contextName is empty. A nil profile with a
// nil error means the identity has no profile under that context; that is a
// valid outcome, not a failure. Only transport errors are reported, as
// profile_lookup_failed.
func (r *Resolver) Resolve(ctx context.Context, did, contextName string) (*identity.Profile, error) {
	if did == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "did is required")
	}
	if contextName == "" {
		contextName = r.defaultContextName
	}

	ctx, span := r.tracer.Start(ctx, tracer.SpanProfileResolve,
		tracer.String(tracer.AttrDID, tracer.HashDID(did)),
		tracer.String(tracer.AttrContextName, contextName),
	)
	prof, err := r.resolve(ctx, did, contextName)
	span.SetAttributes(tracer.Bool(tracer.AttrProfileHit, prof != nil))
	span.End(err)
	return prof, err
}

func (r *Resolver) resolve(ctx context.Context, did, contextName string) (*identity.Profile, error) {
	store, err := r.client.OpenPublicProfile(ctx, did, contextName, profileType)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeProfileLookup, "opening public profile failed")
	}
	if store == nil {
		// No profile under this context.
		return nil, nil
	}

	// Full scan: no filter, no options.
	record, err := store.GetMany(ctx, map[string]any{}, map[string]any{})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeProfileLookup, "reading public profile failed")
	}
	if record == nil {
		return nil, nil
	}

	var prof identity.Profile
	if err := mapstructure.Decode(record, &prof); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeProfileLookup, "profile record has unexpected shape")
	}
	// Stamp the DID for traceability; it is not part of the stored record.
	prof.DID = did

	if r.logger != nil {
		r.logger.InfoContext(ctx, "resolved public profile",
			"did", did,
			"context_name", contextName,
		)
	}
	return &prof, nil
}
