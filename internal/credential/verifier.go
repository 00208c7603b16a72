// Package credential implements the verification and resolution pipeline
// for shareable credential presentations: decode the URI, fetch and verify
// the signed token, then enrich the embedded credential with issuer and
// subject profiles and its schema specification.
package credential

import (
	"context"
	"log/slog"
	"time"

	credcontracts "verigo/contracts/credential"
	"verigo/contracts/identity"
	"verigo/contracts/network"
	"verigo/internal/credential/metrics"
	"verigo/internal/platform/tracer"
	"verigo/internal/uri"
	dErrors "verigo/pkg/domain-errors"
)

// legacyCredentialManagerContext is the one historical issuer context whose
// name must be propagated verbatim into the issuer profile lookup. The shim
// covers exactly this literal; other context hints fall back to the default
// vault context.
const legacyCredentialManagerContext = "Verida: Credential Manager"

// Pipeline stage labels used in failure metrics and error messages.
const (
	stageDecode         = "decode"
	stageOpenContext    = "open_context"
	stageFetchToken     = "fetch_token"
	stageVerify         = "verify"
	stageExtract        = "extract"
	stageIssuerProfile  = "issuer_profile"
	stageSubjectProfile = "subject_profile"
	stageSchema         = "schema"
)

// ProfileResolver resolves public profiles by DID. An empty contextName
// selects the default vault context.
type ProfileResolver interface {
	Resolve(ctx context.Context, did, contextName string) (*identity.Profile, error)
}

// SchemaResolver fetches schema specifications through a network context.
type SchemaResolver interface {
	Specs(ctx context.Context, schemaID string, netCtx network.Context) (map[string]any, error)
}

// Verifier runs the credential read pipeline. Stages execute strictly in
// order because each consumes the previous stage's output; a failure at any
// stage aborts the whole run and no partial result is ever returned.
type Verifier struct {
	client   network.Client
	verifier network.PresentationVerifier
	profiles ProfileResolver
	schemas  SchemaResolver
	origin   string
	logger   *slog.Logger
	tracer   tracer.Tracer
	metrics  *metrics.Metrics
}

// Option configures the Verifier.
type Option func(*Verifier)

// WithLogger sets the logger for the verifier.
func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) {
		v.logger = l
	}
}

// WithTracer sets the tracer for the verifier.
func WithTracer(t tracer.Tracer) Option {
	return func(v *Verifier) {
		v.tracer = t
	}
}

// WithMetrics sets the metrics collector for the verifier.
func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Verifier) {
		v.metrics = m
	}
}

// NewVerifier creates a credential verifier. origin prefixes the public
// deep link on results. Panics if a required collaborator is nil - fail
// fast at construction.
func NewVerifier(
	client network.Client,
	presVerifier network.PresentationVerifier,
	profiles ProfileResolver,
	schemas SchemaResolver,
	origin string,
	opts ...Option,
) *Verifier {
	if client == nil {
		panic("credential.NewVerifier: network client is required")
	}
	if presVerifier == nil {
		panic("credential.NewVerifier: presentation verifier is required")
	}
	if profiles == nil {
		panic("credential.NewVerifier: profile resolver is required")
	}
	if schemas == nil {
		panic("credential.NewVerifier: schema resolver is required")
	}
	v := &Verifier{
		client:   client,
		verifier: presVerifier,
		profiles: profiles,
		schemas:  schemas,
		origin:   origin,
		tracer:   tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Read decodes encodedURI, fetches and verifies the presentation token it
// references, and resolves issuer profile, subject profile, and schema
// specification into one aggregate result. The external context is opened
// for the credential's originating identity, so reads work on credentials
// belonging to other accounts without impersonating them.
func (v *Verifier) Read(ctx context.Context, encodedURI string) (*credcontracts.VerificationResult, error) {
	start := time.Now()
	ctx, span := v.tracer.Start(ctx, tracer.SpanCredentialRead)

	result, stage, err := v.read(ctx, encodedURI)
	if err != nil {
		span.SetAttributes(tracer.String(tracer.AttrStage, stage))
		span.End(err)
		if v.metrics != nil {
			v.metrics.VerificationFailures.WithLabelValues(stage).Inc()
		}
		if v.logger != nil {
			v.logger.WarnContext(ctx, "credential read failed", "stage", stage, "error", err)
		}
		return nil, err
	}
	span.End(nil)

	if v.metrics != nil {
		v.metrics.Verifications.Inc()
		v.metrics.VerificationDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	}
	return result, nil
}

func (v *Verifier) read(ctx context.Context, encodedURI string) (*credcontracts.VerificationResult, string, error) {
	loc, plain, err := uri.Decode(encodedURI)
	if err != nil {
		return nil, stageDecode, err
	}

	extCtx, err := v.client.OpenExternalContext(ctx, loc.ContextName, loc.DID)
	if err != nil {
		return nil, stageOpenContext, dErrors.Wrap(err, dErrors.CodeCredentialVerification, "opening credential context failed")
	}

	// The token is resolved from the decoded plain URI, never a re-encoded
	// form.
	token, err := extCtx.FetchURI(ctx, plain)
	if err != nil {
		return nil, stageFetchToken, dErrors.Wrap(err, dErrors.CodeCredentialVerification, "fetching presentation token failed")
	}

	pres, err := v.verifier.VerifyPresentation(ctx, token, network.VerifyOptions{})
	if err != nil {
		// Hard stop: nothing from the presentation may leak past a failed
		// verification, and no downstream lookups run.
		return nil, stageVerify, dErrors.Wrap(err, dErrors.CodeCredentialVerification, "presentation verification failed")
	}

	cred, ok := pres.First()
	if !ok {
		return nil, stageExtract, dErrors.New(dErrors.CodeCredentialVerification, "presentation carries no credentials")
	}

	// Issuer context shim: one known historical issuer context is named
	// explicitly; everything else resolves under the default vault context.
	var issuerContext string
	if cred.VC.VeridaContextName == legacyCredentialManagerContext {
		issuerContext = cred.VC.VeridaContextName
	}

	issuerProfile, err := v.profiles.Resolve(ctx, cred.VC.Issuer, issuerContext)
	if err != nil {
		return nil, stageIssuerProfile, err
	}

	subjectProfile, err := v.profiles.Resolve(ctx, cred.VC.Subject, "")
	if err != nil {
		return nil, stageSubjectProfile, err
	}

	spec, err := v.schemas.Specs(ctx, cred.CredentialSubject.Schema, extCtx)
	if err != nil {
		return nil, stageSchema, err
	}

	// Cancellation is all-or-nothing: a cancelled run delivers no result
	// even when every stage happened to complete.
	if err := ctx.Err(); err != nil {
		return nil, stageSchema, dErrors.Wrap(err, dErrors.CodeInternal, "credential read cancelled")
	}

	return &credcontracts.VerificationResult{
		PublicURI:      uri.DeepLink(v.origin, encodedURI),
		SchemaSpec:     spec,
		IssuerProfile:  issuerProfile,
		SubjectProfile: subjectProfile,
		Credential:     cred,
	}, "", nil
}
