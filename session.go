// Package verigo is a session and identity facade over a Verida-style
// decentralized-identity network. A Session holds one connected account's
// network context and exposes profile resolution, schema resolution,
// credential-presentation verification, DID document resolution, and inbox
// messaging on top of it. Collaborator boundaries live in contracts/network;
// callers branch on failure kinds via pkg/domain-errors.
package verigo

import (
	"context"
	"log/slog"
	"sync"
	"time"

	credcontracts "verigo/contracts/credential"
	"verigo/contracts/identity"
	"verigo/contracts/message"
	"verigo/contracts/network"
	"verigo/internal/credential"
	"verigo/internal/did"
	"verigo/internal/messaging"
	"verigo/internal/platform/config"
	"verigo/internal/platform/logger"
	"verigo/internal/platform/tracer"
	"verigo/internal/profile"
	"verigo/internal/schema"
	"verigo/internal/verify"
	dErrors "verigo/pkg/domain-errors"
)

// Session is an explicit session object owning the active network context
// and the resolvers built around it. One Session serves one account at a
// time; concurrent Connect racing Logout must be serialized by the caller,
// but reads and the messaging channel are internally synchronized.
type Session struct {
	client  network.Client
	cfg     config.Facade
	logger  *slog.Logger
	tracer  tracer.Tracer
	presVer network.PresentationVerifier

	profiles  *profile.Resolver
	schemas   *schema.Resolver
	dids      *did.Resolver
	verifier  *credential.Verifier
	messenger *messaging.Messenger

	mu         sync.RWMutex
	activeCtx  network.Context
	did        string
	connected  bool
	curProfile *identity.Profile
	curDIDDoc  *identity.DIDDocument
	listeners  []func(Event)
}

// Option configures a Session.
type Option func(*Session)

// WithConfig overrides the environment-derived configuration.
func WithConfig(cfg config.Facade) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithLogger sets the logger for the session and its resolvers.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithTracer sets the tracer for the session and its resolvers.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Session) {
		s.tracer = t
	}
}

// WithPresentationVerifier replaces the default ES256K JWT verifier.
func WithPresentationVerifier(v network.PresentationVerifier) Option {
	return func(s *Session) {
		s.presVer = v
	}
}

// New creates a Session over the given identity-network client. Panics if
// client is nil - fail fast at construction. Configuration defaults come
// from the environment unless WithConfig is given.
func New(client network.Client, opts ...Option) *Session {
	if client == nil {
		panic("verigo.New: network client is required")
	}
	s := &Session{
		client: client,
		cfg:    config.FromEnv(),
		logger: logger.New(),
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.dids = did.NewResolver(client.DIDClient(),
		did.WithLogger(s.logger),
		did.WithTracer(s.tracer),
	)
	if s.presVer == nil {
		s.presVer = verify.NewJWTVerifier(s.dids, verify.WithLogger(s.logger))
	}
	s.profiles = profile.NewResolver(client, s.cfg.VaultContextName,
		profile.WithLogger(s.logger),
		profile.WithTracer(s.tracer),
	)
	s.schemas = schema.NewResolver(
		schema.WithLogger(s.logger),
		schema.WithTracer(s.tracer),
	)
	s.verifier = credential.NewVerifier(client, s.presVer, s.profiles, s.schemas,
		s.cfg.PublicOrigin,
		credential.WithLogger(s.logger),
		credential.WithTracer(s.tracer),
		credential.WithMetrics(credentialMetrics),
	)
	s.messenger = messaging.NewMessenger(s.cfg.RecipientContextName,
		messaging.WithLogger(s.logger),
		messaging.WithTracer(s.tracer),
	)
	return s
}

// Connect binds the session to an already-established network context and
// resolves the account's DID from it. A context that cannot yield a DID
// fails with account_resolution_failed and leaves the session disconnected.
// Connecting over an existing session replaces it, including the cached
// messaging channel.
func (s *Session) Connect(ctx context.Context, netCtx network.Context) error {
	if netCtx == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "network context is required")
	}
	ctx, span := s.tracer.Start(ctx, tracer.SpanSessionConnect)

	accountDID, err := netCtx.AccountDID(ctx)
	if err != nil {
		span.End(err)
		return dErrors.Wrap(err, dErrors.CodeAccountResolution, "context yielded no account did")
	}
	span.SetAttributes(tracer.String(tracer.AttrDID, tracer.HashDID(accountDID)))
	span.End(nil)

	s.mu.Lock()
	wasConnected := s.connected
	s.activeCtx = netCtx
	s.did = accountDID
	s.connected = true
	s.mu.Unlock()

	s.messenger.Reset()
	if !wasConnected {
		metricActiveSessions.Inc()
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "session connected", "did", tracer.HashDID(accountDID))
	}
	s.emit(Event{Type: EventConnected, DID: accountDID})
	return nil
}

// Logout resets the session to its disconnected state: context, DID,
// connected flag, cached messaging channel, and the last-fetched profile
// and DID document. Idempotent; never fails.
func (s *Session) Logout() {
	s.mu.Lock()
	wasConnected := s.connected
	lastDID := s.did
	s.activeCtx = nil
	s.did = ""
	s.connected = false
	s.curProfile = nil
	s.curDIDDoc = nil
	s.mu.Unlock()

	s.messenger.Reset()
	if wasConnected {
		metricActiveSessions.Dec()
		if s.logger != nil {
			s.logger.Info("session disconnected", "did", tracer.HashDID(lastDID))
		}
		s.emit(Event{Type: EventDisconnected, DID: lastDID})
	}
}

// IsConnected reports whether the session holds an active context.
func (s *Session) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// DID returns the connected account's DID, or empty when disconnected.
func (s *Session) DID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.did
}

// GetProfile resolves the public profile of a DID. contextName defaults to
// the configured vault context when empty. Absence is a nil profile, not an
// error. Profiles are public, so no active session is required. The result
// is kept as the session's current profile.
func (s *Session) GetProfile(ctx context.Context, didStr, contextName string) (*identity.Profile, error) {
	prof, err := s.profiles.Resolve(ctx, didStr, contextName)
	if err != nil {
		return nil, err
	}
	if prof != nil {
		s.mu.Lock()
		s.curProfile = prof
		s.mu.Unlock()
		s.emit(Event{Type: EventProfileRefreshed, DID: prof.DID})
	}
	return prof, nil
}

// GetSchemaSpecs fetches the specification document for a schema identifier
// through the session's own context. Requires an active session.
func (s *Session) GetSchemaSpecs(ctx context.Context, schemaID string) (map[string]any, error) {
	s.mu.RLock()
	netCtx := s.activeCtx
	s.mu.RUnlock()
	return s.schemas.Specs(ctx, schemaID, netCtx)
}

// ReadVerifiedCredential decodes a shared presentation URI, verifies the
// token it references, and resolves issuer profile, subject profile, and
// schema specification into one aggregate result. The pipeline opens its
// own context for the credential's originating identity, so no active
// session is required.
func (s *Session) ReadVerifiedCredential(ctx context.Context, encodedURI string) (*credcontracts.VerificationResult, error) {
	return s.verifier.Read(ctx, encodedURI)
}

// HasCredentialExpired reports whether the credential's expiration instant
// lies strictly before now. Credentials without an expiration date never
// expire.
func (s *Session) HasCredentialExpired(cred credcontracts.Credential) bool {
	expired := credential.HasExpired(cred, time.Now())
	if expired {
		credentialMetrics.ExpiredCredentials.Inc()
	}
	return expired
}

// GetDIDDocument resolves the DID document for a DID and keeps it as the
// session's current document.
func (s *Session) GetDIDDocument(ctx context.Context, didStr string) (*identity.DIDDocument, error) {
	doc, err := s.dids.Resolve(ctx, didStr)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.curDIDDoc = doc
	s.mu.Unlock()
	return doc, nil
}

// SendMessage dispatches payload into the connected account's own inbox.
// The messaging channel is established lazily on first send and reused
// until logout. Returns true on acknowledged send.
func (s *Session) SendMessage(ctx context.Context, payload message.Payload) (bool, error) {
	s.mu.RLock()
	netCtx := s.activeCtx
	accountDID := s.did
	s.mu.RUnlock()

	if err := s.messenger.Send(ctx, netCtx, accountDID, payload); err != nil {
		return false, err
	}
	metricMessagesSent.Inc()
	return true, nil
}

// CurrentProfile returns the last profile resolved through this session,
// or nil. Cleared on logout.
func (s *Session) CurrentProfile() *identity.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.curProfile
}

// CurrentDIDDocument returns the last DID document resolved through this
// session, or nil. Cleared on logout.
func (s *Session) CurrentDIDDocument() *identity.DIDDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.curDIDDoc
}

// OnEvent registers a listener for session lifecycle events. Listeners are
// invoked synchronously in registration order.
func (s *Session) OnEvent(fn func(Event)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Session) emit(ev Event) {
	s.mu.RLock()
	listeners := make([]func(Event), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(ev)
	}
}
