// Package network defines the collaborator boundary to the identity
// network: the client, opened contexts, and the stores and channels they
// yield. The facade orchestrates calls across this boundary and never
// assumes anything about the wire protocol behind it.
package network

import (
	"context"

	"verigo/contracts/credential"
	"verigo/contracts/identity"
	"verigo/contracts/message"
)

// Client is the identity-network client shared by every resolver. It is
// session-independent: public profiles and external contexts are opened
// against it directly, not through the caller's own session context.
type Client interface {
	// OpenPublicProfile opens the named public profile store of an identity.
	// A nil store with a nil error means the identity has no profile under
	// that context; only transport failures return an error.
	OpenPublicProfile(ctx context.Context, did, contextName, profileType string) (ProfileStore, error)

	// OpenExternalContext opens a read-only context scoped to a remote
	// identity, letting verification work on credentials that belong to
	// other accounts without impersonating them.
	OpenExternalContext(ctx context.Context, contextName, did string) (Context, error)

	// GetSchema fetches the schema object for a schema identifier.
	GetSchema(ctx context.Context, schemaID string) (Schema, error)

	// DIDClient exposes the client's DID resolution subsystem.
	DIDClient() DIDClient
}

// Context is an established network context for one identity and one
// application context name.
type Context interface {
	// AccountDID resolves the DID of the account behind this context.
	AccountDID(ctx context.Context) (string, error)

	// Client returns the network client this context was opened from.
	Client() Client

	// Messaging establishes the messaging channel for this context.
	Messaging(ctx context.Context) (Messaging, error)

	// FetchURI resolves a decoded verida URI against this context and
	// returns the signed token it references.
	FetchURI(ctx context.Context, uri string) (string, error)
}

// ProfileStore reads records from a public profile store.
type ProfileStore interface {
	// GetMany reads all fields matching filter. The facade always passes
	// empty filter and options (full scan semantics).
	GetMany(ctx context.Context, filter, options map[string]any) (map[string]any, error)
}

// Schema is a fetched schema object.
type Schema interface {
	// Specification reads the schema's specification document.
	Specification(ctx context.Context) (map[string]any, error)
}

// Messaging is an established messaging channel.
type Messaging interface {
	// Send delivers an envelope to the recipient DID. A nil return means
	// the transport acknowledged the send.
	Send(ctx context.Context, did string, env message.Envelope) error
}

// DIDClient resolves DID documents.
type DIDClient interface {
	Get(ctx context.Context, did string) (*identity.DIDDocument, error)
}

// VerifyOptions is the verification policy for a presentation. The facade
// verifies against the empty default policy; fields are reserved for
// callers that need to pin issuers or proof types.
type VerifyOptions struct {
	// TrustedIssuers restricts verification to presentations signed by one
	// of the listed DIDs. Empty means any issuer.
	TrustedIssuers []string
}

// PresentationVerifier cryptographically verifies a presentation token and
// returns its decoded payload. Implementations must treat any signature or
// structure failure as a hard error; no payload data may be exposed on
// failure.
type PresentationVerifier interface {
	VerifyPresentation(ctx context.Context, token string, opts VerifyOptions) (*credential.Presentation, error)
}
