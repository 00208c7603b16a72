// Package did resolves DID documents and checks that a did:vda identifier
// actually owns the keys its document advertises.
package did

import (
	"context"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"verigo/contracts/identity"
	"verigo/contracts/network"
	"verigo/internal/platform/tracer"
	dErrors "verigo/pkg/domain-errors"
)

const (
	// vdaPrefix introduces blockchain-addressed DIDs whose method-specific
	// identifier is an EVM address derived from a secp256k1 key.
	vdaPrefix = "did:vda:"

	// secp256k1KeyType is the verification method type for vda keys.
	secp256k1KeyType = "EcdsaSecp256k1VerificationKey2019"
)

// Resolver fetches DID documents through the client's DID subsystem and
// validates their shape at the network boundary. It keeps no cache; callers
// hold on to the last-fetched document if they need it.
type Resolver struct {
	didClient network.DIDClient
	logger    *slog.Logger
	tracer    tracer.Tracer
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

// NewResolver creates a DID document resolver.
// Panics if didClient is nil - fail fast at construction.
func NewResolver(didClient network.DIDClient, opts ...Option) *Resolver {
	if didClient == nil {
		panic("did.NewResolver: did client is required")
	}
	r := &Resolver{didClient: didClient, tracer: tracer.NewNoop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the DID document for did. Lookup failures map to
// did_resolution_failed; a resolvable document that fails the ownership
// check is reported the same way, because trusting it would be worse than
// failing the lookup.
func (r *Resolver) Resolve(ctx context.Context, did string) (*identity.DIDDocument, error) {
	if did == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "did is required")
	}

	ctx, span := r.tracer.Start(ctx, tracer.SpanDIDResolve,
		tracer.String(tracer.AttrDID, tracer.HashDID(did)),
	)
	doc, err := r.resolve(ctx, did)
	span.End(err)
	return doc, err
}

func (r *Resolver) resolve(ctx context.Context, did string) (*identity.DIDDocument, error) {
	doc, err := r.didClient.Get(ctx, did)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeDIDResolution, "did document lookup failed")
	}
	if doc == nil {
		return nil, dErrors.New(dErrors.CodeDIDResolution, "no document found for "+did)
	}
	if doc.ID != "" && doc.ID != did {
		return nil, dErrors.New(dErrors.CodeDIDResolution, "document id does not match requested did")
	}
	if err := validateKeyOwnership(did, doc); err != nil {
		return nil, err
	}

	if r.logger != nil {
		r.logger.InfoContext(ctx, "resolved did document",
			"did", did,
			"verification_methods", len(doc.VerificationMethod),
		)
	}
	return doc, nil
}

// PublicKey returns the first secp256k1 verification key in the document
// for did. The presentation verifier uses it to check signatures.
func (r *Resolver) PublicKey(ctx context.Context, did string) (*btcec.PublicKey, error) {
	doc, err := r.Resolve(ctx, did)
	if err != nil {
		return nil, err
	}
	for _, vm := range doc.VerificationMethod {
		if vm.Type != secp256k1KeyType {
			continue
		}
		key, err := parseKey(vm)
		if err != nil {
			return nil, err
		}
		return key, nil
	}
	return nil, dErrors.New(dErrors.CodeDIDResolution, "document carries no secp256k1 key")
}

// validateKeyOwnership checks that at least one secp256k1 key in the
// document derives the address embedded in a did:vda identifier. Documents
// for other DID methods, and documents without secp256k1 keys, pass
// unchecked; full method resolution is not this module's job.
func validateKeyOwnership(did string, doc *identity.DIDDocument) error {
	address, ok := addressFromDID(did)
	if !ok {
		return nil
	}

	checked := false
	for _, vm := range doc.VerificationMethod {
		if vm.Type != secp256k1KeyType {
			continue
		}
		key, err := parseKey(vm)
		if err != nil {
			return err
		}
		checked = true
		if addressFromKey(key) == address {
			return nil
		}
	}
	if !checked {
		return nil
	}
	return dErrors.New(dErrors.CodeDIDResolution, "document keys do not derive the did address")
}

// addressFromDID extracts the lowercased EVM address from a did:vda DID.
func addressFromDID(did string) (string, bool) {
	rest, ok := strings.CutPrefix(did, vdaPrefix)
	if !ok {
		return "", false
	}
	rest = strings.ToLower(rest)
	if !strings.HasPrefix(rest, "0x") || len(rest) != 42 {
		return "", false
	}
	return rest, true
}

// addressFromKey derives the EVM address of a secp256k1 public key:
// keccak-256 of the uncompressed key without its prefix byte, last 20 bytes.
func addressFromKey(key *btcec.PublicKey) string {
	uncompressed := key.SerializeUncompressed()
	hash := sha3.NewLegacyKeccak256()
	hash.Write(uncompressed[1:])
	digest := hash.Sum(nil)
	return "0x" + hex.EncodeToString(digest[12:])
}

// parseKey decodes a verification method's key material, hex or base58.
func parseKey(vm identity.VerificationMethod) (*btcec.PublicKey, error) {
	var raw []byte
	var err error
	switch {
	case vm.PublicKeyHex != "":
		raw, err = hex.DecodeString(strings.TrimPrefix(vm.PublicKeyHex, "0x"))
	case vm.PublicKeyBase58 != "":
		raw, err = base58.Decode(vm.PublicKeyBase58)
	default:
		return nil, dErrors.New(dErrors.CodeDIDResolution, "verification method "+vm.ID+" carries no key material")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeDIDResolution, "verification method key is not decodable")
	}
	key, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeDIDResolution, "verification method key is not a valid secp256k1 key")
	}
	return key, nil
}
