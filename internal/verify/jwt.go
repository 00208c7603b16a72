// Package verify provides the default PresentationVerifier: a JWT verifier
// for ES256K-signed presentation tokens whose signer keys are resolved from
// DID documents.
package verify

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/golang-jwt/jwt/v5"

	credcontracts "verigo/contracts/credential"
	"verigo/contracts/network"
	dErrors "verigo/pkg/domain-errors"
)

// KeyResolver resolves the signing key for a DID. internal/did.Resolver
// satisfies it.
type KeyResolver interface {
	PublicKey(ctx context.Context, did string) (*btcec.PublicKey, error)
}

// JWTVerifier verifies presentation tokens: outer presentation JWT first,
// then every embedded credential JWT, each against its own issuer's key.
// Any signature or structure failure is a hard error and no payload data is
// returned.
type JWTVerifier struct {
	keys   KeyResolver
	logger *slog.Logger
	parser *jwt.Parser
}

// Option configures the JWTVerifier.
type Option func(*JWTVerifier)

// WithLogger sets the logger for the verifier.
func WithLogger(l *slog.Logger) Option {
	return func(v *JWTVerifier) {
		v.logger = l
	}
}

// NewJWTVerifier creates a verifier resolving signer keys through keys.
// Panics if keys is nil - fail fast at construction.
func NewJWTVerifier(keys KeyResolver, opts ...Option) *JWTVerifier {
	if keys == nil {
		panic("verify.NewJWTVerifier: key resolver is required")
	}
	v := &JWTVerifier{
		keys:   keys,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{ES256KAlg})),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// presentationClaims is the payload of the outer presentation JWT.
// Embedded credentials arrive either as compact JWS strings or as decoded
// objects; both are kept raw until the outer signature has been checked.
type presentationClaims struct {
	VP struct {
		VerifiableCredential []json.RawMessage `json:"verifiableCredential"`
	} `json:"vp"`
	jwt.RegisteredClaims
}

// credentialClaims is the payload of an embedded credential JWT.
type credentialClaims struct {
	VC                json.RawMessage        `json:"vc"`
	CredentialSubject *credcontracts.Subject `json:"credentialSubject"`
	ExpirationDate    string                 `json:"expirationDate"`
	jwt.RegisteredClaims
}

// VerifyPresentation verifies token and returns its decoded payload.
func (v *JWTVerifier) VerifyPresentation(ctx context.Context, token string, opts network.VerifyOptions) (*credcontracts.Presentation, error) {
	var claims presentationClaims
	if _, err := v.parser.ParseWithClaims(token, &claims, v.keyfunc(ctx)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeCredentialVerification, "presentation token rejected")
	}

	if len(opts.TrustedIssuers) > 0 && !slices.Contains(opts.TrustedIssuers, claims.Issuer) {
		return nil, dErrors.New(dErrors.CodeCredentialVerification, "presentation signed by untrusted issuer")
	}

	pres := &credcontracts.Presentation{}
	for _, raw := range claims.VP.VerifiableCredential {
		cred, err := v.decodeCredential(ctx, raw)
		if err != nil {
			return nil, err
		}
		pres.VerifiableCredential = append(pres.VerifiableCredential, cred)
	}

	if v.logger != nil {
		v.logger.InfoContext(ctx, "verified presentation",
			"credentials", len(pres.VerifiableCredential),
		)
	}
	return pres, nil
}

// decodeCredential handles both embedded forms: a compact credential JWS,
// verified against its own issuer's key, or an already-decoded object.
func (v *JWTVerifier) decodeCredential(ctx context.Context, raw json.RawMessage) (credcontracts.Credential, error) {
	var compact string
	if err := json.Unmarshal(raw, &compact); err == nil {
		return v.verifyCredentialJWT(ctx, compact)
	}

	var cred credcontracts.Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return credcontracts.Credential{}, dErrors.Wrap(err, dErrors.CodeCredentialVerification, "embedded credential is not decodable")
	}
	return cred, nil
}

func (v *JWTVerifier) verifyCredentialJWT(ctx context.Context, token string) (credcontracts.Credential, error) {
	var claims credentialClaims
	if _, err := v.parser.ParseWithClaims(token, &claims, v.keyfunc(ctx)); err != nil {
		return credcontracts.Credential{}, dErrors.Wrap(err, dErrors.CodeCredentialVerification, "embedded credential token rejected")
	}
	return claims.toCredential()
}

// toCredential normalizes the JWT payload into the contract shape. The vc
// claim carries the issuer fields; registered claims fill whatever the
// issuer left out of it.
func (c *credentialClaims) toCredential() (credcontracts.Credential, error) {
	var cred credcontracts.Credential

	if len(c.VC) > 0 {
		if err := json.Unmarshal(c.VC, &cred.VC); err != nil {
			return credcontracts.Credential{}, dErrors.Wrap(err, dErrors.CodeCredentialVerification, "credential vc claim is not decodable")
		}
	}
	if cred.VC.Issuer == "" {
		cred.VC.Issuer = c.Issuer
	}
	if cred.VC.Subject == "" {
		cred.VC.Subject = c.Subject
	}

	switch {
	case c.CredentialSubject != nil:
		cred.CredentialSubject = *c.CredentialSubject
	case len(c.VC) > 0:
		// Standard JWT credentials nest the subject under the vc claim.
		var nested struct {
			CredentialSubject *credcontracts.Subject `json:"credentialSubject"`
		}
		if err := json.Unmarshal(c.VC, &nested); err == nil && nested.CredentialSubject != nil {
			cred.CredentialSubject = *nested.CredentialSubject
		}
	}

	cred.ExpirationDate = c.ExpirationDate
	if cred.ExpirationDate == "" && c.ExpiresAt != nil {
		cred.ExpirationDate = c.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return cred, nil
}

// keyfunc resolves the verification key from the token's iss claim.
func (v *JWTVerifier) keyfunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		issuer, err := token.Claims.GetIssuer()
		if err != nil || issuer == "" {
			return nil, dErrors.New(dErrors.CodeCredentialVerification, "token carries no issuer")
		}
		return v.keys.PublicKey(ctx, issuer)
	}
}

var _ network.PresentationVerifier = (*JWTVerifier)(nil)
