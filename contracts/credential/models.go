// Package credential defines stable contract types for verifiable
// credentials: the decoded presentation, the embedded credential, and the
// aggregate verification result handed back to callers.
package credential

import (
	"encoding/json"

	"verigo/contracts/identity"
)

// VCClaim is the JWT-level claim block of a decoded credential. Issuer and
// Subject are DIDs; VeridaContextName is an optional hint naming the
// application context the credential was issued under.
type VCClaim struct {
	Issuer            string `json:"issuer"`
	Subject           string `json:"sub"`
	VeridaContextName string `json:"veridaContextName,omitempty"`
}

// Subject carries the credential's claims about its subject. Schema
// identifies the specification document the claims conform to; the claims
// themselves are application-defined and kept as-is.
type Subject struct {
	Schema string
	Claims map[string]any
}

// UnmarshalJSON splits the schema identifier out of the claim map so the
// rest of the pipeline never has to rummage through untyped data for it.
func (s *Subject) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if schema, ok := raw["schema"].(string); ok {
		s.Schema = schema
	}
	delete(raw, "schema")
	s.Claims = raw
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (s Subject) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(s.Claims)+1)
	for k, v := range s.Claims {
		raw[k] = v
	}
	if s.Schema != "" {
		raw["schema"] = s.Schema
	}
	return json.Marshal(raw)
}

// Credential is one verifiable credential embedded in a presentation.
// ExpirationDate is the raw RFC 3339 instant from the wire; absent means
// the credential never expires.
type Credential struct {
	VC                VCClaim `json:"vc"`
	CredentialSubject Subject `json:"credentialSubject"`
	ExpirationDate    string  `json:"expirationDate,omitempty"`
}

// Presentation is the verified payload of a presentation token. This module
// always works with the first embedded credential; a presentation with zero
// credentials is malformed input.
type Presentation struct {
	VerifiableCredential []Credential `json:"verifiableCredential"`
}

// First returns the first embedded credential and whether one exists.
func (p *Presentation) First() (Credential, bool) {
	if p == nil || len(p.VerifiableCredential) == 0 {
		return Credential{}, false
	}
	return p.VerifiableCredential[0], true
}

// VerificationResult is the aggregate outcome of a full credential read:
// the shareable deep link, the schema specification, both resolved profiles,
// and the credential itself. It is constructed fresh per call and never
// returned partially populated.
type VerificationResult struct {
	PublicURI      string            `json:"publicUri"`
	SchemaSpec     map[string]any    `json:"schemaSpec"`
	IssuerProfile  *identity.Profile `json:"issuerProfile"`
	SubjectProfile *identity.Profile `json:"subjectProfile"`
	Credential     Credential        `json:"verifiableCredential"`
}
