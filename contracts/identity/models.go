// Package identity defines stable contract types for public identity data
// resolved from the network: basic profiles and DID documents.
package identity

// Profile is the public basic profile of an identity, read from the
// "basicProfile" store of a given application context. The store holds
// arbitrary key/value pairs; the common fields are typed and everything
// else lands in Extra. DID is stamped after the fetch for traceability,
// it is not part of the stored record.
type Profile struct {
	DID         string         `json:"did" mapstructure:"did"`
	Name        string         `json:"name,omitempty" mapstructure:"name"`
	Description string         `json:"description,omitempty" mapstructure:"description"`
	Avatar      string         `json:"avatar,omitempty" mapstructure:"avatar"`
	Country     string         `json:"country,omitempty" mapstructure:"country"`
	Website     string         `json:"website,omitempty" mapstructure:"website"`
	Extra       map[string]any `json:"extra,omitempty" mapstructure:",remain"`
}

// DIDDocument is the resolved document for a decentralized identifier.
// Only the parts this module inspects are typed; the document is otherwise
// treated as read-only reference data.
type DIDDocument struct {
	ID                 string               `json:"id"`
	Controller         string               `json:"controller,omitempty"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
	Service            []Service            `json:"service,omitempty"`
}

// VerificationMethod is a public key entry within a DID document.
// Keys arrive either hex or base58 encoded depending on the registrar.
type VerificationMethod struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Controller      string `json:"controller,omitempty"`
	PublicKeyHex    string `json:"publicKeyHex,omitempty"`
	PublicKeyBase58 string `json:"publicKeyBase58,omitempty"`
}

// Service is a service endpoint entry within a DID document.
type Service struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ServiceEndpoint string `json:"serviceEndpoint"`
}
