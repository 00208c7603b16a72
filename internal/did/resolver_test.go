package did

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/suite"

	"verigo/contracts/identity"
	dErrors "verigo/pkg/domain-errors"
)

// ResolverSuite tests DID document resolution and key ownership checks.
//
// Justification: the resolver is the one place document shape is validated
// before documents flow into signature verification; accepting a document
// whose keys do not derive the did:vda address would let any registrar
// impersonate an identity.
type ResolverSuite struct {
	suite.Suite
	didClient *fakeDIDClient
	resolver  *Resolver

	key *btcec.PrivateKey
	did string
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.didClient = &fakeDIDClient{}
	s.resolver = NewResolver(s.didClient)

	key, err := btcec.NewPrivateKey()
	s.Require().NoError(err)
	s.key = key
	s.did = "did:vda:" + addressFromKey(key.PubKey())
}

func (s *ResolverSuite) document(vms ...identity.VerificationMethod) *identity.DIDDocument {
	return &identity.DIDDocument{ID: s.did, VerificationMethod: vms}
}

func (s *ResolverSuite) secpMethod() identity.VerificationMethod {
	return identity.VerificationMethod{
		ID:           s.did + "#controller",
		Type:         secp256k1KeyType,
		PublicKeyHex: hex.EncodeToString(s.key.PubKey().SerializeCompressed()),
	}
}

func (s *ResolverSuite) TestResolve() {
	s.Run("resolves a document whose key derives the did address", func() {
		s.didClient.doc = s.document(s.secpMethod())

		doc, err := s.resolver.Resolve(context.Background(), s.did)
		s.Require().NoError(err)
		s.Equal(s.did, doc.ID)
	})

	s.Run("accepts base58 key material", func() {
		vm := s.secpMethod()
		vm.PublicKeyHex = ""
		vm.PublicKeyBase58 = base58.Encode(s.key.PubKey().SerializeCompressed())
		s.didClient.doc = s.document(vm)

		_, err := s.resolver.Resolve(context.Background(), s.did)
		s.NoError(err)
	})

	s.Run("rejects a document whose keys derive a different address", func() {
		other, err := btcec.NewPrivateKey()
		s.Require().NoError(err)
		vm := s.secpMethod()
		vm.PublicKeyHex = hex.EncodeToString(other.PubKey().SerializeCompressed())
		s.didClient.doc = s.document(vm)

		_, err = s.resolver.Resolve(context.Background(), s.did)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeDIDResolution))
	})

	s.Run("documents without secp256k1 keys pass unchecked", func() {
		s.didClient.doc = s.document(identity.VerificationMethod{
			ID:              s.did + "#ed",
			Type:            "Ed25519VerificationKey2018",
			PublicKeyBase58: base58.Encode([]byte("not checked here")),
		})

		_, err := s.resolver.Resolve(context.Background(), s.did)
		s.NoError(err)
	})

	s.Run("non vda dids pass the ownership check", func() {
		s.didClient.doc = &identity.DIDDocument{ID: "did:web:example.com"}

		_, err := s.resolver.Resolve(context.Background(), "did:web:example.com")
		s.NoError(err)
	})

	s.Run("lookup failure maps to did_resolution_failed", func() {
		cause := errors.New("resolver unreachable")
		s.didClient.err = cause

		_, err := s.resolver.Resolve(context.Background(), s.did)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeDIDResolution))
		s.True(errors.Is(err, cause))
	})

	s.Run("missing document maps to did_resolution_failed", func() {
		s.didClient.doc = nil

		_, err := s.resolver.Resolve(context.Background(), s.did)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeDIDResolution))
	})

	s.Run("document id must match the requested did", func() {
		s.didClient.doc = &identity.DIDDocument{ID: "did:vda:0x0000000000000000000000000000000000000000"}

		_, err := s.resolver.Resolve(context.Background(), s.did)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeDIDResolution))
	})
}

func (s *ResolverSuite) TestPublicKey() {
	s.Run("returns the first secp256k1 key", func() {
		s.didClient.doc = s.document(s.secpMethod())

		key, err := s.resolver.PublicKey(context.Background(), s.did)
		s.Require().NoError(err)
		s.True(key.IsEqual(s.key.PubKey()))
	})

	s.Run("fails when the document carries no secp256k1 key", func() {
		s.didClient.doc = s.document()

		_, err := s.resolver.PublicKey(context.Background(), s.did)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeDIDResolution))
	})
}

// fakeDIDClient implements network.DIDClient for resolver tests.
type fakeDIDClient struct {
	doc *identity.DIDDocument
	err error
}

func (f *fakeDIDClient) Get(context.Context, string) (*identity.DIDDocument, error) {
	return f.doc, f.err
}
