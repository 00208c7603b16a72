package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"verigo/contracts/network"
	dErrors "verigo/pkg/domain-errors"
)

// ResolverSuite tests public profile resolution.
//
// Justification: the resolver's contract distinguishes "no profile" (a
// valid nil outcome) from transport failure (profile_lookup_failed), and
// the verifier depends on that distinction to keep absence out of the
// error path.
type ResolverSuite struct {
	suite.Suite
	client   *fakeClient
	resolver *Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.client = &fakeClient{}
	s.resolver = NewResolver(s.client, "Verida: Vault")
}

func (s *ResolverSuite) TestResolve() {
	s.Run("reads all fields and stamps the did", func() {
		s.client.store = &fakeStore{record: map[string]any{
			"name":    "Alice Pereira",
			"country": "pt",
			"tagline": "hello",
		}}

		prof, err := s.resolver.Resolve(context.Background(), "did:vda:abc123", "")
		s.Require().NoError(err)
		s.Require().NotNil(prof)
		s.Equal("did:vda:abc123", prof.DID)
		s.Equal("Alice Pereira", prof.Name)
		s.Equal("pt", prof.Country)
		s.Equal("hello", prof.Extra["tagline"])
	})

	s.Run("defaults the context name when omitted", func() {
		s.client.store = &fakeStore{record: map[string]any{}}

		_, err := s.resolver.Resolve(context.Background(), "did:vda:abc123", "")
		s.Require().NoError(err)
		s.Equal("Verida: Vault", s.client.lastContextName)
		s.Equal("basicProfile", s.client.lastProfileType)
	})

	s.Run("passes an explicit context name through", func() {
		s.client.store = &fakeStore{record: map[string]any{}}

		_, err := s.resolver.Resolve(context.Background(), "did:vda:abc123", "Verida: Credential Manager")
		s.Require().NoError(err)
		s.Equal("Verida: Credential Manager", s.client.lastContextName)
	})

	s.Run("absent profile resolves to nil without error", func() {
		s.client.store = nil

		prof, err := s.resolver.Resolve(context.Background(), "did:vda:none", "ctx")
		s.NoError(err)
		s.Nil(prof)
	})

	s.Run("transport failure maps to profile_lookup_failed", func() {
		s.client.openErr = errors.New("dial timeout")

		_, err := s.resolver.Resolve(context.Background(), "did:vda:abc123", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeProfileLookup))
	})

	s.Run("store read failure maps to profile_lookup_failed", func() {
		s.client.store = &fakeStore{err: errors.New("connection reset")}

		_, err := s.resolver.Resolve(context.Background(), "did:vda:abc123", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeProfileLookup))
	})

	s.Run("empty did is rejected", func() {
		_, err := s.resolver.Resolve(context.Background(), "", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

// fakeClient implements network.Client for resolver tests.
type fakeClient struct {
	store           *fakeStore
	openErr         error
	lastContextName string
	lastProfileType string
}

func (f *fakeClient) OpenPublicProfile(_ context.Context, _, contextName, profileType string) (network.ProfileStore, error) {
	f.lastContextName = contextName
	f.lastProfileType = profileType
	if f.openErr != nil {
		return nil, f.openErr
	}
	if f.store == nil {
		return nil, nil
	}
	return f.store, nil
}

func (f *fakeClient) OpenExternalContext(context.Context, string, string) (network.Context, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) GetSchema(context.Context, string) (network.Schema, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) DIDClient() network.DIDClient { return nil }

type fakeStore struct {
	record map[string]any
	err    error
}

func (f *fakeStore) GetMany(context.Context, map[string]any, map[string]any) (map[string]any, error) {
	return f.record, f.err
}
