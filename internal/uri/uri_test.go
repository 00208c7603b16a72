package uri

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "verigo/pkg/domain-errors"
)

// URISuite tests the shareable URI codec.
//
// Justification: every credential read starts here, and the deep link the
// facade hands back must round-trip the caller's original encoded URI
// byte-for-byte. A silent decode/reencode drift would break shared links.
type URISuite struct {
	suite.Suite
}

func TestURISuite(t *testing.T) {
	suite.Run(t, new(URISuite))
}

const plainURI = "verida://did:vda:0xb794f5ea0ba39494ce839613fffba74279579268/Verida%3A%20Credential%20Manager/credential_public_encrypted/6d7b3f30-8bfa-4e3c-80a7-bb5d7b3f30aa?key=1f8e9a"

func (s *URISuite) TestDecode() {
	s.Run("decodes a well formed uri", func() {
		encoded := base64.StdEncoding.EncodeToString([]byte(plainURI))

		loc, plain, err := Decode(encoded)
		s.Require().NoError(err)
		s.Equal(plainURI, plain)
		s.Equal("did:vda:0xb794f5ea0ba39494ce839613fffba74279579268", loc.DID)
		s.Equal("Verida: Credential Manager", loc.ContextName)
		s.Equal("credential_public_encrypted", loc.DBName)
		s.Equal("6d7b3f30-8bfa-4e3c-80a7-bb5d7b3f30aa", loc.RecordID)
		s.Equal("1f8e9a", loc.Query.Get("key"))
	})

	s.Run("accepts url safe base64", func() {
		encoded := base64.RawURLEncoding.EncodeToString([]byte(plainURI))

		_, plain, err := Decode(encoded)
		s.Require().NoError(err)
		s.Equal(plainURI, plain)
	})

	s.Run("rejects invalid base64", func() {
		_, _, err := Decode("%%%not-base64%%%")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeMalformedURI))
	})

	s.Run("rejects decoded text without the verida scheme", func() {
		encoded := base64.StdEncoding.EncodeToString([]byte("https://example.com/x"))

		_, _, err := Decode(encoded)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeMalformedURI))
	})

	s.Run("rejects a locator without a did", func() {
		encoded := base64.StdEncoding.EncodeToString([]byte("verida://not-a-did/ctx/db/id"))

		_, _, err := Decode(encoded)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeMalformedURI))
	})

	s.Run("rejects a locator without a context name", func() {
		encoded := base64.StdEncoding.EncodeToString([]byte("verida://did:vda:abc"))

		_, _, err := Decode(encoded)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeMalformedURI))
	})
}

func (s *URISuite) TestParse() {
	s.Run("path segments beyond the context are optional", func() {
		loc, err := Parse("verida://did:vda:abc/My%20Context")
		s.Require().NoError(err)
		s.Equal("did:vda:abc", loc.DID)
		s.Equal("My Context", loc.ContextName)
		s.Empty(loc.DBName)
		s.Empty(loc.RecordID)
	})
}

func (s *URISuite) TestRoundTrip() {
	s.Run("decode then reencode yields the original param", func() {
		encoded := Encode(plainURI)

		_, plain, err := Decode(encoded)
		s.Require().NoError(err)
		s.Equal(encoded, Encode(plain))
	})
}

func (s *URISuite) TestDeepLink() {
	s.Run("passes the encoded uri through unchanged", func() {
		encoded := Encode(plainURI)
		link := DeepLink("https://verifier.example.com", encoded)
		s.Equal("https://verifier.example.com/credential?uri="+encoded, link)
	})

	s.Run("empty origin yields a relative link", func() {
		s.Equal("/credential?uri=abc", DeepLink("", "abc"))
	})
}
