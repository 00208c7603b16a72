package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// Justification: every collaborator failure crossing the facade boundary is
// translated through these primitives. Unit tests pin the invariants callers
// rely on: "wrapped domain errors preserve their original code" and
// "errors.Is matches by code".
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeProfileLookup, Message: "profile store unreachable"}
		s.Equal("profile store unreachable", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeMalformedURI}
		s.Equal("malformed_uri", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("connection reset")
		err := &Error{Code: CodeInternal, Message: "send failed", Err: inner}
		s.Equal(inner, err.Unwrap())
	})

	s.Run("works with errors.Unwrap", func() {
		inner := errors.New("root cause")
		err := &Error{Code: CodeSchemaResolution, Err: inner}
		s.Equal(inner, errors.Unwrap(err))
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeDIDResolution, Message: "lookup failed for did:vda:abc"}
		err2 := &Error{Code: CodeDIDResolution, Message: "lookup failed for did:vda:xyz"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeNoActiveSession}
		err2 := &Error{Code: CodeMessageDelivery}
		s.False(err1.Is(err2))
	})

	s.Run("works with errors.Is through chain", func() {
		inner := &Error{Code: CodeCredentialVerification, Message: "bad signature"}
		wrapped := &Error{Code: CodeInternal, Message: "wrapped", Err: inner}
		target := &Error{Code: CodeCredentialVerification}
		s.True(errors.Is(wrapped, target))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code when wrapping domain error", func() {
		original := New(CodeMalformedURI, "bad base64")
		wrapped := Wrap(original, CodeInternal, "verification failed")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeMalformedURI, domainErr.Code)
		s.Equal("verification failed", domainErr.Message)
	})

	s.Run("uses provided code when wrapping non-domain error", func() {
		original := errors.New("dial timeout")
		wrapped := Wrap(original, CodeProfileLookup, "profile fetch failed")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeProfileLookup, domainErr.Code)
	})

	s.Run("wrapped error is accessible via errors.Is", func() {
		original := errors.New("root cause")
		wrapped := Wrap(original, CodeInternal, "service error")
		s.True(errors.Is(wrapped, original))
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.Run("returns true for matching code", func() {
		s.True(HasCode(New(CodeAccountResolution, "no DID"), CodeAccountResolution))
	})

	s.Run("returns false for non-matching code", func() {
		s.False(HasCode(New(CodeAccountResolution, "no DID"), CodeInternal))
	})

	s.Run("returns false for plain errors", func() {
		s.False(HasCode(errors.New("plain"), CodeInternal))
	})
}
