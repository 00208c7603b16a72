package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// TracerSuite tests the tracing abstraction.
//
// Justification: both implementations must satisfy the same contract so
// resolver code can stay oblivious to which one is wired in, and DID
// hashing must be stable so spans from different components correlate.
type TracerSuite struct {
	suite.Suite
}

func TestTracerSuite(t *testing.T) {
	suite.Run(t, new(TracerSuite))
}

func (s *TracerSuite) TestOTelTracer() {
	s.Run("runs a span through its full lifecycle", func() {
		tr := NewOTel()
		ctx, span := tr.Start(context.Background(), SpanCredentialRead,
			String(AttrDID, HashDID("did:vda:0xabc")),
			Bool(AttrProfileHit, true),
			Int64("attempt", 1),
			Duration("elapsed", 120*time.Millisecond),
		)
		s.NotNil(ctx)

		span.AddEvent(EventContextOpened, String(AttrContextName, "Verida: Vault"))
		span.SetAttributes(String(AttrStage, "verify"))
		span.End(nil)
	})

	s.Run("records a failed span", func() {
		tr := NewOTel()
		_, span := tr.Start(context.Background(), SpanDIDResolve)
		span.End(errors.New("registry timeout"))
	})
}

func (s *TracerSuite) TestNoopTracer() {
	s.Run("returns the caller's context unchanged", func() {
		tr := NewNoop()
		in := context.Background()
		out, span := tr.Start(in, SpanProfileResolve, String(AttrDID, "x"))
		s.Equal(in, out)

		span.SetAttributes(Bool(AttrProfileHit, false))
		span.AddEvent(EventTokenFetched)
		span.End(errors.New("ignored"))
	})
}

func (s *TracerSuite) TestHashDID() {
	s.Run("is stable and never exposes the identifier", func() {
		a := HashDID("did:vda:0x00000000000000000000000000000000000000aa")
		b := HashDID("did:vda:0x00000000000000000000000000000000000000aa")
		s.Equal(a, b)
		s.Len(a, 16)
		s.NotContains(a, "did:")
	})

	s.Run("empty in, empty out", func() {
		s.Empty(HashDID(""))
	})
}
