package credential

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	credcontracts "verigo/contracts/credential"
)

// ExpirySuite tests temporal validity of credentials.
//
// Justification: expiry is compared in UTC on both sides; a local-timezone
// comparison would flip outcomes for credentials expiring within the
// caller's UTC offset. The boundary cases (equality, absence) are part of
// the contract.
type ExpirySuite struct {
	suite.Suite
	now time.Time
}

func TestExpirySuite(t *testing.T) {
	suite.Run(t, new(ExpirySuite))
}

func (s *ExpirySuite) SetupTest() {
	s.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *ExpirySuite) credWithExpiry(raw string) credcontracts.Credential {
	return credcontracts.Credential{ExpirationDate: raw}
}

func (s *ExpirySuite) TestHasExpired() {
	s.Run("no expiration date never expires", func() {
		s.False(HasExpired(credcontracts.Credential{}, s.now))
	})

	s.Run("expiration strictly before now is expired", func() {
		s.True(HasExpired(s.credWithExpiry("2024-06-15T11:59:59Z"), s.now))
	})

	s.Run("expiration equal to now is not expired", func() {
		s.False(HasExpired(s.credWithExpiry("2024-06-15T12:00:00Z"), s.now))
	})

	s.Run("expiration after now is not expired", func() {
		s.False(HasExpired(s.credWithExpiry("2024-06-15T12:00:01Z"), s.now))
	})

	s.Run("offsets are normalized to UTC", func() {
		// 13:30+02:00 is 11:30Z, before noon UTC.
		s.True(HasExpired(s.credWithExpiry("2024-06-15T13:30:00+02:00"), s.now))
		// 13:30-02:00 is 15:30Z, after noon UTC.
		s.False(HasExpired(s.credWithExpiry("2024-06-15T13:30:00-02:00"), s.now))
	})

	s.Run("zone-less timestamps are read as UTC", func() {
		s.True(HasExpired(s.credWithExpiry("2024-06-15T11:00:00"), s.now))
		s.False(HasExpired(s.credWithExpiry("2024-06-15T13:00:00"), s.now))
	})

	s.Run("unreadable dates never expire a credential", func() {
		s.False(HasExpired(s.credWithExpiry("not-a-date"), s.now))
	})
}
