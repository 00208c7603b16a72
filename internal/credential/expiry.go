package credential

import (
	"time"

	credcontracts "verigo/contracts/credential"
)

// expirationLayouts are the accepted shapes of an expirationDate value.
// Issuers emit RFC 3339; the zone-less form shows up in older credentials
// and is read as UTC.
var expirationLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// HasExpired reports whether cred's expiration instant lies strictly before
// now. Both instants are normalized to UTC so local-timezone skew cannot
// flip the outcome. A credential without an expirationDate never expires,
// and an expiration exactly equal to now is not expired. Pure function, no
// I/O.
func HasExpired(cred credcontracts.Credential, now time.Time) bool {
	raw := cred.ExpirationDate
	if raw == "" {
		return false
	}
	exp, ok := parseExpiration(raw)
	if !ok {
		// Unreadable dates never expire a credential; verification already
		// vouched for the issuer's signature over this value.
		return false
	}
	return exp.UTC().Before(now.UTC())
}

func parseExpiration(raw string) (time.Time, bool) {
	for _, layout := range expirationLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
