// Package uri implements the reversible transform between a shareable
// base64 string and the verida:// identity-resource locator it wraps, plus
// the public deep-link format built from it.
package uri

import (
	"encoding/base64"
	"net/url"
	"strings"

	dErrors "verigo/pkg/domain-errors"
)

// Scheme is the locator scheme for identity resources.
const Scheme = "verida"

// Locator is the structured form of a verida:// URI: which identity, which
// application context, and the path to the record inside it.
type Locator struct {
	DID         string
	ContextName string
	DBName      string
	RecordID    string
	Query       url.Values
}

// Decode reverses the shareable encoding: base64 to UTF-8 text, then locator
// parse. It returns both the structured locator and the decoded plain URI,
// because token fetching resolves the plain URI, not a re-encoded form.
func Decode(encoded string) (Locator, string, error) {
	plainBytes, err := decodeBase64(encoded)
	if err != nil {
		return Locator{}, "", dErrors.Wrap(err, dErrors.CodeMalformedURI, "uri is not valid base64")
	}
	plain := string(plainBytes)
	loc, err := Parse(plain)
	if err != nil {
		return Locator{}, "", err
	}
	return loc, plain, nil
}

// Encode is the inverse of Decode's base64 step.
func Encode(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain))
}

// Parse splits a plain verida:// URI into its locator parts.
// Expected shape: verida://<did>/<contextName>/<dbName>/<recordID>?<query>
// with dbName and recordID optional and contextName URL-escaped.
func Parse(plain string) (Locator, error) {
	rest, ok := strings.CutPrefix(plain, Scheme+"://")
	if !ok {
		return Locator{}, dErrors.New(dErrors.CodeMalformedURI, "uri does not use the verida scheme")
	}

	var query url.Values
	if path, rawQuery, found := strings.Cut(rest, "?"); found {
		q, err := url.ParseQuery(rawQuery)
		if err != nil {
			return Locator{}, dErrors.Wrap(err, dErrors.CodeMalformedURI, "uri query is not parseable")
		}
		query = q
		rest = path
	}

	parts := strings.Split(rest, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Locator{}, dErrors.New(dErrors.CodeMalformedURI, "uri is missing did or context name")
	}
	if !strings.HasPrefix(parts[0], "did:") {
		return Locator{}, dErrors.New(dErrors.CodeMalformedURI, "uri host is not a did")
	}

	contextName, err := url.PathUnescape(parts[1])
	if err != nil {
		return Locator{}, dErrors.Wrap(err, dErrors.CodeMalformedURI, "uri context name is not parseable")
	}

	loc := Locator{
		DID:         parts[0],
		ContextName: contextName,
		Query:       query,
	}
	if len(parts) > 2 {
		loc.DBName = parts[2]
	}
	if len(parts) > 3 {
		loc.RecordID = parts[3]
	}
	return loc, nil
}

// DeepLink builds the caller-facing link for a shareable credential. The
// encoded URI param is passed through unchanged so decode-then-reencode
// round-trips exactly.
func DeepLink(origin, encoded string) string {
	return origin + "/credential?uri=" + encoded
}

// decodeBase64 accepts the standard and URL-safe alphabets, padded or not,
// matching what wallets put in QR codes and share links.
func decodeBase64(encoded string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	var lastErr error
	for _, enc := range encodings {
		decoded, err := enc.DecodeString(encoded)
		if err == nil {
			return decoded, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
