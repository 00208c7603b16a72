package verify

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/golang-jwt/jwt/v5"
)

// ES256KAlg is the JOSE algorithm name for secp256k1 ECDSA over SHA-256,
// the scheme vda identities sign with.
const ES256KAlg = "ES256K"

// SigningMethodES256K implements jwt.SigningMethod for ES256K. golang-jwt
// ships no secp256k1 method; signatures are the compact 64-byte R||S form,
// with a trailing recovery byte tolerated on verify.
type SigningMethodES256K struct{}

func init() {
	jwt.RegisterSigningMethod(ES256KAlg, func() jwt.SigningMethod {
		return SigningMethodES256K{}
	})
}

// Alg returns the algorithm name.
func (SigningMethodES256K) Alg() string { return ES256KAlg }

// Verify checks sig over signingString with a *btcec.PublicKey.
func (SigningMethodES256K) Verify(signingString string, sig []byte, key any) error {
	pub, ok := key.(*btcec.PublicKey)
	if !ok {
		return jwt.ErrInvalidKeyType
	}
	if len(sig) != 64 && len(sig) != 65 {
		return jwt.ErrSignatureInvalid
	}

	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow || r.IsZero() {
		return jwt.ErrSignatureInvalid
	}
	if overflow := s.SetByteSlice(sig[32:64]); overflow || s.IsZero() {
		return jwt.ErrSignatureInvalid
	}

	hash := sha256.Sum256([]byte(signingString))
	if !btcecdsa.NewSignature(&r, &s).Verify(hash[:], pub) {
		return jwt.ErrSignatureInvalid
	}
	return nil
}

// Sign produces a compact 64-byte signature with a *btcec.PrivateKey.
func (SigningMethodES256K) Sign(signingString string, key any) ([]byte, error) {
	priv, ok := key.(*btcec.PrivateKey)
	if !ok {
		return nil, jwt.ErrInvalidKeyType
	}

	hash := sha256.Sum256([]byte(signingString))
	sig := btcecdsa.Sign(priv, hash[:])

	var out [64]byte
	r := sig.R()
	s := sig.S()
	rBytes := r.Bytes()
	sBytes := s.Bytes()
	copy(out[:32], rBytes[:])
	copy(out[32:], sBytes[:])
	return out[:], nil
}
