// Package crypto provides the Ed25519 signing capability used to
// authenticate game chain blocks: key generation, detached signing and
// signature verification over raw bytes.
package crypto

import (
	"fmt"

	"go.dedis.ch/kyber/v4/sign/eddsa"
	"go.dedis.ch/kyber/v4/suites"
)

var suite = suites.MustFind("Ed25519")

const (
	// PublicKeySize is the size of an encoded public key in bytes.
	PublicKeySize = 32
	// SignatureSize is the size of a detached signature in bytes.
	SignatureSize = 64
)

// PublicKey is an encoded Ed25519 public key.
type PublicKey [PublicKeySize]byte

// Signature is a detached Ed25519 signature.
type Signature [SignatureSize]byte

// KeyPair holds a player's signing identity.
type KeyPair struct {
	ed *eddsa.EdDSA
}

// GenerateKey creates a new key pair from the suite's secure random stream.
func GenerateKey() *KeyPair {
	return &KeyPair{ed: eddsa.NewEdDSA(suite.RandomStream())}
}

// Public returns the encoded public key of the pair.
func (k *KeyPair) Public() PublicKey {
	var pub PublicKey
	raw, err := k.ed.Public.MarshalBinary()
	if err != nil {
		// a point produced by NewEdDSA always marshals
		panic(fmt.Sprintf("crypto: marshal public key: %v", err))
	}
	copy(pub[:], raw)
	return pub
}

// Sign produces a detached signature over msg.
func (k *KeyPair) Sign(msg []byte) (Signature, error) {
	var sig Signature
	raw, err := k.ed.Sign(msg)
	if err != nil {
		return sig, fmt.Errorf("sign message: %w", err)
	}
	copy(sig[:], raw)
	return sig, nil
}

// Verify reports whether sig is a valid signature over msg under pub.
// Malformed public keys verify nothing.
func Verify(pub PublicKey, msg []byte, sig Signature) bool {
	point := suite.Point()
	if err := point.UnmarshalBinary(pub[:]); err != nil {
		return false
	}
	return eddsa.Verify(point, msg, sig[:]) == nil
}
