package ledger

import (
	"encoding/binary"
	"fmt"

	"github.com/lineagechess/lineage/crypto"
)

// Encoded block sizes in bytes. All blocks are fixed width; multi-byte
// integers are big-endian.
const (
	ChallengeBlockSize = 82
	AcceptBlockSize    = crypto.SignatureSize
	MoveBlockSize      = 2 + crypto.SignatureSize
)

// ChallengeBlock is the genesis record of a game: it names the two
// players by public key. It is immutable once the first accept is signed
// over it.
type ChallengeBlock struct {
	Version        uint8
	NetworkID      uint8
	ID             uint32
	WhitePublicKey crypto.PublicKey
	BlackPublicKey crypto.PublicKey
	PairedGameID   uint32
	Timestamp      uint64
}

// NewChallenge builds a challenge between the two given keys. ID and
// Timestamp stay zero until a generation policy exists; callers may set
// them before the first accept is produced.
func NewChallenge(whitePub, blackPub crypto.PublicKey) ChallengeBlock {
	return ChallengeBlock{
		WhitePublicKey: whitePub,
		BlackPublicKey: blackPub,
	}
}

// Encode returns the fixed 82-byte encoding of the challenge.
func (c ChallengeBlock) Encode() []byte {
	buf := make([]byte, ChallengeBlockSize)
	buf[0] = c.Version
	buf[1] = c.NetworkID
	binary.BigEndian.PutUint32(buf[2:6], c.ID)
	copy(buf[6:38], c.WhitePublicKey[:])
	copy(buf[38:70], c.BlackPublicKey[:])
	binary.BigEndian.PutUint32(buf[70:74], c.PairedGameID)
	binary.BigEndian.PutUint64(buf[74:82], c.Timestamp)
	return buf
}

// DecodeChallenge parses a challenge from the first 82 bytes of b.
func DecodeChallenge(b []byte) (ChallengeBlock, error) {
	if len(b) < ChallengeBlockSize {
		return ChallengeBlock{}, fmt.Errorf("%w: challenge needs %d bytes, have %d",
			ErrTruncatedInput, ChallengeBlockSize, len(b))
	}
	var c ChallengeBlock
	c.Version = b[0]
	c.NetworkID = b[1]
	c.ID = binary.BigEndian.Uint32(b[2:6])
	copy(c.WhitePublicKey[:], b[6:38])
	copy(c.BlackPublicKey[:], b[38:70])
	c.PairedGameID = binary.BigEndian.Uint32(b[70:74])
	c.Timestamp = binary.BigEndian.Uint64(b[74:82])
	return c, nil
}

// AcceptBlock is a participant's detached signature over the exact
// challenge encoding. It is not tagged with the signing key; verification
// tries both challenge keys.
type AcceptBlock struct {
	Signature crypto.Signature
}

// NewAccept signs the challenge with the given key.
func NewAccept(challenge ChallengeBlock, key *crypto.KeyPair) (AcceptBlock, error) {
	sig, err := key.Sign(challenge.Encode())
	if err != nil {
		return AcceptBlock{}, fmt.Errorf("sign challenge: %w", err)
	}
	return AcceptBlock{Signature: sig}, nil
}

// Encode returns the 64-byte encoding of the accept.
func (a AcceptBlock) Encode() []byte {
	buf := make([]byte, AcceptBlockSize)
	copy(buf, a.Signature[:])
	return buf
}

// DecodeAccept parses an accept from the first 64 bytes of b.
func DecodeAccept(b []byte) (AcceptBlock, error) {
	if len(b) < AcceptBlockSize {
		return AcceptBlock{}, fmt.Errorf("%w: accept needs %d bytes, have %d",
			ErrTruncatedInput, AcceptBlockSize, len(b))
	}
	var a AcceptBlock
	copy(a.Signature[:], b[:AcceptBlockSize])
	return a, nil
}

// verifies reports whether the accept is a valid signature over the
// challenge by the holder of pub.
func (a AcceptBlock) verifies(challenge ChallengeBlock, pub crypto.PublicKey) bool {
	return crypto.Verify(pub, challenge.Encode(), a.Signature)
}

// MoveBlock is one authenticated half-move. The signature covers the
// serialization of every earlier block followed by the two coordinate
// bytes, so tampering anywhere before it invalidates it.
type MoveBlock struct {
	Start     uint8
	End       uint8
	Signature crypto.Signature
}

// Encode returns the 66-byte encoding of the move.
func (m MoveBlock) Encode() []byte {
	buf := make([]byte, MoveBlockSize)
	buf[0] = m.Start
	buf[1] = m.End
	copy(buf[2:], m.Signature[:])
	return buf
}

// DecodeMove parses a move from the first 66 bytes of b.
func DecodeMove(b []byte) (MoveBlock, error) {
	if len(b) < MoveBlockSize {
		return MoveBlock{}, fmt.Errorf("%w: move needs %d bytes, have %d",
			ErrTruncatedInput, MoveBlockSize, len(b))
	}
	var m MoveBlock
	m.Start = b[0]
	m.End = b[1]
	copy(m.Signature[:], b[2:MoveBlockSize])
	return m, nil
}
