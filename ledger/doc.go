// Package ledger implements the tamper-evident record of a two-player
// chess game as a linear chain of signed binary blocks.
//
// # Core Components
//
// ChallengeBlock: the genesis record naming the two players by Ed25519
// public key, with a fixed 82-byte big-endian encoding.
//
// AcceptBlock: a participant's detached signature over the challenge
// encoding. Both players must accept before moves can be verified.
//
// MoveBlock: one half-move, signed over the serialization of every
// earlier block plus the move's own coordinate bytes.
//
// GameChain: owns the challenge, the two accept slots and the move
// history, and exposes Accept, AppendMove, Verify, Encode and Decode.
//
// # Security Properties
//
// Every move signature is bound to the entire preceding chain encoding,
// so tampering with any byte of the history invalidates every later
// signature. No trusted third party is involved: any observer can check
// integrity and authenticity of the whole record from its serialized
// bytes alone.
//
// # Usage
//
// Create a challenge between two public keys, wrap it in a chain, have
// both key holders call Accept, then append alternating moves. Verify can
// be called at any time and reports the first violated check.
package ledger
