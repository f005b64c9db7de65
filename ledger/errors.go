package ledger

import "errors"

// Errors returned while building a chain. All of them are local and
// recoverable; the chain is left unchanged when an operation fails.
var (
	// ErrKeyNotInChallenge rejects an accept from a key the challenge
	// does not name.
	ErrKeyNotInChallenge = errors.New("key is not named in the challenge")

	// ErrDuplicateKey rejects a second accept from the same key.
	ErrDuplicateKey = errors.New("key has already accepted the challenge")

	// ErrChainFull rejects an accept once both slots are filled.
	ErrChainFull = errors.New("both accept slots are already filled")

	// ErrWrongSigner rejects a move signed by the color not on turn.
	ErrWrongSigner = errors.New("signing key does not belong to the active color")

	// ErrIllegalMove rejects a move the current position does not allow.
	ErrIllegalMove = errors.New("move is not legal in the current position")

	// ErrUnsupportedAction rejects an action a 66-byte move record cannot
	// represent, such as a square index past 63.
	ErrUnsupportedAction = errors.New("action cannot be represented as a move block")

	// ErrTruncatedInput is returned by decoders handed fewer bytes than
	// the fixed size of the block being parsed.
	ErrTruncatedInput = errors.New("input is shorter than the block it should contain")
)

// Errors reported by Verify. Any one of them invalidates the whole chain.
var (
	// ErrMissingAccept means fewer than two accept blocks are present.
	ErrMissingAccept = errors.New("chain does not carry two accept blocks")

	// ErrBadAcceptSignature means the two accepts do not validate against
	// the two challenge keys under either assignment.
	ErrBadAcceptSignature = errors.New("accept signatures do not match the challenge keys")

	// ErrBadMoveSignature means a move signature does not verify against
	// the chain prefix it should cover.
	ErrBadMoveSignature = errors.New("move signature does not verify against its chain prefix")
)

// ErrCorruptChain reports an internal consistency violation: a stored move
// that is illegal when replayed from the start. A chain in this state
// already fails Verify.
var ErrCorruptChain = errors.New("stored move is inconsistent with the replayed position")
