package ledger

import (
	"fmt"

	"github.com/lineagechess/lineage/crypto"
	"github.com/lineagechess/lineage/domain/chess"
)

// GameChain is the full record of one game: the challenge, up to two
// accepts and the ordered move history. The chain owns its blocks; once a
// block is added it is never mutated.
//
// GameChain is not internally synchronized. Verify is pure and may run
// concurrently with other Verify calls on the same instance, but never
// with Accept, AppendMove or Position.
type GameChain struct {
	Challenge ChallengeBlock
	Accepts   [2]*AcceptBlock
	Moves     []MoveBlock

	// last projected position, keyed by the number of moves it reflects.
	// Refreshed on append, reused by Position.
	cached    bool
	cachedLen int
	cachedPos chess.Position
}

// NewGameChain starts a chain from a challenge, with no accepts and no
// moves.
func NewGameChain(challenge ChallengeBlock) *GameChain {
	return &GameChain{Challenge: challenge}
}

// Accept joins the game by signing the challenge with key. The first
// accept lands in slot 0; the second, from the other key, in slot 1.
// Accept order is unconstrained. It fails with ErrKeyNotInChallenge,
// ErrDuplicateKey or ErrChainFull.
func (g *GameChain) Accept(key *crypto.KeyPair) error {
	pub := key.Public()
	if pub != g.Challenge.WhitePublicKey && pub != g.Challenge.BlackPublicKey {
		return ErrKeyNotInChallenge
	}

	// keep a lone accept in slot 0
	if g.Accepts[0] == nil && g.Accepts[1] != nil {
		g.Accepts[0], g.Accepts[1] = g.Accepts[1], nil
	}

	switch {
	case g.Accepts[0] == nil:
		accept, err := NewAccept(g.Challenge, key)
		if err != nil {
			return err
		}
		g.Accepts[0] = &accept
		return nil
	case g.Accepts[1] == nil:
		// accepts carry no signer identity, so a repeat accept is
		// detected by verifying slot 0 under this key
		if g.Accepts[0].verifies(g.Challenge, pub) {
			return ErrDuplicateKey
		}
		accept, err := NewAccept(g.Challenge, key)
		if err != nil {
			return err
		}
		g.Accepts[1] = &accept
		return nil
	default:
		return ErrChainFull
	}
}

// AppendMove plays one half-move. White moves on even move counts, Black
// on odd ones; the signing key must belong to the active color and the
// move must be legal in the projected position. The signature covers the
// whole chain encoding up to this point plus the two coordinate bytes.
func (g *GameChain) AppendMove(key *crypto.KeyPair, move chess.Move) error {
	if move.Start > 63 || move.End > 63 {
		return fmt.Errorf("%w: square pair %d-%d", ErrUnsupportedAction, move.Start, move.End)
	}

	position, err := g.Position()
	if err != nil {
		return err
	}

	active := g.Challenge.WhitePublicKey
	if len(g.Moves)%2 == 1 {
		active = g.Challenge.BlackPublicKey
	}
	if key.Public() != active {
		return fmt.Errorf("%w: move %d belongs to %s", ErrWrongSigner,
			len(g.Moves), chess.Color(len(g.Moves)%2))
	}

	next, err := position.Apply(move)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}

	payload := append(g.Encode(), move.Start, move.End)
	sig, err := key.Sign(payload)
	if err != nil {
		return fmt.Errorf("sign move: %w", err)
	}

	g.Moves = append(g.Moves, MoveBlock{Start: move.Start, End: move.End, Signature: sig})
	g.cached, g.cachedLen, g.cachedPos = true, len(g.Moves), next
	return nil
}

// Position projects the current board state by replaying the move history
// from the canonical starting position. A stored move that fails legality
// replay yields ErrCorruptChain; such a chain also fails Verify.
func (g *GameChain) Position() (chess.Position, error) {
	position := chess.Initial()
	replayFrom := 0
	if g.cached && g.cachedLen <= len(g.Moves) {
		position = g.cachedPos
		replayFrom = g.cachedLen
	}
	for i := replayFrom; i < len(g.Moves); i++ {
		move := chess.Move{Start: g.Moves[i].Start, End: g.Moves[i].End}
		next, err := position.Apply(move)
		if err != nil {
			return chess.Position{}, fmt.Errorf("%w: move %d (%s)", ErrCorruptChain, i, move)
		}
		position = next
	}
	g.cached, g.cachedLen, g.cachedPos = true, len(g.Moves), position
	return position, nil
}

// Verify checks the whole chain and returns nil only if every check
// passes: both accepts present, both validating against the two challenge
// keys under either assignment, and every move signature verifying
// against the exact chain prefix it was signed over, under the strictly
// alternating key starting with White. Verify never mutates the chain.
func (g *GameChain) Verify() error {
	if g.Accepts[0] == nil || g.Accepts[1] == nil {
		return ErrMissingAccept
	}

	// slots are not tagged by color: either assignment of the two keys
	// to the two slots is acceptable
	white, black := g.Challenge.WhitePublicKey, g.Challenge.BlackPublicKey
	straight := g.Accepts[0].verifies(g.Challenge, white) && g.Accepts[1].verifies(g.Challenge, black)
	crossed := g.Accepts[0].verifies(g.Challenge, black) && g.Accepts[1].verifies(g.Challenge, white)
	if !straight && !crossed {
		return ErrBadAcceptSignature
	}

	prefix := g.Challenge.Encode()
	prefix = append(prefix, g.Accepts[0].Encode()...)
	prefix = append(prefix, g.Accepts[1].Encode()...)

	signer, waiting := white, black
	for i, move := range g.Moves {
		payload := make([]byte, 0, len(prefix)+2)
		payload = append(payload, prefix...)
		payload = append(payload, move.Start, move.End)
		if !crypto.Verify(signer, payload, move.Signature) {
			return fmt.Errorf("%w: move %d", ErrBadMoveSignature, i)
		}
		signer, waiting = waiting, signer
		prefix = append(prefix, move.Encode()...)
	}
	return nil
}

// Encode serializes the chain: challenge, then each accept that is
// present, then the move history. The structure is a strict prefix:
// encoding stops at the first absent accept.
func (g *GameChain) Encode() []byte {
	buf := g.Challenge.Encode()
	for _, accept := range g.Accepts {
		if accept == nil {
			return buf
		}
		buf = append(buf, accept.Encode()...)
	}
	for _, move := range g.Moves {
		buf = append(buf, move.Encode()...)
	}
	return buf
}

// DecodeGameChain parses a chain from b, mirroring Encode: the fixed
// challenge prefix, then greedily up to two accepts, stopping without
// error as soon as one is missing or short, then the move history. A
// trailing partial move record fails with ErrTruncatedInput.
func DecodeGameChain(b []byte) (*GameChain, error) {
	challenge, err := DecodeChallenge(b)
	if err != nil {
		return nil, err
	}
	g := NewGameChain(challenge)
	rest := b[ChallengeBlockSize:]

	for i := range g.Accepts {
		if len(rest) < AcceptBlockSize {
			return g, nil
		}
		accept, err := DecodeAccept(rest)
		if err != nil {
			return nil, err
		}
		g.Accepts[i] = &accept
		rest = rest[AcceptBlockSize:]
	}

	for len(rest) > 0 {
		move, err := DecodeMove(rest)
		if err != nil {
			return nil, err
		}
		g.Moves = append(g.Moves, move)
		rest = rest[MoveBlockSize:]
	}
	return g, nil
}
