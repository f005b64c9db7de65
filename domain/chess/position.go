// Package chess adapts the rules engine to the small oracle surface the
// ledger needs: legal-move lookup, move application and side-to-move on
// positions, with squares encoded 0-63 (A1=0 .. H8=63).
package chess

import (
	"fmt"

	"github.com/notnil/chess"
)

// Color identifies the side entitled to move.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Move is a half-move as stored on the chain: start and end square, 0-63.
// Promotions resolve to a queen; the two-square encoding cannot express an
// underpromotion choice.
type Move struct {
	Start uint8
	End   uint8
}

func (m Move) String() string {
	return SquareName(m.Start) + SquareName(m.End)
}

// SquareName returns the algebraic name of a 0-63 square index.
func SquareName(sq uint8) string {
	return chess.Square(sq).String()
}

// ParseSquare converts an algebraic square name ("e4") to its 0-63 index.
func ParseSquare(name string) (uint8, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return 0, fmt.Errorf("invalid square %q", name)
	}
	return (name[1]-'1')*8 + (name[0] - 'a'), nil
}

// ParseMove converts a four-character square pair ("e2e4") to a Move.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	start, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	end, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return Move{Start: start, End: end}, nil
}

// Position is an immutable board state. The zero value is not usable;
// start from Initial and derive new positions with Apply.
type Position struct {
	inner *chess.Position
}

// Initial returns the canonical starting position.
func Initial() Position {
	return Position{inner: chess.StartingPosition()}
}

// SideToMove returns the color entitled to move in p.
func (p Position) SideToMove() Color {
	if p.inner.Turn() == chess.Black {
		return Black
	}
	return White
}

// LegalMoves returns every legal half-move in p as square pairs.
func (p Position) LegalMoves() []Move {
	valid := p.inner.ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, vm := range valid {
		moves = append(moves, Move{Start: uint8(vm.S1()), End: uint8(vm.S2())})
	}
	return moves
}

// IsLegal reports whether m is a legal move in p.
func (p Position) IsLegal(m Move) bool {
	return p.match(m) != nil
}

// Apply plays m on p and returns the resulting position. It fails when m
// is not legal in p.
func (p Position) Apply(m Move) (Position, error) {
	vm := p.match(m)
	if vm == nil {
		return Position{}, fmt.Errorf("move %s is not legal in position %s", m, p.FEN())
	}
	return Position{inner: p.inner.Update(vm)}, nil
}

// FEN returns the position in Forsyth-Edwards notation.
func (p Position) FEN() string {
	return p.inner.String()
}

// Render returns an ASCII drawing of the board for terminal display.
func (p Position) Render() string {
	return p.inner.Board().Draw()
}

// match resolves a square pair against the legal moves of p. When the pair
// matches several promotion moves only the queen promotion is accepted.
func (p Position) match(m Move) *chess.Move {
	if m.Start > 63 || m.End > 63 {
		return nil
	}
	for _, vm := range p.inner.ValidMoves() {
		if uint8(vm.S1()) != m.Start || uint8(vm.S2()) != m.End {
			continue
		}
		if promo := vm.Promo(); promo != chess.NoPieceType && promo != chess.Queen {
			continue
		}
		return vm
	}
	return nil
}
