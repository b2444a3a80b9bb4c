// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package game wraps a board.Board with the turn-by-turn history:
// per-move algebraic notation, captures, and mate tags, plus the
// Zobrist key of every reached position so that a caller can
// reconstruct threefold-repetition candidates. The repetition rule
// itself is never enforced (non-goal).
package game

import (
	"strings"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/zobrist"
)

// Mate tags the result of a half-move on the side left to move next.
type Mate int

const (
	NoMate Mate = iota
	Checkmate
	Stalemate
)

// String renders the mate tag the way the session facade's wire format
// expects: "Checkmate"/"Stalemate", empty otherwise.
func (m Mate) String() string {
	switch m {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return ""
	}
}

// MoveDescription records everything known about a played half-move:
// its algebraic notation, what (if anything) it captured, and whether
// it mated the opponent.
type MoveDescription struct {
	Move     move.Move
	SAN      string
	Captured piece.Type // piece.NoType if the move wasn't a capture
	Mate     Mate
}

// TurnDescription bundles a full move number with its White half-move
// and, unless the game ended first, its Black reply.
type TurnDescription struct {
	FullMove int
	White    *MoveDescription
	Black    *MoveDescription
}

// Game owns a Board and the turn history built up by ApplyMove. The
// Board is mutated exclusively through Game's ApplyMove/UndoMove.
type Game struct {
	Board   *board.Board
	History []TurnDescription

	// Hashes holds the Zobrist key of the starting position followed by
	// the key reached after every applied half-move, oldest first, the data a repetition-rule
	// implementation would need (not provided here; non-goal).
	Hashes []zobrist.Key
}

// New starts a Game from the standard starting position.
func New() *Game {
	return NewFromFEN(board.StartFEN)
}

// NewFromFEN starts a Game from the given FEN string.
func NewFromFEN(fen string) *Game {
	b := board.New(fen)
	return &Game{
		Board:  b,
		Hashes: []zobrist.Key{b.Hash},
	}
}

// LegalMoves returns every legal move in the current position.
func (g *Game) LegalMoves() []move.Move {
	return g.Board.GenerateMoves()
}

// ParseSAN finds the legal move whose algebraic notation matches san,
// ignoring a trailing "+"/"#" suffix (the mate/check annotation a PGN
// source may or may not include). Used to replay games parsed by
// pkg/pgn, whose move text is SAN rather than long algebraic. The
// second return value is false if no legal move matches.
func (g *Game) ParseSAN(san string) (move.Move, bool) {
	want := strings.TrimRight(san, "+#")

	legalMoves := g.LegalMoves()
	for _, m := range legalMoves {
		got := strings.TrimRight(moveToSAN(g.Board, m, legalMoves), "+#")
		if got == want {
			return m, true
		}
	}

	return move.Null, false
}

// ApplyMove plays m, updates the turn history with its notation and
// mate tag, and returns the MoveDescription recorded for it. m must be
// a member of g.LegalMoves(); the session facade (pkg/session) is
// responsible for rejecting illegal requests before calling this.
func (g *Game) ApplyMove(m move.Move) MoveDescription {
	legalMoves := g.LegalMoves()
	mover := g.Board.SideToMove

	san := moveToSAN(g.Board, m, legalMoves)
	captured := capturedPieceType(g.Board, m)

	g.Board.MakeMove(m)
	g.Hashes = append(g.Hashes, g.Board.Hash)

	replies := g.Board.GenerateMoves()
	mate := NoMate
	switch {
	case len(replies) != 0:
		// game continues
	case g.Board.IsInCheck(g.Board.SideToMove):
		mate = Checkmate
	default:
		mate = Stalemate
	}

	if mate == Checkmate {
		san += "#"
	} else if g.Board.IsInCheck(g.Board.SideToMove) {
		san += "+"
	}

	desc := MoveDescription{Move: m, SAN: san, Captured: captured, Mate: mate}
	g.recordTurn(mover, desc)
	return desc
}

// recordTurn appends desc to the current TurnDescription, starting a new
// one when mover is White (the start of a new full move).
func (g *Game) recordTurn(mover piece.Color, desc MoveDescription) {
	d := desc
	if mover == piece.White || len(g.History) == 0 {
		g.History = append(g.History, TurnDescription{FullMove: g.Board.FullMoves})
	}

	turn := &g.History[len(g.History)-1]
	if mover == piece.White {
		turn.White = &d
	} else {
		turn.Black = &d
	}
}

// UndoMove reverses the last move applied via ApplyMove, including the
// turn history and hash list it added.
func (g *Game) UndoMove() {
	g.Board.UnmakeMove()
	g.Hashes = g.Hashes[:len(g.Hashes)-1]

	turn := &g.History[len(g.History)-1]
	switch {
	case turn.Black != nil:
		turn.Black = nil
	default:
		g.History = g.History[:len(g.History)-1]
	}
}

// capturedPieceType reports the type of piece m captures, or
// piece.NoType if m is not a capture. It must be called before the move
// is applied.
func capturedPieceType(b *board.Board, m move.Move) piece.Type {
	if !m.IsCapture() {
		return piece.NoType
	}
	if m.IsEnPassant(b.EnPassantTarget) {
		return piece.Pawn
	}
	return b.Position.Get(m.Target()).Type()
}
