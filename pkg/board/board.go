// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package board implements a complete chess board, legal move
// generation, and the make/unmake of moves on it.
package board

import (
	"fmt"

	"laptudirm.com/x/mess/pkg/attacks"
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/castling"
	"laptudirm.com/x/mess/pkg/cell"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
	"laptudirm.com/x/mess/pkg/zobrist"
)

// Board represents the state of a chessboard at a given position: one
// bitboard per piece type and per color, plus a cell.Store for O(1)
// piece-at-square lookup. Position's concrete type is chosen at build
// time by newPosition (cell_mailbox.go or cell_compact.go, selected by
// the "compact_board" build tag); Board itself only ever calls through
// the cell.Store interface.
type Board struct {
	Hash     zobrist.Key
	Position cell.Store
	PieceBBs [piece.NType]bitboard.Board
	ColorBBs [piece.NColor]bitboard.Board

	Kings [piece.NColor]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	Plys      int
	FullMoves int
	DrawClock int

	History [256]Undo
}

// Undo holds the information necessary to reverse a single MakeMove
// call; see UnmakeMove.
type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// String converts a Board into a human readable string.
func (b Board) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", b.Position, b.FEN(), b.Hash)
}

// Occupied returns a bitboard of every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// ClearSquare removes whatever piece stands on s from every board
// record: the mailbox, the piece and color bitboards, and the hash.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position.Get(s)

	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Position.Set(s, piece.NoPiece)
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// FillSquare places piece p on square s, updating every board record.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	b.ColorBBs[c].Set(s)
	if t == piece.King {
		b.Kings[c] = s
	}

	b.PieceBBs[t].Set(s)
	b.Position.Set(s, p)
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// IsInCheck reports whether the given color's king is currently
// attacked.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether square s is attacked by any piece of the
// given color.
func (b *Board) IsAttacked(s square.Square, by piece.Color) bool {
	occ := b.Occupied()

	if attacks.PawnAttacks(by.Other(), s)&b.Pawns(by) != bitboard.Empty {
		return true
	}
	if attacks.Knight(s, bitboard.Empty)&b.Knights(by) != bitboard.Empty {
		return true
	}
	if attacks.King(s, bitboard.Empty)&b.King(by) != bitboard.Empty {
		return true
	}

	queens := b.Queens(by)

	if attacks.Bishop(s, bitboard.Empty, occ)&(b.Bishops(by)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, bitboard.Empty, occ)&(b.Rooks(by)|queens) != bitboard.Empty
}

func (b *Board) Pawns(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Pawn] & b.ColorBBs[c] }
func (b *Board) Knights(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Knight] & b.ColorBBs[c] }
func (b *Board) Bishops(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Bishop] & b.ColorBBs[c] }
func (b *Board) Rooks(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Rook] & b.ColorBBs[c] }
func (b *Board) Queens(c piece.Color) bitboard.Board  { return b.PieceBBs[piece.Queen] & b.ColorBBs[c] }
func (b *Board) King(c piece.Color) bitboard.Board    { return b.PieceBBs[piece.King] & b.ColorBBs[c] }
