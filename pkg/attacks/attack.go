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

// Package attacks precomputes and serves attack bitboards for every
// piece type. Leaper attacks (king, knight, pawn) are
// tabulated once at init; slider attacks (bishop, rook, queen) are
// computed on demand from the occupancy, either by walking rays (the
// default build) or through a magic-bitboard lookup (build tag
// "bitboards").
package attacks

import (
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// kingTable and knightTable hold the precalculated attack bitboards of
// a king and a knight from every square on the board.
var (
	kingTable   [square.N]bitboard.Board
	knightTable [square.N]bitboard.Board
)

func init() {
	for s := square.A8; s <= square.H1; s++ {
		kingTable[s] = kingAttacksFrom(s)
		knightTable[s] = knightAttacksFrom(s)
	}
}

// King returns the attack bitboard of a king standing on s, excluding
// squares occupied by friendly pieces. Castling destinations are not
// included here; they are generated by the board package, which alone
// has the occupancy and attacked-square information to verify them.
func King(s square.Square, friends bitboard.Board) bitboard.Board {
	return kingTable[s] &^ friends
}

// Knight returns the attack bitboard of a knight standing on s,
// excluding squares occupied by friendly pieces.
func Knight(s square.Square, friends bitboard.Board) bitboard.Board {
	return knightTable[s] &^ friends
}

// Queen returns the attack bitboard of a queen standing on s: the union
// of its bishop and rook attacks.
func Queen(s square.Square, friends, occupied bitboard.Board) bitboard.Board {
	return Bishop(s, friends, occupied) | Rook(s, friends, occupied)
}

// Of returns the attack bitboard of the given piece type standing on s,
// excluding squares occupied by friendly pieces. Pawn is handled
// specially by the Pawn function, since it needs the side to move and
// an en-passant target; calling Of with piece.Pawn panics.
func Of(t piece.Type, s square.Square, friends, occupied bitboard.Board) bitboard.Board {
	switch t {
	case piece.King:
		return King(s, friends)
	case piece.Knight:
		return Knight(s, friends)
	case piece.Bishop:
		return Bishop(s, friends, occupied)
	case piece.Rook:
		return Rook(s, friends, occupied)
	case piece.Queen:
		return Queen(s, friends, occupied)
	default:
		panic("attacks.Of: unsupported piece type")
	}
}

// board is a helper used while tabulating leaper attacks at init time:
// it walks a single (file, rank) offset from origin and records the
// destination square if it lies on the board.
type board struct {
	origin square.Square
	board  bitboard.Board
}

// addAttack adds the square offset by (fileOffset, rankOffset) from the
// origin to the attack bitboard, but only if it lies on the board.
func (b *board) addAttack(fileOffset, rankOffset int) {
	file := int(b.origin.File()) + fileOffset
	rank := int(b.origin.Rank()) + rankOffset

	if !square.Valid(square.File(file), square.Rank(rank)) {
		return
	}

	b.board.Set(square.New(square.File(file), square.Rank(rank)))
}
