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

package attacks

import (
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// pawnPushTable[c][s] and pawnAttackTable[c][s] hold the single-square
// push and diagonal capture bitboards of a c-colored pawn on s. Double
// pushes and en-passant are derived from these at query time, since
// both depend on the live occupancy.
var (
	pawnPushTable   [piece.NColor][square.N]bitboard.Board
	pawnAttackTable [piece.NColor][square.N]bitboard.Board
)

func init() {
	for s := square.A8; s <= square.H1; s++ {
		pawnPushTable[piece.White][s] = whitePawnPushFrom(s)
		pawnPushTable[piece.Black][s] = blackPawnPushFrom(s)
		pawnAttackTable[piece.White][s] = whitePawnAttacksFrom(s)
		pawnAttackTable[piece.Black][s] = blackPawnAttacksFrom(s)
	}
}

func whitePawnPushFrom(s square.Square) bitboard.Board {
	b := board{origin: s}
	b.addAttack(0, -1)
	return b.board
}

func blackPawnPushFrom(s square.Square) bitboard.Board {
	b := board{origin: s}
	b.addAttack(0, 1)
	return b.board
}

func whitePawnAttacksFrom(s square.Square) bitboard.Board {
	b := board{origin: s}
	b.addAttack(1, -1)
	b.addAttack(-1, -1)
	return b.board
}

func blackPawnAttacksFrom(s square.Square) bitboard.Board {
	b := board{origin: s}
	b.addAttack(1, 1)
	b.addAttack(-1, 1)
	return b.board
}

// PawnAttacks returns the diagonal capture squares of a c-colored pawn
// standing on s, ignoring occupancy entirely. By symmetry, it is also
// the set of squares from which a c-colored pawn would attack s, which
// is how check and pin detection test for pawn threats.
func PawnAttacks(c piece.Color, s square.Square) bitboard.Board {
	return pawnAttackTable[c][s]
}

// PawnPush pushes every pawn in the given bitboard forward one square,
// without filtering for occupancy; callers mask the result themselves.
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}

// PawnsLeft gives the result of every pawn in the given bitboard
// capturing towards the a-file.
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).West()
}

// PawnsRight gives the result of every pawn in the given bitboard
// capturing towards the h-file.
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).East()
}

// Pawn returns the full set of squares a c-colored pawn on s can move
// to: single and double pushes through empty squares, plus diagonal
// captures of enemies (including a pending en-passant target, if any).
func Pawn(s, ep square.Square, c piece.Color, friends, enemies bitboard.Board) bitboard.Board {
	occupied := friends | enemies
	enemies.Set(ep)

	push := pawnPushTable[c][s] &^ occupied
	startRank := square.Rank2
	if c == piece.Black {
		startRank = square.Rank7
	}
	if push != bitboard.Empty && s.Rank() == startRank {
		push |= push.Up(c) &^ occupied
	}

	return push | pawnAttackTable[c][s]&enemies
}
