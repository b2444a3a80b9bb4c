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

package eval

import (
	"laptudirm.com/x/mess/pkg/attacks"
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/piece"
)

// mobilityBonus is a small tapered bonus per reachable square, applied
// to the minor and major pieces.
var mobilityBonus = [piece.NType][2]Eval{
	piece.Knight: {4, 4},
	piece.Bishop: {5, 5},
	piece.Rook:   {2, 4},
	piece.Queen:  {1, 2},
}

// Evaluate returns the static evaluation of b from the perspective of
// the side to move: material, piece-square tables, and mobility. It
// does not detect checkmate/stalemate; that terminal check is the
// search's responsibility, since it alone knows whether the position
// has any legal moves.
func Evaluate(b *board.Board) Eval {
	var score Score
	var phase Eval

	occupied := b.Occupied()

	for c := piece.White; c <= piece.Black; c++ {
		sign := Score(1)
		if c == piece.Black {
			sign = -1
		}

		for pawns := b.Pawns(c); pawns != bitboard.Empty; {
			s := pawns.Pop()
			score += sign * (MaterialScore[piece.Pawn] + PSQT(piece.Pawn, c, s))
		}

		for knights := b.Knights(c); knights != bitboard.Empty; {
			s := knights.Pop()
			score += sign * (MaterialScore[piece.Knight] + PSQT(piece.Knight, c, s))
			score += sign * mobility(piece.Knight, attacks.Knight(s, bitboard.Empty), b.ColorBBs[c])
			phase += phaseInc[piece.Knight]
		}

		for bishops := b.Bishops(c); bishops != bitboard.Empty; {
			s := bishops.Pop()
			score += sign * (MaterialScore[piece.Bishop] + PSQT(piece.Bishop, c, s))
			score += sign * mobility(piece.Bishop, attacks.Bishop(s, bitboard.Empty, occupied), b.ColorBBs[c])
			phase += phaseInc[piece.Bishop]
		}

		for rooks := b.Rooks(c); rooks != bitboard.Empty; {
			s := rooks.Pop()
			score += sign * (MaterialScore[piece.Rook] + PSQT(piece.Rook, c, s))
			score += sign * mobility(piece.Rook, attacks.Rook(s, bitboard.Empty, occupied), b.ColorBBs[c])
			phase += phaseInc[piece.Rook]
		}

		for queens := b.Queens(c); queens != bitboard.Empty; {
			s := queens.Pop()
			score += sign * (MaterialScore[piece.Queen] + PSQT(piece.Queen, c, s))
			score += sign * mobility(piece.Queen, attacks.Queen(s, bitboard.Empty, occupied), b.ColorBBs[c])
			phase += phaseInc[piece.Queen]
		}

		kingSq := b.Kings[c]
		score += sign * (MaterialScore[piece.King] + PSQT(piece.King, c, kingSq))
	}

	if phase > MaxPhase {
		phase = MaxPhase
	}

	e := Lerp(score.EG(), score.MG(), phase, MaxPhase)
	if b.SideToMove == piece.Black {
		e = -e
	}
	return e
}

// mobility scores the number of squares t's attack bitboard reaches
// that aren't occupied by a friendly piece.
func mobility(t piece.Type, attacked, friends bitboard.Board) Score {
	n := Eval((attacked &^ friends).Count())
	bonus := mobilityBonus[t]
	return S(bonus[0]*n, bonus[1]*n)
}
