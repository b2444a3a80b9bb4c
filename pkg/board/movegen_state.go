// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package board

import (
	"laptudirm.com/x/mess/pkg/attacks"
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/piece"
)

// moveGenState holds the utility bitboards used while generating moves:
// the check-mask, pin-masks, and seen-by-enemy set. It is rebuilt fresh
// by GenerateMoves on every call and is never stored on Board, since
// none of it survives a make/unmake.
type moveGenState struct {
	*Board

	Us, Them piece.Color

	Friends, Enemies, Occupied bitboard.Board

	// Target is the set of squares a piece may move to: everywhere but a
	// friendly square, further restricted to the check-mask.
	Target bitboard.Board
	// KingTarget additionally excludes squares seen by the enemy, since
	// the king may never walk into check.
	KingTarget bitboard.Board

	CheckN    int
	CheckMask bitboard.Board

	PinnedD  bitboard.Board
	PinnedHV bitboard.Board

	SeenByEnemy bitboard.Board
}

// newMoveGenState builds the move generation state for b's side to move.
// captureOnly restricts Target/KingTarget to captures, for quiescence
// search callers that only want tactical moves.
func newMoveGenState(b *Board, captureOnly bool) *moveGenState {
	s := &moveGenState{Board: b}

	s.Us = b.SideToMove
	s.Them = s.Us.Other()

	s.Friends = b.ColorBBs[s.Us]
	s.Enemies = b.ColorBBs[s.Them]
	s.Occupied = s.Friends | s.Enemies

	s.calculateCheckmask()
	s.calculatePinmask()

	s.SeenByEnemy = s.seenSquares(s.Them)

	if captureOnly {
		s.Target = s.Enemies & s.CheckMask
		s.KingTarget = s.Enemies &^ s.SeenByEnemy
	} else {
		s.Target = ^s.Friends & s.CheckMask
		s.KingTarget = ^s.Friends &^ s.SeenByEnemy
	}

	return s
}

// calculateCheckmask calculates the check-mask of the current position
// and the number of checking pieces.
//
// A checker is an enemy piece directly checking the king; there can be
// at most two (double check). The check-mask is the set of squares a
// friendly piece can move to that blocks every check: the checker's own
// square, plus, for a sliding checker, the squares between it and the
// king. Under double check only the king may move, so the mask is not
// used; it is the universe when the king is not in check.
func (s *moveGenState) calculateCheckmask() {
	s.CheckN = 0
	s.CheckMask = bitboard.Empty

	kingSq := s.Kings[s.Us]

	pawns := s.Pawns(s.Them) & attacks.PawnAttacks(s.Us, kingSq)
	knights := s.Knights(s.Them) & attacks.Knight(kingSq, bitboard.Empty)
	bishops := (s.Bishops(s.Them) | s.Queens(s.Them)) & attacks.Bishop(kingSq, bitboard.Empty, s.Occupied)
	rooks := (s.Rooks(s.Them) | s.Queens(s.Them)) & attacks.Rook(kingSq, bitboard.Empty, s.Occupied)

	switch {
	case pawns != bitboard.Empty:
		s.CheckMask |= pawns
		s.CheckN++
	case knights != bitboard.Empty:
		s.CheckMask |= knights
		s.CheckN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.FirstOne()
		s.CheckMask |= bitboard.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
		s.CheckN++
	}

	if s.CheckN < 2 && rooks != bitboard.Empty {
		if s.CheckN == 0 && rooks.Count() > 1 {
			// double check; the king must move, so the mask stays empty
			s.CheckN += 2
		} else {
			rookSq := rooks.FirstOne()
			s.CheckMask |= bitboard.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			s.CheckN++
		}
	}

	if s.CheckN == 0 {
		s.CheckMask = bitboard.Universe
	}
}

// calculatePinmask calculates the diagonal and horizontal/vertical
// pin-masks: the set of squares a pinned piece may still move along
// without exposing its own king.
func (s *moveGenState) calculatePinmask() {
	kingSq := s.Kings[s.Us]

	friends := s.ColorBBs[s.Us]
	enemies := s.ColorBBs[s.Them]

	s.PinnedD = bitboard.Empty
	s.PinnedHV = bitboard.Empty

	for rooks := (s.Rooks(s.Them) | s.Queens(s.Them)) & attacks.Rook(kingSq, bitboard.Empty, enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		possiblePin := bitboard.Between[kingSq][rook] | bitboard.Squares[rook]

		if (possiblePin & friends).Count() == 1 {
			s.PinnedHV |= possiblePin
		}
	}

	for bishops := (s.Bishops(s.Them) | s.Queens(s.Them)) & attacks.Bishop(kingSq, bitboard.Empty, enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		possiblePin := bitboard.Between[kingSq][bishop] | bitboard.Squares[bishop]

		if (possiblePin & friends).Count() == 1 {
			s.PinnedD |= possiblePin
		}
	}
}

// seenSquares returns every square attacked by pieces of the given
// color. The enemy king is excluded as a sliding-ray blocker, since it
// must itself move away from the attack, exposing the square behind it.
func (s *moveGenState) seenSquares(by piece.Color) bitboard.Board {
	pawns := s.Pawns(by)
	knights := s.Knights(by)
	bishops := s.Bishops(by)
	rooks := s.Rooks(by)
	queens := s.Queens(by)
	kingSq := s.Kings[by]

	blockers := s.Occupied &^ s.King(by.Other())

	seen := attacks.PawnsLeft(pawns, by) | attacks.PawnsRight(pawns, by)

	for knights != bitboard.Empty {
		from := knights.Pop()
		seen |= attacks.Knight(from, bitboard.Empty)
	}
	for bishops != bitboard.Empty {
		from := bishops.Pop()
		seen |= attacks.Bishop(from, bitboard.Empty, blockers)
	}
	for rooks != bitboard.Empty {
		from := rooks.Pop()
		seen |= attacks.Rook(from, bitboard.Empty, blockers)
	}
	for queens != bitboard.Empty {
		from := queens.Pop()
		seen |= attacks.Queen(from, bitboard.Empty, blockers)
	}

	seen |= attacks.King(kingSq, bitboard.Empty)

	return seen
}
