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
	"laptudirm.com/x/mess/pkg/castling"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// averageMovesPerPosition is a pre-allocation hint for move lists.
// https://chess.stackexchange.com/a/24325/33336
const averageMovesPerPosition = 31

// GenerateMoves generates every legal move in the current position.
func (b *Board) GenerateMoves() []move.Move {
	return b.generateMoves(false)
}

// GenerateCaptures generates every legal capturing move in the current
// position, for quiescence search.
func (b *Board) GenerateCaptures() []move.Move {
	return b.generateMoves(true)
}

func (b *Board) generateMoves(captureOnly bool) []move.Move {
	s := newMoveGenState(b, captureOnly)

	moveList := make([]move.Move, 0, averageMovesPerPosition)

	s.appendKingMoves(&moveList)

	if s.CheckN >= 2 {
		// double check: only the king may move
		return moveList
	}

	s.appendKnightMoves(&moveList)
	s.appendBishopMoves(&moveList)
	s.appendRookMoves(&moveList)
	s.appendQueenMoves(&moveList)
	s.appendPawnMoves(&moveList)

	if captureOnly {
		// pawn pushes and castling are generated in either mode
		captures := moveList[:0]
		for _, m := range moveList {
			if m.IsCapture() {
				captures = append(captures, m)
			}
		}
		moveList = captures
	}

	return moveList
}

func (s *moveGenState) appendKingMoves(moveList *[]move.Move) {
	king := piece.New(piece.King, s.Us)
	kingSq := s.Kings[s.Us]

	kingMoves := attacks.King(kingSq, bitboard.Empty) & s.KingTarget
	s.serializeMoves(moveList, king, kingSq, kingMoves)

	if s.CheckN == 0 {
		s.appendCastlingMoves(moveList)
	}
}

func (s *moveGenState) appendKnightMoves(moveList *[]move.Move) {
	knight := piece.New(piece.Knight, s.Us)
	for knights := s.Knights(s.Us) &^ (s.PinnedD | s.PinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		s.serializeMoves(moveList, knight, from, attacks.Knight(from, bitboard.Empty)&s.Target)
	}
}

func (s *moveGenState) appendBishopMoves(moveList *[]move.Move) {
	s.appendBishopTypeMoves(moveList, piece.New(piece.Bishop, s.Us), s.Bishops(s.Us))
}

func (s *moveGenState) appendRookMoves(moveList *[]move.Move) {
	s.appendRookTypeMoves(moveList, piece.New(piece.Rook, s.Us), s.Rooks(s.Us))
}

func (s *moveGenState) appendQueenMoves(moveList *[]move.Move) {
	queen := piece.New(piece.Queen, s.Us)
	queens := s.Queens(s.Us)
	s.appendBishopTypeMoves(moveList, queen, queens)
	s.appendRookTypeMoves(moveList, queen, queens)
}

func (s *moveGenState) appendBishopTypeMoves(moveList *[]move.Move, bishop piece.Piece, bishops bitboard.Board) {
	bishops &^= s.PinnedHV

	pinned := bishops & s.PinnedD
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		moves := attacks.Bishop(from, bitboard.Empty, s.Occupied) & s.Target & s.PinnedD
		s.serializeMoves(moveList, bishop, from, moves)
	}

	unpinned := bishops &^ s.PinnedD
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		moves := attacks.Bishop(from, bitboard.Empty, s.Occupied) & s.Target
		s.serializeMoves(moveList, bishop, from, moves)
	}
}

func (s *moveGenState) appendRookTypeMoves(moveList *[]move.Move, rook piece.Piece, rooks bitboard.Board) {
	rooks &^= s.PinnedD

	pinned := rooks & s.PinnedHV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		moves := attacks.Rook(from, bitboard.Empty, s.Occupied) & s.Target & s.PinnedHV
		s.serializeMoves(moveList, rook, from, moves)
	}

	unpinned := rooks &^ s.PinnedHV
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		moves := attacks.Rook(from, bitboard.Empty, s.Occupied) & s.Target
		s.serializeMoves(moveList, rook, from, moves)
	}
}

func (s *moveGenState) appendPawnMoves(moveList *[]move.Move) {
	var down square.Square
	var promotionRank, enPassantRank, doublePushRank bitboard.Board
	var p piece.Piece

	switch s.Us {
	case piece.White:
		down = 8
		promotionRank = bitboard.Rank8
		enPassantRank = bitboard.Rank5
		doublePushRank = bitboard.Rank3
		p = piece.WhitePawn
	case piece.Black:
		down = -8
		promotionRank = bitboard.Rank1
		enPassantRank = bitboard.Rank4
		doublePushRank = bitboard.Rank6
		p = piece.BlackPawn
	}

	left := square.Square(-1)
	right := square.Square(1)

	pushTarget := s.CheckMask &^ s.Occupied
	captureTarget := s.Enemies & s.CheckMask

	pawns := s.Pawns(s.Us)
	pawnsThatAttack := pawns &^ s.PinnedHV

	unpinnedAttackers := pawnsThatAttack &^ s.PinnedD
	pinnedAttackers := pawnsThatAttack & s.PinnedD

	attacksL := attacks.PawnsLeft(unpinnedAttackers, s.Us) & captureTarget
	attacksL |= attacks.PawnsLeft(pinnedAttackers, s.Us) & captureTarget & s.PinnedD

	attacksR := attacks.PawnsRight(unpinnedAttackers, s.Us) & captureTarget
	attacksR |= attacks.PawnsRight(pinnedAttackers, s.Us) & captureTarget & s.PinnedD

	simpleL := attacksL &^ promotionRank
	simpleR := attacksR &^ promotionRank

	for simpleL != bitboard.Empty {
		to := simpleL.Pop()
		*moveList = append(*moveList, move.New(to+down+right, to, p, true))
	}
	for simpleR != bitboard.Empty {
		to := simpleR.Pop()
		*moveList = append(*moveList, move.New(to+down+left, to, p, true))
	}

	promoL := attacksL & promotionRank
	promoR := attacksR & promotionRank

	for promoL != bitboard.Empty {
		to := promoL.Pop()
		appendPromotions(moveList, move.New(to+down+right, to, p, true), s.Us)
	}
	for promoR != bitboard.Empty {
		to := promoR.Pop()
		appendPromotions(moveList, move.New(to+down+left, to, p, true), s.Us)
	}

	pawnsThatPush := pawns &^ s.PinnedD
	unpinnedPushers := pawnsThatPush &^ s.PinnedHV
	pinnedPushers := pawnsThatPush & s.PinnedHV

	singleUnpinned := attacks.PawnPush(unpinnedPushers, s.Us)
	singlePinned := attacks.PawnPush(pinnedPushers, s.Us) & s.PinnedHV

	single := (singleUnpinned | singlePinned) &^ s.Occupied
	double := attacks.PawnPush(single&doublePushRank, s.Us) & pushTarget
	single &= pushTarget

	simplePush := single &^ promotionRank
	for simplePush != bitboard.Empty {
		to := simplePush.Pop()
		*moveList = append(*moveList, move.New(to+down, to, p, false))
	}

	for double != bitboard.Empty {
		to := double.Pop()
		*moveList = append(*moveList, move.New(to+down+down, to, p, false))
	}

	promoPush := single & promotionRank
	for promoPush != bitboard.Empty {
		to := promoPush.Pop()
		appendPromotions(moveList, move.New(to+down, to, p, false), s.Us)
	}

	s.appendEnPassant(moveList, p, down, enPassantRank, pawnsThatAttack)
}

func (s *moveGenState) appendEnPassant(moveList *[]move.Move, p piece.Piece, down square.Square, enPassantRank bitboard.Board, pawnsThatAttack bitboard.Board) {
	if s.EnPassantTarget == square.None {
		return
	}

	epPawn := s.EnPassantTarget + down

	epMask := bitboard.Squares[s.EnPassantTarget] | bitboard.Squares[epPawn]
	if s.CheckMask&epMask == 0 {
		return
	}

	kingSq := s.Kings[s.Us]
	kingMask := bitboard.Squares[kingSq] & enPassantRank
	enemyRooksQueens := (s.Rooks(s.Them) | s.Queens(s.Them)) & enPassantRank
	isPossiblePin := kingMask != bitboard.Empty && enemyRooksQueens != bitboard.Empty

	for fromBB := attacks.PawnAttacks(s.Them, s.EnPassantTarget) & pawnsThatAttack; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if s.PinnedD.IsSet(from) && !s.PinnedD.IsSet(s.EnPassantTarget) {
			continue
		}

		pawnsMask := bitboard.Squares[from] | bitboard.Squares[epPawn]
		if isPossiblePin && attacks.Rook(kingSq, bitboard.Empty, s.Occupied&^pawnsMask)&enemyRooksQueens != 0 {
			continue
		}

		*moveList = append(*moveList, move.New(from, s.EnPassantTarget, p, true))
	}
}

func (s *moveGenState) appendCastlingMoves(moveList *[]move.Move) {
	switch s.Us {
	case piece.White:
		if s.CastlingRights&castling.WhiteKingside != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F1G1 == bitboard.Empty {
			*moveList = append(*moveList, move.New(square.E1, square.G1, piece.WhiteKing, false))
		}
		if s.CastlingRights&castling.WhiteQueenside != 0 &&
			s.Occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C1D1 == bitboard.Empty {
			*moveList = append(*moveList, move.New(square.E1, square.C1, piece.WhiteKing, false))
		}
	case piece.Black:
		if s.CastlingRights&castling.BlackKingside != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F8G8 == bitboard.Empty {
			*moveList = append(*moveList, move.New(square.E8, square.G8, piece.BlackKing, false))
		}
		if s.CastlingRights&castling.BlackQueenside != 0 &&
			s.Occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C8D8 == bitboard.Empty {
			*moveList = append(*moveList, move.New(square.E8, square.C8, piece.BlackKing, false))
		}
	}
}

func (s *moveGenState) serializeMoves(moveList *[]move.Move, p piece.Piece, from square.Square, moves bitboard.Board) {
	for toBB := moves; toBB != bitboard.Empty; {
		to := toBB.Pop()
		*moveList = append(*moveList, move.New(from, to, p, s.Enemies.IsSet(to)))
	}
}

func appendPromotions(moveList *[]move.Move, m move.Move, c piece.Color) {
	*moveList = append(*moveList,
		m.SetPromotion(piece.New(piece.Queen, c)),
		m.SetPromotion(piece.New(piece.Rook, c)),
		m.SetPromotion(piece.New(piece.Bishop, c)),
		m.SetPromotion(piece.New(piece.Knight, c)),
	)
}
