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

package board

import (
	"strings"

	"laptudirm.com/x/mess/internal/util"
	"laptudirm.com/x/mess/pkg/castling"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
	"laptudirm.com/x/mess/pkg/zobrist"
)

// MakeMove plays the given legal move on the Board.
func (b *Board) MakeMove(m move.Move) {
	// add current state to history
	b.History[b.Plys].Move = m
	b.History[b.Plys].CastlingRights = b.CastlingRights
	b.History[b.Plys].CapturedPiece = piece.NoPiece
	b.History[b.Plys].EnPassantTarget = b.EnPassantTarget
	b.History[b.Plys].DrawClock = b.DrawClock
	b.History[b.Plys].Hash = b.Hash

	// half-move clock: plys since the last pawn push or capture
	b.DrawClock++

	if m == move.Null {
		b.makeNullMove()
		return
	}

	sourceSq := m.Source()
	targetSq := m.Target()
	captureSq := targetSq
	fromPiece := m.FromPiece()
	pieceType := fromPiece.Type()
	toPiece := m.ToPiece()

	isDoublePush := pieceType == piece.Pawn && util.Abs(targetSq-sourceSq) == 16
	isCastling := pieceType == piece.King && util.Abs(targetSq-sourceSq) == 2
	isEnPassant := pieceType == piece.Pawn && targetSq == b.EnPassantTarget
	isCapture := m.IsCapture()

	if pieceType == piece.Pawn {
		b.DrawClock = 0
	}

	// reset en passant target; a fresh one is set below if applicable
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	switch {
	case isDoublePush:
		target := sourceSq
		if b.SideToMove == piece.White {
			target -= 8
		} else {
			target += 8
		}

		// every double push sets the target, capturable or not
		b.EnPassantTarget = target
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]

	case isCastling:
		rookMove := castling.Rooks[targetSq]
		b.ClearSquare(rookMove.From)
		b.FillSquare(rookMove.To, rookMove.Rook)

	case isEnPassant:
		if b.SideToMove == piece.White {
			captureSq += 8
		} else {
			captureSq -= 8
		}
		fallthrough

	case isCapture:
		b.History[b.Plys].CapturedPiece = b.Position.Get(captureSq)
		b.DrawClock = 0
		b.ClearSquare(captureSq)
	}

	b.ClearSquare(sourceSq)
	b.FillSquare(targetSq, toPiece)

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights &^= castling.RightUpdates[sourceSq]
	b.CastlingRights &^= castling.RightUpdates[targetSq]
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.Plys++

	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

func (b *Board) makeNullMove() {
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	b.Plys++

	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

// UnmakeMove reverses the last move played on the Board, restoring it
// from the History record MakeMove left behind.
func (b *Board) UnmakeMove() {
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.Black {
		b.FullMoves--
	}

	b.Plys--

	b.EnPassantTarget = b.History[b.Plys].EnPassantTarget
	b.DrawClock = b.History[b.Plys].DrawClock
	b.CastlingRights = b.History[b.Plys].CastlingRights

	m := b.History[b.Plys].Move

	if m == move.Null {
		b.Hash = b.History[b.Plys].Hash
		b.History[b.Plys] = Undo{}
		return
	}

	sourceSq := m.Source()
	targetSq := m.Target()
	captureSq := targetSq
	fromPiece := m.FromPiece()
	pieceType := fromPiece.Type()
	capturedPiece := b.History[b.Plys].CapturedPiece

	isCastling := pieceType == piece.King && util.Abs(targetSq-sourceSq) == 2
	isEnPassant := pieceType == piece.Pawn && targetSq == b.EnPassantTarget
	isCapture := m.IsCapture()

	b.ClearSquare(targetSq)
	b.FillSquare(sourceSq, fromPiece)

	switch {
	case isCastling:
		rookMove := castling.Rooks[targetSq]
		b.ClearSquare(rookMove.To)
		b.FillSquare(rookMove.From, rookMove.Rook)

	case isEnPassant:
		if b.SideToMove == piece.White {
			captureSq += 8
		} else {
			captureSq -= 8
		}
		fallthrough

	case isCapture:
		b.FillSquare(captureSq, capturedPiece)
	}

	b.Hash = b.History[b.Plys].Hash
	b.History[b.Plys] = Undo{}
}

// NewMove builds a move.Move from from to to, filling in the contextual
// information (moving piece, capture flag) the board alone can supply.
// Promotions are added afterwards with (move.Move).SetPromotion.
func (b *Board) NewMove(from, to square.Square) move.Move {
	p := b.Position.Get(from)
	isEnPassant := p.Type() == piece.Pawn && to == b.EnPassantTarget
	return move.New(from, to, p, isEnPassant || b.Position.Get(to) != piece.NoPiece)
}

// NewMoveFromString parses a move in long algebraic notation
// ("e2e4", "e7e8q") relative to the current position.
func (b *Board) NewMoveFromString(m string) move.Move {
	from := square.NewFromString(m[:2])
	to := square.NewFromString(m[2:4])

	mv := b.NewMove(from, to)
	if len(m) == 5 {
		pieceID := m[4:]
		if b.SideToMove == piece.White {
			pieceID = strings.ToUpper(pieceID)
		}

		mv = mv.SetPromotion(piece.NewFromString(pieceID))
	}

	return mv
}
