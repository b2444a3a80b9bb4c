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

// Package move declares the Move type and the implicit move sub-types
// derived from it (quiet, capture, double-push, castling): a move is
// stored as (source, target, promotion?) and everything else is
// derived from context rather than stored redundantly.
package move

import (
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Move represents a single chess half-move. It packs its fields into a
// single machine word so that move lists need no per-move allocation.
//
// Format: MSB -> LSB
// [20 isCapture bool 20][19 toPiece piece.Piece 16][15 fromPiece piece.Piece 12][11 target square.Square 6][05 source square.Square 00]
type Move uint32

// Null is the "no move" value, used as a sentinel.
const Null Move = 0

const (
	sourceWidth = 6
	targetWidth = 6
	fPieceWidth = 4
	tPieceWidth = 4

	sourceOffset  = 0
	targetOffset  = sourceOffset + sourceWidth
	fPieceOffset  = targetOffset + targetWidth
	tPieceOffset  = fPieceOffset + fPieceWidth
	tacticOffset  = tPieceOffset + tPieceWidth
	captureMask   = 1
	sourceMask    = (1 << sourceWidth) - 1
	targetMask    = (1 << targetWidth) - 1
	fPieceMask    = (1 << fPieceWidth) - 1
	tPieceMask    = (1 << tPieceWidth) - 1
)

// New creates a Move from source to target, moved by fPiece. isCapture
// must report whether the move captures, en-passant included (see
// IsEnPassant to tell an en-passant capture apart).
func New(source, target square.Square, fPiece piece.Piece, isCapture bool) Move {
	m := Move(source) << sourceOffset
	m |= Move(target) << targetOffset
	m |= Move(fPiece) << fPieceOffset
	m |= Move(fPiece) << tPieceOffset
	if isCapture {
		m |= captureMask << tacticOffset
	}
	return m
}

// SetPromotion returns a copy of the move promoting to the given piece.
func (m Move) SetPromotion(p piece.Piece) Move {
	m &^= tPieceMask << tPieceOffset
	m |= Move(p) << tPieceOffset
	return m
}

// Source returns the move's source square.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the move's target square.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// FromPiece returns the piece being moved.
func (m Move) FromPiece() piece.Piece {
	return piece.Piece((m >> fPieceOffset) & fPieceMask)
}

// ToPiece returns the piece standing on Target() after the move. This
// differs from FromPiece only for promotions.
func (m Move) ToPiece() piece.Piece {
	return piece.Piece((m >> tPieceOffset) & tPieceMask)
}

// IsCapture reports whether the move captures a piece standing on the
// target square. En-passant is a capture whose victim is not on Target();
// see IsEnPassant.
func (m Move) IsCapture() bool {
	return (m>>tacticOffset)&captureMask != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.FromPiece() != m.ToPiece()
}

// IsEnPassant reports whether the move is an en-passant capture, given
// the en-passant target square active before the move is played.
func (m Move) IsEnPassant(ep square.Square) bool {
	return ep != square.None && m.Target() == ep && m.FromPiece().Type() == piece.Pawn
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	if m.FromPiece().Type() != piece.Pawn {
		return false
	}

	diff := int(m.Target()) - int(m.Source())
	return diff == 16 || diff == -16
}

// IsCastle reports whether the move is a castling move (a king moving
// two files on its home rank).
func (m Move) IsCastle() bool {
	if m.FromPiece().Type() != piece.King {
		return false
	}

	diff := int(m.Target()) - int(m.Source())
	return diff == 2 || diff == -2
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsReversible reports whether the move is reversible for draw-counting
// purposes: not a capture and not a pawn move.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.FromPiece().Type() != piece.Pawn
}

// String converts the move to long algebraic notation, e.g. "e2e4",
// "e7e8q" for promotion, "0000" for the null move.
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.Source().String() + m.Target().String()
	if m.IsPromotion() {
		s += m.ToPiece().Type().String()
	}
	return s
}
