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

package game

import (
	"strings"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
)

// moveToSAN renders m in Standard Algebraic Notation. Disambiguation
// and the capture flag are computed before m is applied to b, since
// both depend on the set of other legal moves in the current position;
// the check/checkmate suffix is appended by the caller once the move
// has actually been played.
func moveToSAN(b *board.Board, m move.Move, legalMoves []move.Move) string {
	if m.IsCastle() {
		if m.Target().File() < m.Source().File() {
			return "O-O-O"
		}
		return "O-O"
	}

	fromType := m.FromPiece().Type()

	var san strings.Builder

	if fromType != piece.Pawn {
		san.WriteString(strings.ToUpper(fromType.String()))
		san.WriteString(disambiguate(b, m, legalMoves, fromType))
	}

	isCapture := m.IsCapture()
	if isCapture {
		if fromType == piece.Pawn {
			san.WriteString(m.Source().File().String())
		}
		san.WriteByte('x')
	}

	san.WriteString(m.Target().String())

	if m.IsPromotion() {
		san.WriteByte('=')
		san.WriteString(strings.ToUpper(m.ToPiece().Type().String()))
	}

	return san.String()
}

// disambiguate returns the file and/or rank needed to tell m's source
// square apart from any other legal move of the same piece type to the
// same target, per standard SAN disambiguation rules.
func disambiguate(b *board.Board, m move.Move, legalMoves []move.Move, fromType piece.Type) string {
	sameFile := false
	sameRank := false
	ambiguous := false

	for _, other := range legalMoves {
		if other.Source() == m.Source() || other.Target() != m.Target() {
			continue
		}
		if other.FromPiece().Type() != fromType {
			continue
		}

		ambiguous = true
		if other.Source().File() == m.Source().File() {
			sameFile = true
		}
		if other.Source().Rank() == m.Source().Rank() {
			sameRank = true
		}
	}

	if !ambiguous {
		return ""
	}

	switch {
	case !sameFile:
		return m.Source().File().String()
	case !sameRank:
		return m.Source().Rank().String()
	default:
		return m.Source().String()
	}
}
