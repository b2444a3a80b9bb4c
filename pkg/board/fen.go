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

package board

import (
	"strconv"
	"strings"

	"laptudirm.com/x/mess/pkg/castling"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
	"laptudirm.com/x/mess/pkg/zobrist"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New creates a *Board from the given FEN string.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func New(fen string) *Board {
	fields := strings.Fields(fen)

	b := &Board{
		Position:        newPosition(),
		EnPassantTarget: square.None,
	}

	b.SideToMove = piece.NewColor(fields[1])
	if b.SideToMove == piece.Black {
		b.Hash ^= zobrist.SideToMove
	}

	ranks := strings.Split(fields[0], "/")
	for rankID, rankData := range ranks {
		fileID := square.FileA
		for _, id := range rankData {
			s := square.New(fileID, square.Rank(rankID))

			if id >= '1' && id <= '8' {
				fileID += square.File(id - '0')
				continue
			}

			p := piece.NewFromString(string(id))
			if p.Type() != piece.NoType {
				b.FillSquare(s, p)
			}

			fileID++
		}
	}

	b.CastlingRights = castling.NewRights(fields[2])
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.EnPassantTarget = square.NewFromString(fields[3])
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}

	if len(fields) > 4 {
		b.DrawClock, _ = strconv.Atoi(fields[4])
	}
	if len(fields) > 5 {
		b.FullMoves, _ = strconv.Atoi(fields[5])
	} else {
		b.FullMoves = 1
	}

	return b
}

// FEN returns the FEN string of the current board position.
func (b *Board) FEN() string {
	var s string
	s += b.Position.FEN() + " "
	s += b.SideToMove.String() + " "
	s += b.CastlingRights.String() + " "
	s += b.EnPassantTarget.String() + " "
	s += strconv.Itoa(b.DrawClock) + " "
	s += strconv.Itoa(b.FullMoves)
	return s
}
