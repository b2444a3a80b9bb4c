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

// Package mailbox implements the default, "wide" pkg/cell.Store back-end:
// an 8x8 array holding a full piece.Piece per square.
// https://www.chessprogramming.org/8x8_Board
package mailbox

import (
	"fmt"

	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Board is an 8x8 mailbox chessboard, one piece.Piece per square.
type Board [8 * 8]piece.Piece

// New returns an empty mailbox board.
func New() *Board {
	return &Board{}
}

// Get returns the piece standing on s.
func (b *Board) Get(s square.Square) piece.Piece {
	return b[s]
}

// Set places p on s.
func (b *Board) Set(s square.Square, p piece.Piece) {
	b[s] = p
}

// String converts a Board into its human readable string representation.
func (b *Board) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"

	for rank := 0; rank < 8; rank++ {
		s += "| "

		for file := 0; file < 8; file++ {
			sq := square.Square(rank*8 + file)
			s += b[sq].String() + " | "
		}

		s += fmt.Sprintln(8 - rank)
		s += "+---+---+---+---+---+---+---+---+\n"
	}

	s += "  a   b   c   d   e   f   g   h\n"
	return s
}

// FEN generates the position field of a fen string representing the
// current board position.
func (b *Board) FEN() string {
	var fen string

	empty := 0
	for i, p := range b {
		if p == piece.NoPiece {
			empty++
		} else {
			if empty > 0 {
				fen += fmt.Sprint(empty)
				empty = 0
			}
			fen += p.String()
		}

		if (i+1)%8 == 0 {
			if empty > 0 {
				fen += fmt.Sprint(empty)
				empty = 0
			}
			if i < 63 {
				fen += "/"
			}
		}
	}

	return fen
}
