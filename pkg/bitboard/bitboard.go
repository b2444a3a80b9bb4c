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

// Package bitboard implements a 64-bit bitboard and other related
// functions for manipulating them. A bit at index rank*8+file is set iff
// the corresponding square is selected; see package square for the index
// convention (A8 = 0, H1 = 63).
package bitboard

import (
	"math/bits"
	"strings"

	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Board is a 64-bit bitboard, one bit per chessboard square.
type Board uint64

// String returns a human readable 8x8 representation of the bitboard.
func (b Board) String() string {
	var str strings.Builder
	for s := square.A8; s <= square.H1; s++ {
		if b.IsSet(s) {
			str.WriteByte('1')
		} else {
			str.WriteByte('0')
		}

		if s.File() == square.FileH {
			str.WriteByte('\n')
		} else {
			str.WriteByte(' ')
		}
	}

	return str.String()
}

// Up shifts the bitboard one rank towards the given color's opponent.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts the bitboard one rank towards the given color's own side.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// North shifts the bitboard towards rank 8 (down in square index terms).
func (b Board) North() Board {
	return b >> 8
}

// South shifts the bitboard towards rank 1.
func (b Board) South() Board {
	return b << 8
}

// East shifts the bitboard towards the h-file, clipping the wrap-around.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the bitboard towards the a-file, clipping the wrap-around.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop returns the least significant set square of the bitboard and
// clears it.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares in the bitboard.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the least significant set square of the bitboard.
// Calling it on an empty bitboard is undefined.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given square is set in the bitboard.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given square in the bitboard. Setting square.None is a
// no-op, which keeps callers that track an optional square simple.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears the given square in the bitboard.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
