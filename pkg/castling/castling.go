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

// Package castling provides types and definitions for dealing with
// castling rights and castling moves.
package castling

import "laptudirm.com/x/mess/pkg/square"

// Rights represents the castling rights still available in a position.
// Rights are cleared, never re-granted.
type Rights byte

// NewRights parses a FEN castling availability field, e.g. "KQkq", "-".
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}
	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}
	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}
	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

// constants representing the four independent castling rights.
const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black
)

// N is the number of distinct Rights values.
const N = 1 << 4

// RightUpdates maps each square to the rights that are lost when a piece
// moves from, or is captured on, that square: the corner squares clear
// the matching rook-side right, and the starting king squares clear both
// of that color's rights. Every other square leaves rights untouched.
var RightUpdates = [square.N]Rights{
	square.A8: BlackQueenside, square.E8: Black, square.H8: BlackKingside,
	square.A1: WhiteQueenside, square.E1: White, square.H1: WhiteKingside,
}

// String converts Rights into its FEN representation.
func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}
	if c&WhiteQueenside != 0 {
		str += "Q"
	}
	if c&BlackKingside != 0 {
		str += "k"
	}
	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}
