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

package bitboard

import "laptudirm.com/x/mess/pkg/square"

// useful constant bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// file bitboards.
const (
	FileA Board = 0x0101010101010101
	FileB Board = 0x0202020202020202
	FileC Board = 0x0404040404040404
	FileD Board = 0x0808080808080808
	FileE Board = 0x1010101010101010
	FileF Board = 0x2020202020202020
	FileG Board = 0x4040404040404040
	FileH Board = 0x8080808080808080
)

// Files indexes the file bitboards by square.File.
var Files = [square.FileN]Board{
	square.FileA: FileA, square.FileB: FileB, square.FileC: FileC, square.FileD: FileD,
	square.FileE: FileE, square.FileF: FileF, square.FileG: FileG, square.FileH: FileH,
}

// rank bitboards.
const (
	Rank1 Board = 0xff00000000000000
	Rank2 Board = 0x00ff000000000000
	Rank3 Board = 0x0000ff0000000000
	Rank4 Board = 0x000000ff00000000
	Rank5 Board = 0x00000000ff000000
	Rank6 Board = 0x0000000000ff0000
	Rank7 Board = 0x000000000000ff00
	Rank8 Board = 0x00000000000000ff
)

// Ranks indexes the rank bitboards by square.Rank.
var Ranks = [square.RankN]Board{
	square.Rank1: Rank1, square.Rank2: Rank2, square.Rank3: Rank3, square.Rank4: Rank4,
	square.Rank5: Rank5, square.Rank6: Rank6, square.Rank7: Rank7, square.Rank8: Rank8,
}

// castling clearance masks: the squares between king and rook that must
// be empty. F1G1, C1D1, F8G8 and C8D8 are also the squares the king
// passes over or lands on, which must not be attacked.
const (
	F1G1   Board = 0x6000000000000000
	F8G8   Board = 0x0000000000000060
	C1D1   Board = 0x0c00000000000000
	C8D8   Board = 0x000000000000000c
	B1C1D1 Board = 0x0e00000000000000
	B8C8D8 Board = 0x000000000000000e
)

// Squares[s] is the singleton bitboard containing only square s.
var Squares [square.N]Board

func init() {
	mask := Board(1)
	for s := square.A8; s <= square.H1; s++ {
		Squares[s] = mask
		mask <<= 1
	}
}
