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

//go:build bitboards

package attacks

import (
	"laptudirm.com/x/mess/pkg/attacks/magic"
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/square"
)

const (
	maxRookBlockers   = 1 << 12
	maxBishopBlockers = 1 << 9
)

var rookTable *magic.Table
var bishopTable *magic.Table

func init() {
	rookTable = magic.NewTable(maxRookBlockers, rookMoves)
	bishopTable = magic.NewTable(maxBishopBlockers, bishopMoves)
}

var (
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

func rookMoves(s square.Square, occ bitboard.Board, isMask bool) bitboard.Board {
	return rayWalk(s, occ, rookDirs, isMask)
}

func bishopMoves(s square.Square, occ bitboard.Board, isMask bool) bitboard.Board {
	return rayWalk(s, occ, bishopDirs, isMask)
}

func rayWalk(s square.Square, occ bitboard.Board, dirs [4][2]int, isMask bool) bitboard.Board {
	var attacks bitboard.Board

	for _, d := range dirs {
		file, rank := int(s.File()), int(s.Rank())
		for {
			file += d[0]
			rank += d[1]

			if !square.Valid(square.File(file), square.Rank(rank)) {
				break
			}

			to := square.New(square.File(file), square.Rank(rank))
			// the last square of a ray never changes the attack set
			isLast := !square.Valid(square.File(file+d[0]), square.Rank(rank+d[1]))

			if isMask && isLast {
				break
			}

			attacks.Set(to)

			if occ.IsSet(to) {
				break
			}
		}
	}

	return attacks
}

// Bishop returns the attack bitboard of a bishop standing on s given
// the total occupancy occ, excluding squares occupied by friends.
func Bishop(s square.Square, friends, occ bitboard.Board) bitboard.Board {
	return bishopTable.Probe(s, occ) &^ friends
}

// Rook returns the attack bitboard of a rook standing on s given the
// total occupancy occ, excluding squares occupied by friends.
func Rook(s square.Square, friends, occ bitboard.Board) bitboard.Board {
	return rookTable.Probe(s, occ) &^ friends
}
