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

//go:build !bitboards

package attacks

import (
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/square"
)

// bishopDirs and rookDirs are the (file, rank) step directions a bishop
// and a rook slide along, respectively.
var (
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// ray walks from s along the given directions, one square at a time,
// stopping (and including) the first occupied square in each direction.
func ray(s square.Square, occ bitboard.Board, dirs [4][2]int) bitboard.Board {
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
	return ray(s, occ, bishopDirs) &^ friends
}

// Rook returns the attack bitboard of a rook standing on s given the
// total occupancy occ, excluding squares occupied by friends.
func Rook(s square.Square, friends, occ bitboard.Board) bitboard.Board {
	return ray(s, occ, rookDirs) &^ friends
}
