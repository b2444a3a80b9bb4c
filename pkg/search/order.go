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

package search

import (
	"sort"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
)

// mvvLva[victim][attacker] scores a capture by how valuable the victim
// is and how cheap the attacker is, so that "pawn takes queen" is tried
// well before "queen takes pawn".
var mvvLva = [piece.NType][piece.NType]int{
	piece.Pawn:   {0, 15, 14, 13, 12, 11, 10},
	piece.Knight: {0, 25, 24, 23, 22, 21, 20},
	piece.Bishop: {0, 35, 34, 33, 32, 31, 30},
	piece.Rook:   {0, 45, 44, 43, 42, 41, 40},
	piece.Queen:  {0, 55, 54, 53, 52, 51, 50},
}

// orderMoves sorts moves in place: captures first (best victim/attacker
// pairing first), then promotions, then quiet moves.
func orderMoves(b *board.Board, moves []move.Move) {
	score := func(m move.Move) int {
		switch {
		case m.IsCapture():
			victim := b.Position.Get(m.Target()).Type()
			attacker := m.FromPiece().Type()
			return 2000 + mvvLva[victim][attacker]
		case m.IsPromotion():
			return 1000
		default:
			return 0
		}
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return score(moves[i]) > score(moves[j])
	})
}
