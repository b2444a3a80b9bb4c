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

package bitboard

import "laptudirm.com/x/mess/pkg/square"

// Between[a][b] is the set of squares strictly between a and b if they
// share a rank, file, or diagonal, and Empty otherwise. It is used by
// move generation to build the check-mask and pin-masks.
var Between [square.N][square.N]Board

// the eight ray directions, as (file offset, rank offset) steps.
var rayDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func init() {
	for a := square.A8; a <= square.H1; a++ {
		for _, d := range rayDirs {
			var mask Board

			file, rank := int(a.File()), int(a.Rank())
			for {
				file += d[0]
				rank += d[1]

				if !square.Valid(square.File(file), square.Rank(rank)) {
					break
				}

				b := square.New(square.File(file), square.Rank(rank))
				Between[a][b] = mask
				// Squares is filled by tables.go's init, which runs after
				// this one, so the bit is built directly
				mask |= Board(1) << uint(b)
			}
		}
	}
}
