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

// Package eval implements static position evaluation: material, piece-
// square tables, and mobility. No tuner, no king-safety or
// pawn-structure terms beyond plain material and PSQT.
package eval

import (
	"fmt"
	"math"
)

// Eval is a relative centipawn evaluation where > 0 favors the side to
// move and < 0 favors the opponent.
type Eval int

const (
	// Draw is the evaluation of a stalemated or otherwise drawn position.
	Draw Eval = 0

	Inf  Eval = math.MaxInt32 / 2 // prevent overflow when negated
	Mate Eval = Inf - 1

	// WinInMaxPly/LoseInMaxPly bound how far from Mate a score can be
	// while still being reported as a forced mate rather than a plain
	// centipawn score.
	WinInMaxPly  Eval = Mate - 2*10000
	LoseInMaxPly Eval = -WinInMaxPly
)

// MatedIn returns the evaluation for being checkmated in the given ply,
// counted from the search root. Longer mating lines score higher (less
// negative) so the search prefers delaying an inevitable loss.
func MatedIn(ply int) Eval {
	return -Mate + Eval(ply)
}

// String renders the evaluation the way a UCI "info score" field would:
// "cp <n>" for a plain score, "mate <n>" near a forced mate.
func (e Eval) String() string {
	switch {
	case e > WinInMaxPly:
		plys := Mate - e
		return fmt.Sprintf("mate %d", (plys+1)/2)
	case e < LoseInMaxPly:
		plys := -Mate - e
		return fmt.Sprintf("mate %d", -(plys+1)/2)
	default:
		return fmt.Sprintf("cp %d", e)
	}
}
