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
	"laptudirm.com/x/mess/internal/util"
	"laptudirm.com/x/mess/pkg/eval"
)

// quiescence extends the search along capturing lines only, to avoid
// the horizon effect of cutting off evaluation mid-exchange.
// https://www.chessprogramming.org/Quiescence_Search
func (c *Context) quiescence(ply int, alpha, beta eval.Eval) eval.Eval {
	c.nodes++

	standPat := eval.Evaluate(c.Board)
	alpha = util.Max(alpha, standPat)
	if alpha >= beta {
		return standPat
	}

	moves := c.Board.GenerateCaptures()
	orderMoves(c.Board, moves)

	best := standPat
	for _, m := range moves {
		c.Board.MakeMove(m)
		v := -c.quiescence(ply+1, -beta, -alpha)
		c.Board.UnmakeMove()

		best = util.Max(best, v)
		alpha = util.Max(alpha, best)
		if alpha >= beta {
			break
		}
	}

	return best
}
