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

// Package search implements depth-limited negamax with alpha-beta
// pruning and a capture-only quiescence extension. No transposition
// table, no iterative deepening, no time management (all explicit
// non-goals).
package search

import (
	"errors"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/eval"
	"laptudirm.com/x/mess/pkg/move"
)

// MaxDepth bounds the recursion depth of a single search call.
const MaxDepth = 256

// Context holds the state of a single search call against a Board. A
// Context may be reused across searches on the same Board; use a fresh
// one for a different game.
type Context struct {
	Board *board.Board

	nodes     int
	bestMove  move.Move
	bestScore eval.Eval
}

// NewContext creates a search Context over the given board.
func NewContext(b *board.Board) *Context {
	return &Context{Board: b}
}

// Search runs negamax to the given depth and returns the best move found
// along with its evaluation. It is an error to call Search on an
// illegal position (one where the side not to move is in check, i.e.
// their king could be captured).
func (c *Context) Search(depth int) (move.Move, eval.Eval, error) {
	if c.Board.IsInCheck(c.Board.SideToMove.Other()) {
		return move.Null, eval.Inf, errors.New("search: position is illegal")
	}

	if depth > MaxDepth {
		depth = MaxDepth
	}

	c.nodes = 0
	c.bestMove = move.Null
	c.bestScore = -eval.Inf

	c.negamax(0, depth, -eval.Inf, eval.Inf)

	return c.bestMove, c.bestScore, nil
}

// Nodes reports the number of nodes visited by the most recent Search
// call, for benchmarking.
func (c *Context) Nodes() int {
	return c.nodes
}

// negamax implements a symmetric minimax formulation where both sides
// maximize the negation of the opponent's best reply, pruned with
// alpha-beta bounds.
func (c *Context) negamax(ply, depth int, alpha, beta eval.Eval) eval.Eval {
	c.nodes++

	if depth <= 0 || ply >= MaxDepth {
		return c.quiescence(ply, alpha, beta)
	}

	moves := c.Board.GenerateMoves()
	if len(moves) == 0 {
		if c.Board.IsInCheck(c.Board.SideToMove) {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}

	orderMoves(c.Board, moves)

	best := -eval.Inf
	for _, m := range moves {
		c.Board.MakeMove(m)
		v := -c.negamax(ply+1, depth-1, -beta, -alpha)
		c.Board.UnmakeMove()

		if v > best {
			best = v
			if ply == 0 {
				c.bestMove = m
				c.bestScore = v
			}
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	return best
}
