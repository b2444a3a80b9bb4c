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

package search_test

import (
	"testing"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/search"
)

// TestSearchDeterminism checks that searching the same position at the
// same depth twice returns the same move and score both times.
func TestSearchDeterminism(t *testing.T) {
	b := board.New(board.StartFEN)

	c1 := search.NewContext(b)
	move1, score1, err := c1.Search(3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	c2 := search.NewContext(b)
	move2, score2, err := c2.Search(3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if move1 != move2 {
		t.Errorf("best move = %s then %s, want identical", move1, move2)
	}
	if score1 != score2 {
		t.Errorf("best score = %s then %s, want identical", score1, score2)
	}
}

// TestSearchFindsMateInOne checks that a forced mate reachable in a
// single ply is actually found and scored as a mate, not merely a good
// centipawn score.
func TestSearchFindsMateInOne(t *testing.T) {
	// After 1. f3 e5 2. g4, Black to move: Qh4# is available.
	b := board.New("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")

	c := search.NewContext(b)
	best, score, err := c.Search(2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if got := best.String(); got != "d8h4" {
		t.Errorf("best move = %s, want d8h4 (Qh4#)", got)
	}
	if score <= 0 {
		t.Errorf("score = %s, want a winning (positive) mate score", score)
	}
}

// TestSearchLeavesBoardUnchanged checks that Search always leaves the
// board it was given in its original position, since search.Context
// reuses the caller's Board via make/unmake rather than copying it.
func TestSearchLeavesBoardUnchanged(t *testing.T) {
	b := board.New(board.StartFEN)
	before := b.FEN()

	c := search.NewContext(b)
	if _, _, err := c.Search(3); err != nil {
		t.Fatalf("Search: %v", err)
	}

	if after := b.FEN(); after != before {
		t.Errorf("FEN after Search = %q, want unchanged %q", after, before)
	}
}

// TestSearchNodeCountPositive checks that Nodes reports a positive node
// count after a real search.
func TestSearchNodeCountPositive(t *testing.T) {
	b := board.New(board.StartFEN)
	c := search.NewContext(b)

	if _, _, err := c.Search(2); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if c.Nodes() <= 0 {
		t.Errorf("Nodes() = %d, want > 0", c.Nodes())
	}
}
