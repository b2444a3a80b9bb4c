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

package session_test

import (
	"testing"

	"laptudirm.com/x/mess/pkg/session"
)

// sameView reports whether two GameViews describe the same position.
// GameView.Board holds *Cell pointers that are freshly allocated on
// every GetGame call, so comparing GameViews with == would always
// report a difference; this compares the pointees instead.
func sameView(a, b session.GameView) bool {
	if a.Player != b.Player {
		return false
	}
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			ca, cb := a.Board[r][f], b.Board[r][f]
			switch {
			case ca == nil && cb == nil:
				continue
			case ca == nil || cb == nil:
				return false
			case *ca != *cb:
				return false
			}
		}
	}
	return true
}

// TestGetGameStartingPosition checks the wire shape of GetGame against
// the standard starting position: White's back rank on wire rank 0,
// Black's on wire rank 7, side to move "white".
func TestGetGameStartingPosition(t *testing.T) {
	s := session.New()
	view := s.GetGame()

	if view.Player != "white" {
		t.Errorf("player = %q, want %q", view.Player, "white")
	}

	king := view.Board[0][4]
	if king == nil || king.Piece != "king" || king.Player != "white" {
		t.Errorf("board[0][4] = %+v, want white king", king)
	}

	pawn := view.Board[1][0]
	if pawn == nil || pawn.Piece != "pawn" || pawn.Player != "white" {
		t.Errorf("board[1][0] = %+v, want white pawn", pawn)
	}

	blackKing := view.Board[7][4]
	if blackKing == nil || blackKing.Piece != "king" || blackKing.Player != "black" {
		t.Errorf("board[7][4] = %+v, want black king", blackKing)
	}

	if view.Board[3][3] != nil {
		t.Errorf("board[3][3] = %+v, want empty", view.Board[3][3])
	}
}

// TestGetPossibleMovesPawnOpening checks get_possible_moves for a
// starting-position pawn: two squares ahead on the c-file.
func TestGetPossibleMovesPawnOpening(t *testing.T) {
	s := session.New()

	// c2 is wire (rank 1, file 2).
	targets := s.GetPossibleMoves(1, 2)
	if len(targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2", len(targets))
	}

	want := map[session.Square]bool{{Rank: 2, File: 2}: true, {Rank: 3, File: 2}: true}
	for _, sq := range targets {
		if !want[sq] {
			t.Errorf("unexpected target %+v", sq)
		}
	}
}

// TestDoMoveIllegal checks that an illegal move request is rejected and
// leaves the position untouched.
func TestDoMoveIllegal(t *testing.T) {
	s := session.New()
	before := s.GetGame()

	// A pawn cannot advance three ranks at once (a2-a5).
	ok := s.DoMove(session.DoMoveRequest{SourceRank: 1, SourceFile: 0, TargetRank: 4, TargetFile: 0})
	if ok {
		t.Fatalf("expected DoMove to reject an illegal move")
	}

	after := s.GetGame()
	if !sameView(after, before) {
		t.Errorf("position changed after a rejected move")
	}
}

// TestDoMoveLegalAdvancesTurn checks that a legal move is applied and,
// in single-player mode, the engine immediately replies, handing the
// turn back to White.
func TestDoMoveLegalAdvancesTurn(t *testing.T) {
	s := session.New()

	// e2-e4, wire (rank 1, file 4) -> (rank 3, file 4).
	ok := s.DoMove(session.DoMoveRequest{SourceRank: 1, SourceFile: 4, TargetRank: 3, TargetFile: 4})
	if !ok {
		t.Fatalf("expected e2-e4 to be accepted")
	}

	view := s.GetGame()
	if view.Player != "white" {
		t.Errorf("player after White's move and the engine's reply = %q, want %q", view.Player, "white")
	}

	history := s.GetHistory()
	if len(history) != 1 || history[0].White == nil || history[0].Black == nil {
		t.Fatalf("expected one full turn recorded after DoMove's reply, got %+v", history)
	}
}

// TestRestartReturnsToStartingPosition checks that Restart undoes any
// moves played and returns to the session's original position.
func TestRestartReturnsToStartingPosition(t *testing.T) {
	s := session.New()
	before := s.GetGame()

	s.DoMove(session.DoMoveRequest{SourceRank: 1, SourceFile: 4, TargetRank: 3, TargetFile: 4})
	s.Restart()

	after := s.GetGame()
	if !sameView(after, before) {
		t.Errorf("GetGame after Restart = %+v, want %+v", after, before)
	}
	if len(s.GetHistory()) != 0 {
		t.Errorf("expected history cleared after Restart, got %d turns", len(s.GetHistory()))
	}
}

// TestDoMovePromotion checks that a promotion request is matched to the
// correctly-typed promoting move.
func TestDoMovePromotion(t *testing.T) {
	s := session.NewFromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")

	ok := s.DoMove(session.DoMoveRequest{
		SourceRank: 6, SourceFile: 0,
		TargetRank: 7, TargetFile: 0,
		Promotion: "queen",
	})
	if !ok {
		t.Fatalf("expected a8=Q to be accepted")
	}

	view := s.GetGame()
	promoted := view.Board[7][0]
	if promoted == nil || promoted.Piece != "queen" || promoted.Player != "white" {
		t.Errorf("board[7][0] = %+v, want white queen", promoted)
	}
}
