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

package game_test

import (
	"testing"

	"laptudirm.com/x/mess/pkg/game"
	"laptudirm.com/x/mess/pkg/piece"
)

// playUCI applies the move matching the given long-algebraic string and
// returns its MoveDescription.
func playUCI(t *testing.T, g *game.Game, uci string) game.MoveDescription {
	t.Helper()
	m := g.Board.NewMoveFromString(uci)
	return g.ApplyMove(m)
}

// TestFoolsMateSAN checks fool's mate through the Game layer: the mating
// move gets SAN "Qh4#" and a Checkmate mate tag, and no further move can
// be applied.
func TestFoolsMateSAN(t *testing.T) {
	g := game.New()

	playUCI(t, g, "f2f3")
	playUCI(t, g, "e7e5")
	playUCI(t, g, "g2g4")
	desc := playUCI(t, g, "d8h4")

	if desc.SAN != "Qh4#" {
		t.Errorf("SAN = %q, want %q", desc.SAN, "Qh4#")
	}
	if desc.Mate != game.Checkmate {
		t.Errorf("mate = %v, want Checkmate", desc.Mate)
	}
	if len(g.LegalMoves()) != 0 {
		t.Errorf("expected no legal moves after checkmate, got %d", len(g.LegalMoves()))
	}

	turn := g.History[len(g.History)-1]
	if turn.Black == nil || turn.Black.SAN != "Qh4#" {
		t.Errorf("expected last turn's Black half-move to record Qh4#")
	}
}

// TestKnightDisambiguation checks the SAN disambiguation rule: when two
// knights of the same color can reach the same square, the move is
// rendered with the distinguishing file (or rank, or full source square
// if both coincide).
func TestKnightDisambiguation(t *testing.T) {
	// Knights on b1 and d2(via g1) can both reach f3-ish squares; use a
	// simpler, well-known doubled-knight position instead: knights on
	// c3 and g1 can both move to e2.
	g := game.NewFromFEN("4k3/8/8/8/8/2N5/8/4K1N1 w - - 0 1")

	var toE2 []string
	for _, m := range g.LegalMoves() {
		if m.Target().String() == "e2" && m.FromPiece().Type() == piece.Knight {
			toE2 = append(toE2, m.String())
		}
	}
	if len(toE2) != 2 {
		t.Fatalf("expected two knights able to reach e2, found %d candidate moves", len(toE2))
	}

	// Apply one of the two knight moves to e2 and check its SAN carries
	// a file disambiguator, since neither knight shares e2's file or
	// rank with the other's source square... both g1 and c3 differ in
	// file, so file disambiguation suffices.
	for _, m := range g.LegalMoves() {
		if m.Target().String() == "e2" && m.FromPiece().Type() == piece.Knight && m.Source().String() == "c3" {
			desc := g.ApplyMove(m)
			if desc.SAN != "Nce2" {
				t.Errorf("SAN = %q, want %q", desc.SAN, "Nce2")
			}
			return
		}
	}
	t.Fatalf("expected a knight move from c3 to e2")
}

// TestUndoMoveRestoresHistory checks that UndoMove reverses both the
// board position and the turn history ApplyMove built up, including
// across a full move boundary.
func TestUndoMoveRestoresHistory(t *testing.T) {
	g := game.New()

	beforeFEN := g.Board.FEN()

	playUCI(t, g, "e2e4")
	playUCI(t, g, "e7e5")

	if len(g.History) != 1 || g.History[0].White == nil || g.History[0].Black == nil {
		t.Fatalf("expected one full turn recorded after two half-moves")
	}

	g.UndoMove() // undo Black's e7e5
	if len(g.History) != 1 || g.History[0].Black != nil {
		t.Fatalf("expected Black's half-move cleared from the current turn after undo")
	}

	g.UndoMove() // undo White's e2e4
	if len(g.History) != 0 {
		t.Fatalf("expected the turn itself removed once its only half-move is undone, got %d turns", len(g.History))
	}
	if g.Board.FEN() != beforeFEN {
		t.Errorf("FEN after undoing both half-moves = %q, want %q", g.Board.FEN(), beforeFEN)
	}
	if len(g.Hashes) != 1 {
		t.Errorf("expected Hashes trimmed back to the starting position only, got %d entries", len(g.Hashes))
	}
}

// TestCaptureRecorded checks that ApplyMove records the captured piece
// type, including for en-passant captures where the target square is
// empty at capture time.
func TestCaptureRecorded(t *testing.T) {
	g := game.New()

	playUCI(t, g, "e2e4")
	playUCI(t, g, "d7d5")
	desc := playUCI(t, g, "e4d5")

	if desc.Captured != piece.Pawn {
		t.Errorf("captured = %v, want Pawn", desc.Captured)
	}

	// Set up an en-passant capture: 1. e4 a6 2. e5 f5 3. exf6 e.p.
	g2 := game.New()
	playUCI(t, g2, "e2e4")
	playUCI(t, g2, "a7a6")
	playUCI(t, g2, "e4e5")
	playUCI(t, g2, "f7f5")
	epDesc := playUCI(t, g2, "e5f6")

	if epDesc.Captured != piece.Pawn {
		t.Errorf("en-passant captured = %v, want Pawn", epDesc.Captured)
	}
}

// TestParseSAN checks that ParseSAN maps a game's own notation back
// into the legal move that produced it, including when the SAN text
// carries a trailing check/mate annotation the caller's source may or
// may not include.
func TestParseSAN(t *testing.T) {
	g := game.New()

	m, ok := g.ParseSAN("e4")
	if !ok {
		t.Fatalf("ParseSAN(%q) failed", "e4")
	}
	if m.String() != "e2e4" {
		t.Errorf("ParseSAN(%q) = %s, want e2e4", "e4", m)
	}

	playUCI(t, g, "e2e4")
	playUCI(t, g, "e7e5")
	playUCI(t, g, "f1c4")
	playUCI(t, g, "b8c6")
	playUCI(t, g, "d1h5")
	playUCI(t, g, "g8f6") // blunders into Qxf7#

	m, ok = g.ParseSAN("Qxf7#")
	if !ok {
		t.Fatalf("ParseSAN(%q) failed", "Qxf7#")
	}
	if m.String() != "h5f7" {
		t.Errorf("ParseSAN(%q) = %s, want h5f7", "Qxf7#", m)
	}

	// Without the "#" suffix, the same move must still be found.
	if m2, ok := g.ParseSAN("Qxf7"); !ok || m2 != m {
		t.Errorf("ParseSAN without mate suffix = %v, %v; want %s, true", m2, ok, m)
	}

	if _, ok := g.ParseSAN("Z9"); ok {
		t.Errorf("ParseSAN(%q) unexpectedly succeeded", "Z9")
	}
}
