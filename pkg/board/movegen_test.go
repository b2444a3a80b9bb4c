package board_test

import (
	"testing"

	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"

	"laptudirm.com/x/mess/pkg/board"
)

// TestPromotionFanOut checks that a pawn on its 7th rank with a clear
// square ahead yields exactly four legal moves (one per promotion
// piece); with a capture also available, eight.
func TestPromotionFanOut(t *testing.T) {
	// white pawn on b7, clear push to b8, and a capturing option on a8.
	b := board.New("n6k/1P6/8/8/8/8/8/K7 w - - 0 1")

	moves := b.GenerateMoves()
	var toB8, toA8 int
	for _, m := range moves {
		if m.Source() != square.B7 {
			continue
		}
		switch m.Target() {
		case square.B8:
			toB8++
		case square.A8:
			toA8++
		}
	}

	if toB8 != 4 {
		t.Errorf("b7-b8 promotions = %d, want 4", toB8)
	}
	if toA8 != 4 {
		t.Errorf("b7xa8 promotions = %d, want 4", toA8)
	}
}

// TestEnPassantAvailability checks that an en-passant target is only
// available for the single reply half-move immediately following the
// double push, and only when that double push was actually played.
func TestEnPassantAvailability(t *testing.T) {
	// 1. e4 c5 2. d4 c4: White's d-pawn double push sets an ep target on
	// d3, but Black declines it and plays c5-c4 (a single push) instead.
	// The window closes; White must not see a ep capture afterwards.
	b := board.New(board.StartFEN)
	for _, uci := range []string{"e2e4", "c7c5", "d2d4", "c5c4"} {
		b.MakeMove(b.NewMoveFromString(uci))
	}
	if ep := b.EnPassantTarget; ep != square.None {
		t.Errorf("en-passant target = %s, want none after the window closed", ep)
	}
	for _, m := range b.GenerateMoves() {
		if m.FromPiece().Type() == piece.Pawn && m.Source() == square.C4 && m.IsCapture() && m.Target() != square.B3 && m.Target() != square.D3 {
			continue
		}
		if m.Source() == square.C4 && (m.Target() == square.D3 || m.Target() == square.B3) {
			t.Errorf("unexpected en-passant-shaped move %s after the window closed", m)
		}
	}

	// 1. c4 d5: the reply half-move may capture en-passant, landing on
	// the skipped square d6.
	b2 := board.New(board.StartFEN)
	for _, uci := range []string{"c2c4", "d7d5"} {
		b2.MakeMove(b2.NewMoveFromString(uci))
	}
	if ep := b2.EnPassantTarget; ep != square.D6 {
		t.Fatalf("en-passant target = %s, want d6", ep)
	}

	found := false
	for _, m := range b2.GenerateMoves() {
		if m.Source() == square.C4 && m.Target() == square.D5 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected c4-d5 to be legal in the position that set ep_target d6")
	}
}

// TestCastlingPreventedByAttack checks that the king must not castle
// through, into, or out of check.
func TestCastlingPreventedByAttack(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"clear kingside", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", true},
		{"attacked transit square f1", "4k3/8/8/8/8/8/5r2/4K2R w K - 0 1", false},
		{"in check", "4k3/8/8/8/4r3/8/8/4K2R w K - 0 1", false},
		{"attacked destination g1", "4k3/8/8/8/8/8/6r1/4K2R w K - 0 1", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := board.New(test.fen)
			canCastle := false
			for _, m := range b.GenerateMoves() {
				if m.IsCastle() {
					canCastle = true
				}
			}
			if canCastle != test.want {
				t.Errorf("castle legal = %v, want %v", canCastle, test.want)
			}
		})
	}
}

// TestFoolsMate checks that after 1. f3 e5 2. g4 Qh4#, there are no
// legal moves left and the game is over by checkmate.
func TestFoolsMate(t *testing.T) {
	b := board.New(board.StartFEN)

	play := func(uci string) {
		m := b.NewMoveFromString(uci)
		b.MakeMove(m)
	}

	play("f2f3")
	play("e7e5")
	play("g2g4")
	play("d8h4")

	if moves := b.GenerateMoves(); len(moves) != 0 {
		t.Fatalf("expected no legal moves after Qh4#, got %d", len(moves))
	}
	if !b.IsInCheck(b.SideToMove) {
		t.Fatalf("expected White to be in check after Qh4#")
	}
}

// TestLegalMoveSoundness checks soundness on the Kiwipete position:
// every generated move must leave the mover's own king safe.
// Completeness is covered by the perft counts.
func TestLegalMoveSoundness(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b := board.New(kiwipete)

	for _, m := range b.GenerateMoves() {
		b.MakeMove(m)
		inCheck := b.IsInCheck(b.SideToMove.Other())
		b.UnmakeMove()

		if inCheck {
			t.Fatalf("move %s leaves mover's own king in check", m)
		}
	}
}

// TestNullMoveRoundTrip exercises the Null-move path of MakeMove /
// UnmakeMove.
func TestNullMoveRoundTrip(t *testing.T) {
	b := board.New(board.StartFEN)
	before := b.FEN()

	b.MakeMove(move.Null)
	b.UnmakeMove()

	if after := b.FEN(); after != before {
		t.Errorf("null move round-trip mismatch:\nbefore: %s\nafter:  %s", before, after)
	}
}
