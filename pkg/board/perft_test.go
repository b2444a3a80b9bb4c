package board_test

import (
	"testing"

	"laptudirm.com/x/mess/pkg/board"
)

// TestPerftStartingPosition checks the standard perft conformance
// scenario from the starting position.
func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, test := range tests {
		if nodes := board.Perft(board.StartFEN, test.depth); nodes != test.nodes {
			t.Errorf("perft(start, %d) = %d, want %d", test.depth, nodes, test.nodes)
		}
	}
}

// TestPerftKiwipete checks the Kiwipete perft conformance scenario,
// chosen for its dense castling/en-passant/promotion mix.
func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	tests := []struct {
		depth int
		nodes int
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, test := range tests {
		if nodes := board.Perft(kiwipete, test.depth); nodes != test.nodes {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", test.depth, nodes, test.nodes)
		}
	}
}

// TestPerftRoundTrip checks the round-trip property: MakeMove
// followed by UnmakeMove must restore the Board bit-identical, including
// its Zobrist hash and history length, for every legal move of a
// perft(3) traversal from the starting position.
func TestPerftRoundTrip(t *testing.T) {
	var walk func(b *board.Board, depth int)
	walk = func(b *board.Board, depth int) {
		if depth == 0 {
			return
		}

		for _, m := range b.GenerateMoves() {
			beforeFEN := b.FEN()
			before := *b // snapshots every value field, including Hash

			b.MakeMove(m)
			walk(b, depth-1)
			b.UnmakeMove()

			after := *b
			if before != after {
				t.Fatalf("round-trip mismatch for move %s:\nbefore: %+v\nafter:  %+v", m, before, after)
			}
			if afterFEN := b.FEN(); afterFEN != beforeFEN {
				t.Fatalf("round-trip FEN mismatch for move %s:\nbefore: %s\nafter:  %s", m, beforeFEN, afterFEN)
			}
		}
	}

	walk(board.New(board.StartFEN), 3)
}
