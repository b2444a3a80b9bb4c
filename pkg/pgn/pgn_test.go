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

package pgn_test

import (
	"os"
	"path/filepath"
	"testing"

	"laptudirm.com/x/mess/pkg/game"
	"laptudirm.com/x/mess/pkg/pgn"
)

const foolsMatePGN = `[Event "Test"]
[Site "?"]
[Date "2023.01.01"]
[Round "1"]
[White "A"]
[Black "B"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1
`

func writeTestPGN(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.pgn")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writeTestPGN: %v", err)
	}
	return path
}

// TestLoadFoolsMate checks that Load parses the mainline move text of a
// simple game, and that the result replays cleanly through pkg/game.
func TestLoadFoolsMate(t *testing.T) {
	path := writeTestPGN(t, foolsMatePGN)

	games, err := pgn.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("len(games) = %d, want 1", len(games))
	}

	g := game.New()
	for _, san := range games[0].Moves {
		m, ok := g.ParseSAN(san)
		if !ok {
			t.Fatalf("ParseSAN(%q) failed at move index in %v", san, games[0].Moves)
		}
		g.ApplyMove(m)
	}

	if len(g.LegalMoves()) != 0 {
		t.Errorf("expected checkmate after replaying fool's mate, got %d legal moves", len(g.LegalMoves()))
	}
}

// TestVerifyAgrees checks that Verify reports no mismatch for a
// well-formed game both parsers can read.
func TestVerifyAgrees(t *testing.T) {
	path := writeTestPGN(t, foolsMatePGN)

	games, err := pgn.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	mismatch, err := pgn.Verify(path, games)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if mismatch != -1 {
		t.Errorf("mismatch = %d, want -1 (agreement)", mismatch)
	}
}
