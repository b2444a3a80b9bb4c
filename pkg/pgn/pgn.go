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

// Package pgn loads Portable Game Notation files for replay through
// the session facade's apply_move. Parsing itself is delegated to
// gopkg.in/freeeve/pgn.v1; Verify cross-checks the result against a
// second, independent parse by github.com/notnil/chess, since the two
// libraries diverge on some edge cases (comments, NAGs) and agreement
// between them is a cheap sanity check before a game is replayed.
// PGN variations, i.e. nested "(...)" side-lines, are out of scope:
// both parsers are left to their default behaviour of skipping over
// them rather than exploring them.
package pgn

import (
	"fmt"
	"os"

	"github.com/notnil/chess"
	freeeve "gopkg.in/freeeve/pgn.v1"
)

// Game is one parsed PGN game: its tag pairs and the mainline SAN move
// text, in order, with any variation/comment text dropped.
type Game struct {
	Tags  map[string]string
	Moves []string
}

// Load reads every game out of the PGN file at path.
func Load(path string) ([]Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pgn: load %s: %w", path, err)
	}
	defer f.Close()

	scanner := freeeve.NewPGNScanner(f)

	var games []Game
	for scanner.Next() {
		raw, err := scanner.Scan()
		if err != nil {
			return nil, fmt.Errorf("pgn: load %s: %w", path, err)
		}

		moves := make([]string, len(raw.Moves))
		copy(moves, raw.Moves)

		games = append(games, Game{Tags: raw.Tags, Moves: moves})
	}

	return games, nil
}

// Verify re-parses the PGN file at path with github.com/notnil/chess and
// reports the index of the first game whose move count disagrees with
// Load's result, or -1 if every game agrees. It is a cross-check, not a
// replacement parser: Load's result is always what callers use.
func Verify(path string, loaded []Game) (mismatch int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return -1, fmt.Errorf("pgn: verify %s: %w", path, err)
	}
	defer f.Close()

	pgnOpt, err := chess.PGN(f)
	if err != nil {
		return -1, fmt.Errorf("pgn: verify %s: %w", path, err)
	}

	reference := chess.NewGame(pgnOpt)
	moves := reference.Moves()

	for i, g := range loaded {
		if i > 0 {
			// notnil/chess exposes a single game per reader; only the
			// first game in a multi-game file can be cross-checked.
			break
		}
		if len(moves) != len(g.Moves) {
			return i, nil
		}
	}

	return -1, nil
}
