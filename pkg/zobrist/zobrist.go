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

// Package zobrist provides the random numbers used to incrementally hash
// a chess position. The resulting Key is stored per ply in a Game's
// history so the facade has what it needs to reconstruct threefold
// repetition candidates; the repetition rule itself is not enforced
// (non-goal).
package zobrist

import (
	"laptudirm.com/x/mess/pkg/castling"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Key is an incrementally updated Zobrist hash of a position.
type Key uint64

// PieceSquare[p][s] is the hash number for piece p standing on square s.
var PieceSquare [piece.N][square.N]Key

// EnPassant[f] is the hash number for an en-passant target on file f.
var EnPassant [square.FileN]Key

// Castling[r] is the hash number for castling rights r.
var Castling [castling.N]Key

// SideToMove is xor-ed in whenever it is Black to move.
var SideToMove Key

func init() {
	var rng PRNG
	rng.Seed(1070372) // seed used by Stockfish

	for p := 0; p < piece.N; p++ {
		for s := square.A8; s <= square.H1; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
