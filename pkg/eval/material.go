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

package eval

import "laptudirm.com/x/mess/pkg/piece"

// Material is the flat centipawn value of each piece type. King is
// given a large finite value: each side always has exactly one king, so
// its value is added for both sides and cancels out, but some term
// tables are indexed by every piece type uniformly.
var Material = [piece.NType]Eval{
	piece.Pawn:   100,
	piece.Knight: 300,
	piece.Bishop: 300,
	piece.Rook:   500,
	piece.Queen:  900,
	piece.King:   20000,
}

// MaterialScore is Material lifted into a tapered Score, identical in
// both phases; only the PSQT and mobility terms vary by phase.
var MaterialScore = [piece.NType]Score{
	piece.Pawn:   S(Material[piece.Pawn], Material[piece.Pawn]),
	piece.Knight: S(Material[piece.Knight], Material[piece.Knight]),
	piece.Bishop: S(Material[piece.Bishop], Material[piece.Bishop]),
	piece.Rook:   S(Material[piece.Rook], Material[piece.Rook]),
	piece.Queen:  S(Material[piece.Queen], Material[piece.Queen]),
	piece.King:   S(Material[piece.King], Material[piece.King]),
}
