// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package cell declares the storage interface pkg/board uses to keep a
// square-addressable copy of the position alongside its bitboards. Two
// back-ends implement it: pkg/mailbox (one piece.Piece per square, the
// default) and pkg/compact (one byte per square, build tag
// "compact_board"). Board itself only ever calls through Store, so
// swapping the back-end never touches move generation or make/unmake.
package cell

import (
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Store is a square-addressable chessboard storage back-end.
type Store interface {
	// Get returns the piece standing on s, or piece.NoPiece if empty.
	Get(s square.Square) piece.Piece
	// Set places p on s, overwriting whatever was there.
	Set(s square.Square, p piece.Piece)
	// FEN returns the position field of a FEN string for the board.
	FEN() string
	// String returns a human readable rendering of the board.
	String() string
}
