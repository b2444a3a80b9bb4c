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

// Package session implements a facade over a game in progress: it holds
// a current game, exposes get_game/get_possible_moves/do_move/etc. as
// plain Go methods over wire-shaped data, and advances the game by
// calling the search when do_move is played (single-player mode). The
// facade's own error kinds never leave this package; illegal input
// simply yields a false/empty result.
//
// Wire rank/file both run [0,7] with rank 0 = White's back rank (chess
// notation rank 1), an orientation this implementation fixes explicitly.
// square.Square indexes the opposite way (its internal rank 0 is Rank8,
// matching the a8=0/h1=63 scheme), so
// toSquare/fromSquare flip the rank at the wire boundary.
package session

import (
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/eval"
	"laptudirm.com/x/mess/pkg/game"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/search"
	"laptudirm.com/x/mess/pkg/square"
)

// SearchDepth is the fixed depth do_move searches to when playing the
// engine's reply. Time management and iterative deepening are
// non-goals, so this is a plain constant.
const SearchDepth = 4

// Session holds the facade's current game and exposes its commands.
// It is not safe for concurrent use; the host must serialize calls on
// a Session itself.
type Session struct {
	game *game.Game
	fen  string // FEN the session was (re)started from, for Restart
}

// New creates a Session starting from the standard position.
func New() *Session {
	return &Session{game: game.New(), fen: ""}
}

// NewFromFEN creates a Session starting from the given FEN, also used
// by Restart to return to the same position.
func NewFromFEN(fen string) *Session {
	return &Session{game: game.NewFromFEN(fen), fen: fen}
}

// Restart resets the session back to its starting position.
func (s *Session) Restart() {
	if s.fen == "" {
		s.game = game.New()
	} else {
		s.game = game.NewFromFEN(s.fen)
	}
}

// Cell is the wire representation of a single board square: nil when
// empty, otherwise a piece/player pair.
type Cell struct {
	Piece  string `json:"piece"`
	Player string `json:"player"`
}

// GameView is the wire response of GetGame.
type GameView struct {
	Board  [8][8]*Cell `json:"board"`
	Player string      `json:"player"`
}

// square converts a wire (rank, file) pair into a square.Square. Wire
// rank 0 is White's back rank (chess notation rank 1), but
// square.Rank's internal 0 is Rank8 (Black's back rank in the a8=0/
// h1=63 indexing scheme), so the two run in opposite directions and
// must be flipped at this boundary.
func toSquare(rank, file int) square.Square {
	return square.New(square.File(file), square.Rank(7-rank))
}

// fromSquare converts a square.Square into its wire (rank, file) pair,
// undoing the flip toSquare applies.
func fromSquare(sq square.Square) (rank, file int) {
	return 7 - int(sq.Rank()), int(sq.File())
}

// GetGame returns the current position and side to move.
func (s *Session) GetGame() GameView {
	var view GameView
	view.Player = s.game.Board.SideToMove.Name()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := s.game.Board.Position.Get(toSquare(rank, file))
			if p == piece.NoPiece {
				continue
			}
			view.Board[rank][file] = &Cell{
				Piece:  p.Type().Name(),
				Player: p.Color().Name(),
			}
		}
	}

	return view
}

// Square is a wire (rank, file) pair.
type Square struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

// GetPossibleMoves returns the legal targets reachable from the square
// at (rank, file).
func (s *Session) GetPossibleMoves(rank, file int) []Square {
	from := toSquare(rank, file)

	var targets []Square
	for _, m := range s.game.LegalMoves() {
		if m.Source() != from {
			continue
		}
		r, f := fromSquare(m.Target())
		targets = append(targets, Square{Rank: r, File: f})
	}
	return targets
}

// GetPossibleCaptures returns, for every square, the squares of
// opposing pieces that could legally capture on it this turn. A quiet
// move to an empty square doesn't count: only moves flagged as
// captures (including en-passant) populate the overlay.
func (s *Session) GetPossibleCaptures() [8][8][]Square {
	var matrix [8][8][]Square

	for _, m := range s.game.LegalMoves() {
		if !m.IsCapture() {
			continue
		}
		r, f := fromSquare(m.Target())
		sr, sf := fromSquare(m.Source())
		matrix[r][f] = append(matrix[r][f], Square{Rank: sr, File: sf})
	}

	return matrix
}

// DoMoveRequest is the wire input of DoMove.
type DoMoveRequest struct {
	SourceRank int    `json:"source_rank"`
	SourceFile int    `json:"source_file"`
	TargetRank int    `json:"target_rank"`
	TargetFile int    `json:"target_file"`
	Promotion  string `json:"promotion,omitempty"`
}

// DoMove applies the requested move if (and only if) it is legal, then
// — in single-player mode — plays the engine's reply via search. It
// reports false without mutating anything for an IllegalMove or
// GameFinished condition; no error kind crosses this boundary.
func (s *Session) DoMove(req DoMoveRequest) bool {
	if len(s.game.LegalMoves()) == 0 {
		return false // GameFinished
	}

	from := toSquare(req.SourceRank, req.SourceFile)
	to := toSquare(req.TargetRank, req.TargetFile)

	m, ok := s.findLegalMove(from, to, req.Promotion)
	if !ok {
		return false // IllegalMove
	}

	s.game.ApplyMove(m)

	if len(s.game.LegalMoves()) == 0 {
		return true // opponent is mated/stalemated; no reply to play
	}

	best, _, err := search.NewContext(s.game.Board).Search(SearchDepth)
	if err == nil && best != move.Null {
		s.game.ApplyMove(best)
	}

	return true
}

// uciPromotionNames maps a UCI promotion letter to the wire piece name
// DoMoveRequest.Promotion expects.
var uciPromotionNames = map[byte]string{
	'q': "queen", 'r': "rook", 'b': "bishop", 'n': "knight",
}

// DoMoveUCI is a convenience wrapper around DoMove for CLI-style callers
// that have a long-algebraic move string ("e2e4", "e7e8q") rather than
// wire (rank, file) pairs. It reports false for a malformed string
// without calling DoMove.
func (s *Session) DoMoveUCI(uci string) bool {
	if len(uci) != 4 && len(uci) != 5 {
		return false
	}

	from := square.NewFromString(uci[0:2])
	to := square.NewFromString(uci[2:4])
	if from == square.None || to == square.None {
		return false
	}

	req := DoMoveRequest{}
	req.SourceRank, req.SourceFile = fromSquare(from)
	req.TargetRank, req.TargetFile = fromSquare(to)

	if len(uci) == 5 {
		name, ok := uciPromotionNames[uci[4]]
		if !ok {
			return false
		}
		req.Promotion = name
	}

	return s.DoMove(req)
}

// findLegalMove looks up the legal move from `from` to `to`, matching
// promotion if one was requested. promotion is the wire piece name
// ("queen", "rook", ...) or empty for a non-promoting move.
func (s *Session) findLegalMove(from, to square.Square, promotion string) (move.Move, bool) {
	var wantType piece.Type
	if promotion != "" {
		t, ok := piece.TypeFromName(promotion)
		if !ok {
			return move.Null, false // MalformedRequest
		}
		wantType = t
	}

	for _, m := range s.game.LegalMoves() {
		if m.Source() != from || m.Target() != to {
			continue
		}

		if m.IsPromotion() != (promotion != "") {
			continue
		}
		if m.IsPromotion() && m.ToPiece().Type() != wantType {
			continue
		}

		return m, true
	}

	return move.Null, false
}

// GetHistory returns the recorded TurnDescriptions.
func (s *Session) GetHistory() []game.TurnDescription {
	return s.game.History
}

// Board returns the board backing the session's current game, for
// callers (e.g. the CLI's render package) that need direct read access
// beyond the wire-shaped GetGame view. Mutating it bypasses the
// facade's invariants and is the caller's responsibility not to do.
func (s *Session) Board() *board.Board {
	return s.game.Board
}

// Suggest searches the current position to the given depth and returns
// the best move found, without applying it. It shares the same
// search.Context machinery DoMove uses for its own reply, so it leaves
// the session's game untouched (search always restores the board it was
// given; see search.Context.Search).
func (s *Session) Suggest(depth int) (move.Move, eval.Eval, error) {
	return search.NewContext(s.game.Board).Search(depth)
}
