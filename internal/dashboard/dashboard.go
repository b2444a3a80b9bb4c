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

// Package dashboard steps through a loaded PGN game in a terminal UI
// built on github.com/gizak/termui/v3 (backed transitively by
// github.com/nsf/termbox-go, github.com/mattn/go-runewidth, and
// github.com/rivo/uniseg): the board, the move list, and an evaluation
// bar update as the viewer steps forward and backward with the arrow
// keys.
package dashboard

import (
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"laptudirm.com/x/mess/pkg/eval"
	"laptudirm.com/x/mess/pkg/game"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Run opens a full-screen dashboard replaying moves (SAN strings, as
// pkg/pgn.Game.Moves returns them) against a fresh game.Game, starting
// at the initial position. The viewer steps with the Right/Left arrow
// keys and quits with 'q' or Ctrl-C.
func Run(moves []string) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("dashboard: init terminal: %w", err)
	}
	defer ui.Close()

	g := game.New()
	played := make([]move.Move, 0, len(moves))
	ply := 0 // number of moves of `moves` currently applied to g

	board := widgets.NewParagraph()
	board.Title = "Board"
	board.SetRect(0, 0, 42, 22)

	history := widgets.NewList()
	history.Title = "Moves"
	history.SetRect(42, 0, 72, 22)

	evalGauge := widgets.NewGauge()
	evalGauge.Title = "Evaluation (White)"
	evalGauge.SetRect(0, 22, 72, 25)

	draw := func() {
		var last move.Move = move.Null
		if ply > 0 {
			last = played[ply-1]
		}

		board.Text = renderBoard(g, last)
		history.Rows = renderHistory(moves, ply)
		evalGauge.Percent = evalPercent(g)

		ui.Render(board, history, evalGauge)
	}

	stepForward := func() {
		if ply >= len(moves) {
			return
		}
		m, ok := g.ParseSAN(moves[ply])
		if !ok {
			return // malformed or unsupported (e.g. variation) SAN text
		}
		g.ApplyMove(m)
		if ply < len(played) {
			played[ply] = m
		} else {
			played = append(played, m)
		}
		ply++
	}

	stepBackward := func() {
		if ply == 0 {
			return
		}
		g.UndoMove()
		ply--
	}

	draw()

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "<Right>":
			stepForward()
		case "<Left>":
			stepBackward()
		}
		draw()
	}

	return nil
}

// renderBoard draws g's position using termui's own "[text](fg:color)"
// markup, since the widgets here interpret that syntax directly rather
// than raw ANSI escapes (unlike internal/render's terminal output).
func renderBoard(g *game.Game, last move.Move) string {
	var s strings.Builder

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := square.Square(rank*8 + file)
			s.WriteString(boardCell(g, sq, last))
			s.WriteByte(' ')
		}
		fmt.Fprintf(&s, " %d\n", 8-rank)
	}
	s.WriteString("a b c d e f g h\n")

	return s.String()
}

func boardCell(g *game.Game, sq square.Square, last move.Move) string {
	p := g.Board.Position.Get(sq)

	glyph := p.String()
	if p == piece.NoPiece {
		glyph = "."
	}

	color := "fg:yellow"
	if p.Color() == piece.White {
		color = "fg:cyan"
	}

	highlighted := last != move.Null && (sq == last.Source() || sq == last.Target())
	switch {
	case p == piece.NoPiece && highlighted:
		return fmt.Sprintf("[%s](bg:green)", glyph)
	case p == piece.NoPiece:
		return glyph
	case highlighted:
		return fmt.Sprintf("[%s](%s,bg:green)", glyph, color)
	default:
		return fmt.Sprintf("[%s](%s)", glyph, color)
	}
}

func renderHistory(moves []string, ply int) []string {
	rows := make([]string, len(moves))
	for i, m := range moves {
		if i == ply-1 {
			rows[i] = fmt.Sprintf("[%d] %s <-", i+1, m)
		} else {
			rows[i] = fmt.Sprintf("[%d] %s", i+1, m)
		}
	}
	return rows
}

// evalPercent maps the static evaluation of g's current position, from
// White's perspective, onto a 0-100 gauge with 50 representing dead
// equality. Scores are clamped well short of eval.Inf so a forced mate
// still renders as a full (not overflowing) bar.
func evalPercent(g *game.Game) int {
	e := eval.Evaluate(g.Board)
	if g.Board.SideToMove.String() == "b" {
		e = -e
	}

	const clamp = 1000 // centipawns corresponding to a "full" bar
	switch {
	case e > clamp:
		e = clamp
	case e < -clamp:
		e = -clamp
	}

	return 50 + int(e)*50/clamp
}
