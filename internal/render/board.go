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

// Package render draws a board.Board to a terminal: white pieces in
// cyan, black pieces in yellow, and the squares of the last played move
// highlighted, using github.com/mitchellh/colorstring for the ANSI
// escapes. Help text is wrapped to the terminal width with
// github.com/mitchellh/go-wordwrap and golang.org/x/term.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// Board renders b as an 8x8 grid with rank/file labels. The squares
// last moved from and to, if last is not move.Null, are painted with a
// background highlight.
func Board(b *board.Board, last move.Move) string {
	var s strings.Builder

	s.WriteString("+---+---+---+---+---+---+---+---+\n")
	for rank := 0; rank < 8; rank++ {
		s.WriteString("| ")
		for file := 0; file < 8; file++ {
			sq := square.Square(rank*8 + file)
			s.WriteString(cell(b, sq, last))
			s.WriteString(" | ")
		}
		fmt.Fprintf(&s, "%d\n", 8-rank)
		s.WriteString("+---+---+---+---+---+---+---+---+\n")
	}
	s.WriteString("  a   b   c   d   e   f   g   h\n")

	return colorstring.Color(s.String())
}

// cell renders the single square sq, color-tagged by piece side and
// highlighted if it is one of last's source/target squares.
func cell(b *board.Board, sq square.Square, last move.Move) string {
	p := b.Position.Get(sq)

	glyph := p.String()
	switch {
	case p == piece.NoPiece:
		glyph = "."
	case p.Color() == piece.White:
		glyph = "[cyan]" + glyph + "[reset]"
	default:
		glyph = "[yellow]" + glyph + "[reset]"
	}

	if last != move.Null && (sq == last.Source() || sq == last.Target()) {
		glyph = "[_green_]" + glyph + "[reset]"
	}

	return glyph
}

// TerminalWidth reports the width of the controlling terminal, falling
// back to 80 columns when stdout isn't one (e.g. output is piped).
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// WrapHelp wraps help text to the terminal's width for WriteString.
func WrapHelp(text string) string {
	return wordwrap.WrapString(text, uint(TerminalWidth()))
}
