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

package render_test

import (
	"strings"
	"testing"

	"laptudirm.com/x/mess/internal/render"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
)

// TestBoardContainsLabels checks that the rendered board keeps the file
// labels and every piece letter of the starting position.
func TestBoardContainsLabels(t *testing.T) {
	b := board.New(board.StartFEN)
	s := render.Board(b, move.Null)

	if !strings.Contains(s, "a") || !strings.Contains(s, "h") {
		t.Errorf("expected file labels a-h in rendered board")
	}
	for _, glyph := range []string{"R", "N", "B", "Q", "K", "P", "r", "n", "b", "q", "k", "p"} {
		if !strings.Contains(s, glyph) {
			t.Errorf("expected piece glyph %q in rendered starting position", glyph)
		}
	}
}

// TestBoardDeterministic checks that rendering the same position twice
// produces identical output.
func TestBoardDeterministic(t *testing.T) {
	b := board.New(board.StartFEN)
	if render.Board(b, move.Null) != render.Board(b, move.Null) {
		t.Errorf("expected rendering the same board twice to be identical")
	}
}

// TestWrapHelpNonEmpty checks that WrapHelp doesn't drop any non-space
// content while wrapping, even without a real terminal attached.
func TestWrapHelpNonEmpty(t *testing.T) {
	text := "usage: mess <command> [arguments]"
	wrapped := render.WrapHelp(text)
	if !strings.Contains(wrapped, "usage:") || !strings.Contains(wrapped, "mess") {
		t.Errorf("WrapHelp dropped content: %q", wrapped)
	}
}
