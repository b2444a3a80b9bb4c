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

// Package cli implements the mess command-line tool shared by the
// module's two entrypoints (the root laptudirm.com/x/mess binary and
// cmd/mess): play, perft, bench, and watch.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"laptudirm.com/x/mess/internal/build"
	"laptudirm.com/x/mess/internal/dashboard"
	"laptudirm.com/x/mess/internal/render"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/pgn"
	"laptudirm.com/x/mess/pkg/session"
)

// Run dispatches args (os.Args[1:]) to the matching subcommand.
func Run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("mess: no command given")
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "play":
		return play()
	case "perft":
		return perft(rest)
	case "bench":
		return bench(rest)
	case "watch":
		return watch(rest)
	case "version":
		fmt.Println(build.Version)
		return nil
	default:
		usage()
		return fmt.Errorf("mess: unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, render.WrapHelp(
		"usage: mess <command> [arguments]\n\n"+
			"commands:\n"+
			"  play               interactive session REPL\n"+
			"  perft <fen> <d>    count perft(d) leaf nodes from fen, with a progress bar\n"+
			"  bench <fen>        run perft at depths 1-6 and chart them to bench.html\n"+
			"  watch <pgn-file>   step through a PGN game in a terminal dashboard\n"+
			"  version            print the build version\n"))
}

// play runs an interactive REPL over a session.Session: "move e2e4"
// applies a move (and the engine's reply), "show" prints the board,
// "history" prints the turn list, "restart" resets the game, "best"
// suggests a move without playing it, and "quit"/"exit" ends the REPL.
func play() error {
	s := session.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(render.Board(s.Board(), move.Null))
	fmt.Print("mess> ")

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Print("mess> ")
			continue
		}

		switch fields[0] {
		case "move":
			if len(fields) != 2 || !s.DoMoveUCI(fields[1]) {
				fmt.Println("illegal or malformed move")
				break
			}
			fmt.Println(render.Board(s.Board(), move.Null))
		case "show":
			fmt.Println(render.Board(s.Board(), move.Null))
		case "history":
			for _, turn := range s.GetHistory() {
				white, black := "...", "..."
				if turn.White != nil {
					white = turn.White.SAN
				}
				if turn.Black != nil {
					black = turn.Black.SAN
				}
				fmt.Printf("%d. %s %s\n", turn.FullMove, white, black)
			}
		case "restart":
			s.Restart()
			fmt.Println(render.Board(s.Board(), move.Null))
		case "best":
			best, score, err := s.Suggest(session.SearchDepth)
			if err != nil {
				fmt.Println(err)
				break
			}
			fmt.Printf("%s (%s)\n", best, score)
		case "quit", "exit":
			return nil
		default:
			fmt.Println("commands: move <uci>, show, history, restart, best, quit")
		}

		fmt.Print("mess> ")
	}

	return scanner.Err()
}

// perft counts perft(depth) from fen, showing a progress bar stepping
// once per root move explored.
func perft(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: mess perft <fen> <depth>")
	}

	fen := args[0]
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 1 {
		return fmt.Errorf("mess perft: invalid depth %q", args[1])
	}

	b := board.New(fen)
	moves := b.GenerateMoves()

	bar := progressbar.Default(int64(len(moves)), "perft")

	start := time.Now()
	var nodes int
	for _, m := range moves {
		b.MakeMove(m)
		if depth > 1 {
			nodes += perftCount(b, depth-1)
		} else {
			nodes++
		}
		b.UnmakeMove()
		_ = bar.Add(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nnodes: %d\ntime: %s\nnps: %.0f\n", nodes, elapsed, float64(nodes)/elapsed.Seconds())
	return nil
}

func perftCount(b *board.Board, depth int) int {
	if depth == 0 {
		return 1
	}

	var nodes int
	for _, m := range b.GenerateMoves() {
		b.MakeMove(m)
		nodes += perftCount(b, depth-1)
		b.UnmakeMove()
	}
	return nodes
}

// bench runs perft at depths 1 through 6 from fen and renders an HTML
// line chart of (depth, leaf-node count, elapsed milliseconds) to
// bench.html using github.com/go-echarts/go-echarts/v2.
func bench(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: mess bench <fen>")
	}
	fen := args[0]

	const maxDepth = 6

	depths := make([]string, 0, maxDepth)
	nodeData := make([]opts.LineData, 0, maxDepth)
	timeData := make([]opts.LineData, 0, maxDepth)

	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		nodes := board.Perft(fen, d)
		elapsed := time.Since(start)

		fmt.Printf("depth %d: %d nodes in %s\n", d, nodes, elapsed)

		depths = append(depths, strconv.Itoa(d))
		nodeData = append(nodeData, opts.LineData{Value: nodes})
		timeData = append(timeData, opts.LineData{Value: elapsed.Milliseconds()})
	}

	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "mess perft bench: " + fen}))
	chart.SetXAxis(depths).
		AddSeries("leaf nodes", nodeData).
		AddSeries("elapsed ms", timeData)

	f, err := os.Create("bench.html")
	if err != nil {
		return fmt.Errorf("mess bench: %w", err)
	}
	defer f.Close()

	return chart.Render(f)
}

// watch loads every game in a PGN file and replays the first one in a
// terminal dashboard (internal/dashboard). The file is parsed twice —
// once with gopkg.in/freeeve/pgn.v1 for the moves actually replayed,
// once with github.com/notnil/chess purely to cross-check that the two
// parsers agree on move count — and any divergence is reported but
// does not prevent playback.
func watch(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: mess watch <pgn-file>")
	}
	path := args[0]

	games, err := pgn.Load(path)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		return fmt.Errorf("mess watch: no games found in %s", path)
	}

	if mismatch, err := pgn.Verify(path, games); err != nil {
		fmt.Fprintln(os.Stderr, "mess watch: cross-check failed:", err)
	} else if mismatch >= 0 {
		fmt.Fprintf(os.Stderr, "mess watch: parsers disagree on game %d's move count\n", mismatch)
	}

	return dashboard.Run(games[0].Moves)
}
