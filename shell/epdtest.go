package shell

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/maestro-chess/maestro/common"
	"github.com/maestro-chess/maestro/engine"
)

// An EPD test suite: positions with "bm" best-move opcodes, solved at a
// fixed time per position.

type epdItem struct {
	content   string
	board     *common.Board
	bestMoves []common.Move
}

func (s *Shell) runEpdTest(filePath string, moveTimeMs int64) {
	var tests = loadEpdTests(filePath)
	fmt.Printf("Loaded %v tests\n", len(tests))
	fmt.Println("Test started...")
	var start = time.Now()
	var total, solved int

	var search = engine.NewSearchContext()
	for _, test := range tests {
		search.Limits.SetTimeLimitsInMs(0, 0, moveTimeMs)
		search.Limits.Reset(moveTimeMs)
		var result = search.RootSearch(test.board)

		var passed = false
		for _, bm := range test.bestMoves {
			if bm == result.Best {
				passed = true
				break
			}
		}

		total++
		if passed {
			solved++
		}

		fmt.Println(test.content)
		fmt.Printf("found %v, solved: %v, total: %v\n\n", result.Best, solved, total)
	}
	fmt.Printf("Test finished. Elapsed: %v\n", time.Since(start))
}

func loadEpdTests(filePath string) (result []*epdItem) {
	var err = processFileByLines(filePath, func(line string) {
		if test := parseEpdTest(line); test != nil {
			result = append(result, test)
		}
	})
	if err != nil {
		fmt.Println(err)
	}
	return
}

func processFileByLines(filePath string, processor func(line string)) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		processor(scanner.Text())
	}
	return scanner.Err()
}

func parseEpdTest(s string) *epdItem {
	var bmBegin = strings.Index(s, "bm")
	var bmEnd = strings.Index(s, ";")
	if bmBegin < 0 || bmEnd < bmBegin {
		return nil
	}

	var fen = strings.TrimSpace(s[:bmBegin])
	var board, err = common.NewBoardFromFEN(fen)
	if err != nil {
		return nil
	}

	var bestMoves []common.Move
	for _, sBestMove := range strings.Fields(s[bmBegin:bmEnd])[1:] {
		var move = parseEpdMove(board, sBestMove)
		if move == common.MoveNone {
			return nil
		}
		bestMoves = append(bestMoves, move)
	}
	if len(bestMoves) == 0 {
		return nil
	}

	return &epdItem{
		content:   s,
		board:     board,
		bestMoves: bestMoves,
	}
}

// parseEpdMove understands enough of SAN for typical test suites: a
// piece letter, an optional capture sign and the target square.
// Ambiguous entries are discarded.
func parseEpdMove(b *common.Board, s string) common.Move {
	s = strings.TrimRight(s, "+#!?")
	if len(s) < 2 {
		return common.MoveNone
	}

	var pt = common.Pawn
	if i := strings.Index("NBRQK", s[0:1]); i >= 0 {
		pt = common.Knight + common.PieceType(i)
	}

	var to = common.ParseSquare(s[len(s)-2:])
	if to == common.NoSquare {
		return common.MoveNone
	}

	var moves []common.Move
	for _, move := range b.GenerateLegalMoves() {
		if b.PieceOn(move.From()).Type() == pt && move.To() == to {
			moves = append(moves, move)
		}
	}
	if len(moves) == 1 {
		return moves[0]
	}
	return common.MoveNone
}
