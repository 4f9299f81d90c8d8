package engine

import (
	"testing"

	. "github.com/maestro-chess/maestro/common"
)

var evalFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"8/K5p1/1P1k1p1p/5P1P/2R3P1/8/8/8 b - - 0 78",
	"8/1P6/5ppp/3k1P1P/6P1/8/1K6/8 w - - 0 78",
	"4k3/p1P3p1/2q1np1p/3N4/8/1Q3PP1/6KP/8 w - - 0 1",
	"8/8/8/3k4/8/4P3/2P5/4K3 w - - 0 1",
	"8/8/8/3k4/8/2P5/4P3/4K3 w - - 0 1",
	"4k3/2p5/4p3/8/3K4/8/8/8 b - - 0 1",
	"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1",
	"4k3/8/2n5/4b3/8/3N4/8/4K3 w - - 0 1",
	"5kn1/7P/8/8/8/8/8/4K3 w - - 0 1",
	"8/5r1p/5k2/4R3/p1p1KP2/P7/1P1p3P/8 w - - 2 2",
	"6k1/8/8/8/8/8/8/BN4K1 w - - 0 1",
	"6k1/8/8/8/8/8/8/QR4K1 w - - 0 1",
}

func TestEvalSymmetry(t *testing.T) {
	var e = NewEvaluator()
	for _, fen := range evalFENs {
		var b, err = NewBoardFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		var score1 = e.Evaluate(b)

		var mirrored, err2 = MirrorBoard(b)
		if err2 != nil {
			t.Fatal(fen, err2)
		}
		var score2 = e.Evaluate(mirrored)

		if score1 != score2 {
			t.Error(fen, score1, score2)
		}
	}
}

func TestEvalStartPosition(t *testing.T) {
	var e = NewEvaluator()
	var b, _ = NewBoardFromFEN(InitialPositionFen)
	// A symmetric position evaluates to the tempo bonus alone.
	if got := e.Evaluate(b); got != tempoScore.Middlegame() {
		t.Error("start position:", got)
	}
}

func TestEvalMaterialAdvantage(t *testing.T) {
	var e = NewEvaluator()
	// White is a full rook up.
	var b, _ = NewBoardFromFEN("1nbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kk - 0 1")
	if got := e.Evaluate(b); got < 250 {
		t.Error("a rook up must show up in the score:", got)
	}

	// The same from the losing side's point of view.
	var c, _ = NewBoardFromFEN("1nbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b Kk - 0 1")
	if got := e.Evaluate(c); got > -250 {
		t.Error("the defender must see the deficit:", got)
	}
}

func TestDrawishEndgames(t *testing.T) {
	var e = NewEvaluator()
	var draws = []string{
		"7k/8/8/8/8/8/8/N5K1 w - - 0 1",  // KNK
		"7k/8/8/8/8/8/8/1B4K1 w - - 0 1", // KBK
		"7k/8/8/8/8/8/8/NN4K1 w - - 0 1", // KNNK
		"7k/7n/8/8/8/8/8/N5K1 w - - 0 1", // KNKN
		"7k/7b/8/8/8/8/8/N5K1 w - - 0 1", // KNKB
		"6bk/8/8/8/8/8/8/1B4K1 w - - 0 1", // KBKB
	}
	for _, fen := range draws {
		var b, _ = NewBoardFromFEN(fen)
		if got := e.Evaluate(b); got != 0 {
			t.Error(fen, "must be drawish, got", got)
		}
	}
}

func TestSoleKingEndgames(t *testing.T) {
	var e = NewEvaluator()

	// A queen versus a bare king is a sure win.
	var b, _ = NewBoardFromFEN("6k1/8/8/8/8/8/8/Q5K1 w - - 0 1")
	if got := e.Evaluate(b); got < valueSureWin {
		t.Error("KQK must be winning:", got)
	}

	// The same position from the bare king's side.
	var c, _ = NewBoardFromFEN("6k1/8/8/8/8/8/8/Q5K1 b - - 0 1")
	if got := e.Evaluate(c); got > -valueSureWin {
		t.Error("the bare king must be lost:", got)
	}

	// KBNK drives towards the bishop's corner but stays a sure win.
	var d, _ = NewBoardFromFEN("6k1/8/8/8/8/8/8/BN4K1 w - - 0 1")
	if got := e.Evaluate(d); got < valueSureWin-100 {
		t.Error("KBNK must be winning:", got)
	}
}

func TestPawnEndgameSquareRule(t *testing.T) {
	var e = NewEvaluator()

	// The black king is far outside the square of the a-pawn.
	var b, _ = NewBoardFromFEN("7k/8/8/8/8/8/P7/K7 w - - 0 1")
	var inSquare, _ = NewBoardFromFEN("2k5/8/8/8/8/8/P7/K7 w - - 0 1")

	if e.Evaluate(b) < e.Evaluate(inSquare)+squareRulePassed/2 {
		t.Error("an uncatchable passer must dominate the score")
	}
}
