package common

import (
	"testing"
)

func TestSEE(t *testing.T) {
	var pawn = SimplifiedPieceValue[WhitePawn]
	var knight = SimplifiedPieceValue[WhiteKnight]
	var rook = SimplifiedPieceValue[WhiteRook]
	var queen = SimplifiedPieceValue[WhiteQueen]

	var tests = []struct {
		fen      string
		move     string
		expected Value
	}{
		{"8/8/5R2/8/8/1kb5/8/2K5 b - - 0 1", "c3f6", rook},
		{"8/2k5/3b4/4n3/6N1/8/5K2/8 w - - 0 1", "g4e5", 0},
		{"k7/3q4/8/8/3Q4/4K3/8/8 b - - 0 1", "d7d4", 0},
		{"k7/3q4/4n3/8/3Q4/4K3/8/8 b - - 0 1", "d7d4", queen},
		{"1k6/5n2/8/4p3/3P4/8/1B6/2K5 w - - 0 1", "d4e5", pawn},
		{"2r3k1/2r5/2r5/8/8/2R5/2R5/2R3K1 w - - 0 1", "c3c6", rook},
		{"6k1/7p/8/8/8/8/2Q5/6K1 w - - 0 1", "c2h7", pawn - queen},
		{"8/3P4/8/8/8/k7/8/1K6 w - - 0 1", "d7d8r", rook - pawn},
		{"2n5/3P4/8/8/8/k7/8/1K6 w - - 0 1", "d7c8n", knight*2 - pawn},
		{"rnbqkbnr/pp1ppppp/8/8/2pPP3/5P2/PPP3PP/RNBQKBNR b KQkq d3 0 1", "c4d3", 0},
	}

	for _, test := range tests {
		var b, err = NewBoardFromFEN(test.fen)
		if err != nil {
			t.Fatal(test.fen, err)
		}
		var m = b.MakeMoveFromString(test.move)
		if m == MoveNone {
			t.Fatal(test.fen, test.move, "did not parse")
		}
		if got := b.SEE(m); got != test.expected {
			t.Error(test.fen, test.move, "got", got, "want", test.expected)
		}
	}
}

func TestSEECastle(t *testing.T) {
	var b, _ = NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if b.SEE(b.MakeMoveFromString("0-0")) != 0 {
		t.Error("castling must evaluate to zero")
	}
}
