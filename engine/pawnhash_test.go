package engine

import (
	"testing"

	. "github.com/maestro-chess/maestro/common"
)

func TestPawnScan(t *testing.T) {
	// White: a2 b2 c2 as one island, doubled pair e4/e5, h2 alone.
	// Black: a7 b7 c7.
	var b, err = NewBoardFromFEN("4k3/ppp5/8/4P3/4P3/8/PPP4P/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var table = &pawnHashTable{}
	var entry = table.getOrScan(b)

	// The counter tallies island-closing pawns, a doubled file counts
	// once per pawn: {a,b,c}, {e4}, {e5}, {h2}.
	if entry.islandsCount[White] != 4 {
		t.Error("white islands:", entry.islandsCount[White])
	}
	if entry.islandsCount[Black] != 1 {
		t.Error("black islands:", entry.islandsCount[Black])
	}

	if entry.passed&entry.pawns[White] != SquareMask[SquareE5]|SquareMask[SquareH2] {
		t.Error("white passed:", entry.passed&entry.pawns[White])
	}
	if entry.doubled&entry.pawns[White] != SquareMask[SquareE4] {
		t.Error("white doubled:", entry.doubled&entry.pawns[White])
	}
	if entry.isolated&entry.pawns[White] !=
		SquareMask[SquareE4]|SquareMask[SquareE5]|SquareMask[SquareH2] {
		t.Error("white isolated:", entry.isolated&entry.pawns[White])
	}
	if entry.isolated&entry.pawns[Black] != 0 {
		t.Error("black has no isolated pawns")
	}

	if entry.mostAdvanced[White][FileE+1] != Rank5 {
		t.Error("most advanced on the e-file:", entry.mostAdvanced[White][FileE+1])
	}
	if entry.mostAdvanced[Black][FileB+1] != RelativeRank(Black, Rank7) {
		t.Error("most advanced on the black b-file")
	}
}

func TestPawnHashReuseAndOverwrite(t *testing.T) {
	var b1, _ = NewBoardFromFEN("4k3/ppp5/8/4P3/4P3/8/PPP4P/4K3 w - - 0 1")
	var b2, _ = NewBoardFromFEN("4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1")

	var table = &pawnHashTable{}
	var entry1 = table.getOrScan(b1)
	var pawns1 = entry1.pawns[White]

	if again := table.getOrScan(b1); again.pawns[White] != pawns1 {
		t.Error("the cached entry must verify by pawn bitboards")
	}

	var entry2 = table.getOrScan(b2)
	if entry2.pawns[White] != b2.Pawns(White) {
		t.Error("a different structure must be rescanned")
	}
}

func TestBackwardPawn(t *testing.T) {
	// The b2 pawn cannot advance safely (a4 and c4 cover b3... here the
	// classic shape: white b2 versus black pawns a4 and c4 with no white
	// neighbours able to defend it).
	var b, _ = NewBoardFromFEN("4k3/8/8/8/p1p5/8/1P6/4K3 w - - 0 1")
	var table = &pawnHashTable{}
	var entry = table.getOrScan(b)

	if entry.backward&SquareMask[SquareB2] == 0 {
		t.Error("b2 must be backward")
	}
}
