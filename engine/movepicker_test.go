package engine

import (
	"testing"

	. "github.com/maestro-chess/maestro/common"
)

func moveClass(b *Board, m, tableMove Move, ss *searchStack) int {
	switch {
	case m == tableMove:
		return 3
	case !b.IsQuiet(m):
		return 2
	case m == ss.firstKiller || m == ss.secondKiller:
		return 1
	}
	return 0
}

func TestMovePickerOrder(t *testing.T) {
	var b, _ = NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	var ml MoveList
	b.GenerateMoves(&ml, AllMoves)

	// Pick a quiet move for the table slot and two others as killers.
	var tableMove, killer1, killer2 Move
	for i := 0; i < ml.Count; i++ {
		var m = ml.Items[i].Move
		if !b.IsQuiet(m) {
			continue
		}
		if tableMove == MoveNone {
			tableMove = m
		} else if killer1 == MoveNone {
			killer1 = m
		} else if killer2 == MoveNone {
			killer2 = m
			break
		}
	}

	var ss = searchStack{firstKiller: killer1, secondKiller: killer2}
	var history historyTable
	var picker = newMovePicker(b, &history, &ml, tableMove, &ss)

	var lastClass = 4
	var picked = 0
	for picker.hasMore() {
		var m = picker.pick()
		picked++

		var class = moveClass(b, m, tableMove, &ss)
		if class > lastClass {
			t.Fatal("ordering violated at", m, "class", class, "after", lastClass)
		}
		lastClass = class

		if picked == 1 && m != tableMove {
			t.Fatal("the transposition move must come first")
		}
	}

	if picked != ml.Count {
		t.Error("picker must hand out every move once")
	}
}

func TestMovePickerMVVLVA(t *testing.T) {
	// Two captures on the same square: the pawn must capture before the
	// rook.
	var b, _ = NewBoardFromFEN("4k3/8/8/3q4/2P5/3R4/8/4K3 w - - 0 1")

	var ml MoveList
	b.GenerateMoves(&ml, Captures)

	var history historyTable
	var picker = newMovePicker(b, &history, &ml, MoveNone, nil)

	if !picker.hasMore() {
		t.Fatal("captures exist")
	}
	if first := picker.pick(); first.String() != "c4d5" {
		t.Error("the pawn capture of the queen must come first, got", first)
	}
}

func TestHistoryValueTrends(t *testing.T) {
	var history historyTable

	if v := history.value(WhiteKnight, SquareF3); v != 50 {
		t.Error("an untried move must start at 50, got", v)
	}

	history.addTry(WhiteKnight, SquareF3, 4)
	history.addSuccess(WhiteKnight, SquareF3, 4)
	if v := history.value(WhiteKnight, SquareF3); v < 90 {
		t.Error("a proven cut-causer must trend to 100, got", v)
	}

	history.addTry(WhiteBishop, SquareC4, 4)
	if v := history.value(WhiteBishop, SquareC4); v > 10 {
		t.Error("a failed try must trend to 0, got", v)
	}

	history.renew()
	if v := history.value(WhiteKnight, SquareF3); v < 50 {
		t.Error("renewal keeps the preference direction, got", v)
	}
}
