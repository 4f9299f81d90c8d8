package engine

import (
	"testing"

	. "github.com/maestro-chess/maestro/common"
)

func newTestContext(depth int) *SearchContext {
	var ctx = NewSearchContextSize(1 << 20)
	ctx.Limits.MakeInfinite()
	ctx.Limits.SetDepthLimit(depth)
	return ctx
}

func TestMateInOne(t *testing.T) {
	var b, _ = NewBoardFromFEN("6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	var ctx = newTestContext(3)

	var result = ctx.RootSearch(b)
	if result.Value != valueMate-1 {
		t.Error("expected mate in one, got", result.Value)
	}
	if result.Best.String() != "e1e8" {
		t.Error("expected e1e8, got", result.Best)
	}
}

func TestMateInTwo(t *testing.T) {
	var b, _ = NewBoardFromFEN("7k/8/R7/1R6/8/8/8/K7 w - - 0 1")
	var ctx = newTestContext(5)

	var result = ctx.RootSearch(b)
	if result.Value != valueMate-3 {
		t.Error("expected mate in two, got", result.Value)
	}
}

func TestMatedAndStalemate(t *testing.T) {
	// Already checkmated: there is nothing to search.
	var mated, _ = NewBoardFromFEN("7k/5KQ1/8/8/8/8/8/8 b - - 0 1")
	var ctx = newTestContext(3)
	var result = ctx.RootSearch(mated)
	if result.Best != MoveNone {
		t.Error("no best move exists in a mated position")
	}
	if result.Value != -valueMate {
		t.Error("expected the mate score, got", result.Value)
	}

	var stalemated, _ = NewBoardFromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	result = newTestContext(3).RootSearch(stalemated)
	if result.Best != MoveNone || result.Value != 0 {
		t.Error("stalemate must be a zero-score dead end, got", result)
	}
}

func TestFindsHangingQueen(t *testing.T) {
	var b, _ = NewBoardFromFEN("3q3k/8/8/8/8/8/8/3R3K w - - 0 1")
	var result = newTestContext(4).RootSearch(b)
	if result.Best.String() != "d1d8" {
		t.Error("expected d1d8, got", result.Best)
	}
	if result.Value < SimplifiedPieceValue[WhiteQueen]-SimplifiedPieceValue[WhiteRook] {
		t.Error("winning a queen must reflect in the score, got", result.Value)
	}
}

func TestSearchReportsProgress(t *testing.T) {
	var b, _ = NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var ctx = newTestContext(5)

	var depths []int
	ctx.Progress = func(si SearchInfo) {
		depths = append(depths, si.Depth)
		if len(si.MainLine) == 0 {
			t.Error("progress without a main line")
		}
		if si.Depth > 1 && si.Nodes == 0 {
			t.Error("progress without nodes")
		}
	}

	var result = ctx.RootSearch(b)
	if result.Best == MoveNone {
		t.Fatal("no best move found")
	}
	if len(depths) == 0 {
		t.Fatal("no progress events published")
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] != depths[i-1]+1 {
			t.Error("progress depths must increase one by one:", depths)
		}
	}
	if depths[len(depths)-1] != 5 {
		t.Error("the deepest completed iteration must be the depth limit:", depths)
	}
}

func TestSearchRespectsRepetition(t *testing.T) {
	// Down a queen, white can force a perpetual-like repetition with
	// checks; at minimum the search must not crash on repeated states
	// and must return a legal move.
	var b, _ = NewBoardFromFEN("6k1/5ppp/8/8/8/8/q4PPP/5RK1 w - - 0 1")
	var result = newTestContext(6).RootSearch(b)
	if result.Best == MoveNone {
		t.Fatal("a legal move exists")
	}
}

func TestStopUnwinds(t *testing.T) {
	var b, _ = NewBoardFromFEN(InitialPositionFen)
	var before = b.ToFEN()

	var ctx = newTestContext(4)
	ctx.Progress = func(si SearchInfo) {
		if si.Depth == 2 {
			ctx.Stop()
		}
	}
	ctx.RootSearch(b)

	if b.ToFEN() != before {
		t.Error("the board must be unwound to the root state")
	}
}

func TestNodesLimit(t *testing.T) {
	var b, _ = NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var ctx = newTestContext(maxDepth)
	ctx.Limits.SetNodesLimit(20000)

	var result = ctx.RootSearch(b)
	if result.Best == MoveNone {
		t.Fatal("the first iterations must have completed")
	}
	// The limit is polled every 512 nodes, allow the overshoot.
	if ctx.Nodes() > 20000+1024 {
		t.Error("node limit ignored:", ctx.Nodes())
	}
}

func TestMateDistanceConversions(t *testing.T) {
	if !IsMateValue(valueMate-1) || !IsMateValue(-valueMate+7) {
		t.Error("mate values not recognized")
	}
	if IsMateValue(0) || IsMateValue(150) {
		t.Error("normal values misread as mates")
	}

	if MateDistance(valueMate-1) != 1 {
		t.Error("mate in one is one move")
	}
	if MateDistance(valueMate-3) != 2 {
		t.Error("mate in three plies is two moves")
	}
	if MateDistance(-valueMate+2) != -1 {
		t.Error("getting mated in two plies is one move")
	}
}

// The aspiration tiers must reach the full window within four widenings.
func TestAspirationWindowsConverge(t *testing.T) {
	if len(aspirationWindows) != 4 {
		t.Fatal("four tiers expected")
	}
	for i := 1; i < len(aspirationWindows); i++ {
		if aspirationWindows[i] <= aspirationWindows[i-1] {
			t.Error("tiers must widen")
		}
	}

	var last = aspirationWindows[len(aspirationWindows)-1]
	if Max(-valueInfinity, valueMate-last) != -valueInfinity ||
		Min(valueInfinity, -valueMate+last) != valueInfinity {
		t.Error("the widest tier must cover the whole value range")
	}
}
