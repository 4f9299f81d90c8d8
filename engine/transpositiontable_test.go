package engine

import (
	"testing"

	. "github.com/maestro-chess/maestro/common"
)

func TestTableRoundTrip(t *testing.T) {
	var tt = NewTranspositionTable(1 << 16)
	var hash = uint64(0xdeadbeefcafebabe)
	var move = MakeMove(SquareE2, SquareE4)

	tt.TryRecord(boundExact|entryPV, hash, move, 33, 10, 7, 0)

	var entry = tt.Probe(hash)
	if entry == nil {
		t.Fatal("entry not found")
	}
	if entry.move != move || Value(entry.value) != 33 || int(entry.depth) != 7 {
		t.Error("stored fields mangled")
	}
	if !entry.isPVNode() || entry.boundType() != boundExact {
		t.Error("entry type mangled")
	}

	if tt.Probe(hash^1) != nil {
		t.Error("a different key must miss")
	}
}

// A mate-in-N written at one ply and read at another must stay
// consistent: the stored value is ply-relative.
func TestTableMateDistance(t *testing.T) {
	var tt = NewTranspositionTable(1 << 16)
	var hash = uint64(0x123456789abcdef)

	var writePly = 2
	var readPly = 6
	var value = valueMate - 10 // mate in 10 plies seen from the node

	tt.TryRecord(boundExact|entryPV, hash, MoveNone, value, 1, 9, writePly)

	var entry = tt.Probe(hash)
	if entry == nil {
		t.Fatal("entry not found")
	}

	// The probe-side adjustment from the search.
	var got = Value(entry.value)
	if got > valueMate-2*maxDepth {
		got -= readPly
	} else if got < -valueMate+2*maxDepth {
		got += readPly
	}

	var want = valueMate - (10 + readPly - writePly)
	if got != want {
		t.Error("got", got, "want", want)
	}
}

func TestTableReplacement(t *testing.T) {
	var tt = NewTranspositionTable(1 << 16)
	tt.SetRootAge(1)

	var hash = uint64(42)
	tt.TryRecord(boundExact|entryPV, hash, MoveNone, 10, 5, 9, 0)

	// A shallower entry for another position in the same cluster must
	// fall into the auxiliary slot, keeping the deep main entry.
	var colliding = hash + uint64(len(tt.table))
	tt.TryRecord(boundBeta, colliding, MoveNone, 20, 5, 2, 0)

	if e := tt.Probe(hash); e == nil || int(e.depth) != 9 {
		t.Fatal("the deep main entry was evicted")
	}
	if e := tt.Probe(colliding); e == nil || int(e.depth) != 2 {
		t.Fatal("the colliding entry must live in the auxiliary slot")
	}

	// A deeper search result takes the main slot over.
	tt.TryRecord(boundExact|entryPV, colliding, MoveNone, 20, 5, 12, 0)
	if e := tt.Probe(colliding); e == nil || int(e.depth) != 12 {
		t.Fatal("a deeper entry must replace the main slot")
	}
}
