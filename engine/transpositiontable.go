package engine

import (
	. "github.com/maestro-chess/maestro/common"
)

// Entry type bits: the low bit marks a PV node, the upper bits carry the
// bound kind.
const (
	entryNonPV uint8 = 0
	entryPV    uint8 = 1

	boundExact uint8 = 0b010
	boundBeta  uint8 = 0b100
	boundAlpha uint8 = 0b110

	boundMask uint8 = 0b110
)

// tableEntry is one 16-byte record of the transposition table.
type tableEntry struct {
	hash      uint64
	move      Move
	value     int16
	age       uint16 // move count at write time, replaces stale records
	depth     uint8
	entryType uint8
}

func (e *tableEntry) isPVNode() bool {
	return e.entryType&entryPV != 0
}

func (e *tableEntry) boundType() uint8 {
	return e.entryType & boundMask
}

// tableEntryCluster pairs a depth-preferred main entry with an auxiliary
// one that takes whatever the main entry turns away.
type tableEntryCluster struct {
	mainEntry tableEntry
	auxEntry  tableEntry
}

const clusterSize = 32 // bytes

// DefaultTableSize is the table byte budget.
const DefaultTableSize = 64 * 1024 * 1024

type TranspositionTable struct {
	table   []tableEntryCluster
	rootAge uint16
}

func NewTranspositionTable(sizeBytes int) *TranspositionTable {
	if sizeBytes <= 0 {
		sizeBytes = DefaultTableSize
	}
	return &TranspositionTable{
		table: make([]tableEntryCluster, sizeBytes/clusterSize),
	}
}

func (tt *TranspositionTable) Clear() {
	for i := range tt.table {
		tt.table[i] = tableEntryCluster{}
	}
}

func (tt *TranspositionTable) SetRootAge(age int) {
	tt.rootAge = uint16(age)
}

// Probe returns the entry stored for the full 64-bit key, or nil.
func (tt *TranspositionTable) Probe(hash uint64) *tableEntry {
	var cluster = &tt.table[hash%uint64(len(tt.table))]
	if cluster.mainEntry.hash == hash {
		return &cluster.mainEntry
	}
	if cluster.auxEntry.hash == hash {
		return &cluster.auxEntry
	}
	return nil
}

// TryRecord writes the result of a node. The main slot is kept unless it
// is empty, aged before the root, shallower, or matched at the same depth
// by an entry of at least its PV status and a tighter bound; everything
// else overwrites the auxiliary slot, except when the main slot already
// holds the same key, in which case nothing is written. Mate values are
// stored ply-relative.
func (tt *TranspositionTable) TryRecord(entryType uint8, hash uint64, move Move, value Value, age, depth, ply int) {
	var cluster = &tt.table[hash%uint64(len(tt.table))]
	var mainEntry = &cluster.mainEntry

	if isMateValue(value) {
		if value > valueMate-2*maxDepth {
			value += ply
		} else {
			value -= ply
		}
	}

	if mainEntry.entryType == 0 ||
		mainEntry.age <= tt.rootAge ||
		depth > int(mainEntry.depth) ||
		(depth == int(mainEntry.depth) &&
			entryType&entryPV >= mainEntry.entryType&entryPV &&
			entryType&boundMask <= mainEntry.boundType()) {
		*mainEntry = tableEntry{
			hash:      hash,
			move:      move,
			value:     int16(value),
			age:       uint16(age),
			depth:     uint8(depth),
			entryType: entryType,
		}
	} else if mainEntry.hash != hash {
		cluster.auxEntry = tableEntry{
			hash:      hash,
			move:      move,
			value:     int16(value),
			age:       uint16(age),
			depth:     uint8(depth),
			entryType: entryType,
		}
	}
}
