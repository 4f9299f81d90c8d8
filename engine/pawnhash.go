package engine

import (
	. "github.com/maestro-chess/maestro/common"
)

const pawnHashSizeLog2 = 12

// pawnHashEntry caches everything the evaluation wants to know about a
// pawn structure. The pawn bitboards double as the verification key.
type pawnHashEntry struct {
	pawns    [ColorCount]BitBoard
	passed   BitBoard
	isolated BitBoard
	doubled  BitBoard
	backward BitBoard

	// Per-file most advanced relative rank, padded by one sentinel file
	// on both sides for neighbour lookups.
	mostAdvanced [ColorCount][FileCount + 2]Rank

	pawnEvaluation [ColorCount]Score
	islandsCount   [ColorCount]int
	distortion     [ColorCount]int
}

// pawnHashTable is open-addressed and fixed-size. There is no eviction
// and no chaining, an opposing pattern simply overwrites.
type pawnHashTable struct {
	entries [1 << pawnHashSizeLog2]pawnHashEntry
}

func (t *pawnHashTable) reset() {
	for i := range t.entries {
		t.entries[i] = pawnHashEntry{}
	}
}

func (t *pawnHashTable) getOrScan(b *Board) *pawnHashEntry {
	var wpawns = b.Pawns(White)
	var bpawns = b.Pawns(Black)

	// Pawns never stand on the first or the last rank, only 48 bits matter.
	var hash = uint64(wpawns^bpawns) >> 8
	hash = hash ^ (hash >> pawnHashSizeLog2) ^ (hash >> (pawnHashSizeLog2 * 2)) ^ (hash >> (pawnHashSizeLog2 * 3))
	hash &= (1 << pawnHashSizeLog2) - 1

	var entry = &t.entries[hash]
	if entry.pawns[White] == wpawns && entry.pawns[Black] == bpawns {
		return entry
	}

	*entry = pawnHashEntry{}
	entry.pawns[White] = wpawns
	entry.pawns[Black] = bpawns

	scanPawns(b, entry, White)
	scanPawns(b, entry, Black)

	return entry
}

func scanPawns(b *Board, entry *pawnHashEntry, side Color) {
	var opposite = side.Opposite()
	var up = RelativeDirection(side, DirUp)

	var pawns = b.Pawns(side)
	var enemyPawns = b.Pawns(opposite)
	var ourPawnAttacks = PawnAttackedSquares(pawns, side)

	for x := pawns; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		var file = sq.File()
		var relRank = RelativeRank(side, sq.Rank())

		if relRank > entry.mostAdvanced[side][file+1] {
			entry.mostAdvanced[side][file+1] = relRank
		}

		// Counting islands and distortion against the next file over.
		if file == FileH || FileMask[file+1]&pawns == 0 {
			entry.islandsCount[side]++
		} else if pawnsOnNextFile := FileMask[file+1] & pawns; pawnsOnNextFile != 0 {
			entry.distortion[side] += Max(0, RankDistance(FirstOne(pawnsOnNextFile), sq)-1)
		}

		if ourPawnAttacks.Test(sq) {
			entry.pawnEvaluation[side] = entry.pawnEvaluation[side].Add(defendedPawn[relRank])
		}

		if ThreeFilesForward(side, sq)&enemyPawns == 0 &&
			DirectionBits(sq, up)&pawns == 0 {
			entry.pawnEvaluation[side] = entry.pawnEvaluation[side].Add(passedPawn[relRank])
			entry.passed |= SquareMask[sq]
		}

		if AdjacentFiles(file)&pawns == 0 {
			entry.pawnEvaluation[side] = entry.pawnEvaluation[side].Add(isolatedPawn)
			entry.isolated |= SquareMask[sq]
		}

		if DirectionBits(sq, up)&pawns != 0 {
			entry.pawnEvaluation[side] = entry.pawnEvaluation[side].Add(doublePawn)
			entry.doubled |= SquareMask[sq]
		}

		if AdjacentFilesForward(opposite, sq.Shift(up))&pawns == 0 &&
			PawnAttacks(side, sq.Shift(up))&enemyPawns != 0 {
			entry.pawnEvaluation[side] = entry.pawnEvaluation[side].Add(backwardPawn)
			entry.backward |= SquareMask[sq]
		}
	}

	entry.pawnEvaluation[side] = entry.pawnEvaluation[side].
		Add(pawnIslands[Min(entry.islandsCount[side], len(pawnIslands)-1)]).
		Add(pawnDistortion.Mul(entry.distortion[side]))
}
