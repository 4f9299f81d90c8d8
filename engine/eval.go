package engine

import (
	. "github.com/maestro-chess/maestro/common"
)

// Evaluator owns the pawn hash and turns a position into a centipawn
// value from the side to move's point of view.
type Evaluator struct {
	pawnTable pawnHashTable
}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Reset() {
	e.pawnTable.reset()
}

func signBySide(side Color) Value {
	return -1 + 2*Value(side)
}

// Evaluate picks the most specialised path that applies: a pure pawn
// endgame, a known drawish endgame, a bare king versus material, or the
// general evaluation collapsed by remaining material.
func (e *Evaluator) Evaluate(b *Board) Value {
	if !b.HasNonPawns(White) && !b.HasNonPawns(Black) {
		var result = e.evalPawnEndgame(b, White) - e.evalPawnEndgame(b, Black)
		result *= signBySide(b.Side())
		return result + tempoScore.Endgame()
	} else if isDrawishEndgame(b) {
		return 0
	} else if b.MaterialByColor(White) == 0 || b.MaterialByColor(Black) == 0 {
		return evalSoleKingXPieces(b)
	}

	var score = e.evalSide(b, White).Sub(e.evalSide(b, Black))

	var material = NewMaterial(b.MaterialByColor(White) + b.MaterialByColor(Black))
	var result = score.Collapse(material)
	result *= signBySide(b.Side())

	return result + tempoScore.Collapse(material)
}

// drawishForStrongSide enumerates the piece-only endgames that the
// stronger side cannot win.
func drawishForStrongSide(b *Board, strongSide Color, strongMat, weakMat int) bool {
	var weakSide = strongSide.Opposite()

	switch strongMat + weakMat {
	case 3: // king and a minor piece against a bare king
		return true
	case 6:
		if strongMat == 3 { // minor piece versus minor piece
			return true
		}
		// Two minors versus a bare king: KNNK and two same-colored
		// bishops cannot win; bishop plus knight can.
		return b.Bishops(strongSide) == 0 ||
			(b.Knights(strongSide) == 0 && b.HasOnlySameColoredBishops(strongSide))
	case 9:
		if strongMat == 6 {
			// Two minors versus one: only the bishop pair against a
			// lone knight wins.
			return b.Knights(strongSide) != 0 ||
				b.Bishops(weakSide) != 0 ||
				b.HasOnlySameColoredBishops(strongSide)
		}
		return false
	}
	return false
}

func isDrawishEndgame(b *Board) bool {
	var wMat = b.MaterialByColor(White)
	var bMat = b.MaterialByColor(Black)
	if wMat+bMat > 9 {
		return false
	}
	if b.ByPieceType(Pawn) != 0 {
		return false
	}

	if wMat > bMat {
		return drawishForStrongSide(b, White, wMat, bMat)
	}
	return drawishForStrongSide(b, Black, bMat, wMat)
}

// evalKBNK herds the bare king towards a corner of the bishop's color.
func evalKBNK(b *Board, strongSide Color) Value {
	var enemyKing = b.King(strongSide.Opposite())
	var kingKingTropism = Value(SquareDistance(enemyKing, b.King(strongSide)))

	var corner1, corner2 Square
	if b.Bishops(strongSide)&ColorMask(White) != 0 {
		corner1, corner2 = SquareA8, SquareH1
	} else {
		corner1, corner2 = SquareH8, SquareA1
	}

	return kingKingTropism + Value(Min(SquareDistance(corner1, enemyKing), SquareDistance(corner2, enemyKing)))*5
}

// evalSoleKingXPieces handles a bare king versus pieces, from the side
// to move's point of view.
func evalSoleKingXPieces(b *Board) Value {
	var result Value

	if b.MaterialByColor(White) == 0 {
		if b.MaterialByColor(Black) == 6 && b.Bishops(Black) != 0 && b.Knights(Black) != 0 {
			result = -valueSureWin + evalKBNK(b, Black)
		} else {
			result = -kingPushToCorner[b.King(White)] - valueSureWin
		}
	} else {
		if b.MaterialByColor(White) == 6 && b.Bishops(White) != 0 && b.Knights(White) != 0 {
			result = valueSureWin - evalKBNK(b, White)
		} else {
			result = kingPushToCorner[b.King(Black)] + valueSureWin
		}
	}

	return signBySide(b.Side()) * result
}

// evalPawnEndgame scores one side of a kings-and-pawns-only position in
// endgame values.
func (e *Evaluator) evalPawnEndgame(b *Board, side Color) Value {
	var oppositeSide = side.Opposite()

	var result = b.ScoreByColor(side).Endgame()
	var enemyKingSq = b.King(oppositeSide)
	var ourKingSq = b.King(side)

	var entry = e.pawnTable.getOrScan(b)
	result += entry.pawnEvaluation[side].Endgame()

	var pawns = entry.pawns[side]
	var passed = entry.passed & pawns
	for x := pawns; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		if passed.Test(sq) {
			// Rule of the square, accounting for the tempo.
			var promotionSq = MakeSquare(sq.File(), RelativeRank(side, Rank8))
			var isEnemySideToMove = 0
			if b.Side() != side {
				isEnemySideToMove = 1
			}
			if Min(5, SquareDistance(sq, promotionSq)) < SquareDistance(enemyKingSq, promotionSq)-isEnemySideToMove {
				result += squareRulePassed
			}

			result += kingPassedTropism * Value(ManhattanCloseness(ourKingSq, sq))
			result -= kingPassedTropism * Value(ManhattanCloseness(enemyKingSq, sq))
		} else {
			result += kingPawnTropism * Value(ManhattanCloseness(ourKingSq, sq))
			result -= kingPawnTropism * Value(ManhattanCloseness(enemyKingSq, sq))
		}
	}

	return result
}

// evalSide is the general per-side evaluation on top of the accumulated
// piece-square score.
func (e *Evaluator) evalSide(b *Board, side Color) Score {
	var oppositeSide = side.Opposite()
	var up = RelativeDirection(side, DirUp)
	var down = RelativeDirection(side, DirDown)

	var result = b.ScoreByColor(side)
	var occ = b.AllPieces()

	///  PAWNS  ///

	var entry = e.pawnTable.getOrScan(b)
	result = result.Add(entry.pawnEvaluation[side])

	var passers = entry.passed & entry.pawns[side]
	for x := passers; x != 0; x &= x - 1 {
		var sq = FirstOne(x)

		// A rook supporting the passed pawn from behind.
		if rooksBehind := b.Rooks(side) & DirectionBits(sq, down); rooksBehind != 0 {
			var rookSq = FirstOne(rooksBehind)
			if side == White {
				rookSq = LastOne(rooksBehind)
			}
			if occ&(BetweenBits(sq, rookSq)&^SquareMask[rookSq]) == 0 {
				result = result.Add(rookBehindPassedPawn)
			}
		}

		// A minor piece blockading the passed pawn.
		var blocker = b.PieceOn(sq.Shift(up))
		if blocker == MakePiece(oppositeSide, Knight) || blocker == MakePiece(oppositeSide, Bishop) {
			result = result.Add(minorPassedBlocked)
		}
	}

	///  BISHOPS  ///

	if b.HasDifferentColoredBishops(side) {
		result = result.Add(bishopPair)
	}

	return result
}
