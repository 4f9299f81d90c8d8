package common

// GenMode selects the partition of pseudo-legal moves to generate.
type GenMode int

const (
	AllMoves GenMode = iota
	Captures         // captures and queen promotions only
	CheckEvasions
	QuietChecks // non-capturing checking moves
)

// GenerateMoves fills ml with the pseudo-legal moves of the side to move.
// When the side is in check the generator substitutes CheckEvasions
// unless the caller asked for evasions or quiet checks. QuietChecks
// appends to the list, the other modes reset it.
func (b *Board) GenerateMoves(ml *MoveList, mode GenMode) {
	if mode == QuietChecks {
		b.generate(ml, QuietChecks)
		return
	}

	ml.Clear()
	if mode != CheckEvasions && b.IsInCheck() {
		b.generate(ml, CheckEvasions)
		return
	}
	b.generate(ml, mode)
}

func (b *Board) generate(ml *MoveList, mode GenMode) {
	var side = b.side
	var opponent = side.Opposite()
	var up = RelativeDirection(side, DirUp)
	var upRight = RelativeDirection(side, DirUpRight)
	var upLeft = RelativeDirection(side, DirUpLeft)
	var down = RelativeDirection(side, DirDown)
	var downRight = RelativeDirection(side, DirDownRight)
	var downLeft = RelativeDirection(side, DirDownLeft)
	var rank3 = RankMask[RelativeRank(side, Rank3)]
	var rank7 = RankMask[RelativeRank(side, Rank7)]

	var friendly = b.piecesByColor[side]
	var enemy = b.piecesByColor[opponent]
	if mode == CheckEvasions {
		// In check only the checker itself can be captured.
		enemy = b.CheckGivers()
	}

	var allPieces = b.AllPieces()
	var empty = ^allPieces
	var kingSq = b.King(side)
	var opponentKingSq = b.King(opponent)

	var trg BitBoard
	switch mode {
	case Captures:
		trg = enemy
	case CheckEvasions:
		// Interpose or capture; BetweenBits includes the checker square.
		trg = BetweenBits(kingSq, FirstOne(b.CheckGivers()))
	case QuietChecks:
		trg = empty
	default:
		trg = ^friendly
	}

	// King

	if mode != QuietChecks || b.CheckBlockers(opponent).Test(kingSq) {
		var attacks = PseudoAttacks(King, kingSq)
		if mode == CheckEvasions {
			attacks &= ^friendly
		} else {
			attacks &= trg
		}
		if mode == QuietChecks {
			attacks &^= PseudoAttacks(Queen, opponentKingSq)
		}
		for x := attacks; x != 0; x &= x - 1 {
			ml.Emplace(kingSq, FirstOne(x))
		}

		if mode == CheckEvasions && MoreThanOne(b.CheckGivers()) {
			return // only the king can evade a double check
		}
	}

	// Pawns

	var pawns = b.Pawns(side)
	var promotablePawns = pawns & rank7
	var nonPromotablePawns = pawns ^ promotablePawns

	if mode != QuietChecks && promotablePawns != 0 {
		var upPromotions = ShiftDir(promotablePawns, up) & empty
		var upLeftPromotions = ShiftDir(promotablePawns, upLeft) & enemy
		var upRightPromotions = ShiftDir(promotablePawns, upRight) & enemy

		if mode == CheckEvasions {
			upPromotions &= trg
		}

		for x := upPromotions; x != 0; x &= x - 1 {
			var to = FirstOne(x)
			b.emplacePromotions(ml, to.Shift(down), to, mode)
		}
		for x := upLeftPromotions; x != 0; x &= x - 1 {
			var to = FirstOne(x)
			b.emplacePromotions(ml, to.Shift(downRight), to, mode)
		}
		for x := upRightPromotions; x != 0; x &= x - 1 {
			var to = FirstOne(x)
			b.emplacePromotions(ml, to.Shift(downLeft), to, mode)
		}
	}

	if mode != QuietChecks && nonPromotablePawns != 0 {
		var upLeftCaptures = ShiftDir(nonPromotablePawns, upLeft) & enemy
		var upRightCaptures = ShiftDir(nonPromotablePawns, upRight) & enemy

		for x := upLeftCaptures; x != 0; x &= x - 1 {
			var to = FirstOne(x)
			ml.Emplace(to.Shift(downRight), to)
		}
		for x := upRightCaptures; x != 0; x &= x - 1 {
			var to = FirstOne(x)
			ml.Emplace(to.Shift(downLeft), to)
		}

		if ep := b.state().ep; ep != NoSquare {
			var epCapture = pawns & PawnAttacks(opponent, ep)
			for x := epCapture; x != 0; x &= x - 1 {
				ml.EmplaceTyped(FirstOne(x), ep, Enpassant, Knight)
			}
		}
	}

	if mode != Captures {
		var singlePawnPush = ShiftDir(nonPromotablePawns, up) & empty
		var doublePawnPush = ShiftDir(singlePawnPush&rank3, up) & empty

		if mode == CheckEvasions {
			singlePawnPush &= trg
			doublePawnPush &= trg
		} else if mode == QuietChecks {
			var pawnToKingAttacks = PawnAttacks(opponent, opponentKingSq)
			var pawnsBlockingCheck = b.CheckBlockers(opponent) &^ FileMask[opponentKingSq.File()]

			pawnsBlockingCheck = ShiftDir(pawnsBlockingCheck, up)
			singlePawnPush &= pawnToKingAttacks | pawnsBlockingCheck
			doublePawnPush &= pawnToKingAttacks | ShiftDir(pawnsBlockingCheck, up)
		}

		for x := singlePawnPush; x != 0; x &= x - 1 {
			var to = FirstOne(x)
			ml.Emplace(to.Shift(down), to)
		}
		for x := doublePawnPush; x != 0; x &= x - 1 {
			var to = FirstOne(x)
			ml.Emplace(to.Shift(down).Shift(down), to)
		}
	}

	// Knight, bishop, rook, queen

	b.generatePieceMoves(ml, Knight, mode, allPieces, trg)
	b.generatePieceMoves(ml, Bishop, mode, allPieces, trg)
	b.generatePieceMoves(ml, Rook, mode, allPieces, trg)
	b.generatePieceMoves(ml, Queen, mode, allPieces, trg)

	// Castlings

	if mode == AllMoves {
		var rights = b.state().castleRights
		if HasCastleRight(rights, KingCastle, side) &&
			CastlingInternalSquares(side, KingCastle)&allPieces == 0 {
			ml.EmplaceTyped(kingSq, MakeSquare(FileG, RelativeRank(side, Rank1)), CastleMove, Knight)
		}
		if HasCastleRight(rights, QueenCastle, side) &&
			CastlingInternalSquares(side, QueenCastle)&allPieces == 0 {
			ml.EmplaceTyped(kingSq, MakeSquare(FileC, RelativeRank(side, Rank1)), CastleMove, Knight)
		}
	}
}

func (b *Board) emplacePromotions(ml *MoveList, from, to Square, mode GenMode) {
	ml.EmplaceTyped(from, to, Promotion, Queen)
	if mode != Captures {
		ml.EmplaceTyped(from, to, Promotion, Rook)
		ml.EmplaceTyped(from, to, Promotion, Bishop)
		ml.EmplaceTyped(from, to, Promotion, Knight)
	}
}

func (b *Board) generatePieceMoves(ml *MoveList, pt PieceType, mode GenMode, allPieces, trg BitBoard) {
	var side = b.side
	var opponent = side.Opposite()

	var opponentKingAttacks BitBoard
	if mode == QuietChecks {
		opponentKingAttacks = AttacksOf(pt, b.King(opponent), allPieces)
	}

	for pieces := b.pieces[MakePiece(side, pt)]; pieces != 0; pieces &= pieces - 1 {
		var sq = FirstOne(pieces)
		var attacks = AttacksOf(pt, sq, allPieces) & trg
		if mode == QuietChecks && !b.CheckBlockers(opponent).Test(sq) {
			attacks &= opponentKingAttacks
		}
		for x := attacks; x != 0; x &= x - 1 {
			ml.Emplace(sq, FirstOne(x))
		}
	}
}

// GenerateLegalMoves is a convenience for drivers and tests.
func (b *Board) GenerateLegalMoves() []Move {
	var ml MoveList
	b.GenerateMoves(&ml, AllMoves)
	var result []Move
	for i := 0; i < ml.Count; i++ {
		if b.IsLegal(ml.Items[i].Move) {
			result = append(result, ml.Items[i].Move)
		}
	}
	return result
}
