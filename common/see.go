package common

// SEE is the static exchange evaluation of a move in simplified piece
// values: the capture sequence on the destination square is played out
// with the least valuable attacker first, x-ray attackers join as pieces
// leave the board, and the gain stack is folded from the tail with
// alternating min/max. Castlings evaluate to 0.
func (b *Board) SEE(m Move) Value {
	var to = m.To()
	var from = m.From()
	var occ = b.AllPieces()
	var result Value   // running gain
	var nextLoss Value // the next value lost in a capture

	switch m.Type() {
	case Promotion:
		nextLoss = SimplifiedPieceValue[MakePiece(White, m.PromotedPiece())]
		result = SimplifiedPieceValue[b.board[to]] + nextLoss - SimplifiedPieceValue[WhitePawn]
		occ &^= SquareMask[from]
	case Simple:
		result = SimplifiedPieceValue[b.board[to]]
		nextLoss = SimplifiedPieceValue[b.board[from]]
		occ &^= SquareMask[from]
	case Enpassant:
		var capturedSq = MakeSquare(to.File(), from.Rank())
		result = SimplifiedPieceValue[WhitePawn]
		nextLoss = SimplifiedPieceValue[WhitePawn]
		occ &^= SquareMask[capturedSq]
		occ &^= SquareMask[from]
	default:
		return 0
	}

	var gains [36]Value
	gains[0] = result
	var i = 0

	var side = b.side
	var attackers = b.ComputeAllAttackersOf(to, occ)
	var modifier = Value(1)

	var diagonalSliders = b.BishopsAndQueens(White) | b.BishopsAndQueens(Black)
	var straightSliders = b.RooksAndQueens(White) | b.RooksAndQueens(Black)

	for {
		side = side.Opposite()
		attackers &= occ
		var currentAttackers = attackers & b.piecesByColor[side]

		// A pinned piece stays out of the exchange while its pinner is
		// still on the board.
		if occ&b.Pinners(side.Opposite()) != 0 {
			currentAttackers &^= b.CheckBlockers(side)
		}

		if currentAttackers == 0 {
			break
		}

		modifier = -modifier

		if x := currentAttackers & b.Pawns(side); x != 0 {
			result += modifier * nextLoss
			nextLoss = SimplifiedPieceValue[WhitePawn]
			i++
			gains[i] = result

			occ &^= SquareMask[FirstOne(x)]
			attackers |= BishopAttacks(to, occ) & diagonalSliders
			continue
		}

		if x := currentAttackers & b.Knights(side); x != 0 {
			result += modifier * nextLoss
			nextLoss = SimplifiedPieceValue[WhiteKnight]
			i++
			gains[i] = result

			occ &^= SquareMask[FirstOne(x)]
			continue
		}

		if x := currentAttackers & b.Bishops(side); x != 0 {
			result += modifier * nextLoss
			nextLoss = SimplifiedPieceValue[WhiteBishop]
			i++
			gains[i] = result

			occ &^= SquareMask[FirstOne(x)]
			attackers |= BishopAttacks(to, occ) & diagonalSliders
			continue
		}

		if x := currentAttackers & b.Rooks(side); x != 0 {
			result += modifier * nextLoss
			nextLoss = SimplifiedPieceValue[WhiteRook]
			i++
			gains[i] = result

			occ &^= SquareMask[FirstOne(x)]
			attackers |= RookAttacks(to, occ) & straightSliders
			continue
		}

		if x := currentAttackers & b.Queens(side); x != 0 {
			result += modifier * nextLoss
			nextLoss = SimplifiedPieceValue[WhiteQueen]
			i++
			gains[i] = result

			occ &^= SquareMask[FirstOne(x)]
			attackers |= (BishopAttacks(to, occ) & diagonalSliders) |
				(RookAttacks(to, occ) & straightSliders)
			continue
		}

		// The king can close the exchange only when no opposing
		// attackers are left to take it back.
		if attackers&b.piecesByColor[side.Opposite()]&occ == 0 {
			if currentAttackers&b.pieces[MakePiece(side, King)] != 0 {
				result += modifier * nextLoss
			}
			i++
			gains[i] = result
		}
		break
	}

	for ; i > 0; i-- {
		if i&1 != 0 {
			gains[i-1] = Min(gains[i-1], gains[i])
		} else {
			gains[i-1] = Max(gains[i-1], gains[i])
		}
	}

	return gains[0]
}
