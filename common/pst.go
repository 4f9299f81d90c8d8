package common

// Piece values and piece-square tables. The tables are written for the
// left half of the board from the promotion side down and get unfolded,
// mirrored and piece-value-loaded at startup.

var PieceValue = [PieceTypeCount]Score{
	{},            // none
	S(100, 130),   // pawn
	S(320, 360),   // knight
	S(350, 390),   // bishop
	S(550, 650),   // rook
	S(1050, 1150), // queen
	{},            // king
}

// SimplifiedPieceValue flattens the piece value to the midpoint of its
// middlegame and endgame components, used by SEE and move ordering.
var SimplifiedPieceValue [PieceCount]Value

var pst [PieceCount][SquareCount]Score

func PST(piece Piece, sq Square) Score {
	return pst[piece][sq]
}

var rawPST = [PieceTypeCount][32]Score{
	Pawn: {
		{}, {}, {}, {},
		S(20, 40), S(20, 45), S(16, 45), S(25, 45),
		S(11, 25), S(10, 25), S(10, 25), S(18, 25),
		S(3, 15), S(2, 15), S(6, 15), S(15, 15),
		S(0, 10), S(0, 10), S(4, 10), S(12, 10),
		S(3, 5), S(4, 5), S(-4, 5), S(0, 5),
		S(-2, 0), S(-3, 0), S(4, 0), S(-12, 0),
		{}, {}, {}, {},
	},
	Knight: {
		S(-65, -40), S(-40, -20), S(-22, -20), S(-15, -15),
		S(-45, -30), S(-15, -9), S(7, 2), S(10, 5),
		S(-20, -14), S(3, 2), S(15, 10), S(26, 17),
		S(-12, -8), S(10, 5), S(24, 15), S(40, 23),
		S(-15, -10), S(5, 5), S(20, 15), S(36, 23),
		S(-30, -20), S(0, 2), S(12, 10), S(23, 17),
		S(-45, -30), S(-16, -9), S(2, 2), S(8, 5),
		S(-60, -40), S(-25, -20), S(-22, -20), S(-25, -15),
	},
	Bishop: {
		S(-15, -20), S(-14, -15), S(-9, -10), S(-15, -10),
		S(-10, -15), S(5, 10), S(2, 5), S(-2, 0),
		S(-5, -10), S(7, 5), S(5, 10), S(8, 5),
		S(0, -10), S(-5, 0), S(10, 5), S(15, 10),
		S(0, -10), S(-5, 0), S(10, 5), S(15, 10),
		S(10, -10), S(5, 5), S(5, 10), S(9, 5),
		S(5, -15), S(20, 10), S(3, 5), S(0, 0),
		S(-5, -20), S(-12, -15), S(1, -10), S(-10, -10),
	},
	Rook: {
		S(-12, -1), S(-10, 0), S(-4, 0), S(-1, 0),
		S(-8, 0), S(4, 0), S(5, 0), S(5, 0),
		S(-15, 0), S(-2, 0), S(-5, 0), S(-5, 0),
		S(-20, 0), S(-5, 0), S(-10, 0), S(-20, 0),
		S(-20, 0), S(-5, 0), S(-10, 0), S(-20, 0),
		S(-15, 0), S(-2, 0), S(-5, 0), S(-5, 0),
		S(-8, 0), S(0, 0), S(1, 0), S(12, 0),
		S(-10, -1), S(-8, 0), S(2, 0), S(20, 0),
	},
	Queen: {
		S(-8, -20), S(-10, -15), S(-10, -10), S(0, -5),
		S(0, -15), S(0, -9), S(0, 0), S(10, 0),
		S(0, -10), S(0, 0), S(0, 5), S(6, 6),
		S(0, -5), S(0, 3), S(4, 10), S(3, 12),
		S(0, -5), S(0, 3), S(4, 10), S(4, 12),
		S(0, -10), S(0, 0), S(0, 5), S(0, 6),
		S(0, -15), S(0, -9), S(0, 0), S(0, 0),
		S(-8, -20), S(-8, -15), S(-5, -10), S(0, -5),
	},
	King: {
		S(-70, -60), S(-70, -45), S(-75, -40), S(-80, -35),
		S(-80, -45), S(-80, -25), S(-85, -20), S(-85, -15),
		S(-80, -40), S(-80, -20), S(-85, -5), S(-85, 0),
		S(-70, -35), S(-70, -15), S(-70, 0), S(-70, 10),
		S(-55, -35), S(-55, -15), S(-60, 0), S(-65, 10),
		S(-40, -40), S(-45, -20), S(-45, -5), S(-50, 0),
		S(-5, -45), S(-5, -25), S(-25, -20), S(-30, -15),
		S(25, -60), S(35, -45), S(7, -40), S(-5, -35),
	},
}

func init() {
	for piece := BlackPawn; piece < PieceCount; piece++ {
		var value = PieceValue[piece.Type()]
		SimplifiedPieceValue[piece] = (value.Middlegame() + value.Endgame()) / 2
	}

	for pt := Pawn; pt <= King; pt++ {
		for i := 0; i < 32; i++ {
			var rank = Rank(i >> 2)
			var file = File(i & 3)
			var sqB = MakeSquare(file, rank)
			var sqW = sqB.Opposite()

			var score = rawPST[pt][i].Add(PieceValue[pt])

			pst[MakePiece(White, pt)][sqW] = score
			pst[MakePiece(White, pt)][sqW.MirrorByFile()] = score
			pst[MakePiece(Black, pt)][sqB] = score
			pst[MakePiece(Black, pt)][sqB.MirrorByFile()] = score
		}
	}
}
