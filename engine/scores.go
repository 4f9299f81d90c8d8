package engine

import (
	. "github.com/maestro-chess/maestro/common"
)

// The weights of the evaluation function.

var tempoScore = S(15, 3)

///  PAWNS  ///

// A pawn island is a series of pawns each on the next file to the previous.
var pawnIslands = [5]Score{{}, {}, S(-3, -3), S(-21, -16), S(-34, -32)}

// A pawn that is defended by another pawn, by relative rank.
var defendedPawn = [RankCount]Score{{}, {}, S(3, 5), S(7, 8), S(13, 15), S(19, 23), S(28, 36), {}}

var isolatedPawn = S(-7, -5)

// Pawn that cannot be protected by own pawns and cannot safely advance.
var backwardPawn = S(-9, -9)

// Several pawns on the same file.
var doublePawn = S(-10, -23)

// Pawn distortion is how far the pawns on adjacent files are from each other.
var pawnDistortion = S(-1, -2)

// Bonus for a passed pawn depending on its advancement.
var passedPawn = [RankCount]Score{
	{}, S(15, 25), S(22, 30), S(30, 35), S(42, 48), S(55, 65), S(75, 95), {},
}

// A rook that supports the passed pawn from behind.
var rookBehindPassedPawn = S(12, 28)

// A passed pawn blocked with an enemy minor piece.
var minorPassedBlocked = S(-14, -27)

///  MINOR PIECES  ///

var bishopPair = S(35, 20)

///  PAWN ENDGAMES  ///

// Square rule is when a passed pawn cannot be reached by the enemy king.
var squareRulePassed Value = 200

// Bonus factor for the king being near a passed pawn in a pawn endgame.
var kingPassedTropism Value = 5

// Bonus factor for the king being close to pawns in a pawn endgame.
var kingPawnTropism Value = 2

// Table for endgames with a sole king on one side.
var kingPushToCorner = [SquareCount]Value{
	100, 90, 80, 70, 70, 80, 90, 100,
	90, 60, 50, 40, 40, 50, 60, 90,
	80, 50, 30, 20, 20, 30, 50, 80,
	70, 40, 20, 10, 10, 20, 40, 70,
	70, 40, 20, 10, 10, 20, 40, 70,
	80, 50, 30, 20, 20, 30, 50, 80,
	90, 60, 50, 40, 40, 50, 60, 90,
	100, 90, 80, 70, 70, 80, 90, 100,
}
