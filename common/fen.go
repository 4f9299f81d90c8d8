package common

import (
	"fmt"
	"strconv"
	"strings"
)

// NewBoardFromFEN parses piece placement, side to move, castle rights,
// the optional en passant square and the two counters. The counters may
// be truncated away, they default to 0 and 1.
func NewBoardFromFEN(fen string) (*Board, error) {
	var b = NewBoard()
	var tokens = strings.Fields(fen)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("parse fen failed: %v", fen)
	}

	var sq = SquareA8
	for i := 0; i < len(tokens[0]); i++ {
		var ch = tokens[0][i]
		switch {
		case ch >= '1' && ch <= '8':
			sq += Square(ch - '0')
		case ch == '/':
			sq = MakeSquare(FileA, (sq-1).Rank()-1)
		default:
			var piece = pieceFromChar(ch)
			if piece == PieceNone {
				return nil, fmt.Errorf("parse fen failed: bad piece %q in %v", ch, fen)
			}
			if sq < 0 || sq >= SquareCount {
				return nil, fmt.Errorf("parse fen failed: bad placement in %v", fen)
			}
			var side = piece.Color()
			b.addPiece(side, piece, sq)
			b.state().hash ^= PieceSquareKey(piece, sq)
			sq++
		}
	}

	if b.pieces[WhiteKing] == 0 || b.pieces[BlackKing] == 0 ||
		MoreThanOne(b.pieces[WhiteKing]) || MoreThanOne(b.pieces[BlackKing]) {
		return nil, fmt.Errorf("parse fen failed: wrong number of kings in %v", fen)
	}

	if tokens[1] == "w" {
		b.side = White
	} else {
		b.side = Black
	}
	b.state().hash ^= SideKey(b.side)

	if len(tokens) > 2 && tokens[2] != "-" {
		for i := 0; i < len(tokens[2]); i++ {
			b.state().castleRights |= castleMaskFromChar(tokens[2][i])
		}
	}

	if len(tokens) > 3 {
		b.state().ep = ParseSquare(tokens[3])
	}

	if len(tokens) > 4 {
		b.state().fiftyRule, _ = strconv.Atoi(tokens[4])
	}

	b.moveCount = int(b.side.Opposite())
	if len(tokens) > 5 {
		if n, err := strconv.Atoi(tokens[5]); err == nil && n > 0 {
			b.moveCount += 2 * (n - 1)
		}
	}

	b.updateInternalState()

	// The side not on move must not be left in check.
	if b.ComputeAttackersOf(b.side, b.King(b.side.Opposite()), b.AllPieces()) != 0 {
		return nil, fmt.Errorf("parse fen failed: illegal position %v", fen)
	}

	return b, nil
}

func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		var empties = 0
		for file := FileA; file <= FileH; file++ {
			var piece = b.board[MakeSquare(file, rank)]
			if piece == PieceNone {
				empties++
				continue
			}
			if empties != 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteString(piece.String())
		}
		if empties != 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if rank != Rank1 {
			sb.WriteString("/")
		}
	}

	if b.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	var rights = b.state().castleRights
	if HasAnyCastleRight(rights) {
		for _, side := range []Color{White, Black} {
			if HasCastleRight(rights, KingCastle, side) {
				sb.WriteString(castleFENChar(KingCastle, side))
			}
			if HasCastleRight(rights, QueenCastle, side) {
				sb.WriteString(castleFENChar(QueenCastle, side))
			}
		}
		sb.WriteString(" ")
	} else {
		sb.WriteString("- ")
	}

	if b.state().ep == NoSquare {
		sb.WriteString("- ")
	} else {
		sb.WriteString(b.state().ep.String())
		sb.WriteString(" ")
	}

	sb.WriteString(strconv.Itoa(b.state().fiftyRule))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa((b.moveCount-int(b.side.Opposite()))/2 + 1))

	return sb.String()
}

func castleFENChar(castle Castle, side Color) string {
	if side == White {
		if castle == KingCastle {
			return "K"
		}
		return "Q"
	}
	if castle == KingCastle {
		return "k"
	}
	return "q"
}

func (b *Board) String() string {
	return b.ToFEN()
}

// MirrorBoard builds the position with the colors swapped and the board
// flipped by rank, used by the evaluation symmetry tests.
func MirrorBoard(b *Board) (*Board, error) {
	var sb strings.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		var empties = 0
		for file := FileA; file <= FileH; file++ {
			// Reading the mirrored square of the source board.
			var piece = b.board[MakeSquare(file, rank).Opposite()]
			if piece == PieceNone {
				empties++
				continue
			}
			if empties != 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteString(MakePiece(piece.Color().Opposite(), piece.Type()).String())
		}
		if empties != 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if rank != Rank1 {
			sb.WriteString("/")
		}
	}

	if b.side == White {
		sb.WriteString(" b ")
	} else {
		sb.WriteString(" w ")
	}

	var rights = b.state().castleRights
	var mirrored = ""
	if HasCastleRight(rights, KingCastle, Black) {
		mirrored += "K"
	}
	if HasCastleRight(rights, QueenCastle, Black) {
		mirrored += "Q"
	}
	if HasCastleRight(rights, KingCastle, White) {
		mirrored += "k"
	}
	if HasCastleRight(rights, QueenCastle, White) {
		mirrored += "q"
	}
	if mirrored == "" {
		mirrored = "-"
	}
	sb.WriteString(mirrored)

	sb.WriteString(" ")
	if b.state().ep == NoSquare {
		sb.WriteString("-")
	} else {
		sb.WriteString(b.state().ep.Opposite().String())
	}

	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.state().fiftyRule))
	sb.WriteString(" 1")

	return NewBoardFromFEN(sb.String())
}
