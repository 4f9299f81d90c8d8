package common

// Move packs the whole move identity in 16 bits:
//
//	bits 0-5:   from
//	bits 6-11:  to
//	bits 12-13: promoted piece, counted from knight
//	bits 14-15: move type
//
// The ordering score lives next to it in MoveEntry and is never part of
// the identity.
type Move uint16

const MoveNone Move = 0

type MoveType int

const (
	Simple MoveType = iota
	Promotion
	Enpassant
	CastleMove
)

func MakeMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

func MakeMoveTyped(from, to Square, mt MoveType, promoted PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promoted-Knight)<<12 | Move(mt)<<14
}

func (m Move) From() Square {
	return Square(m & 63)
}

func (m Move) To() Square {
	return Square((m >> 6) & 63)
}

func (m Move) PromotedPiece() PieceType {
	return Knight + PieceType((m>>12)&3)
}

func (m Move) Type() MoveType {
	return MoveType((m >> 14) & 3)
}

func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var s = m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += string("nbrq"[m.PromotedPiece()-Knight])
	}
	return s
}

const MaxMoves = 256

type MoveEntry struct {
	Move  Move
	Score int16
}

// MoveList is a fixed-capacity move buffer, no allocation per node.
type MoveList struct {
	Items [MaxMoves]MoveEntry
	Count int
}

func (ml *MoveList) Clear() {
	ml.Count = 0
}

func (ml *MoveList) Add(m Move) {
	ml.Items[ml.Count].Move = m
	ml.Count++
}

func (ml *MoveList) Emplace(from, to Square) {
	ml.Items[ml.Count].Move = MakeMove(from, to)
	ml.Count++
}

func (ml *MoveList) EmplaceTyped(from, to Square, mt MoveType, promoted PieceType) {
	ml.Items[ml.Count].Move = MakeMoveTyped(from, to, mt, promoted)
	ml.Count++
}
