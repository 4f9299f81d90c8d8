package engine

import (
	. "github.com/maestro-chess/maestro/common"
)

// Ordering scores. Quiets land in [0, 120], tactical moves at 1000 plus
// an MVV/LVA balance that can be negative (never below 130), the
// transposition move on top of everything.
const (
	secondKillerScore      = 110
	firstKillerScore       = 120
	captureScore           = 1000
	transpositionMoveScore = 30000
)

const (
	historyRenewalShift = 3
	historySuccessAdd   = 1
	historyTryAdd       = 2
)

type searchStack struct {
	firstKiller  Move
	secondKiller Move
}

// historyTable keeps per-(piece, destination) try and success counters
// for the history heuristic.
type historyTable struct {
	tries     [PieceCount][SquareCount]uint32
	successes [PieceCount][SquareCount]uint32
}

func (h *historyTable) clear() {
	*h = historyTable{}
}

// renew radically decreases the counters instead of clearing them, the
// history of the last few moves is still partially reusable.
func (h *historyTable) renew() {
	for piece := BlackPawn; piece < PieceCount; piece++ {
		for to := Square(0); to < SquareCount; to++ {
			h.tries[piece][to] >>= historyRenewalShift
			h.successes[piece][to] >>= historyRenewalShift
		}
	}
}

func (h *historyTable) addTry(piece Piece, to Square, depth int) {
	h.tries[piece][to] += uint32(depth * depth)
}

func (h *historyTable) addSuccess(piece Piece, to Square, depth int) {
	h.successes[piece][to] += uint32(depth * depth)
}

// value is the success percentage of the move, biased so that an
// untried move starts near 50 while proven cut-causers trend to 100.
func (h *historyTable) value(piece Piece, to Square) Value {
	return Value(uint64(h.successes[piece][to]+historySuccessAdd) * 100 /
		uint64(h.tries[piece][to]+historyTryAdd))
}

// movePicker scores the already generated moves once and then hands them
// out best first with a linear selection scan. n is small, the quadratic
// worst case never matters.
type movePicker struct {
	ml    *MoveList
	first int
}

var noKillers searchStack

func newMovePicker(b *Board, history *historyTable, ml *MoveList, tableMove Move, ss *searchStack) movePicker {
	if ss == nil {
		ss = &noKillers
	}

	for i := 0; i < ml.Count; i++ {
		var entry = &ml.Items[i]
		var m = entry.Move

		if m == tableMove {
			entry.Score = transpositionMoveScore
			continue
		}

		if b.IsQuiet(m) {
			switch m {
			case ss.firstKiller:
				entry.Score = firstKillerScore
			case ss.secondKiller:
				entry.Score = secondKillerScore
			default:
				entry.Score = int16(history.value(b.PieceOn(m.From()), m.To()))
			}
		} else {
			var piece = b.PieceOn(m.From())
			var captured = b.PieceOn(m.To())
			if m.Type() == Enpassant {
				captured = WhitePawn
			}
			var promoted = PieceNone
			if m.Type() == Promotion {
				promoted = MakePiece(White, m.PromotedPiece())
			}

			var balance = (SimplifiedPieceValue[captured]+SimplifiedPieceValue[promoted])*2 -
				SimplifiedPieceValue[piece]
			entry.Score = int16(captureScore + balance)
		}
	}

	return movePicker{ml: ml}
}

func (mp *movePicker) hasMore() bool {
	return mp.first < mp.ml.Count
}

func (mp *movePicker) pick() Move {
	var best = mp.first
	var bestScore = mp.ml.Items[best].Score
	for i := mp.first + 1; i < mp.ml.Count; i++ {
		if mp.ml.Items[i].Score > bestScore {
			best = i
			bestScore = mp.ml.Items[i].Score
		}
	}

	if best != mp.first {
		mp.ml.Items[mp.first], mp.ml.Items[best] = mp.ml.Items[best], mp.ml.Items[mp.first]
	}

	var m = mp.ml.Items[mp.first].Move
	mp.first++
	return m
}
