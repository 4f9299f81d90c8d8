package engine

import (
	"sync/atomic"

	. "github.com/maestro-chess/maestro/common"
)

const (
	deltaPruningMargin = 200

	maxQplyForChecks             = 2
	minNullmoveDepth             = 2
	nullmoveDepthReductionBase   = 3
	minNullmoveVerificationDepth = 5
	minLMRDepth                  = 3
	maxLowDepthSEEPruningDepth   = 3

	nullmoveHighDepthDenominator      = 5
	nullmoveBetaDifferenceDenominator = 300
	lmrMaxHistorySuccessRate          = 75
	lmrMinQuietsCount                 = 2
	lmrHighDepthDenominator           = 9
	lmrManyQuietsDenominator          = 9
)

var futilityMargin = [5]Value{0, 50, 200, 400, 700}

// History leaf pruning thresholds by depth.
var maxHistorySuccessRate = [5]Value{0, 20, 12, 7, 3}

var aspirationWindows = [4]Value{35, 110, 450, 2 * valueInfinity}

// SearchContext owns everything one search needs: the limits, the
// transposition table, the evaluator with its pawn hash, the history and
// killer tables and the per-ply stacks. The driver keeps one per process
// and hands it a board.
type SearchContext struct {
	Limits   *Limits
	Progress func(SearchInfo)
	// InputPoll is called between nodes so a single-threaded driver can
	// drain pending commands; concurrent drivers leave it nil and flip
	// the stop flag instead.
	InputPoll func()

	tt        *TranspositionTable
	evaluator *Evaluator
	history   historyTable

	stacks    [2*maxDepth + 2]searchStack
	moveLists [2*maxDepth + 2]MoveList
	pvs       [2*maxDepth + 2][]Move

	nodes     int64
	rootDepth int
	mustStop  atomic.Bool
}

func NewSearchContext() *SearchContext {
	return NewSearchContextSize(DefaultTableSize)
}

func NewSearchContextSize(tableSizeBytes int) *SearchContext {
	return &SearchContext{
		Limits:    NewLimits(),
		tt:        NewTranspositionTable(tableSizeBytes),
		evaluator: NewEvaluator(),
	}
}

// Stop unwinds the current search, keeping the last completed iteration.
func (ctx *SearchContext) Stop() {
	ctx.mustStop.Store(true)
}

func (ctx *SearchContext) Nodes() int64 {
	return ctx.nodes
}

// Evaluate exposes the static evaluation for the console and tools.
func (ctx *SearchContext) Evaluate(b *Board) Value {
	return ctx.evaluator.Evaluate(b)
}

// NewGame clears the state that should not leak between games.
func (ctx *SearchContext) NewGame() {
	ctx.history.clear()
	ctx.tt.Clear()
	ctx.evaluator.Reset()
}

func (ctx *SearchContext) clearPV(ply int) {
	ctx.pvs[ply] = ctx.pvs[ply][:0]
}

func (ctx *SearchContext) composePV(ply int, m Move) {
	ctx.pvs[ply] = append(append(ctx.pvs[ply][:0], m), ctx.pvs[ply+1]...)
}

// checkLimits polls the hard limits every 512 nodes and the input hook
// every 8192; these are the only suspension points of the search.
func (ctx *SearchContext) checkLimits() bool {
	if ctx.nodes&0x1ff == 0 {
		if ctx.Limits.IsHardLimitBroken() || ctx.Limits.IsNodesLimitBroken(ctx.nodes) {
			ctx.mustStop.Store(true)
			return true
		}

		if ctx.nodes&0x1fff == 0 && ctx.InputPoll != nil {
			ctx.InputPoll()
		}
	}
	return false
}

// Perft counts the leaf nodes of the legal move tree, a move generator
// correctness benchmark.
func (ctx *SearchContext) Perft(b *Board, depth int) int64 {
	var result int64
	var moves = &ctx.moveLists[depth]

	b.GenerateMoves(moves, AllMoves)
	for i := 0; i < moves.Count; i++ {
		var m = moves.Items[i].Move
		if !b.IsLegal(m) {
			continue
		}

		if depth <= 1 {
			result++
		} else {
			b.MakeMove(m)
			result += ctx.Perft(b, depth-1)
			b.UnmakeMove(m)
		}
	}

	return result
}

// RootSearch runs the iterative deepening loop with aspiration windows
// and publishes a progress event after every completed depth.
func (ctx *SearchContext) RootSearch(b *Board) SearchResult {
	var lastBest = MoveNone
	var lastResult Value
	var result Value

	ctx.mustStop.Store(false)
	ctx.nodes = 0
	ctx.rootDepth = 0

	ctx.history.renew()
	ctx.tt.SetRootAge(b.MoveCount())

	for i := range ctx.stacks {
		ctx.stacks[i] = searchStack{}
	}

	for !ctx.Limits.IsDepthLimitBroken(ctx.rootDepth + 1) {
		ctx.rootDepth++

		///  ASPIRATION WINDOW  ///

		var failedLowCnt, failedHighCnt = 0, 0
		if ctx.rootDepth < 2 {
			// The first iteration has no previous result to center on.
			failedLowCnt = len(aspirationWindows) - 1
			failedHighCnt = failedLowCnt
		}

		var alpha = Max(-valueInfinity, result-aspirationWindows[failedLowCnt])
		var beta = Min(valueInfinity, result+aspirationWindows[failedHighCnt])

		for {
			result = ctx.search(true, b, alpha, beta, ctx.rootDepth, 0)

			if ctx.mustStop.Load() {
				return SearchResult{Best: lastBest, Value: lastResult}
			}

			if result <= alpha && failedLowCnt < len(aspirationWindows)-1 {
				failedLowCnt++
				alpha = Max(-valueInfinity, result-aspirationWindows[failedLowCnt])
				beta = Min(valueInfinity, result+aspirationWindows[failedHighCnt])
			} else if result >= beta && failedHighCnt < len(aspirationWindows)-1 {
				failedHighCnt++
				alpha = Max(-valueInfinity, result-aspirationWindows[failedLowCnt])
				beta = Min(valueInfinity, result+aspirationWindows[failedHighCnt])
			} else {
				break
			}
		}

		if len(ctx.pvs[0]) == 0 {
			// No legal moves at the root, nothing more to iterate on.
			return SearchResult{Best: MoveNone, Value: result}
		}

		if ctx.Progress != nil {
			ctx.Progress(SearchInfo{
				Depth:    ctx.rootDepth,
				Nodes:    ctx.nodes,
				Time:     ctx.Limits.ElapsedMilliseconds(),
				Score:    result,
				MainLine: append([]Move(nil), ctx.pvs[0]...),
			})
		}

		// The perfect moment to stop: an iteration just finished.
		if ctx.Limits.IsSoftLimitBroken() {
			return SearchResult{Best: ctx.pvs[0][0], Value: result}
		}

		lastBest = ctx.pvs[0][0]
		lastResult = result
	}

	return SearchResult{Best: lastBest, Value: lastResult}
}

func (ctx *SearchContext) search(pvNode bool, b *Board, alpha, beta Value, depth, ply int) Value {
	// All the leaf checks happen inside quiescence.
	if depth <= 0 {
		return ctx.quiescence(pvNode, b, alpha, beta, ply, 0)
	}

	if ctx.mustStop.Load() {
		return alpha
	}

	if ctx.checkLimits() {
		return alpha
	}

	ctx.clearPV(ply)

	if b.IsDraw(ply) {
		return 0
	}

	if ply > maxDepth {
		return alpha
	}

	///  MATE DISTANCE PRUNING  ///

	if !pvNode {
		alpha = Max(alpha, -valueMate+ply)
		beta = Min(beta, valueMate-ply)

		if alpha >= beta {
			return alpha
		}
	}

	///  TRANSPOSITION TABLE  ///

	var entry = ctx.tt.Probe(b.ComputeHash())
	var tableMove = MoveNone
	if entry != nil {
		if int(entry.depth) >= depth && ply != 0 && (entry.isPVNode() || !pvNode) {
			var value = Value(entry.value)
			if isMateValue(value) {
				if value > valueMate-2*maxDepth {
					value -= ply
				} else if value < -valueMate+2*maxDepth {
					value += ply
				}
			}

			switch entry.boundType() {
			case boundExact:
				return value
			case boundAlpha:
				if value <= alpha {
					return alpha
				}
			case boundBeta:
				if value >= beta {
					return beta
				}
			}
		}

		tableMove = entry.move
	}

	///  PRUNINGS AND REDUCTIONS  ///

	var isInCheck = b.IsInCheck()
	if !pvNode && !isInCheck {
		var staticEval = ctx.evaluator.Evaluate(b)

		///  FUTILITY PRUNING  ///

		if depth <= 4 {
			var margin = futilityMargin[depth]

			if staticEval <= alpha-margin {
				return ctx.quiescence(pvNode, b, alpha, beta, ply, 0)
			}
			if staticEval >= beta+margin {
				return beta
			}
		}

		///  NULL MOVE  ///

		if staticEval >= beta &&
			depth >= minNullmoveDepth &&
			b.HasNonPawns(b.Side()) {
			var reduction = nullmoveDepthReductionBase +
				(depth-minNullmoveDepth)/nullmoveHighDepthDenominator +
				Max((staticEval-beta)/nullmoveBetaDifferenceDenominator, 0)

			b.MakeNullMove()
			var tmp = -ctx.search(false, b, -beta, -beta+1, depth-reduction, ply+1)
			b.UnmakeNullMove()

			if ctx.mustStop.Load() {
				return alpha
			}

			if tmp >= beta {
				if isMateValue(tmp) {
					tmp = beta
				}

				if depth >= minNullmoveVerificationDepth {
					// Verify at the same ply with the same reduced depth.
					var verification = ctx.search(false, b, beta-1, beta, depth-reduction, ply)
					if verification >= beta {
						return tmp
					}
				} else {
					return tmp
				}
			}
		}
	}

	///  INTERNAL ITERATIVE DEEPENING  ///

	if tableMove == MoveNone && depth > 6 {
		ctx.search(pvNode, b, alpha, beta, depth-6, ply)
		if len(ctx.pvs[ply]) != 0 {
			tableMove = ctx.pvs[ply][0]
		}
	}

	///  RECURSIVE SEARCH  ///

	var legalMovesCount = 0
	var quietMovesCount = 0
	var entryType = boundAlpha
	var bestMove = MoveNone

	var ss = &ctx.stacks[ply]
	ctx.stacks[ply+2].firstKiller = MoveNone
	ctx.stacks[ply+2].secondKiller = MoveNone

	var moves = &ctx.moveLists[ply]
	b.GenerateMoves(moves, AllMoves)

	var picker = newMovePicker(b, &ctx.history, moves, tableMove, ss)
	for picker.hasMore() {
		var m = picker.pick()
		if !b.IsLegal(m) {
			continue
		}

		legalMovesCount++

		var isQuiet = b.IsQuiet(m)
		if !pvNode && depth <= maxLowDepthSEEPruningDepth && !isInCheck && b.HasNonPawns(b.Side()) {

			///  LOW DEPTH SEE PRUNING  ///

			if b.SEE(m) <= -SimplifiedPieceValue[WhitePawn]*depth {
				continue // skip losing moves near the leaves
			}

			///  HISTORY LEAF PRUNING  ///

			if isQuiet {
				quietMovesCount++
				if quietMovesCount > lmrMinQuietsCount {
					var historySuccessRate = ctx.history.value(b.PieceOn(m.From()), m.To())
					if historySuccessRate < maxHistorySuccessRate[depth] && !b.GivesCheck(m) {
						continue
					}
				}
			}
		}

		if isQuiet && !isInCheck {
			ctx.history.addTry(b.PieceOn(m.From()), m.To(), depth)
		}

		ctx.nodes++
		b.MakeMove(m)

		///  LATE MOVE REDUCTIONS  ///

		var reduction = 0
		if depth >= minLMRDepth &&
			!isInCheck &&
			!b.IsInCheck() && // the move must not give check
			isQuiet {
			var historySuccessRate = ctx.history.value(b.PieceOn(m.To()), m.To())

			if historySuccessRate < lmrMaxHistorySuccessRate {
				quietMovesCount++
				if quietMovesCount > lmrMinQuietsCount {
					reduction = 1 +
						(depth-minLMRDepth)/lmrHighDepthDenominator +
						(quietMovesCount-lmrMinQuietsCount)/lmrManyQuietsDenominator

					if historySuccessRate > 50 {
						reduction--
					} else if historySuccessRate < 10 {
						reduction++
						if historySuccessRate < 2 {
							reduction++
						}
					}

					if reduction >= depth {
						reduction = depth - 1
					}
				}
			}
		}

		///  PRINCIPAL VARIATION SEARCH  ///

		var tmp Value
		if legalMovesCount == 1 {
			tmp = -ctx.search(pvNode, b, -beta, -alpha, depth-1, ply+1)
		} else {
			tmp = -ctx.search(false, b, -alpha-1, -alpha, depth-1-reduction, ply+1)
			if tmp > alpha && reduction != 0 { // the reduction was too optimistic
				tmp = -ctx.search(false, b, -alpha-1, -alpha, depth-1, ply+1)
			}
			if pvNode && tmp > alpha && tmp < beta {
				tmp = -ctx.search(true, b, -beta, -alpha, depth-1, ply+1)
			}
		}

		b.UnmakeMove(m)
		if ctx.mustStop.Load() {
			return alpha
		}

		///  ALPHA-BETA PRUNING  ///

		if tmp > alpha {
			alpha = tmp
			entryType = boundExact
			bestMove = m
			ctx.composePV(ply, m)
		} else if ply == 0 && legalMovesCount == 1 {
			// Keep a root main line even when the first move fails low.
			ctx.composePV(ply, m)
		}

		if alpha >= beta {
			if isQuiet && !isInCheck {
				ctx.history.addSuccess(b.PieceOn(m.From()), m.To(), depth)
				if ss.firstKiller != m {
					ss.secondKiller = ss.firstKiller
					ss.firstKiller = m
				}
			}

			entryType = boundBeta
			break
		}
	}

	if legalMovesCount == 0 {
		if b.IsInCheck() {
			alpha = -valueMate + ply // mate
		} else {
			alpha = 0 // stalemate
		}
	}

	var nodeTypeBit = entryNonPV
	if pvNode {
		nodeTypeBit = entryPV
	}
	ctx.tt.TryRecord(entryType|nodeTypeBit, b.ComputeHash(), bestMove, alpha, b.MoveCount(), depth, ply)

	return alpha
}

func (ctx *SearchContext) quiescence(pvNode bool, b *Board, alpha, beta Value, ply, qply int) Value {
	if ctx.mustStop.Load() {
		return alpha
	}

	if ctx.checkLimits() {
		return alpha
	}

	if pvNode {
		ctx.clearPV(ply)
	}

	if b.IsDraw(ply) {
		return 0
	}

	if ply > maxDepth {
		return alpha
	}

	var isInCheck = b.IsInCheck()
	var staticEval = ctx.evaluator.Evaluate(b)
	if !isInCheck {

		///  STANDING PAT  ///

		if staticEval >= beta {
			return staticEval
		}

		if staticEval > alpha {
			alpha = staticEval
		}
	}

	var legalMovesCount = 0

	var moves = &ctx.moveLists[ply]
	b.GenerateMoves(moves, Captures)
	if !isInCheck && qply < maxQplyForChecks {
		b.GenerateMoves(moves, QuietChecks)
	}

	var picker = newMovePicker(b, &ctx.history, moves, MoveNone, nil)
	for picker.hasMore() {
		var m = picker.pick()
		if !b.IsLegal(m) {
			continue
		}

		legalMovesCount++

		if !isInCheck && b.HasNonPawns(b.Side()) { // never prune in a pawn endgame

			///  DELTA PRUNING  ///

			// Even with the captured value and a surplus margin the move
			// cannot raise alpha. Promotions stay out of this.
			if m.Type() != Promotion {
				var captured = b.PieceOn(m.To())
				if m.Type() == Enpassant {
					captured = WhitePawn
				}

				if staticEval+SimplifiedPieceValue[captured]+deltaPruningMargin <= alpha &&
					!b.GivesCheck(m) {
					continue
				}
			}

			///  SEE PRUNING  ///

			if b.SEE(m) < 0 {
				continue
			}
		}

		ctx.nodes++
		b.MakeMove(m)
		var tmp = -ctx.quiescence(pvNode, b, -beta, -alpha, ply+1, qply+1)
		b.UnmakeMove(m)

		if ctx.mustStop.Load() {
			return alpha
		}

		if tmp > alpha {
			alpha = tmp

			if pvNode {
				ctx.composePV(ply, m)
			}
		}

		if alpha >= beta {
			break
		}
	}

	if legalMovesCount == 0 && b.IsInCheck() {
		return -valueMate + ply
	}

	return alpha
}
