package main

import (
	"fmt"
	"strings"

	chess "github.com/corentings/chess/v2"

	"github.com/maestro-chess/maestro/common"
	"github.com/maestro-chess/maestro/engine"
)

// moveAnalysis is the per-move verdict: the engine's evaluation of the
// position the move was played from and what it would have played
// there. The played move itself is not searched. Scores are centipawns
// from white's point of view; mates collapse into large values.
type moveAnalysis struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"`
	MoveText   string `json:"moveText"`
	Score      int    `json:"score"`
	IsMate     bool   `json:"isMate"`
	BestMove   string `json:"bestMove"`
	IsBestMove bool   `json:"isBestMove"`
	Error      string `json:"error,omitempty"`
}

func analyzeGame(pgn string, depth int) ([]moveAnalysis, error) {
	var results []moveAnalysis
	for result := range analyzeGameStreaming(pgn, depth) {
		if result.Error != "" {
			return nil, fmt.Errorf("%v", result.Error)
		}
		results = append(results, result)
	}
	return results, nil
}

// analyzeGameStreaming replays the PGN mainline and sends one analysis
// per move as it completes.
func analyzeGameStreaming(pgn string, depth int) <-chan moveAnalysis {
	var results = make(chan moveAnalysis)

	go func() {
		defer close(results)

		var pgnOpt, err = chess.PGN(strings.NewReader(pgn))
		if err != nil {
			results <- moveAnalysis{Error: fmt.Sprintf("error parsing pgn: %v", err)}
			return
		}

		var game = chess.NewGame(pgnOpt)
		var moves = game.Moves()
		var positions = game.Positions()

		var search = engine.NewSearchContextSize(16 * 1024 * 1024)

		for i := 0; i < len(moves) && i+1 < len(positions); i++ {
			var moveUci = chess.UCINotation{}.Encode(positions[i], moves[i])

			var analysis = moveAnalysis{
				MoveNumber: i/2 + 1,
				Color:      "White",
				MoveText:   chess.AlgebraicNotation{}.Encode(positions[i], moves[i]),
			}
			if i%2 == 1 {
				analysis.Color = "Black"
			}

			// The engine searches the position before the move; the best
			// move found is the recommendation and its value is the score.
			board, err := common.NewBoardFromFEN(positions[i].String())
			if err != nil {
				analysis.Error = fmt.Sprintf("bad position in game: %v", err)
				results <- analysis
				return
			}

			search.Limits.MakeInfinite()
			search.Limits.SetDepthLimit(depth)
			var best = search.RootSearch(board)

			analysis.BestMove = best.Best.String()
			analysis.IsBestMove = analysis.BestMove == moveUci
			analysis.IsMate = engine.IsMateValue(best.Value)

			// RootSearch scores from the side to move; flip for black.
			analysis.Score = best.Value
			if board.Side() == common.Black {
				analysis.Score = -analysis.Score
			}

			results <- analysis
		}
	}()

	return results
}
