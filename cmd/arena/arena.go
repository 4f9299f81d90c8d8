package main

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/maestro-chess/maestro/common"
	"github.com/maestro-chess/maestro/engine"
)

func run(ctx context.Context, games int, moveTimeMs int64, concurrency int) error {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"concurrency", concurrency)

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		for i := 0; i < games; i++ {
			var info = gameInfo{
				number:     i,
				openingFen: openings[i%len(openings)],
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- info:
			}
		}
		return nil
	})

	var done = make(chan struct{})
	g.Go(func() error {
		defer close(done)
		var score = make(map[common.GameResult]int)
		for res := range gameResults {
			score[res.result]++
			log.Printf("game %v: %v in %v moves", res.number, res.result, res.moves)
		}
		log.Printf("white %v, black %v, drawn %v",
			score[common.WhiteWon], score[common.BlackWon], score[common.GameDrawn])
		return nil
	})

	var players = make(chan struct{}, concurrency)
	for i := 0; i < concurrency; i++ {
		players <- struct{}{}
	}

	g.Go(func() error {
		defer close(gameResults)
		var playersGroup, ctx = errgroup.WithContext(ctx)
		for info := range gameInfos {
			var info = info
			<-players
			playersGroup.Go(func() error {
				defer func() { players <- struct{}{} }()
				var res, err = playGame(ctx, moveTimeMs, info)
				if err != nil {
					return err
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case gameResults <- res:
				}
				return nil
			})
		}
		return playersGroup.Wait()
	})

	var err = g.Wait()
	<-done
	return err
}

// playGame runs one self-play game at a fixed time per move.
func playGame(ctx context.Context, moveTimeMs int64, info gameInfo) (gameResult, error) {
	var board, err = common.NewBoardFromFEN(info.openingFen)
	if err != nil {
		return gameResult{}, fmt.Errorf("bad opening %v: %w", info.openingFen, err)
	}

	var search = engine.NewSearchContextSize(16 * 1024 * 1024)
	search.Limits.SetTimeLimitsInMs(0, 0, moveTimeMs)

	var moves = 0
	for board.ComputeGameResult() == common.GameUnfinished {
		select {
		case <-ctx.Done():
			return gameResult{}, ctx.Err()
		default:
		}

		// Ply cap so a shuffling game cannot run forever.
		if moves >= 500 {
			break
		}

		search.Limits.Reset(moveTimeMs)
		var result = search.RootSearch(board)
		if result.Best == common.MoveNone {
			break
		}
		board.MakeMove(result.Best)
		moves++
	}

	return gameResult{
		number: info.number,
		result: board.ComputeGameResult(),
		moves:  moves,
	}, nil
}

var openings = []string{
	common.InitialPositionFen,
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
	"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq - 0 1",
	"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq - 0 1",
	"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
	"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
	"rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 2",
}
