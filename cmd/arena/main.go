package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/maestro-chess/maestro/common"
)

// A small self-play arena: the engine plays itself over a set of opening
// positions, game i starting from opening i modulo the number of openings.

type gameInfo struct {
	number     int
	openingFen string
}

type gameResult struct {
	number int
	result common.GameResult
	moves  int
}

func main() {
	var games = flag.Int("games", 10, "number of games to play")
	var moveTimeMs = flag.Int64("movetime", 100, "milliseconds per move")
	var concurrency = flag.Int("concurrency", runtime.NumCPU(), "concurrent games")
	flag.Parse()

	var err = run(context.Background(), *games, *moveTimeMs, *concurrency)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
