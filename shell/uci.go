package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maestro-chess/maestro/common"
	"github.com/maestro-chess/maestro/engine"
)

func (s *Shell) uciCommand() {
	fmt.Printf("id name %v %v\n", EngineName, EngineVersion)
	fmt.Printf("id author %v\n", EngineAuthor)
	fmt.Printf("option name Hash type spin default %v min 1 max 1024\n",
		engine.DefaultTableSize/(1024*1024))
	fmt.Println("uciok")
}

func (s *Shell) handleUci(cmd string, args []string) {
	switch cmd {
	case "isready":
		fmt.Println("readyok")
	case "setoption":
		s.setOptionCommand(args)
	case "ucinewgame":
		s.search.NewGame()
		s.setBoard(common.InitialPositionFen)
	case "position":
		s.positionCommand(args)
	case "go":
		s.goCommand(args)
	case "stop":
		// Searches already drain stop through the message loop; a stray
		// stop between searches is a no-op.
	default:
		s.report("command not found")
	}
}

func (s *Shell) setOptionCommand(args []string) {
	if len(args) < 4 || args[0] != "name" {
		return
	}
	var name, value = args[1], args[3]
	if strings.EqualFold(name, "Hash") {
		if mb, err := strconv.Atoi(value); err == nil && mb >= 1 && mb <= 1024 {
			s.search = engine.NewSearchContextSize(mb * 1024 * 1024)
		}
	}
}

func (s *Shell) positionCommand(args []string) {
	if len(args) == 0 {
		return
	}

	var movesIndex = len(args)
	for i, arg := range args {
		if arg == "moves" {
			movesIndex = i
			break
		}
	}

	var fen string
	switch args[0] {
	case "startpos":
		fen = common.InitialPositionFen
	case "fen":
		fen = strings.Join(args[1:movesIndex], " ")
	default:
		s.report("wrong position command")
		return
	}

	s.setBoard(fen)
	if !s.positionOK {
		return
	}

	for _, smove := range args[common.Min(movesIndex+1, len(args)):] {
		var m = s.board.MakeMoveFromString(smove)
		if m == common.MoveNone {
			s.positionOK = false
			s.report("illegal move " + smove)
			return
		}
		s.applyMove(m)
	}
}

func (s *Shell) goCommand(args []string) {
	var limits = s.search.Limits
	limits.MakeInfinite()

	var wtime, btime, winc, binc, movestogo, movetime int64
	for i := 0; i < len(args); i++ {
		var next = func() int64 {
			if i+1 < len(args) {
				i++
				var n, _ = strconv.ParseInt(args[i], 10, 64)
				return n
			}
			return 0
		}
		switch args[i] {
		case "wtime":
			wtime = next()
		case "btime":
			btime = next()
		case "winc":
			winc = next()
		case "binc":
			binc = next()
		case "movestogo":
			movestogo = next()
		case "movetime":
			movetime = next()
		case "depth":
			limits.SetDepthLimit(int(next()))
		case "nodes":
			limits.SetNodesLimit(next())
		case "infinite":
			// already infinite
		}
	}

	var myTime, myInc = wtime, winc
	if s.board.Side() == common.Black {
		myTime, myInc = btime, binc
	}

	if movetime > 0 {
		limits.SetTimeLimitsInMs(0, 0, movetime)
		limits.Reset(movetime)
	} else if myTime > 0 {
		limits.SetTimeLimitsInMs(int(movestogo), myTime, myInc)
		limits.Reset(myTime)
	}

	s.startSearch()
}
