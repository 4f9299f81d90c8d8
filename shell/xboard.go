package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maestro-chess/maestro/common"
)

func (s *Shell) handleXboard(cmd string, args []string) {
	switch cmd {
	case "protover":
		fmt.Printf("feature myname=\"%v %v\"\n", EngineName, EngineVersion)
		fmt.Println("feature setboard=1 usermove=1 colors=0 time=1 reuse=1 sigint=0 sigterm=0 analyze=0 variants=\"normal\" done=1")
	case "new":
		s.search.NewGame()
		s.setBoard(common.InitialPositionFen)
		s.forceMode = false
	case "force":
		s.forceMode = true
	case "go":
		s.forceMode = false
		s.thinkXboard()
	case "level":
		s.levelCommand(args)
	case "st":
		if len(args) > 0 {
			var seconds, _ = strconv.ParseInt(args[0], 10, 64)
			s.search.Limits.SetTimeLimits(0, 0, seconds)
		}
	case "sd":
		if len(args) > 0 {
			var depth, _ = strconv.Atoi(args[0])
			s.search.Limits.SetDepthLimit(depth)
		}
	case "time":
		if len(args) > 0 {
			var centiseconds, _ = strconv.ParseInt(args[0], 10, 64)
			s.timeLeft = centiseconds * 10
		}
	case "otim":
		// the opponent's clock is not used
	case "setboard":
		s.setBoard(strings.Join(args, " "))
	case "usermove":
		if len(args) > 0 {
			s.userMove(args[0])
		}
	case "undo":
		s.undoMove()
	case "remove":
		s.undoMove()
		s.undoMove()
	case "post":
		s.postMode = true
	case "nopost":
		// TODO: nopost should disable posting
		s.postMode = true
	case "name":
		// Shrunken time budgets when the engine plays itself, a
		// self-play game would otherwise deadlock on the clock.
		s.search.Limits.SetPlayingAgainstSelf(
			strings.Contains(strings.Join(args, " "), EngineName))
	case "result", "computer", "accepted", "rejected", "random", "hard", "easy", "white", "black":
		// accepted and ignored
	default:
		// Bare moves arrive without the usermove prefix from old GUIs.
		if m := s.board.MakeMoveFromString(cmd); s.positionOK && m != common.MoveNone {
			s.applyMoveAndThink(m)
		} else {
			fmt.Printf("Error (unknown command): %v\n", cmd)
		}
	}
}

func (s *Shell) levelCommand(args []string) {
	if len(args) < 3 {
		return
	}
	var control, _ = strconv.Atoi(args[0])
	var base int64
	if sep := strings.IndexByte(args[1], ':'); sep >= 0 {
		var minutes, _ = strconv.ParseInt(args[1][:sep], 10, 64)
		var seconds, _ = strconv.ParseInt(args[1][sep+1:], 10, 64)
		base = minutes*60 + seconds
	} else {
		var minutes, _ = strconv.ParseInt(args[1], 10, 64)
		base = minutes * 60
	}
	var inc, _ = strconv.ParseInt(args[2], 10, 64)
	s.search.Limits.SetTimeLimits(control, base, inc)
}

func (s *Shell) userMove(smove string) {
	if !s.positionOK {
		fmt.Println("Illegal position: set a new one first")
		return
	}
	var m = s.board.MakeMoveFromString(smove)
	if m == common.MoveNone {
		fmt.Printf("Illegal move: %v\n", smove)
		return
	}
	s.applyMoveAndThink(m)
}

func (s *Shell) applyMoveAndThink(m common.Move) {
	s.applyMove(m)
	s.announceResult()
	if !s.forceMode && s.board.ComputeGameResult() == common.GameUnfinished {
		s.thinkXboard()
	}
}

func (s *Shell) thinkXboard() {
	s.search.Limits.Reset(s.timeLeft)
	s.startSearch()
}
