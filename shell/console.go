package shell

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/maestro-chess/maestro/common"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

var chessSymbols = [2][7]string{
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
}

func PrintBoard(b *common.Board) {
	for rank := common.Rank8; rank >= common.Rank1; rank-- {
		for file := common.FileA; file <= common.FileH; file++ {
			var piece = b.PieceOn(common.MakeSquare(file, rank))
			if piece == common.PieceNone {
				fmt.Print(". ")
			} else {
				fmt.Print(chessSymbols[piece.Color()][piece.Type()] + " ")
			}
		}
		fmt.Println()
	}
	fmt.Println("FEN: " + b.ToFEN())
}

func (s *Shell) handleConsole(cmd string, args []string) {
	switch cmd {
	case "help":
		fmt.Println("commands: d, fen, new, undo, go, st, sd, perft, eval, epd, setboard, uci, xboard, quit")
		fmt.Println("moves are entered in long algebraic: e2e4, e7e8q, 0-0")
	case "d", "display":
		PrintBoard(s.board)
	case "fen":
		fmt.Println(s.board.ToFEN())
	case "new":
		s.search.NewGame()
		s.setBoard(common.InitialPositionFen)
	case "setboard", "position":
		s.setBoard(strings.Join(args, " "))
	case "undo":
		if !s.undoMove() {
			fmt.Println("nothing to undo")
		}
	case "go":
		s.search.Limits.Reset(s.timeLeft)
		s.startSearch()
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
	case "perft":
		var depth = 5
		if len(args) > 0 {
			depth, _ = strconv.Atoi(args[0])
		}
		if depth < 1 {
			depth = 1
		} else if depth > 9 {
			depth = 9
		}
		var start = time.Now()
		var nodes = s.search.Perft(s.board, depth)
		fmt.Printf("perft %v: %v nodes in %v\n", depth, nodes, time.Since(start))
	case "eval":
		fmt.Printf("%v cp\n", s.search.Evaluate(s.board))
	case "epd":
		var filePath = "tests.epd"
		if len(args) > 0 {
			filePath = args[0]
		}
		var moveTime int64 = 3000
		if len(args) > 1 {
			moveTime, _ = strconv.ParseInt(args[1], 10, 64)
		}
		s.runEpdTest(filePath, moveTime)
	default:
		if !s.positionOK {
			fmt.Println("Illegal position: set a new one first")
			return
		}
		if m := s.board.MakeMoveFromString(cmd); m != common.MoveNone {
			s.applyMove(m)
			s.announceResult()
			if s.board.ComputeGameResult() == common.GameUnfinished {
				s.search.Limits.Reset(s.timeLeft)
				s.startSearch()
			}
		} else {
			fmt.Printf("Illegal move or unknown command: %v\n", cmd)
		}
	}
}
