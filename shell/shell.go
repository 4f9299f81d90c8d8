package shell

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/maestro-chess/maestro/common"
	"github.com/maestro-chess/maestro/engine"
)

const (
	EngineName    = "Maestro"
	EngineVersion = "1.0.0"
	EngineAuthor  = "D. Ostapenko"
)

type protocolMode int

const (
	modeConsole protocolMode = iota
	modeUCI
	modeXboard
)

// Shell is the thin dispatcher over the engine: it owns the board, the
// search context and the command loop for the console and the two
// protocol dialects. Commands arriving during a search that cannot be
// handled immediately are queued for after it.
type Shell struct {
	board  *common.Board
	search *engine.SearchContext

	mode       protocolMode
	postMode   bool
	forceMode  bool
	positionOK bool
	searching  bool

	timeLeft int64 // milliseconds, from the protocol clock
	played   []common.Move
	pending  []string

	messages chan interface{}
}

func New() *Shell {
	var board, _ = common.NewBoardFromFEN(common.InitialPositionFen)
	return &Shell{
		board:      board,
		search:     engine.NewSearchContext(),
		postMode:   true,
		positionOK: true,
		messages:   make(chan interface{}),
	}
}

// Run reads commands from stdin and serves them from a message loop,
// the teacher pattern for keeping the search responsive to stop/quit.
func (s *Shell) Run() {
	fmt.Printf("%v %v\n", EngineName, EngineVersion)

	var done = make(chan struct{})
	go func() {
		defer close(done)
		for msg := range s.messages {
			switch msg := msg.(type) {
			case string:
				if s.handleLine(msg) {
					return
				}
			case engine.SearchInfo:
				s.printSearchInfo(msg)
			case engine.SearchResult:
				if s.finishSearch(msg) {
					return
				}
			}
		}
	}()

	var scanner = bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s.messages <- line
		if line == "quit" || line == "exit" {
			break
		}
	}
	<-done
}

// handleLine dispatches one command, returning true to terminate.
func (s *Shell) handleLine(line string) bool {
	var fields = strings.Fields(line)
	var cmd = fields[0]
	var args = fields[1:]

	if s.searching {
		switch cmd {
		case "quit", "exit":
			s.search.Stop()
			return true
		case "stop", "?":
			s.search.Stop()
		default:
			s.pending = append(s.pending, line)
		}
		return false
	}

	switch cmd {
	case "quit", "exit":
		return true
	case "uci":
		s.mode = modeUCI
		s.uciCommand()
		return false
	case "xboard":
		s.mode = modeXboard
		fmt.Println()
		return false
	}

	switch s.mode {
	case modeUCI:
		s.handleUci(cmd, args)
	case modeXboard:
		s.handleXboard(cmd, args)
	default:
		s.handleConsole(cmd, args)
	}
	return false
}

// startSearch launches the search goroutine; the results come back
// through the message loop.
func (s *Shell) startSearch() {
	if !s.positionOK {
		s.report("illegal position, set a new one first")
		return
	}

	s.searching = true
	var post = s.postMode // read once, the callback runs on the search goroutine
	s.search.Progress = func(si engine.SearchInfo) {
		if post {
			s.messages <- si
		}
	}

	go func() {
		s.messages <- s.search.RootSearch(s.board)
	}()
}

func (s *Shell) finishSearch(result engine.SearchResult) bool {
	s.searching = false

	switch s.mode {
	case modeUCI:
		fmt.Printf("bestmove %v\n", result.Best)
	case modeXboard:
		if result.Best != common.MoveNone {
			s.applyMove(result.Best)
			s.search.Limits.AddMoves(1)
			fmt.Printf("move %v\n", result.Best)
			s.announceResult()
		}
	default:
		if result.Best != common.MoveNone {
			s.applyMove(result.Best)
			fmt.Printf("my move: %v\n", result.Best)
			PrintBoard(s.board)
			s.announceResult()
		}
	}

	var pending = s.pending
	s.pending = nil
	for _, line := range pending {
		if s.handleLine(line) {
			return true
		}
	}
	return false
}

func (s *Shell) announceResult() {
	if result := s.board.ComputeGameResult(); result != common.GameUnfinished {
		fmt.Printf("%v\n", result)
	}
}

func (s *Shell) applyMove(m common.Move) {
	s.board.MakeMove(m)
	s.played = append(s.played, m)
}

func (s *Shell) undoMove() bool {
	if len(s.played) == 0 {
		return false
	}
	s.board.UnmakeMove(s.played[len(s.played)-1])
	s.played = s.played[:len(s.played)-1]
	return true
}

func (s *Shell) setBoard(fen string) {
	var board, err = common.NewBoardFromFEN(fen)
	if err != nil {
		s.positionOK = false
		s.report(err.Error())
		return
	}
	s.board = board
	s.played = nil
	s.positionOK = true
}

// report prints a diagnostic in the dialect the GUI understands.
func (s *Shell) report(message string) {
	if s.mode == modeUCI {
		fmt.Println("info string " + message)
	} else {
		fmt.Println("# " + message)
	}
}

func (s *Shell) printSearchInfo(si engine.SearchInfo) {
	var line strings.Builder
	for i, m := range si.MainLine {
		if i > 0 {
			line.WriteString(" ")
		}
		line.WriteString(m.String())
	}

	if s.mode == modeUCI {
		var score string
		if engine.IsMateValue(si.Score) {
			score = fmt.Sprintf("mate %v", engine.MateDistance(si.Score))
		} else {
			score = fmt.Sprintf("cp %v", si.Score)
		}
		fmt.Printf("info depth %v nodes %v time %v score %v pv %v\n",
			si.Depth, si.Nodes, si.Time, score, line.String())
	} else {
		fmt.Printf("%v %v %v %v %v\n",
			si.Depth, si.Score, si.Time/10, si.Nodes, line.String())
	}
}
