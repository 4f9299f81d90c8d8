package engine

import (
	. "github.com/maestro-chess/maestro/common"
)

const (
	maxDepth = 99

	valueInfinity Value = 31000
	valueMate     Value = 30000
	// A value normal evaluation cannot reach, used by the won-endgame paths.
	valueSureWin Value = 20000
)

func isMateValue(v Value) bool {
	return (v > valueMate-maxDepth*2 && v <= valueMate) ||
		(v < maxDepth*2-valueMate && v >= -valueMate)
}

// Full moves before giving the mate.
func givingMateIn(v Value) int {
	return (valueMate + 2 - v) / 2
}

// Full moves before getting mated.
func gettingMatedIn(v Value) int {
	return (v + valueMate + 1) / 2
}

// IsMateValue reports whether the value encodes a forced mate.
func IsMateValue(v Value) bool {
	return isMateValue(v)
}

// MateDistance converts a mate value to signed full moves: positive for
// giving the mate, negative for getting mated.
func MateDistance(v Value) int {
	if v < 0 {
		return -gettingMatedIn(v)
	}
	return givingMateIn(v)
}

// SearchResult is the outcome of one root search.
type SearchResult struct {
	Best  Move
	Value Value
}

// SearchInfo is the progress event published after every completed
// iteration.
type SearchInfo struct {
	Depth    int
	Nodes    int64
	Time     int64 // milliseconds
	Score    Value
	MainLine []Move
}
