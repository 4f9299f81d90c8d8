package engine

import (
	"testing"
	"time"
)

func TestDepthAndNodesLimits(t *testing.T) {
	var l = NewLimits()
	l.MakeInfinite()

	if l.IsDepthLimitBroken(maxDepth) {
		t.Error("infinite limits must allow the full depth")
	}
	if !l.IsDepthLimitBroken(maxDepth + 1) {
		t.Error("the depth cap still holds")
	}

	l.SetDepthLimit(7)
	if l.IsDepthLimitBroken(7) || !l.IsDepthLimitBroken(8) {
		t.Error("depth limit boundary")
	}

	l.SetNodesLimit(1000)
	if l.IsNodesLimitBroken(1000) || !l.IsNodesLimitBroken(1001) {
		t.Error("nodes limit boundary")
	}
}

func TestInfiniteIsNotBroken(t *testing.T) {
	var l = NewLimits()
	l.MakeInfinite()
	if l.IsSoftLimitBroken() || l.IsHardLimitBroken() {
		t.Error("infinite limits must never break")
	}
}

func TestExactTimePerMove(t *testing.T) {
	var l = NewLimits()
	l.SetTimeLimitsInMs(0, 0, 20)
	l.Reset(0)

	if l.IsHardLimitBroken() {
		t.Error("the hard break must lie in the future")
	}

	time.Sleep(40 * time.Millisecond)
	if !l.IsSoftLimitBroken() || !l.IsHardLimitBroken() {
		t.Error("both breaks must fire after the per-move budget")
	}
}

func TestConventionalBudget(t *testing.T) {
	var l = NewLimits()
	// 40 moves in one minute: a fresh reset must leave plenty of room.
	l.SetTimeLimits(40, 60, 0)
	l.Reset(60000)

	if l.IsSoftLimitBroken() || l.IsHardLimitBroken() {
		t.Error("a fresh conventional budget must not be broken")
	}

	l.AddMoves(1)
	l.AddMoves(-1)
	l.AddMoves(41) // wraps around the control
	l.Reset(60000)
	if l.IsHardLimitBroken() {
		t.Error("the budget must survive control wrap-around")
	}
}

func TestSelfPlayShrink(t *testing.T) {
	var l = NewLimits()
	l.SetTimeLimitsInMs(0, 0, 50)
	l.SetPlayingAgainstSelf(true)
	l.Reset(50)

	// The shrunken budget still respects the 100ms floor, so nothing
	// fires instantly.
	if l.IsHardLimitBroken() {
		t.Error("the floor must keep a minimal budget")
	}

	time.Sleep(120 * time.Millisecond)
	if !l.IsHardLimitBroken() {
		t.Error("the shrunken budget must fire quickly")
	}
}

func TestElapsed(t *testing.T) {
	var l = NewLimits()
	l.Reset(0)
	time.Sleep(25 * time.Millisecond)
	if ms := l.ElapsedMilliseconds(); ms < 20 {
		t.Error("elapsed milliseconds lag:", ms)
	}
	if cs := l.ElapsedCentiseconds(); cs < 2 {
		t.Error("elapsed centiseconds lag:", cs)
	}
}
