// Package onemove is the smallest possible game: the first move ends it.
// Playing 1 wins for the player to move, playing 2 is a draw.
package onemove

import (
	"iter"
	"strconv"

	"boardgame/game"
	"boardgame/symmetry"

	"github.com/cespare/xxhash/v2"
)

type Move uint8

const (
	Win Move = 1
	Tie Move = 2
)

var allMoves = []Move{Win, Tie}

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

type Board struct {
	next    game.Player
	outcome game.Outcome
	done    bool
}

func New() *Board {
	return &Board{next: game.PlayerA}
}

func (b *Board) Clone() *Board {
	next := *b
	return &next
}

func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

func (b *Board) Hash() game.StateHash {
	return game.StateHash(xxhash.Sum64String(b.String()))
}

func (b *Board) NextPlayer() game.Player {
	return b.next
}

func (b *Board) IsAvailableMove(mv Move) bool {
	game.AssertNotDone(b, "check move availability")
	return mv == Win || mv == Tie
}

func (b *Board) AvailableMoves() iter.Seq[Move] {
	return game.BruteforceMoves[Move](b)
}

func (b *Board) AllPossibleMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, mv := range allMoves {
			if !yield(mv) {
				return
			}
		}
	}
}

func (b *Board) Play(mv Move) {
	game.AssertNotDone(b, "play")
	game.Assert(b.IsAvailableMove(mv), b, "move %v is not available", mv)

	if mv == Win {
		b.outcome = game.WonBy(b.next)
	} else {
		b.outcome = game.Draw()
	}
	b.done = true
	b.next = b.next.Other()
}

func (b *Board) Outcome() (game.Outcome, bool) {
	return b.outcome, b.done
}

func (b *Board) CanLoseAfterMove() bool {
	return false
}

func (b *Board) Alternates() {}

func (b *Board) Map(symmetry.Unit) *Board {
	return b.Clone()
}

func (b *Board) MapMove(_ symmetry.Unit, mv Move) Move {
	return mv
}

func (b *Board) CanonicalKey() uint8 {
	return 0
}

func (b *Board) String() string {
	if b.done {
		return "onemove(" + b.outcome.String() + ")"
	}
	return "onemove(next=" + b.next.String() + ")"
}
