// Package tictactoe implements tic-tac-toe on a 3x3 grid with the full square symmetry group.
package tictactoe

import (
	"fmt"
	"iter"
	"strings"

	"boardgame/game"
	"boardgame/symmetry"

	"github.com/cespare/xxhash/v2"
)

const (
	Size  = 3
	Cells = Size * Size
)

// Move is the index of a cell, x + y*Size.
type Move uint8

// MoveAt returns the move for column x and row y.
func MoveAt(x, y int) Move {
	return Move(x + y*Size)
}

func (m Move) XY() (int, int) {
	return int(m) % Size, int(m) / Size
}

func (m Move) String() string {
	x, y := m.XY()
	return fmt.Sprintf("%c%d", 'a'+x, y+1)
}

type cell uint8

const (
	empty cell = iota
	markA
	markB
)

func markOf(p game.Player) cell {
	return cell(p.Index() + 1)
}

var lines = [8][3]Move{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

type Board struct {
	cells   [Cells]cell
	next    game.Player
	outcome game.Outcome
	done    bool
}

// New returns an empty board with PlayerA to move.
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
	var buf [Cells + 1]byte
	for i, c := range b.cells {
		buf[i] = byte(c)
	}
	buf[Cells] = byte(b.next)
	return game.StateHash(xxhash.Sum64(buf[:]))
}

func (b *Board) NextPlayer() game.Player {
	return b.next
}

func (b *Board) IsAvailableMove(mv Move) bool {
	game.AssertNotDone(b, "check move availability")
	return mv < Cells && b.cells[mv] == empty
}

func (b *Board) AvailableMoves() iter.Seq[Move] {
	game.AssertNotDone(b, "get available moves")
	return func(yield func(Move) bool) {
		for i, c := range b.cells {
			if c == empty && !yield(Move(i)) {
				return
			}
		}
	}
}

func (b *Board) AllPossibleMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for i := Move(0); i < Cells; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// RandomAvailableMove draws from the free cells counted in one pass over the grid.
func (b *Board) RandomAvailableMove(rng game.Rand) Move {
	game.AssertNotDone(b, "pick a random move")

	var free [Cells]Move
	n := 0
	for i, c := range b.cells {
		if c == empty {
			free[n] = Move(i)
			n++
		}
	}
	return free[rng.Intn(n)]
}

func (b *Board) Play(mv Move) {
	game.AssertNotDone(b, "play")
	game.Assert(b.IsAvailableMove(mv), b, "move %v is not available", mv)

	b.cells[mv] = markOf(b.next)
	if b.completesLine(mv) {
		b.outcome, b.done = game.WonBy(b.next), true
	} else if b.isFull() {
		b.outcome, b.done = game.Draw(), true
	}
	b.next = b.next.Other()
}

func (b *Board) completesLine(mv Move) bool {
	mark := b.cells[mv]
	for _, line := range lines {
		if line[0] != mv && line[1] != mv && line[2] != mv {
			continue
		}
		if b.cells[line[0]] == mark && b.cells[line[1]] == mark && b.cells[line[2]] == mark {
			return true
		}
	}
	return false
}

func (b *Board) isFull() bool {
	for _, c := range b.cells {
		if c == empty {
			return false
		}
	}
	return true
}

func (b *Board) Outcome() (game.Outcome, bool) {
	return b.outcome, b.done
}

// CanLoseAfterMove is false: a mark can only complete a line for the player placing it.
func (b *Board) CanLoseAfterMove() bool {
	return false
}

func (b *Board) Alternates() {}

func (b *Board) Map(sym symmetry.D4) *Board {
	mapped := *b
	for i, c := range b.cells {
		mapped.cells[b.MapMove(sym, Move(i))] = c
	}
	return &mapped
}

func (b *Board) MapMove(sym symmetry.D4, mv Move) Move {
	x, y := mv.XY()
	return MoveAt(sym.MapXY(x, y, Size))
}

// CanonicalKey reads the grid as a base 3 number, cell 0 being the most significant digit.
func (b *Board) CanonicalKey() uint32 {
	var key uint32
	for _, c := range b.cells {
		key = key*3 + uint32(c)
	}
	return key
}

// Cell returns the player owning the cell of mv, or false if it is empty.
func (b *Board) Cell(mv Move) (game.Player, bool) {
	switch b.cells[mv] {
	case markA:
		return game.PlayerA, true
	case markB:
		return game.PlayerB, true
	default:
		return 0, false
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := 0; x < Size; x++ {
			if p, ok := b.Cell(MoveAt(x, y)); ok {
				sb.WriteRune(p.Rune())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	if outcome, done := b.Outcome(); done {
		fmt.Fprintf(&sb, "outcome: %v", outcome)
	} else {
		fmt.Fprintf(&sb, "next: %v", b.next)
	}
	return sb.String()
}
