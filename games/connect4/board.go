// Package connect4 implements connect-four on the standard 7x6 grid, symmetric under a left-right mirror.
package connect4

import (
	"iter"
	"strconv"
	"strings"

	"boardgame/game"
	"boardgame/symmetry"

	"github.com/cespare/xxhash/v2"
)

const (
	Columns = 7
	Rows    = 6
	Connect = 4
)

// Move is the column a disc is dropped into.
type Move uint8

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

// Row 0 is the bottom of the grid.
type Board struct {
	grid    [Rows][Columns]uint8
	heights [Columns]uint8
	next    game.Player
	plies   uint8
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
	var buf [Rows*Columns + 1]byte
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			buf[r*Columns+c] = b.grid[r][c]
		}
	}
	buf[Rows*Columns] = byte(b.next)
	return game.StateHash(xxhash.Sum64(buf[:]))
}

func (b *Board) NextPlayer() game.Player {
	return b.next
}

func (b *Board) IsAvailableMove(mv Move) bool {
	game.AssertNotDone(b, "check move availability")
	return mv < Columns && b.heights[mv] < Rows
}

func (b *Board) AvailableMoves() iter.Seq[Move] {
	game.AssertNotDone(b, "get available moves")
	return func(yield func(Move) bool) {
		for c := Move(0); c < Columns; c++ {
			if b.heights[c] < Rows && !yield(c) {
				return
			}
		}
	}
}

func (b *Board) AllPossibleMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for c := Move(0); c < Columns; c++ {
			if !yield(c) {
				return
			}
		}
	}
}

func (b *Board) Play(mv Move) {
	game.AssertNotDone(b, "play")
	game.Assert(b.IsAvailableMove(mv), b, "column %v is not available", mv)

	row := int(b.heights[mv])
	b.grid[row][mv] = uint8(b.next.Index() + 1)
	b.heights[mv]++
	b.plies++

	if b.connects(row, int(mv)) {
		b.outcome, b.done = game.WonBy(b.next), true
	} else if b.plies == Rows*Columns {
		b.outcome, b.done = game.Draw(), true
	}
	b.next = b.next.Other()
}

// connects checks the four lines through (row, col) for Connect discs of the same player.
func (b *Board) connects(row, col int) bool {
	disc := b.grid[row][col]
	for _, dir := range [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}} {
		count := 1
		for _, sign := range [2]int{1, -1} {
			r, c := row+sign*dir[0], col+sign*dir[1]
			for r >= 0 && r < Rows && c >= 0 && c < Columns && b.grid[r][c] == disc {
				count++
				r, c = r+sign*dir[0], c+sign*dir[1]
			}
		}
		if count >= Connect {
			return true
		}
	}
	return false
}

func (b *Board) Outcome() (game.Outcome, bool) {
	return b.outcome, b.done
}

func (b *Board) CanLoseAfterMove() bool {
	return false
}

func (b *Board) Alternates() {}

func (b *Board) Map(sym symmetry.D1) *Board {
	mapped := *b
	for c := 0; c < Columns; c++ {
		to := sym.MapAxis(c, Columns)
		mapped.heights[to] = b.heights[c]
		for r := 0; r < Rows; r++ {
			mapped.grid[r][to] = b.grid[r][c]
		}
	}
	return &mapped
}

func (b *Board) MapMove(sym symmetry.D1, mv Move) Move {
	return Move(sym.MapAxis(int(mv), Columns))
}

// CanonicalKey spells the grid column by column, one digit per cell.
func (b *Board) CanonicalKey() string {
	var sb strings.Builder
	for c := 0; c < Columns; c++ {
		for r := 0; r < Rows; r++ {
			sb.WriteByte('0' + b.grid[r][c])
		}
	}
	return sb.String()
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		for c := 0; c < Columns; c++ {
			switch b.grid[r][c] {
			case 0:
				sb.WriteByte('.')
			case 1:
				sb.WriteRune(game.PlayerA.Rune())
			default:
				sb.WriteRune(game.PlayerB.Rune())
			}
		}
		sb.WriteByte('\n')
	}
	if outcome, done := b.Outcome(); done {
		sb.WriteString("outcome: " + outcome.String())
	} else {
		sb.WriteString("next: " + b.next.String())
	}
	return sb.String()
}
