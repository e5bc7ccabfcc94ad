package game

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Player is one of the two players of a game.
type Player uint8

const (
	PlayerA Player = iota
	PlayerB
)

// Players lists both players in index order.
var Players = [2]Player{PlayerA, PlayerB}

// Other returns the opponent of p.
func (p Player) Other() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		panic(fmt.Sprintf("invalid player %d", uint8(p)))
	}
}

// Index returns 0 for PlayerA and 1 for PlayerB.
func (p Player) Index() int {
	return int(p)
}

func (p Player) Rune() rune {
	switch p {
	case PlayerA:
		return 'A'
	case PlayerB:
		return 'B'
	default:
		return '?'
	}
}

func (p Player) String() string {
	return string(p.Rune())
}

// Sign returns +1 if p is pov and -1 otherwise.
func Sign[V constraints.Signed | constraints.Float](p, pov Player) V {
	if p == pov {
		return 1
	}
	return -1
}

type outcomeKind uint8

const (
	wonBy outcomeKind = iota + 1
	draw
)

// Outcome is the absolute result of a finished game: a win for one player or a draw.
// The zero value is not a valid outcome; use WonBy or Draw.
type Outcome struct {
	kind   outcomeKind
	winner Player
}

// WonBy returns the outcome where p won.
func WonBy(p Player) Outcome {
	return Outcome{kind: wonBy, winner: p}
}

// Draw returns the drawn outcome.
func Draw() Outcome {
	return Outcome{kind: draw}
}

// Winner returns the winning player, or false for a draw.
func (o Outcome) Winner() (Player, bool) {
	if o.kind == wonBy {
		return o.winner, true
	}
	return 0, false
}

func (o Outcome) IsDraw() bool {
	return o.kind == draw
}

// PovScore scores the outcome from the point of view of pov: 1 for a win, 0 for a draw and -1 for a loss.
func (o Outcome) PovScore(pov Player) float64 {
	switch o.kind {
	case wonBy:
		return Sign[float64](o.winner, pov)
	case draw:
		return 0
	default:
		panic("invalid outcome")
	}
}

func (o Outcome) String() string {
	switch o.kind {
	case wonBy:
		return fmt.Sprintf("WonBy(%v)", o.winner)
	case draw:
		return "Draw"
	default:
		return "Invalid"
	}
}
