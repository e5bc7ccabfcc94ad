package searcher

import (
	"slices"
	"sync"

	"boardgame/game"
)

// decision is a tree node for the board reached by playing move from its parent.
// Rewards are tallied from the point of view of mover, the player who played move.
type decision[B game.Board[B, M], M game.Move] struct {
	sync.RWMutex
	parent     *decision[B, M]
	move       M
	mover      game.Player
	hash       game.StateHash
	unexplored []M
	explored   []M
	children   []*decision[B, M]
	rewards    float64
	visits     float64
}

func newDecision[B game.Board[B, M], M game.Move](parent *decision[B, M], move M, mover game.Player, board B) *decision[B, M] {
	var unexplored []M
	if !game.IsDone(board) {
		// Expand in descending order so that popping from the back explores moves in ascending order
		unexplored = slices.Sorted(board.AvailableMoves())
		slices.Reverse(unexplored)
	}

	return &decision[B, M]{
		parent:     parent,
		move:       move,
		mover:      mover,
		hash:       board.Hash(),
		unexplored: unexplored,
	}
}

// SelectOrExpand descends one level from d. It returns the expanded child, or the selected child when d
// is fully expanded by UCT with exploration cSquared, along with the board that child represents.
// A terminal node returns itself.
func (d *decision[B, M]) SelectOrExpand(board B, cSquared float64) (*decision[B, M], B, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.children) == 0 { // Terminal node
		return d, board, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		move := d.unexplored[len(d.unexplored)-1]
		d.unexplored = d.unexplored[:len(d.unexplored)-1]
		next := game.CloneAndPlay(board, move)

		child := newDecision(d, move, board.NextPlayer(), next)
		d.explored = append(d.explored, move)
		d.children = append(d.children, child)
		child.applyLoss()
		return child, next, false
	}

	// Fully expanded node
	child := d.children[d.pickChild(cSquared)]
	child.applyLoss()
	return child, game.CloneAndPlay(board, child.move), true
}

func (d *decision[B, M]) pickChild(cSquared float64) int {
	total := 0.0
	for _, child := range d.children {
		_, visits := child.stats()
		total += visits
	}
	return newUCT(cSquared, total).best(len(d.children), func(i int) (float64, float64) {
		return d.children[i].stats()
	})
}

func (d *decision[B, M]) stats() (rewards float64, visits float64) {
	d.RLock()
	defer d.RUnlock()

	return d.rewards, d.visits
}

// applyLoss records a temporary loss so that concurrent episodes spread over other children.
func (d *decision[B, M]) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision[B, M]) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

// Backup records the episode result and returns the parent to continue backing up.
func (d *decision[B, M]) Backup(result rollout) *decision[B, M] {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += result.score(d.mover)
	d.visits++

	return d.parent
}

// Policy returns the share of visits of each explored move.
func (d *decision[B, M]) Policy() map[M]float64 {
	d.RLock()
	defer d.RUnlock()

	total := 0.0
	for _, child := range d.children {
		_, visits := child.stats()
		total += visits
	}

	policy := make(map[M]float64, len(d.children))
	for i, child := range d.children {
		_, visits := child.stats()
		if total > 0 {
			policy[d.explored[i]] = visits / total
		}
	}
	return policy
}
