// Package searcher implements Monte Carlo tree search over any game.Board,
// parallelized over a shared tree with virtual loss.
package searcher

import (
	"sync"
	"time"

	"boardgame/experiments/metrics"
	"boardgame/game"

	"golang.org/x/exp/rand"
)

// MaxCutoff is the default rollout depth, deep enough to finish the games in this module.
const MaxCutoff = 1000

type Option func(s *settings)

type settings struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	cSquared   float64
	seed       uint64
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(s *settings) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.cutoff = depth
		}
	}
}

// WithExploration sets the square of the UCT exploration constant.
func WithExploration(cSquared float64) Option {
	return func(s *settings) {
		if cSquared >= 0 {
			s.cSquared = cSquared
		}
	}
}

// WithSeed seeds the rollout generators. Goroutine i uses seed+i.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

type MCTS[B game.Board[B, M], M game.Move] struct {
	settings
	root *decision[B, M]
	runs uint64
}

func NewMCTS[B game.Board[B, M], M game.Move](options ...Option) *MCTS[B, M] {
	m := &MCTS[B, M]{ // Default values
		settings: settings{
			goroutines: 1,
			cutoff:     MaxCutoff,
			cSquared:   CSquared,
			seed:       uint64(time.Now().UnixNano()),
			metrics:    metrics.NewDummyCollector(),
		},
	}
	for _, option := range options {
		option(&m.settings)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from board and returns the share of root visits per move.
func (m *MCTS[B, M]) Simulate(board B) (map[M]float64, metrics.SearchMetric) {
	game.AssertNotDone(board, "search")

	m.root = newDecision(nil, *new(M), board.NextPlayer().Other(), board) // The root has no move

	// Run simulations to collect statistics
	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(board)
	} else {
		m.countdown(board)
	}
	metric := m.metrics.Complete()
	m.runs++

	return m.root.Policy(), metric
}

// FindMove searches from board and returns the most visited move, the smallest one on ties.
func (m *MCTS[B, M]) FindMove(board B) (M, metrics.SearchMetric) {
	policy, metric := m.Simulate(board)
	return bestMove(policy), metric
}

func bestMove[M game.Move](policy map[M]float64) M {
	var best M
	maxShare := -1.0
	for move, share := range policy {
		if share > maxShare || (share == maxShare && move < best) {
			maxShare = share
			best = move
		}
	}
	return best
}

func (m *MCTS[B, M]) rng(worker int) *rand.Rand {
	return rand.New(rand.NewSource(m.seed + m.runs<<16 + uint64(worker)))
}

func (m *MCTS[B, M]) iterate(board B) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				m.simulate(board, rng)
				m.metrics.AddEpisode()
			}
		}(m.rng(i))
	}

	wg.Wait()
}

func (m *MCTS[B, M]) countdown(board B) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(board, rng)
					m.metrics.AddEpisode()
				}
			}
		}(m.rng(i))
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS[B, M]) simulate(board B, rng *rand.Rand) {
	newNode, newBoard := selectThenExpand(m.root, board, m.cSquared)
	result := playout(newBoard, m.cutoff, rng, m.metrics)
	backup(newNode, result)
}

func selectThenExpand[B game.Board[B, M], M game.Move](root *decision[B, M], board B, cSquared float64) (*decision[B, M], B) {
	parent := root
	child, board, selected := parent.SelectOrExpand(board, cSquared)
	for selected && (child != parent) {
		parent = child
		child, board, selected = parent.SelectOrExpand(board, cSquared)
	}
	return child, board
}

type rollout struct {
	outcome game.Outcome
	done    bool // False if the playout stopped at the cutoff
}

func (r rollout) score(pov game.Player) float64 {
	return reward(r.outcome, r.done, pov)
}

func playout[B game.Board[B, M], M game.Move](board B, cutoff int, rng game.Rand, metrics metrics.Collector) rollout {
	if game.IsDone(board) { // Terminal node
		outcome, _ := board.Outcome()
		metrics.AddPlayout(0, true)
		return rollout{outcome: outcome, done: true}
	}

	board = board.Clone()
	depth := 0
	// Rollout till game over or for cutoff number of moves
	for !game.IsDone(board) && depth < cutoff {
		board.Play(game.RandomAvailableMove[M](board, rng)) // Random rollout policy
		depth++
	}

	outcome, done := board.Outcome()
	metrics.AddPlayout(depth, done)
	return rollout{outcome: outcome, done: done}
}

func backup[B game.Board[B, M], M game.Move](newNode *decision[B, M], result rollout) {
	node := newNode
	for node != nil {
		parent := node.Backup(result)
		node = parent
	}
}
