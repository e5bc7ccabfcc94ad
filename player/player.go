// Package player provides the agents that choose moves during a game.
package player

import (
	"boardgame/experiments/metrics"
	"boardgame/game"
	"boardgame/searcher"

	"golang.org/x/exp/rand"
)

type Agent[B game.Board[B, M], M game.Move] interface {
	// FindMove returns the move to play on board and the search metrics, if any were collected.
	FindMove(board B) (M, metrics.SearchMetric)
}

type random[B game.Board[B, M], M game.Move] struct {
	rng *rand.Rand
}

// NewRandom returns an agent playing uniformly random available moves.
func NewRandom[B game.Board[B, M], M game.Move](seed uint64) Agent[B, M] {
	return &random[B, M]{rng: rand.New(rand.NewSource(seed))}
}

func (a *random[B, M]) FindMove(board B) (M, metrics.SearchMetric) {
	return game.RandomAvailableMove[M](board, a.rng), metrics.SearchMetric{}
}

type search[B game.Board[B, M], M game.Move] struct {
	mcts *searcher.MCTS[B, M]
}

// NewSearch returns an agent playing the most visited move of an MCTS search.
func NewSearch[B game.Board[B, M], M game.Move](mcts *searcher.MCTS[B, M]) Agent[B, M] {
	return search[B, M]{mcts: mcts}
}

func (a search[B, M]) FindMove(board B) (M, metrics.SearchMetric) {
	return a.mcts.FindMove(board)
}

// FromConfig builds the agent described by config, seeding its randomness with seed.
func FromConfig[B game.Board[B, M], M game.Move](config metrics.AgentConfig, seed uint64) Agent[B, M] {
	switch config.Kind {
	case metrics.SearchAgent:
		options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}
		if config.Goroutines > 0 {
			options = append(options, searcher.WithGoroutines(config.Goroutines))
		}
		if config.Episodes > 0 {
			options = append(options, searcher.WithEpisodes(config.Episodes))
		}
		if config.Duration > 0 {
			options = append(options, searcher.WithDuration(config.Duration))
		}
		if config.Cutoff > 0 {
			options = append(options, searcher.WithCutoff(config.Cutoff))
		}
		if config.Exploration > 0 {
			options = append(options, searcher.WithExploration(config.Exploration))
		}
		return NewSearch(searcher.NewMCTS[B, M](options...))
	default:
		return NewRandom[B, M](seed)
	}
}
