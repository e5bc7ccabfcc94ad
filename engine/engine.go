package engine

import "boardgame/experiments/metrics"

// MaxMoves stops a game that never reaches an outcome.
const MaxMoves = 10000

type Engine interface {
	// Run plays a game till there's an outcome or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
