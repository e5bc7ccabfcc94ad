package metrics

import (
	"sync/atomic"
	"time"

	"boardgame/game"
)

// SearchMetric summarizes one search. Every episode ends in a playout that either reaches an
// outcome (full) or stops at the cutoff.
type SearchMetric struct {
	Goroutines     int
	Duration       time.Duration
	Episodes       int
	Cutoff         int
	FullPlayouts   int
	CutoffPlayouts int
	PlayoutPlies   int // Random moves played over all playouts
}

// MeanPlayoutPlies returns the average playout length, 0 if there were no playouts.
func (s SearchMetric) MeanPlayoutPlies() float64 {
	playouts := s.FullPlayouts + s.CutoffPlayouts
	if playouts == 0 {
		return 0
	}
	return float64(s.PlayoutPlies) / float64(playouts)
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Outcome        game.Outcome
	Finished       bool // False if the game was stopped before an outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Result renders the outcome of the game, "unfinished" if there is none.
func (g GameMetric) Result() string {
	if !g.Finished {
		return "unfinished"
	}
	return g.Outcome.String()
}

type Collector interface {
	Start(goroutines, cutoff int)
	AddPlayout(plies int, full bool)
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	goroutines     int
	cutoff         int
	startTime      time.Time
	episodes       atomic.Int32
	fullPlayouts   atomic.Int32
	cutoffPlayouts atomic.Int32
	plies          atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(goroutines, cutoff int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.cutoffPlayouts.Store(0)
	m.plies.Store(0)
}

func (m *collector) AddPlayout(plies int, full bool) {
	m.plies.Add(int64(plies))
	if full {
		m.fullPlayouts.Add(1)
	} else {
		m.cutoffPlayouts.Add(1)
	}
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:     m.goroutines,
		Duration:       time.Since(m.startTime),
		Episodes:       int(m.episodes.Load()),
		Cutoff:         m.cutoff,
		FullPlayouts:   int(m.fullPlayouts.Load()),
		CutoffPlayouts: int(m.cutoffPlayouts.Load()),
		PlayoutPlies:   int(m.plies.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, cutoff int)    {}
func (m *dummyCollector) AddPlayout(plies int, full bool) {}
func (m *dummyCollector) AddEpisode()                     {}
func (m *dummyCollector) Complete() SearchMetric          { return SearchMetric{} }
