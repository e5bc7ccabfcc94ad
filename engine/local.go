package engine

import (
	"time"

	"boardgame/experiments/metrics"
	"boardgame/game"
	"boardgame/player"

	"github.com/rs/zerolog/log"
)

// Local plays a game in process between two agents, indexed by the player they control.
type Local[B game.Board[B, M], M game.Move] struct {
	Board  B
	Agents [2]player.Agent[B, M]
}

func LocalEngine[B game.Board[B, M], M game.Move](board B, agentA, agentB player.Agent[B, M]) *Local[B, M] {
	game.AssertNotDone(board, "start a game")
	return &Local[B, M]{
		Board:  board,
		Agents: [2]player.Agent[B, M]{agentA, agentB},
	}
}

// Run executes the game loop on e.Board until it is done.
func (e *Local[B, M]) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.NextPlayer(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %v is starting", gameMetric.StartingPlayer)

	// Loop until there's an outcome
	step := 1
	for !game.IsDone(e.Board) && step <= MaxMoves {
		current := e.Board.NextPlayer()
		move, searchMetric := e.Agents[current.Index()].FindMove(e.Board)
		game.Assert(e.Board.IsAvailableMove(move), e.Board, "agent for player %v chose unavailable move %v", current, move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       current,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})

		e.Board.Play(move)
		log.Trace().Int("step", step).Stringer("player", current).Stringer("move", move).Send()
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Outcome, gameMetric.Finished = e.Board.Outcome()

	if gameMetric.Finished {
		log.Debug().Msgf("game over after %d moves: %v", gameMetric.TotalMoves, gameMetric.Outcome)
	} else {
		log.Warn().Msgf("stopped after %d moves without an outcome", gameMetric.TotalMoves)
	}

	return gameMetric, moveMetrics
}
