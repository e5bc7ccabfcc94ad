// Package experiments runs configured match-ups between agents and stores the records.
package experiments

import (
	"cmp"
	"fmt"
	"math"
	"sync"

	"boardgame/config"
	"boardgame/engine"
	"boardgame/experiments/metrics"
	"boardgame/game"
	"boardgame/games/connect4"
	"boardgame/games/maxmoves"
	"boardgame/games/tictactoe"
	"boardgame/player"
	"boardgame/symmetry"

	"github.com/rs/zerolog/log"
)

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Dir   string // Where the records were written, empty if they were not
}

// Run plays the experiment on the board named by e.Game.
func Run(e config.Experiment) (Result, error) {
	if err := e.Validate(); err != nil {
		return Result{}, err
	}
	switch e.Game {
	case config.Connect4:
		return RunWith[*connect4.Board, connect4.Move, symmetry.D1, string](e, connect4.New)
	default:
		return RunWith[*tictactoe.Board, tictactoe.Move, symmetry.D4, uint32](e, tictactoe.New)
	}
}

// RunWith plays every match-up of e on fresh boards from newBoard, capped at e.MaxMoves.
func RunWith[B game.SymmetricBoard[B, M, S, K], M game.Move, S symmetry.Symmetry[S], K cmp.Ordered](
	e config.Experiment, newBoard func() B,
) (Result, error) {
	capacity := e.MaxMoves
	if capacity == 0 {
		capacity = math.MaxUint64
	}

	type job struct {
		id     int
		agents [2]metrics.AgentConfig
	}
	var jobs []job
	for _, matchUp := range e.MatchUps {
		agent1, _ := e.Agent(matchUp[0])
		agent2, _ := e.Agent(matchUp[1])
		for i := 0; i < e.Games; i++ {
			jobs = append(jobs, job{id: len(jobs) + 1, agents: [2]metrics.AgentConfig{agent1, agent2}})
		}
	}

	log.Info().Str("experiment", e.Name).Str("game", e.Game).Int("games", len(jobs)).Msg("starting experiment")

	games := make([]metrics.GameRecord, len(jobs))
	moves := make([][]metrics.MoveRecord, len(jobs))
	sem := make(chan struct{}, e.Parallel)
	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()

			seed := e.Seed + uint64(j.id)<<1
			board := maxmoves.New[B, M, S, K](newBoard(), capacity)
			var local engine.Engine = engine.LocalEngine(board,
				player.FromConfig[*maxmoves.Board[B, M, S, K], M](j.agents[0], seed),
				player.FromConfig[*maxmoves.Board[B, M, S, K], M](j.agents[1], seed+1),
			)
			gameMetric, moveMetrics := local.Run()

			games[j.id-1] = metrics.GameRecord{
				ID:         j.id,
				Agent1:     j.agents[0].ID,
				Agent2:     j.agents[1].ID,
				GameMetric: gameMetric,
			}
			records := make([]metrics.MoveRecord, 0, len(moveMetrics))
			for _, mm := range moveMetrics {
				records = append(records, metrics.MoveRecord{Game: j.id, MoveMetric: mm})
			}
			moves[j.id-1] = records

			log.Debug().Int("game", j.id).Int("agent1", j.agents[0].ID).Int("agent2", j.agents[1].ID).
				Str("result", gameMetric.Result()).Int("moves", gameMetric.TotalMoves).Msg("completed game")
		}()
	}
	wg.Wait()

	result := Result{Games: games}
	for _, records := range moves {
		result.Moves = append(result.Moves, records...)
	}

	log.Info().Str("experiment", e.Name).Msg("completed experiment")

	if e.OutputDir == "" {
		return result, nil
	}
	dir, err := store(e, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	return result, nil
}

func store(e config.Experiment, result Result) (string, error) {
	writer, err := metrics.NewWriter(e.OutputDir, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(e.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored records")

	return writer.Dir(), nil
}
