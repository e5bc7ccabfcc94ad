package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"boardgame/config"
	"boardgame/experiments/metrics"
	"boardgame/game"

	"github.com/stretchr/testify/require"
)

func randomExperiment(gameName string) config.Experiment {
	e := config.Default()
	e.Name = "test"
	e.Game = gameName
	e.Games = 3
	e.Parallel = 2
	e.Agents = []metrics.AgentConfig{
		{ID: 1, Kind: metrics.RandomAgent},
		{ID: 2, Kind: metrics.RandomAgent},
		{ID: 3, Kind: metrics.SearchAgent, Episodes: 50},
	}
	e.MatchUps = [][2]int{{1, 2}, {3, 1}}
	return e
}

func TestRun(t *testing.T) {
	t.Run("plays every game of every matchup", func(t *testing.T) {
		result, err := Run(randomExperiment(config.TicTacToe))

		require.NoError(t, err)
		require.Len(t, result.Games, 6)
		require.Empty(t, result.Dir)
		for i, record := range result.Games {
			require.Equal(t, i+1, record.ID)
			require.True(t, record.Finished)
			require.Equal(t, game.PlayerA, record.StartingPlayer)
		}
		require.Equal(t, 1, result.Games[0].Agent1)
		require.Equal(t, 2, result.Games[0].Agent2)
		require.Equal(t, 3, result.Games[5].Agent1)
		require.Equal(t, 1, result.Games[5].Agent2)

		total := 0
		for _, record := range result.Games {
			total += record.TotalMoves
		}
		require.Len(t, result.Moves, total)
	})

	t.Run("is deterministic for random agents", func(t *testing.T) {
		e := randomExperiment(config.Connect4)
		e.MatchUps = [][2]int{{1, 2}}

		first, err := Run(e)
		require.NoError(t, err)
		second, err := Run(e)
		require.NoError(t, err)

		require.Equal(t, len(first.Moves), len(second.Moves))
		for i := range first.Moves {
			require.Equal(t, first.Moves[i].Move, second.Moves[i].Move)
		}
	})

	t.Run("caps games at max moves", func(t *testing.T) {
		e := randomExperiment(config.Connect4)
		e.MaxMoves = 5

		result, err := Run(e)

		require.NoError(t, err)
		for _, record := range result.Games {
			require.Equal(t, 5, record.TotalMoves)
			require.Equal(t, game.Draw(), record.Outcome)
		}
	})

	t.Run("writes records to the output directory", func(t *testing.T) {
		e := randomExperiment(config.TicTacToe)
		e.OutputDir = t.TempDir()

		result, err := Run(e)

		require.NoError(t, err)
		require.NotEmpty(t, result.Dir)
		for name, rows := range map[string]int{
			"agent_configs.csv": len(e.Agents),
			"game_records.csv":  len(result.Games),
			"move_records.csv":  len(result.Moves),
		} {
			f, err := os.Open(filepath.Join(result.Dir, name))
			require.NoError(t, err)
			records, err := csv.NewReader(f).ReadAll()
			f.Close()
			require.NoError(t, err)
			require.Len(t, records, rows+1, name)
		}
	})

	t.Run("rejects invalid experiments", func(t *testing.T) {
		e := randomExperiment(config.TicTacToe)
		e.Parallel = 0

		_, err := Run(e)
		require.ErrorContains(t, err, "parallel must be positive")
	})
}
