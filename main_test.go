package main

import (
	"os"
	"path/filepath"
	"testing"

	"boardgame/experiments/metrics"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func TestParseAgents(t *testing.T) {
	t.Run("random and search", func(t *testing.T) {
		configs, err := parseAgents([]string{"random", "mcts:200"})

		require.NoError(t, err)
		require.Equal(t, []metrics.AgentConfig{
			{ID: 1, Kind: metrics.RandomAgent},
			{ID: 2, Kind: metrics.SearchAgent, Episodes: 200},
		}, configs)
	})

	t.Run("wrong count", func(t *testing.T) {
		_, err := parseAgents([]string{"random"})
		require.ErrorContains(t, err, "expected 2 agents, got 1")
	})

	t.Run("bad episodes", func(t *testing.T) {
		_, err := parseAgents([]string{"random", "mcts:many"})
		require.ErrorContains(t, err, `invalid episodes for agent "mcts:many"`)
	})
}

func TestCommands(t *testing.T) {
	t.Run("play", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetArgs([]string{"play", "--log-level", "warn", "--games", "2", "--agent", "random,mcts:20"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("experiment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "experiment.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: cli\ngame: connect4\ngames: 1\n"), 0644))

		cmd := rootCmd()
		cmd.SetArgs([]string{"experiment", "--log-level", "warn", "--config", path})
		require.NoError(t, cmd.Execute())
	})

	t.Run("init then experiment", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		xdg.Reload()
		t.Cleanup(xdg.Reload)

		cmd := rootCmd()
		cmd.SetArgs([]string{"init", "--log-level", "warn"})
		require.NoError(t, cmd.Execute())
		require.FileExists(t, filepath.Join(xdg.ConfigHome, "boardgame", "experiment.yaml"))

		cmd = rootCmd()
		cmd.SetArgs([]string{"experiment", "--log-level", "warn"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetArgs([]string{"play", "--log-level", "loud"})
		require.Error(t, cmd.Execute())
	})

	t.Run("unknown game", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetArgs([]string{"play", "--log-level", "warn", "--game", "chess"})
		require.ErrorContains(t, cmd.Execute(), `unknown game "chess"`)
	})
}
