package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"boardgame/config"
	"boardgame/experiments"
	"boardgame/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:          "boardgame",
		Short:        "Play two-player board games between search and random agents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := zerolog.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			zerolog.SetGlobalLevel(l)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "info", "trace, debug, info, warn or error")
	root.AddCommand(playCmd(), experimentCmd(), initCmd())
	return root
}

func playCmd() *cobra.Command {
	e := config.Default()
	e.Name = "play"
	var agents []string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play games between two agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := parseAgents(agents)
			if err != nil {
				return err
			}
			e.Agents = configs
			e.MatchUps = [][2]int{{configs[0].ID, configs[1].ID}}
			return run(e)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&e.Game, "game", e.Game, "tictactoe or connect4")
	flags.IntVar(&e.Games, "games", e.Games, "number of games to play")
	flags.Uint64Var(&e.MaxMoves, "max-moves", e.MaxMoves, "draw after this many moves, 0 for no cap")
	flags.IntVar(&e.Parallel, "parallel", e.Parallel, "games played at the same time")
	flags.Uint64Var(&e.Seed, "seed", e.Seed, "seed for the agents")
	flags.StringVar(&e.OutputDir, "out", "", "directory for the CSV records")
	flags.StringSliceVar(&agents, "agent", []string{"random", "mcts:1000"}, "agents for A and B: random or mcts:<episodes>")
	return cmd
}

func experimentCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run the match-ups of an experiment config",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := config.Find()
			if path != "" {
				e, err = config.Load(path)
			}
			if err != nil {
				return err
			}
			return run(e)
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "path to the experiment config, defaults to the one in the user config directory")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default experiment config to the user config directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Save(config.Default())
			if err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("wrote default config")
			return nil
		},
	}
}

func run(e config.Experiment) error {
	result, err := experiments.Run(e)
	if err != nil {
		return err
	}

	results := map[string]int{}
	for _, record := range result.Games {
		results[record.Result()]++
	}
	for r, n := range results {
		fmt.Printf("%s: %d\n", r, n)
	}
	if result.Dir != "" {
		fmt.Printf("records: %s\n", result.Dir)
	}
	return nil
}

// parseAgents reads two agents of the form random or mcts:<episodes>.
func parseAgents(values []string) ([]metrics.AgentConfig, error) {
	if len(values) != 2 {
		return nil, fmt.Errorf("expected 2 agents, got %d", len(values))
	}
	configs := make([]metrics.AgentConfig, 0, 2)
	for i, value := range values {
		kind, episodes, _ := strings.Cut(value, ":")
		config := metrics.AgentConfig{ID: i + 1, Kind: metrics.AgentKind(kind)}
		if episodes != "" {
			n, err := strconv.Atoi(episodes)
			if err != nil {
				return nil, fmt.Errorf("invalid episodes for agent %q: %w", value, err)
			}
			config.Episodes = n
		}
		configs = append(configs, config)
	}
	return configs, nil
}
