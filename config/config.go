// Package config loads experiment settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"boardgame/experiments/metrics"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v2"
)

var cfgFile = "boardgame/experiment.yaml"

type InvalidConfig struct {
	err error
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("invalid config: %v", e.err)
}

func (e *InvalidConfig) Unwrap() error {
	return e.err
}

const (
	TicTacToe = "tictactoe"
	Connect4  = "connect4"
)

// Experiment describes a set of match-ups between agents. Each match-up lists two agent IDs:
// the first agent plays A, the second plays B.
type Experiment struct {
	Name      string                `yaml:"name"`
	Game      string                `yaml:"game"`
	Games     int                   `yaml:"games"`     // Per match-up
	MaxMoves  uint64                `yaml:"max_moves"` // 0 for no cap
	Parallel  int                   `yaml:"parallel"`  // Games played at the same time
	Seed      uint64                `yaml:"seed"`
	OutputDir string                `yaml:"output_dir"` // Empty to skip writing records
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  [][2]int              `yaml:"matchups"`
}

// Default returns a random-vs-random tic-tac-toe experiment.
func Default() Experiment {
	return Experiment{
		Name:     "default",
		Game:     TicTacToe,
		Games:    10,
		Parallel: 1,
		Seed:     1,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.RandomAgent},
			{ID: 2, Kind: metrics.RandomAgent},
		},
		MatchUps: [][2]int{{1, 2}},
	}
}

// Load reads an experiment from path, filling unset fields from Default.
func Load(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Find loads the experiment from the user's config directory, or returns Default if there is none.
func Find() (Experiment, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Save writes e to the user's config directory and returns the path.
func Save(e Experiment) (string, error) {
	path, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("failed to locate config: %w", err)
	}
	data, err := yaml.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	err = os.WriteFile(path, data, 0664)
	if err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

func Parse(data []byte) (Experiment, error) {
	e := Default()
	e.Agents, e.MatchUps = nil, nil
	if err := yaml.UnmarshalStrict(data, &e); err != nil {
		return Experiment{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(e.Agents) == 0 && len(e.MatchUps) == 0 {
		d := Default()
		e.Agents, e.MatchUps = d.Agents, d.MatchUps
	}
	if err := e.Validate(); err != nil {
		return Experiment{}, err
	}
	return e, nil
}

func (e Experiment) Validate() error {
	var errs []error
	switch e.Game {
	case TicTacToe, Connect4:
	default:
		errs = append(errs, fmt.Errorf("unknown game %q", e.Game))
	}
	if e.Games <= 0 {
		errs = append(errs, errors.New("games must be positive"))
	}
	if e.Parallel <= 0 {
		errs = append(errs, errors.New("parallel must be positive"))
	}

	ids := map[int]bool{}
	for _, agent := range e.Agents {
		if ids[agent.ID] {
			errs = append(errs, fmt.Errorf("duplicate agent id %d", agent.ID))
		}
		ids[agent.ID] = true
		switch agent.Kind {
		case metrics.RandomAgent:
		case metrics.SearchAgent:
			if agent.Episodes <= 0 && agent.Duration <= 0 {
				errs = append(errs, fmt.Errorf("agent %d must set episodes or duration", agent.ID))
			}
			if agent.Exploration < 0 {
				errs = append(errs, fmt.Errorf("agent %d has negative exploration", agent.ID))
			}
		default:
			errs = append(errs, fmt.Errorf("agent %d has unknown kind %q", agent.ID, agent.Kind))
		}
	}
	if len(e.MatchUps) == 0 {
		errs = append(errs, errors.New("at least one matchup is required"))
	}
	for _, m := range e.MatchUps {
		for _, id := range m {
			if !ids[id] {
				errs = append(errs, fmt.Errorf("matchup %v references unknown agent %d", m, id))
			}
		}
	}

	if len(errs) > 0 {
		return &InvalidConfig{errors.Join(errs...)}
	}
	return nil
}

// Agent returns the agent config with the given id.
func (e Experiment) Agent(id int) (metrics.AgentConfig, bool) {
	for _, agent := range e.Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return metrics.AgentConfig{}, false
}
