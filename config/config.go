// Package config loads the run configuration of the cellroute CLI.
//
// A configuration file is YAML:
//
//	grid:
//	  x: 5
//	  y: 6
//	  rewards: random   # uniform | random
//	  seed: 996
//	  min_reward: 0
//	  max_reward: 30
//	cost:
//	  service_time: 6
//	  travel_speed: 0.5
//	plan:
//	  time_budget: 200
//	  max_candidates: 1000
//	  algorithms: [search, greedy]
//
// The file is read through viper with every key defaulted, then decoded into
// Config with yaml.v3. Missing keys keep their defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cellroute/cell"
	"github.com/katalvlaran/cellroute/cost"
	"github.com/katalvlaran/cellroute/gridcells"
	"github.com/katalvlaran/cellroute/orienteer"
)

// Reward modes of GridConfig.Rewards.
const (
	RewardsUniform = "uniform"
	RewardsRandom  = "random"
)

var (
	// ErrReadConfig indicates the configuration file could not be read or decoded.
	ErrReadConfig = errors.New("config: cannot read configuration")
	// ErrInvalidConfig indicates a decoded configuration with meaningless values.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// GridConfig describes the generated cell set.
type GridConfig struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Rewards   string `yaml:"rewards"`
	Seed      int64  `yaml:"seed"`
	MinReward int    `yaml:"min_reward"`
	MaxReward int    `yaml:"max_reward"`
}

// CostConfig mirrors cost.Model.
type CostConfig struct {
	ServiceTime float64 `yaml:"service_time"`
	TravelSpeed float64 `yaml:"travel_speed"`
}

// PlanConfig holds the planning limits and the algorithms to run.
type PlanConfig struct {
	TimeBudget    float64  `yaml:"time_budget"`
	MaxCandidates int      `yaml:"max_candidates"`
	Algorithms    []string `yaml:"algorithms"`
}

// Config is the complete run configuration.
type Config struct {
	Grid GridConfig `yaml:"grid"`
	Cost CostConfig `yaml:"cost"`
	Plan PlanConfig `yaml:"plan"`
}

// Default returns the original planning scenario: a 5×6 uniform grid, the
// default cost model, a budget of 200 and 1000 candidates, both algorithms.
func Default() Config {
	m := cost.DefaultModel()

	return Config{
		Grid: GridConfig{
			X:         5,
			Y:         6,
			Rewards:   RewardsUniform,
			MinReward: gridcells.DefaultMinReward,
			MaxReward: gridcells.DefaultMaxReward,
		},
		Cost: CostConfig{
			ServiceTime: m.ServiceTime,
			TravelSpeed: m.TravelSpeed,
		},
		Plan: PlanConfig{
			TimeBudget:    orienteer.DefaultTimeBudget,
			MaxCandidates: orienteer.DefaultMaxCandidates,
			Algorithms:    []string{orienteer.BoundedPermutation.String(), orienteer.NearestNeighbor.String()},
		},
	}
}

// Load reads the YAML file at path over Default. An empty path returns Default.
// The result is validated.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	setDefaults(vp, Default())
	if err := vp.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}

	// Round-trip viper's merged settings through yaml to get a typed Config.
	raw, err := yaml.Marshal(vp.AllSettings())
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}
	var cfg Config
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(vp *viper.Viper, d Config) {
	vp.SetDefault("grid.x", d.Grid.X)
	vp.SetDefault("grid.y", d.Grid.Y)
	vp.SetDefault("grid.rewards", d.Grid.Rewards)
	vp.SetDefault("grid.seed", d.Grid.Seed)
	vp.SetDefault("grid.min_reward", d.Grid.MinReward)
	vp.SetDefault("grid.max_reward", d.Grid.MaxReward)
	vp.SetDefault("cost.service_time", d.Cost.ServiceTime)
	vp.SetDefault("cost.travel_speed", d.Cost.TravelSpeed)
	vp.SetDefault("plan.time_budget", d.Plan.TimeBudget)
	vp.SetDefault("plan.max_candidates", d.Plan.MaxCandidates)
	vp.SetDefault("plan.algorithms", d.Plan.Algorithms)
}

// Validate reports the first meaningless value as ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Grid.X < 1 || c.Grid.Y < 1 {
		return fmt.Errorf("%w: grid %d×%d", ErrInvalidConfig, c.Grid.X, c.Grid.Y)
	}
	if c.Grid.Rewards != RewardsUniform && c.Grid.Rewards != RewardsRandom {
		return fmt.Errorf("%w: grid.rewards %q", ErrInvalidConfig, c.Grid.Rewards)
	}
	if c.Grid.MinReward < 0 || c.Grid.MinReward > c.Grid.MaxReward {
		return fmt.Errorf("%w: reward range [%d, %d]", ErrInvalidConfig, c.Grid.MinReward, c.Grid.MaxReward)
	}
	if err := c.Model().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !(c.Plan.TimeBudget > 0) {
		return fmt.Errorf("%w: plan.time_budget %v", ErrInvalidConfig, c.Plan.TimeBudget)
	}
	if c.Plan.MaxCandidates <= 0 {
		return fmt.Errorf("%w: plan.max_candidates %d", ErrInvalidConfig, c.Plan.MaxCandidates)
	}
	if len(c.Plan.Algorithms) == 0 {
		return fmt.Errorf("%w: plan.algorithms is empty", ErrInvalidConfig)
	}
	if _, err := c.Algorithms(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Model returns the cost model described by c.
func (c Config) Model() cost.Model {
	return cost.Model{ServiceTime: c.Cost.ServiceTime, TravelSpeed: c.Cost.TravelSpeed}
}

// Algorithms parses Plan.Algorithms in order.
func (c Config) Algorithms() ([]orienteer.Algorithm, error) {
	out := make([]orienteer.Algorithm, 0, len(c.Plan.Algorithms))
	for _, name := range c.Plan.Algorithms {
		a, err := orienteer.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// Options returns planner options for algo.
func (c Config) Options(algo orienteer.Algorithm) orienteer.Options {
	return orienteer.Options{
		Model:         c.Model(),
		TimeBudget:    c.Plan.TimeBudget,
		MaxCandidates: c.Plan.MaxCandidates,
		Algo:          algo,
	}
}

// Cells generates the grid described by c.Grid.
func (c Config) Cells() ([]cell.Cell, error) {
	if c.Grid.Rewards == RewardsRandom {
		return gridcells.Random(c.Grid.X, c.Grid.Y,
			gridcells.WithSeed(c.Grid.Seed),
			gridcells.WithRewardRange(c.Grid.MinReward, c.Grid.MaxReward))
	}

	return gridcells.Uniform(c.Grid.X, c.Grid.Y)
}
