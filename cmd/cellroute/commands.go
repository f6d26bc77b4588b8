package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/cellroute/cell"
	"github.com/katalvlaran/cellroute/config"
	"github.com/katalvlaran/cellroute/orienteer"
	"github.com/katalvlaran/cellroute/report"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// app carries the output streams and the flag values of one invocation.
// Zero-valued numeric flags mean "keep the configured value".
type app struct {
	stdout, stderr io.Writer

	configFile string
	xDim, yDim int
	random     bool
	seed       int64
	timeSeed   bool
	budget     float64
	candidates int
	service    float64
	speed      float64
	format     string
	verbose    bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, format: formatText}
}

func (a *app) logger() zerolog.Logger {
	return newLogger(a.stderr, a.verbose)
}

// registerFlags binds the shared options to fs.
func (a *app) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&a.configFile, "config", "", "YAML configuration file")
	fs.IntVar(&a.xDim, "x", 0, "grid width (cells along x)")
	fs.IntVar(&a.yDim, "y", 0, "grid height (cells along y)")
	fs.BoolVar(&a.random, "random", false, "draw random integer rewards instead of uniform ones")
	fs.Int64Var(&a.seed, "seed", 0, "seed for random rewards")
	fs.BoolVar(&a.timeSeed, "time-seed", false, "seed random rewards from the clock")
	fs.Float64Var(&a.budget, "budget", 0, "time budget of one round trip")
	fs.IntVar(&a.candidates, "candidates", 0, "max distinct candidate tours of the search")
	fs.Float64Var(&a.service, "service", 0, "time spent per visited cell")
	fs.Float64Var(&a.speed, "speed", 0, "time spent per unit of distance")
	fs.StringVar(&a.format, "format", formatText, "output format: text or yaml")
	fs.BoolVar(&a.verbose, "v", false, "verbose (debug) logging")
}

func (a *app) newCommand(name, usage, short string, run func(*commander.Command, []string) error) *commander.Command {
	cmd := &commander.Command{
		Run:       run,
		UsageLine: name + " " + usage,
		Short:     short,
		Long: fmt.Sprintf(`
%s

	$ cellroute %s %s
`, short, name, usage),
		Flag: *flag.NewFlagSet(name, flag.ContinueOnError),
	}
	a.registerFlags(&cmd.Flag)

	return cmd
}

func (a *app) planCmd() *commander.Command {
	return a.newCommand("plan", "[-config file] [options]",
		"run every configured algorithm on the same grid",
		func(cmd *commander.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			algos, err := cfg.Algorithms()
			if err != nil {
				return err
			}
			return a.plan(cfg, algos)
		})
}

func (a *app) algoCmd(name, short string) *commander.Command {
	return a.newCommand(name, "[-config file] [options]", short,
		func(cmd *commander.Command, args []string) error {
			algo, err := orienteer.ParseAlgorithm(cmd.Name())
			if err != nil {
				return err
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			return a.plan(cfg, []orienteer.Algorithm{algo})
		})
}

func (a *app) gridCmd() *commander.Command {
	return a.newCommand("grid", "[-config file] [options]",
		"print the reward map of the configured grid",
		func(cmd *commander.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			cells, err := cfg.Cells()
			if err != nil {
				return err
			}
			return report.WriteGrid(a.stdout, cells)
		})
}

// loadConfig reads the configuration file and applies flag overrides.
func (a *app) loadConfig() (config.Config, error) {
	log := a.logger()

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if a.xDim != 0 {
		cfg.Grid.X = a.xDim
	}
	if a.yDim != 0 {
		cfg.Grid.Y = a.yDim
	}
	if a.random {
		cfg.Grid.Rewards = config.RewardsRandom
	}
	if a.seed != 0 {
		cfg.Grid.Seed = a.seed
	}
	if a.timeSeed {
		cfg.Grid.Seed = time.Now().UnixNano()
	}
	if a.budget != 0 {
		cfg.Plan.TimeBudget = a.budget
	}
	if a.candidates != 0 {
		cfg.Plan.MaxCandidates = a.candidates
	}
	if a.service != 0 {
		cfg.Cost.ServiceTime = a.service
	}
	if a.speed != 0 {
		cfg.Cost.TravelSpeed = a.speed
	}
	if a.format != formatText && a.format != formatYAML {
		return config.Config{}, fmt.Errorf("%w: format %q", config.ErrInvalidConfig, a.format)
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	log.Info().
		Str("config", a.configFile).
		Int("x", cfg.Grid.X).
		Int("y", cfg.Grid.Y).
		Str("rewards", cfg.Grid.Rewards).
		Int64("seed", cfg.Grid.Seed).
		Float64("budget", cfg.Plan.TimeBudget).
		Int("candidates", cfg.Plan.MaxCandidates).
		Float64("service_time", cfg.Cost.ServiceTime).
		Float64("travel_speed", cfg.Cost.TravelSpeed).
		Msg("configuration")

	return cfg, nil
}

// plan generates the grid once and runs algos on it in order.
func (a *app) plan(cfg config.Config, algos []orienteer.Algorithm) error {
	log := a.logger()

	cells, err := cfg.Cells()
	if err != nil {
		return err
	}
	log.Debug().Str("cells", cell.DebugString(cells)).Msg("grid generated")

	start := time.Now()
	outcomes, err := orienteer.SolveAll(cells, cfg.Options(algos[0]), algos...)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("tours", len(outcomes)).Msg("planning done")

	for _, o := range outcomes {
		res := o.Result
		log.Info().
			Str("algorithm", o.Algo.String()).
			Int("candidates", res.Candidates).
			Int("iterations", res.Iterations).
			Int("skipped", res.Skipped).
			Msg("tour planned")
		if res.Degenerate {
			log.Warn().Str("algorithm", o.Algo.String()).Msg("no round trip fits the time budget")
		}

		if err = a.render(title(o.Algo, cfg), res); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) render(name string, res orienteer.Result) error {
	if a.format == formatYAML {
		// One document per tour.
		if _, err := io.WriteString(a.stdout, "---\n"); err != nil {
			return err
		}
		return report.WriteYAML(a.stdout, name, res)
	}
	if err := report.WriteText(a.stdout, name, res); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.stdout)

	return err
}

// title names a rendered tour like the original plots did.
func title(algo orienteer.Algorithm, cfg config.Config) string {
	name := "Nearest neighbour"
	if algo == orienteer.BoundedPermutation {
		name = "Brute force"
	}

	return fmt.Sprintf("%s, %s reward, time limit %gs", name, cfg.Grid.Rewards, cfg.Plan.TimeBudget)
}
