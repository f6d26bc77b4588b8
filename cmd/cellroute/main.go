// Command cellroute plans reward-collecting round trips over a grid of cells
// under a time budget, with the bounded permutation search and the
// nearest-neighbour heuristic of package orienteer.
//
//	$ cellroute plan   [-config file] [options]   # every configured algorithm
//	$ cellroute search [-config file] [options]   # bounded permutation search
//	$ cellroute greedy [-config file] [options]   # nearest neighbour
//	$ cellroute grid   [-config file] [options]   # print the reward map
package main

import (
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/rs/zerolog"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute builds the command tree, dispatches args and logs a failure.
func execute(args []string, stdout, stderr io.Writer) error {
	app := newApp(stdout, stderr)
	root := &commander.Command{
		UsageLine: "cellroute <sub-command> [options]",
		Short:     "plan time-budgeted reward-collecting tours over grid cells",
		Subcommands: []*commander.Command{
			app.planCmd(),
			app.algoCmd("search", "bounded permutation search with feasibility repair"),
			app.algoCmd("greedy", "nearest-neighbour tour with look-ahead feasibility"),
			app.gridCmd(),
		},
		Flag: *flag.NewFlagSet("cellroute", flag.ContinueOnError),
	}

	if err := root.Dispatch(args); err != nil {
		log := app.logger()
		log.Error().Err(err).Msg("cellroute failed")
		return err
	}

	return nil
}

// newLogger returns a console logger on w; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}
