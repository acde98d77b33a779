package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrowmaze/dfs"
	"github.com/katalvlaran/arrowmaze/emitter"
	"github.com/katalvlaran/arrowmaze/loader"
)

type config struct {
	in        string
	out       string
	grammar   string
	magnitude bool
	trailing  bool
	maxSteps  int
	timeout   time.Duration
	png       string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "arrowmaze",
		Short: "Solve a colored-arrow maze",
		Long: `Find a path from the top-left to the bottom-right cell of a colored-arrow
maze, stepping only between cells of different colors, and write its moves.

Examples:
  arrowmaze --in tiny.txt --out output.txt
  arrowmaze -i tiny.txt -g arrow --magnitude --trailing
  arrowmaze -i big.txt --max-steps 1000000 --timeout 5s --png path.png`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.in, "in", "i", "tiny.txt", "Maze description to read")
	cmd.Flags().StringVarP(&cfg.out, "out", "o", "output.txt", "File receiving the move tokens")
	cmd.Flags().StringVarP(&cfg.grammar, "grammar", "g", "basic", "Cell token grammar: basic or arrow")
	cmd.Flags().BoolVar(&cfg.magnitude, "magnitude", false, "Prefix each token with its step count")
	cmd.Flags().BoolVar(&cfg.trailing, "trailing", false, "Write a separator after the last token")
	cmd.Flags().IntVar(&cfg.maxSteps, "max-steps", 0, "Abort the search after this many candidates (0 = unbounded)")
	cmd.Flags().DurationVar(&cfg.timeout, "timeout", 0, "Abort the search after this long (0 = no deadline)")
	cmd.Flags().StringVar(&cfg.png, "png", "", "Optional PNG rendering of the board and path")
	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	return cmd
}

func solve(cmd *cobra.Command, cfg *config) error {
	stdout := cmd.OutOrStdout()
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		logger.WithError(err).Error("bad --log-level")
		return &exitError{code: exitInput, err: err}
	}
	logger.SetLevel(level)
	log := logger.WithFields(logrus.Fields{"run_id": uuid.New().String(), "input": cfg.in})

	grammar, err := loader.GrammarByName(cfg.grammar)
	if err != nil {
		log.WithError(err).Error("bad --grammar")
		return &exitError{code: exitInput, err: err}
	}
	g, err := loader.LoadFile(cfg.in, loader.WithGrammar(grammar))
	if err != nil {
		log.WithError(err).Error("loading maze")
		return &exitError{code: exitInput, err: err}
	}
	log = log.WithFields(logrus.Fields{"rows": g.Rows(), "cols": g.Cols()})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	var res *dfs.Result
	if g.Reachable() {
		res, err = dfs.Solve(g,
			dfs.WithContext(ctx),
			dfs.WithMaxSteps(cfg.maxSteps),
			dfs.WithLogger(log),
		)
	} else {
		log.Info("target unreachable from start")
		err = dfs.ErrNoPath
	}
	switch {
	case errors.Is(err, dfs.ErrNoPath):
		fmt.Fprintln(stdout, "No solution found.")
		return &exitError{code: exitNoPath, err: err}
	case err != nil:
		log.WithError(err).Error("search aborted")
		fmt.Fprintln(stdout, "Search aborted.")
		return &exitError{code: exitAborted, err: err}
	}

	opts := []emitter.Option{emitter.WithMagnitude(cfg.magnitude)}
	if cfg.trailing {
		opts = append(opts, emitter.WithTrailingSeparator())
	}
	if err = emitter.WriteFile(cfg.out, res.Path, opts...); err != nil {
		log.WithError(err).Error("writing path")
	}
	if cfg.png != "" {
		if err = writePNG(cfg.png, g, res); err != nil {
			log.WithError(err).Error("rendering path")
		}
	}

	fmt.Fprintln(stdout, "Maze solved successfully!")

	return nil
}
