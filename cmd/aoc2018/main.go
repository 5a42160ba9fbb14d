// Package main provides the aoc2018 CLI: it reads puzzle input from a file
// or stdin and prints the answer of the selected puzzle.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aoc2018/checksum"
	"github.com/katalvlaran/aoc2018/frequency"
	"github.com/katalvlaran/aoc2018/internal/config"
	"github.com/katalvlaran/aoc2018/lines"
	"github.com/katalvlaran/aoc2018/nearmatch"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	initial       int
	maxIterations int
	truncate      bool

	logger *zap.Logger
	file   config.FileConfig
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aoc2018",
		Short:         "Frequency, checksum and near-match puzzle solver",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.logger == nil {
				cfg := zap.NewProductionConfig()
				if a.verbose {
					cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := cfg.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}
			file, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.file = file
			a.logger.Debug("config loaded", zap.String("path", a.configPath), zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "path to a .toml or .yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newFrequencyCmd(a))
	rootCmd.AddCommand(newCalibrateCmd(a))
	rootCmd.AddCommand(newChecksumCmd(a))
	rootCmd.AddCommand(newNearMatchCmd(a))

	return rootCmd
}

func newFrequencyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frequency [file]",
		Short: "Sum all deltas onto the initial frequency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyIntConfig(cmd, "initial", &a.initial, a.file.Calibration.Initial)

			r, closeFn, err := lines.Open(inputPath(args))
			if err != nil {
				return err
			}
			defer closeInput(a.logger, closeFn)

			f, err := frequency.SumReader(frequency.Frequency(a.initial), r)
			if err != nil {
				return err
			}
			a.logger.Debug("frequency summed", zap.Int("initial", a.initial), zap.Int("result", f.Current()))
			return printResult(cmd, f.Current())
		},
	}
	cmd.Flags().IntVar(&a.initial, "initial", 0, "starting frequency")

	return cmd
}

func newCalibrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate [file]",
		Short: "Cycle the deltas until a running frequency repeats",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyIntConfig(cmd, "initial", &a.initial, a.file.Calibration.Initial)
			applyIntConfig(cmd, "max-iterations", &a.maxIterations, a.file.Calibration.MaxIterations)

			r, closeFn, err := lines.Open(inputPath(args))
			if err != nil {
				return err
			}
			defer closeInput(a.logger, closeFn)

			deltas, err := frequency.ReadDeltas(r)
			if err != nil {
				return err
			}
			f, err := frequency.Calibrate(frequency.Frequency(a.initial), deltas, frequency.WithMaxIterations(a.maxIterations))
			if err != nil {
				a.logger.Error("calibration failed",
					zap.Int("deltas", len(deltas)),
					zap.Int("max_iterations", a.maxIterations),
					zap.Error(err))
				return err
			}
			a.logger.Debug("calibrated", zap.Int("deltas", len(deltas)), zap.Int("result", f.Current()))
			return printResult(cmd, f.Current())
		},
	}
	cmd.Flags().IntVar(&a.initial, "initial", 0, "starting frequency")
	cmd.Flags().IntVar(&a.maxIterations, "max-iterations", frequency.DefaultMaxIterations, "give up after this many delta applications")

	return cmd
}

func newChecksumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checksum [file]",
		Short: "Multiply the counts of IDs with doubled and tripled letters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := lines.ReadFile(inputPath(args))
			if err != nil {
				return err
			}
			count, err := checksum.Count(ids)
			if err != nil {
				return err
			}
			a.logger.Debug("ids classified",
				zap.Int("ids", len(ids)),
				zap.Int("twos", count.Twos),
				zap.Int("threes", count.Threes))
			return printResult(cmd, count.Product())
		},
	}
}

func newNearMatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearmatch [file]",
		Short: "Print the common letters of the two IDs that differ by one position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyBoolConfig(cmd, "truncate", &a.truncate, a.file.NearMatch.Truncate)

			ids, err := lines.ReadFile(inputPath(args))
			if err != nil {
				return err
			}
			var opts []nearmatch.Option
			if a.truncate {
				opts = append(opts, nearmatch.WithTruncate())
			}
			m, ok := nearmatch.FindPair(ids, opts...)
			if !ok {
				a.logger.Debug("no near match", zap.Int("ids", len(ids)))
				return printResult(cmd, "no match")
			}
			a.logger.Debug("near match", zap.Int("i", m.I), zap.Int("j", m.J))
			return printResult(cmd, m.Common)
		},
	}
	cmd.Flags().BoolVar(&a.truncate, "truncate", false, "compare IDs of different length up to the shorter one")

	return cmd
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return lines.StdinPath
	}
	return args[0]
}

func closeInput(logger *zap.Logger, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Warn("failed to close input", zap.Error(err))
	}
}

func printResult(cmd *cobra.Command, v any) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// applyIntConfig copies a file value into target unless the flag was set explicitly.
func applyIntConfig(cmd *cobra.Command, name string, target *int, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target *bool, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
