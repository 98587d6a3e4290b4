package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rgehrsitz/billimpact/internal/calculation"
	"github.com/rgehrsitz/billimpact/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the state shared by every subcommand
type app struct {
	debug         bool
	referenceFile string

	level  zap.AtomicLevel
	logger *zap.Logger
}

func (a *app) sugar() *zap.SugaredLogger {
	if a.logger == nil {
		return zap.NewNop().Sugar()
	}
	return a.logger.Sugar()
}

// loadEngine builds a calculation engine over the embedded or --reference tables
func (a *app) loadEngine() (*calculation.CalculationEngine, error) {
	return a.loadEngineFrom(a.referenceFile)
}

func (a *app) loadEngineFrom(path string) (*calculation.CalculationEngine, error) {
	ref, err := config.NewReferenceLoader().Load(path)
	if err != nil {
		return nil, err
	}

	engine := calculation.NewCalculationEngineWithConfig(ref)
	engine.SetLogger(a.sugar())
	engine.Debug = a.debug
	return engine, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "billimpact",
		Short: "Household policy impact calculator",
		Long: `billimpact estimates how federal tax and healthcare changes affect a household.

It compares Current Law with the Big Bill scenario from a short questionnaire:
location, household, employment, healthcare coverage and income.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			a.level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
			if a.debug {
				a.level.SetLevel(zapcore.DebugLevel)
			}
			cfg.Level = a.level
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging of intermediate calculations")
	root.PersistentFlags().StringVar(&a.referenceFile, "reference", "", "Path to a reference data YAML file (default: embedded 2025 tables)")

	root.AddCommand(calculateCmd(a))
	root.AddCommand(compareCmd(a))
	root.AddCommand(serveCmd(a))
	root.AddCommand(validateCmd(a))
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "billimpact %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
