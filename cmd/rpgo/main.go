package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/store"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	dbPath     string
	verbose    bool

	cfg    config.AppConfig
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rpgo",
		Short: "Retirement projection engine",
		Long: `rpgo projects retirement savings month by month under conservative,
moderate and aggressive market assumptions and reports balances, withdrawals
and a simple success estimate for each.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadAppConfig(a.configPath)
			if err != nil {
				return err
			}
			if a.dbPath != "" {
				cfg.Storage.Path = a.dbPath
			}
			a.cfg = cfg

			a.logger, err = buildLogger(cfg.Log, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "rpgo.yaml", "application config file (YAML or TOML)")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite run history path (overrides storage.path)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.scenariosCmd(),
		a.projectCmd(),
		a.validateCmd(),
		a.exampleCmd(),
		a.serveCmd(),
		a.historyCmd(),
	)
	return root
}

func buildLogger(lc config.LogConfig, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if lc.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lc.Level != "" {
		level, err := zapcore.ParseLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func (a *app) newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.NewZapLogger(a.logger))
	return engine
}

// loadProfile reads the profile named by args[0], or returns the default
// profile when no file is given.
func loadProfile(args []string) (domain.FinancialProfile, error) {
	if len(args) == 0 {
		return domain.DefaultProfile(), nil
	}
	profile, err := config.NewInputParser().LoadProfileFromFile(args[0])
	if err != nil {
		return domain.FinancialProfile{}, err
	}
	return *profile, nil
}

// openStore opens the run history, or returns nil when none is configured.
func (a *app) openStore() (*store.Store, error) {
	if a.cfg.Storage.Path == "" {
		return nil, nil
	}
	return store.Open(a.cfg.Storage.Path)
}
