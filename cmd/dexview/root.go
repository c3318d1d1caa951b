package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/notjagan/dexview/pkg/config"
	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/model"
	"github.com/notjagan/dexview/pkg/pokeapi"
	"github.com/notjagan/dexview/pkg/telemetry"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg      *config.Config
	logger   *zap.Logger
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "dexview",
		Short:         "Browse the first-generation Pokedex",
		Long:          `dexview lists, searches and inspects the 151 original Pokemon using PokeAPI, from the terminal or a Discord bot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "Path to the TOML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.weakCmd(),
		a.browseCmd(),
		a.exportCmd(),
		a.botCmd(),
	)

	return root
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Read(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg, a.verbose, "stderr")
	if err != nil {
		return err
	}
	a.logger = logger

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint)
	if err != nil {
		return fmt.Errorf("error while setting up tracing: %w", err)
	}
	a.shutdown = shutdown

	return nil
}

func (a *app) teardown(ctx context.Context) error {
	var errs []error
	if a.shutdown != nil {
		errs = append(errs, a.shutdown(context.WithoutCancel(ctx)))
	}
	if a.logger != nil {
		// stderr is not syncable on every platform
		_ = a.logger.Sync()
	}
	return errors.Join(errs...)
}

func newLogger(cfg *config.Config, verbose bool, outputs ...string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Log.Development {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, config.ErrInvalidConfig)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = outputs
	zcfg.ErrorOutputPaths = outputs

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("error while building logger: %w", err)
	}

	return logger, nil
}

func (a *app) resolver(ctx context.Context) (model.Resolver, error) {
	table, err := model.LoadWeaknesses(ctx, a.cfg.Chart.Path)
	if err != nil {
		return model.Resolver{}, fmt.Errorf("error while loading type chart: %w", err)
	}

	return model.NewResolver(table), nil
}

func (a *app) catalog(ctx context.Context) (*dex.Catalog, error) {
	resolver, err := a.resolver(ctx)
	if err != nil {
		return nil, err
	}

	client, err := pokeapi.New(pokeapi.Config{
		BaseURL: a.cfg.API.BaseURL,
		Timeout: a.cfg.API.Timeout,
	}, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error while creating pokeapi client: %w", err)
	}

	return dex.Load(ctx, client, resolver, a.logger)
}

func sortFlag(cmd *cobra.Command, fallback model.SortMode) (model.SortMode, error) {
	if !cmd.Flags().Changed("sort") {
		return fallback, nil
	}

	value, err := cmd.Flags().GetString("sort")
	if err != nil {
		return fallback, err
	}

	mode, err := model.SortModeString(value)
	if err != nil {
		return fallback, fmt.Errorf("--sort must be one of %v: %w", model.SortModeStrings(), err)
	}

	return mode, nil
}
