package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/banks"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/config"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/logger"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tracing"
)

var version = "1.0.0"

// app то, что нужно подкомандам после загрузки конфигурации
type app struct {
	cfg      *config.Config
	rates    banks.RateTable
	registry map[string]tools.ToolHandler
	shutdown tracing.ShutdownFunc
	log      zerolog.Logger
}

var (
	current     *app
	initTracing = tracing.InitTracing
)

var rootCmd = &cobra.Command{
	Use:   "loancalc",
	Short: "Vehicle loan calculator with annual reinforcement payments",
	Long: `loancalc computes amortization schedules for vehicle loans in guaraníes,
including annual lump-sum payments (refuerzos) that trigger a payment
recalculation at the start of each year.

Configuration is read from the environment and an optional .env file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

func newApp(ctx context.Context) (*app, error) {
	if err := logger.Setup(logger.DefaultConfig()); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Setup(cfg.LoggerConfig()); err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	log := logger.WithComponent("cli")

	rates, err := cfg.RateTable()
	if err != nil {
		return nil, err
	}

	tracer, shutdown, err := initTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, log)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	return &app{
		cfg:      cfg,
		rates:    rates,
		registry: tools.Registry(cfg, rates, tracer),
		shutdown: shutdown,
		log:      log,
	}, nil
}

// call вызывает инструмент так же, как HTTP сервер
func (a *app) call(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	handler, ok := a.registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	return handler(ctx, params)
}

// close сбрасывает накопленные спаны и закрывает файл лога
func (a *app) close(ctx context.Context) error {
	var err error
	if a.shutdown != nil {
		err = a.shutdown(ctx)
	}
	return errors.Join(err, logger.Close())
}

// run выполняет команду и завершает трейсинг независимо от ее результата
func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if current != nil {
		closeErr := current.close(context.Background())
		current = nil
		if err == nil {
			err = closeErr
		}
	}
	return err
}

// Execute запускает корневую команду
func Execute() {
	if err := run(context.Background()); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}
