package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/locvowork/employee_management_sample/samples/internal/config"
	"github.com/locvowork/employee_management_sample/samples/internal/logger"
	"github.com/locvowork/employee_management_sample/samples/internal/samples"
	"github.com/spf13/cobra"
)

type App struct {
	Root *cobra.Command
	Out  io.Writer
}

func NewApp() *App {
	return &App{
		Root: &cobra.Command{
			Use:           "employee-samples",
			Short:         "Runs the employee record samples",
			Long:          `Builds fixed sample employee records and prints their summaries. Without a subcommand every sample runs in order.`,
			Args:          cobra.NoArgs,
			SilenceUsage:  true,
			SilenceErrors: true,
		},
		Out: os.Stdout,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_LEVEL, config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	a.RegisterCommands()
	return nil
}

// RegisterCommands wires the root command to run every sample and adds one
// subcommand per sample.
func (a *App) RegisterCommands() {
	a.Root.RunE = func(cmd *cobra.Command, args []string) error {
		return samples.All(cmd.Context(), a.Out)
	}

	for _, s := range samples.Registry {
		s := s
		a.Root.AddCommand(&cobra.Command{
			Use:   s.Name,
			Short: s.Short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := logger.WithLogger(cmd.Context(), map[string]interface{}{"sample": s.Name})
				logger.InfoLog(ctx, "Running sample %s", s.Name)
				return s.Run(ctx, a.Out)
			},
		})
	}
}

// Run executes the command tree with args. A nil args slice means no
// arguments, not os.Args.
func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	a.Root.SetArgs(args)
	a.Root.SetOut(a.Out)
	return a.Root.ExecuteContext(ctx)
}
