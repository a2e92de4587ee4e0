package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rigbook/rigbook/internal/infrastructure/container"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// Input and output follow the command's streams so tests can swap them.
//
// Usage:
//
//	cmd := &cobra.Command{
//	    Use: "manage",
//	    RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
//	        return ctx.Container.SessionUseCase(lister).Run(ctx.Context)
//	    }),
//	}
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		c, err := container.New(container.Options{
			SystemConfigPath: viper.GetString("system_config"),
			Logger:           logger,
			In:               cmd.InOrStdin(),
			Out:              cmd.OutOrStdout(),
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := &CommandContext{
			Container: c,
			Logger:    logger,
			Context:   cmd.Context(),
		}

		return handler(ctx, cmd, args)
	}
}
