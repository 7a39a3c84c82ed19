package main

import (
	"context"

	"github.com/spf13/cobra"

	"inkwell/internal/app"
	"inkwell/internal/config"
	"inkwell/internal/logging"
)

func newUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Run the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), opts)
		},
	}
}

func runUI(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	uiCfg, err := config.LoadUIConfig()
	if err != nil {
		return err
	}
	return withRuntime(ctx, opts, func(env *runtimeEnv) error {
		logger := env.logger.With(logging.F("component", "ui"))
		workbench := app.NewWorkbench(env.store, app.WithWorkbenchLogger(logger))
		workbench.Load(ctx)
		logger.Info("ui started", logging.F("backend", env.backend.Name()))
		return app.Run(ctx, workbench, app.WithUIConfig(uiCfg), app.WithModelLogger(logger))
	})
}
